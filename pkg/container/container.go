package container

import (
	"context"
	"fmt"
	"time"

	"cuentista-backend/internal/config"
	infraCache "cuentista-backend/internal/infrastructure/cache"
	"cuentista-backend/internal/infrastructure/database"
	"cuentista-backend/internal/infrastructure/email"
	"cuentista-backend/internal/infrastructure/storage"
	"cuentista-backend/internal/shared/upload"
	"cuentista-backend/pkg/cache"
	pkgdb "cuentista-backend/pkg/database"
	"cuentista-backend/pkg/jwt"
	"cuentista-backend/pkg/logger"

	adminHandler "cuentista-backend/internal/domains/admin/handler"
	adminRepo "cuentista-backend/internal/domains/admin/repository"
	adminService "cuentista-backend/internal/domains/admin/service"
	inquiryHandler "cuentista-backend/internal/domains/inquiry/handler"
	inquiryRepo "cuentista-backend/internal/domains/inquiry/repository"
	inquiryService "cuentista-backend/internal/domains/inquiry/service"
	productHandler "cuentista-backend/internal/domains/product/handler"
	productRepo "cuentista-backend/internal/domains/product/repository"
	productService "cuentista-backend/internal/domains/product/service"
	serviceHandler "cuentista-backend/internal/domains/service/handler"
	serviceRepo "cuentista-backend/internal/domains/service/repository"
	serviceService "cuentista-backend/internal/domains/service/service"
)

// Container is the root of the dependency graph. Everything here is a
// singleton built once at startup; a failed dependency aborts the boot.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Dispatcher *email.Dispatcher
	Storage    *storage.MinIOStorage

	InquiryRepo inquiryRepo.RepositoryInterface
	AdminRepo   adminRepo.RepositoryInterface
	ProductRepo productRepo.RepositoryInterface
	ServiceRepo serviceRepo.RepositoryInterface

	InquiryService inquiryService.ServiceInterface
	AdminService   adminService.ServiceInterface
	ProductService productService.ServiceInterface
	ServiceService serviceService.ServiceInterface

	InquiryHandler *inquiryHandler.InquiryHandler
	AdminHandler   *adminHandler.AdminHandler
	ProductHandler *productHandler.ProductHandler
	ServiceHandler *serviceHandler.ServiceHandler
	UploadHandler  *upload.Handler

	redisCache *infraCache.RedisCache
}

// NewContainer builds the full graph in dependency order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redisCache = redisCache
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.Dispatcher = email.NewDispatcher(cfg.Redis.Host)

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.InquiryRepo = inquiryRepo.NewPostgresRepository(db.Pool)
	c.AdminRepo = adminRepo.NewPostgresRepository(db.Pool)
	c.ProductRepo = productRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ServiceRepo = serviceRepo.NewPostgresRepository(db.Pool, c.Cache)

	c.InquiryService = inquiryService.NewInquiryService(c.InquiryRepo, c.Dispatcher)
	c.AdminService = adminService.NewAdminService(c.AdminRepo, c.JWTManager, c.Dispatcher)
	runner := pkgdb.NewPoolRunner(db.Pool)
	c.ProductService = productService.NewProductService(runner, c.ProductRepo)
	c.ServiceService = serviceService.NewServiceService(runner, c.ServiceRepo)

	c.InquiryHandler = inquiryHandler.NewInquiryHandler(c.InquiryService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.ServiceHandler = serviceHandler.NewServiceHandler(c.ServiceService)
	c.UploadHandler = upload.NewHandler(c.Storage)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure connections. Safe to call once during
// shutdown.
func (c *Container) Cleanup() {
	if c.Dispatcher != nil {
		if err := c.Dispatcher.Close(); err != nil {
			logger.Error("failed to close email dispatcher", err)
		}
	}
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
