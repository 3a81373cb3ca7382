package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuentista-backend/internal/domains/service/model"
	"cuentista-backend/pkg/cache"
)

// RepositoryInterface mirrors the product repository: Tx methods on an
// explicit transaction handle, plain reads from the pool with a cache.
// Detail rows share one table and are addressed per type, so each of the
// four sections replaces independently.
type RepositoryInterface interface {
	ExistsByNameTx(ctx context.Context, tx pgx.Tx, name string) (bool, error)
	ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	InsertServiceTx(ctx context.Context, tx pgx.Tx, name, description string) (int64, error)
	UpdateServiceTx(ctx context.Context, tx pgx.Tx, id int64, name, description string) error
	DeleteServiceTx(ctx context.Context, tx pgx.Tx, id int64) error

	InsertImagesTx(ctx context.Context, tx pgx.Tx, serviceID int64, images []model.ImageInput) error
	InsertSubServicesTx(ctx context.Context, tx pgx.Tx, serviceID int64, subs []model.SubServiceInput) error
	InsertDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64, detailType string, details []model.DetailInput) error

	DeleteImagesTx(ctx context.Context, tx pgx.Tx, serviceID int64) error
	DeleteSubServicesTx(ctx context.Context, tx pgx.Tx, serviceID int64) error
	DeleteDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64, detailType string) error
	DeleteAllDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64) error

	List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.ServiceListRow, int, error)
	GetAllNames(ctx context.Context) ([]model.ServiceListRow, error)
	GetView(ctx context.Context, id int64) (*model.ServiceView, error)
	InvalidateCache(ctx context.Context, id int64)
}

const (
	serviceViewKeyPrefix = "service:view:"
	serviceListKey       = "service:names"
	serviceCacheTTL      = 15 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) ExistsByNameTx(ctx context.Context, tx pgx.Tx, name string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM service WHERE service_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check service name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM service WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check service: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) InsertServiceTx(ctx context.Context, tx pgx.Tx, name, description string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO service (service_name, service_description) VALUES ($1, $2) RETURNING id`,
		name, description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert service: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) UpdateServiceTx(ctx context.Context, tx pgx.Tx, id int64, name, description string) error {
	_, err := tx.Exec(ctx,
		`UPDATE service SET service_name = $1, service_description = $2, updated_at = NOW() WHERE id = $3`,
		name, description, id)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteServiceTx(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM service WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (r *postgresRepository) InsertImagesTx(ctx context.Context, tx pgx.Tx, serviceID int64, images []model.ImageInput) error {
	for _, img := range images {
		_, err := tx.Exec(ctx,
			`INSERT INTO service_image (overview_image, service_image, right_sidebar_image_1, right_sidebar_image_2, service_id)
             VALUES ($1, $2, $3, $4, $5)`,
			img.OverviewImage, img.ServiceImage, img.RightSidebarImage1, img.RightSidebarImage2, serviceID)
		if err != nil {
			return fmt.Errorf("failed to insert service image: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) InsertSubServicesTx(ctx context.Context, tx pgx.Tx, serviceID int64, subs []model.SubServiceInput) error {
	for _, sub := range subs {
		_, err := tx.Exec(ctx,
			`INSERT INTO sub_service (sub_service_title, sub_service_description, service_id) VALUES ($1, $2, $3)`,
			sub.SubServiceTitle, sub.SubServiceDescription, serviceID)
		if err != nil {
			return fmt.Errorf("failed to insert sub service: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) InsertDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64, detailType string, details []model.DetailInput) error {
	for _, d := range details {
		description := ""
		if detailType == model.DetailTypeConsulting {
			description = d.ServicesDetailsDescription
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO service_details (services_details_point, services_details_type, services_details_description, service_id)
             VALUES ($1, $2, $3, $4)`,
			d.ServicesDetailsPoint, detailType, description, serviceID)
		if err != nil {
			return fmt.Errorf("failed to insert service detail: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) DeleteImagesTx(ctx context.Context, tx pgx.Tx, serviceID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM service_image WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("failed to delete service images: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteSubServicesTx(ctx context.Context, tx pgx.Tx, serviceID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM sub_service WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("failed to delete sub services: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64, detailType string) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM service_details WHERE service_id = $1 AND services_details_type = $2`,
		serviceID, detailType)
	if err != nil {
		return fmt.Errorf("failed to delete service details: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteAllDetailsTx(ctx context.Context, tx pgx.Tx, serviceID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM service_details WHERE service_id = $1`, serviceID); err != nil {
		return fmt.Errorf("failed to delete service details: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.ServiceListRow, int, error) {
	var where string
	args := []interface{}{}

	if search != "" {
		where = ` WHERE service_name LIKE $1`
		args = append(args, "%"+search+"%")
	}

	var builder strings.Builder
	builder.WriteString(`SELECT id, service_name FROM service`)
	builder.WriteString(where)
	builder.WriteString(fmt.Sprintf(" ORDER BY %s", orderBy))
	builder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []model.ServiceListRow
	for rows.Next() {
		var s model.ServiceListRow
		if err := rows.Scan(&s.ID, &s.ServiceName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating services: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM service` + where
	countArgs := []interface{}{}
	if search != "" {
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	return services, total, nil
}

func (r *postgresRepository) GetAllNames(ctx context.Context) ([]model.ServiceListRow, error) {
	var services []model.ServiceListRow
	if cached, err := r.cache.Get(ctx, serviceListKey, &services); err == nil && cached {
		return services, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, service_name FROM service ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query service names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s model.ServiceListRow
		if err := rows.Scan(&s.ID, &s.ServiceName); err != nil {
			return nil, fmt.Errorf("failed to scan service name: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service names: %w", err)
	}

	if len(services) > 0 {
		r.cache.Set(ctx, serviceListKey, services, serviceCacheTTL)
	}

	return services, nil
}

func (r *postgresRepository) GetView(ctx context.Context, id int64) (*model.ServiceView, error) {
	cacheKey := fmt.Sprintf("%s%d", serviceViewKeyPrefix, id)

	var view model.ServiceView
	if cached, err := r.cache.Get(ctx, cacheKey, &view); err == nil && cached {
		return &view, nil
	}

	err := r.pool.QueryRow(ctx,
		`SELECT id, service_name, service_description, created_at, updated_at FROM service WHERE id = $1`,
		id).Scan(&view.ID, &view.ServiceName, &view.ServiceDescription, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if view.Images, err = r.loadImages(ctx, id); err != nil {
		return nil, err
	}
	if view.SubServices, err = r.loadSubServices(ctx, id); err != nil {
		return nil, err
	}

	details, err := r.loadDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, d := range details {
		switch d.ServicesDetailsType {
		case model.DetailTypeApproach:
			view.Approach = append(view.Approach, d)
		case model.DetailTypeBenefits:
			view.Benefits = append(view.Benefits, d)
		case model.DetailTypeATC:
			view.ATC = append(view.ATC, d)
		case model.DetailTypeConsulting:
			view.Consulting = append(view.Consulting, d)
		}
	}

	r.cache.Set(ctx, cacheKey, view, serviceCacheTTL)

	return &view, nil
}

func (r *postgresRepository) InvalidateCache(ctx context.Context, id int64) {
	r.cache.Delete(ctx, fmt.Sprintf("%s%d", serviceViewKeyPrefix, id), serviceListKey)
}

func (r *postgresRepository) loadImages(ctx context.Context, serviceID int64) ([]model.ServiceImage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, overview_image, service_image, right_sidebar_image_1, right_sidebar_image_2, service_id
         FROM service_image WHERE service_id = $1 ORDER BY id ASC`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service images: %w", err)
	}
	defer rows.Close()

	var images []model.ServiceImage
	for rows.Next() {
		var img model.ServiceImage
		if err := rows.Scan(&img.ID, &img.OverviewImage, &img.ServiceImage,
			&img.RightSidebarImage1, &img.RightSidebarImage2, &img.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to scan service image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postgresRepository) loadSubServices(ctx context.Context, serviceID int64) ([]model.SubService, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, sub_service_title, sub_service_description, service_id
         FROM sub_service WHERE service_id = $1 ORDER BY id ASC`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub services: %w", err)
	}
	defer rows.Close()

	var subs []model.SubService
	for rows.Next() {
		var sub model.SubService
		if err := rows.Scan(&sub.ID, &sub.SubServiceTitle, &sub.SubServiceDescription, &sub.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to scan sub service: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *postgresRepository) loadDetails(ctx context.Context, serviceID int64) ([]model.ServiceDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, services_details_point, services_details_type, services_details_description, service_id
         FROM service_details WHERE service_id = $1 ORDER BY id ASC`, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service details: %w", err)
	}
	defer rows.Close()

	var details []model.ServiceDetail
	for rows.Next() {
		var d model.ServiceDetail
		if err := rows.Scan(&d.ID, &d.ServicesDetailsPoint, &d.ServicesDetailsType,
			&d.ServicesDetailsDescription, &d.ServiceID); err != nil {
			return nil, fmt.Errorf("failed to scan service detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
