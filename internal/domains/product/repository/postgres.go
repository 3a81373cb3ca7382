package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuentista-backend/internal/domains/product/model"
	"cuentista-backend/pkg/cache"
)

// RepositoryInterface splits into Tx methods, which run on an explicit
// transaction handle owned by the service, and plain reads served from the
// pool with a cache in front.
type RepositoryInterface interface {
	ExistsByNameTx(ctx context.Context, tx pgx.Tx, name string) (bool, error)
	ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error)
	InsertProductTx(ctx context.Context, tx pgx.Tx, name, description, contactUs string) (int64, error)
	UpdateProductTx(ctx context.Context, tx pgx.Tx, id int64, name, description, contactUs string) error
	DeleteProductTx(ctx context.Context, tx pgx.Tx, id int64) error

	InsertImagesTx(ctx context.Context, tx pgx.Tx, productID int64, images []model.ImageInput) error
	InsertBenefitsTx(ctx context.Context, tx pgx.Tx, productID int64, benefits []model.BenefitInput) error
	InsertServiceLinesTx(ctx context.Context, tx pgx.Tx, productID int64, lines []model.ServiceLineInput) error
	InsertExpertiseTx(ctx context.Context, tx pgx.Tx, productID int64, expertise []model.ExpertiseInput) error
	InsertMethodologyTx(ctx context.Context, tx pgx.Tx, productID int64, methodology []model.MethodologyInput) error

	DeleteImagesTx(ctx context.Context, tx pgx.Tx, productID int64) error
	DeleteBenefitsTx(ctx context.Context, tx pgx.Tx, productID int64) error
	DeleteServiceLinesTx(ctx context.Context, tx pgx.Tx, productID int64) error
	DeleteExpertiseTx(ctx context.Context, tx pgx.Tx, productID int64) error
	DeleteMethodologyTx(ctx context.Context, tx pgx.Tx, productID int64) error

	List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.ProductListRow, int, error)
	GetAllNames(ctx context.Context) ([]model.ProductListRow, error)
	GetView(ctx context.Context, id int64) (*model.ProductView, error)
	InvalidateCache(ctx context.Context, id int64)
}

const (
	productViewKeyPrefix = "product:view:"
	productListKey       = "product:names"
	productCacheTTL      = 15 * time.Minute
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
		`SELECT EXISTS(SELECT 1 FROM product WHERE product_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsTx(ctx context.Context, tx pgx.Tx, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM product WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) InsertProductTx(ctx context.Context, tx pgx.Tx, name, description, contactUs string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO product (product_name, description, contact_us) VALUES ($1, $2, $3) RETURNING id`,
		name, description, contactUs).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) UpdateProductTx(ctx context.Context, tx pgx.Tx, id int64, name, description, contactUs string) error {
	_, err := tx.Exec(ctx,
		`UPDATE product SET product_name = $1, description = $2, contact_us = $3, updated_at = NOW() WHERE id = $4`,
		name, description, contactUs, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteProductTx(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *postgresRepository) InsertImagesTx(ctx context.Context, tx pgx.Tx, productID int64, images []model.ImageInput) error {
	for _, img := range images {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_image (overview_image, service_image, right_sidebar_image_1, right_sidebar_image_2, product_id)
             VALUES ($1, $2, $3, $4, $5)`,
			img.OverviewImage, img.ServiceImage, img.RightSidebarImage1, img.RightSidebarImage2, productID)
		if err != nil {
			return fmt.Errorf("failed to insert product image: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) InsertBenefitsTx(ctx context.Context, tx pgx.Tx, productID int64, benefits []model.BenefitInput) error {
	for _, b := range benefits {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_benefit (product_benefit, product_id) VALUES ($1, $2)`,
			b.ProductBenefit, productID)
		if err != nil {
			return fmt.Errorf("failed to insert product benefit: %w", err)
		}
	}
	return nil
}

// InsertServiceLinesTx inserts each service line then its detail rows, so a
// detail failure rolls back the whole aggregate with everything else.
func (r *postgresRepository) InsertServiceLinesTx(ctx context.Context, tx pgx.Tx, productID int64, lines []model.ServiceLineInput) error {
	for _, line := range lines {
		var lineID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO product_service (product_service_type, product_id) VALUES ($1, $2) RETURNING id`,
			line.ProductServiceType, productID).Scan(&lineID)
		if err != nil {
			return fmt.Errorf("failed to insert product service: %w", err)
		}

		for _, d := range line.Details {
			_, err := tx.Exec(ctx,
				`INSERT INTO product_service_details (product_service_detail, product_service_id) VALUES ($1, $2)`,
				d.ProductServiceDetail, lineID)
			if err != nil {
				return fmt.Errorf("failed to insert product service detail: %w", err)
			}
		}
	}
	return nil
}

func (r *postgresRepository) InsertExpertiseTx(ctx context.Context, tx pgx.Tx, productID int64, expertise []model.ExpertiseInput) error {
	for _, e := range expertise {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_expertise (expertise_area, expertise_description, product_id) VALUES ($1, $2, $3)`,
			e.ExpertiseArea, e.ExpertiseDescription, productID)
		if err != nil {
			return fmt.Errorf("failed to insert product expertise: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) InsertMethodologyTx(ctx context.Context, tx pgx.Tx, productID int64, methodology []model.MethodologyInput) error {
	for _, m := range methodology {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_methodology (methodology_description, product_id) VALUES ($1, $2)`,
			m.MethodologyDescription, productID)
		if err != nil {
			return fmt.Errorf("failed to insert product methodology: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) DeleteImagesTx(ctx context.Context, tx pgx.Tx, productID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_image WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product images: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteBenefitsTx(ctx context.Context, tx pgx.Tx, productID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_benefit WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product benefits: %w", err)
	}
	return nil
}

// DeleteServiceLinesTx removes detail rows before their service lines.
func (r *postgresRepository) DeleteServiceLinesTx(ctx context.Context, tx pgx.Tx, productID int64) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM product_service_details
         WHERE product_service_id IN (SELECT id FROM product_service WHERE product_id = $1)`,
		productID)
	if err != nil {
		return fmt.Errorf("failed to delete product service details: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_service WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product services: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteExpertiseTx(ctx context.Context, tx pgx.Tx, productID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_expertise WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product expertise: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteMethodologyTx(ctx context.Context, tx pgx.Tx, productID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_methodology WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete product methodology: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.ProductListRow, int, error) {
	var where string
	args := []interface{}{}

	if search != "" {
		where = ` WHERE product_name LIKE $1`
		args = append(args, "%"+search+"%")
	}

	var builder strings.Builder
	builder.WriteString(`SELECT id, product_name FROM product`)
	builder.WriteString(where)
	builder.WriteString(fmt.Sprintf(" ORDER BY %s", orderBy))
	builder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.ProductListRow
	for rows.Next() {
		var p model.ProductListRow
		if err := rows.Scan(&p.ID, &p.ProductName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM product` + where
	countArgs := []interface{}{}
	if search != "" {
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, total, nil
}

func (r *postgresRepository) GetAllNames(ctx context.Context) ([]model.ProductListRow, error) {
	var products []model.ProductListRow
	if cached, err := r.cache.Get(ctx, productListKey, &products); err == nil && cached {
		return products, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, product_name FROM product ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query product names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p model.ProductListRow
		if err := rows.Scan(&p.ID, &p.ProductName); err != nil {
			return nil, fmt.Errorf("failed to scan product name: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product names: %w", err)
	}

	if len(products) > 0 {
		r.cache.Set(ctx, productListKey, products, productCacheTTL)
	}

	return products, nil
}

func (r *postgresRepository) GetView(ctx context.Context, id int64) (*model.ProductView, error) {
	cacheKey := fmt.Sprintf("%s%d", productViewKeyPrefix, id)

	var view model.ProductView
	if cached, err := r.cache.Get(ctx, cacheKey, &view); err == nil && cached {
		return &view, nil
	}

	err := r.pool.QueryRow(ctx,
		`SELECT id, product_name, description, contact_us, created_at, updated_at FROM product WHERE id = $1`,
		id).Scan(&view.ID, &view.ProductName, &view.Description, &view.ContactUs, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if view.Images, err = r.loadImages(ctx, id); err != nil {
		return nil, err
	}
	if view.Benefits, err = r.loadBenefits(ctx, id); err != nil {
		return nil, err
	}
	if view.ServiceLines, err = r.loadServiceLines(ctx, id); err != nil {
		return nil, err
	}
	if view.Expertise, err = r.loadExpertise(ctx, id); err != nil {
		return nil, err
	}
	if view.Methodology, err = r.loadMethodology(ctx, id); err != nil {
		return nil, err
	}

	r.cache.Set(ctx, cacheKey, view, productCacheTTL)

	return &view, nil
}

func (r *postgresRepository) InvalidateCache(ctx context.Context, id int64) {
	r.cache.Delete(ctx, fmt.Sprintf("%s%d", productViewKeyPrefix, id), productListKey)
}

func (r *postgresRepository) loadImages(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, overview_image, service_image, right_sidebar_image_1, right_sidebar_image_2, product_id
         FROM product_image WHERE product_id = $1 ORDER BY id ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product images: %w", err)
	}
	defer rows.Close()

	var images []model.ProductImage
	for rows.Next() {
		var img model.ProductImage
		if err := rows.Scan(&img.ID, &img.OverviewImage, &img.ServiceImage,
			&img.RightSidebarImage1, &img.RightSidebarImage2, &img.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postgresRepository) loadBenefits(ctx context.Context, productID int64) ([]model.ProductBenefit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, product_benefit, product_id FROM product_benefit WHERE product_id = $1 ORDER BY id ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product benefits: %w", err)
	}
	defer rows.Close()

	var benefits []model.ProductBenefit
	for rows.Next() {
		var b model.ProductBenefit
		if err := rows.Scan(&b.ID, &b.ProductBenefit, &b.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan product benefit: %w", err)
		}
		benefits = append(benefits, b)
	}
	return benefits, rows.Err()
}

func (r *postgresRepository) loadServiceLines(ctx context.Context, productID int64) ([]model.ProductService, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, product_service_type, product_id FROM product_service WHERE product_id = $1 ORDER BY id ASC`,
		productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product services: %w", err)
	}
	defer rows.Close()

	var lines []model.ProductService
	for rows.Next() {
		var line model.ProductService
		if err := rows.Scan(&line.ID, &line.ProductServiceType, &line.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan product service: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lines {
		details, err := r.loadServiceDetails(ctx, lines[i].ID)
		if err != nil {
			return nil, err
		}
		lines[i].Details = details
	}

	return lines, nil
}

func (r *postgresRepository) loadServiceDetails(ctx context.Context, serviceLineID int64) ([]model.ProductServiceDetail, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, product_service_detail, product_service_id
         FROM product_service_details WHERE product_service_id = $1 ORDER BY id ASC`, serviceLineID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product service details: %w", err)
	}
	defer rows.Close()

	var details []model.ProductServiceDetail
	for rows.Next() {
		var d model.ProductServiceDetail
		if err := rows.Scan(&d.ID, &d.ProductServiceDetail, &d.ProductServiceID); err != nil {
			return nil, fmt.Errorf("failed to scan product service detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *postgresRepository) loadExpertise(ctx context.Context, productID int64) ([]model.ProductExpertise, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, expertise_area, expertise_description, product_id
         FROM product_expertise WHERE product_id = $1 ORDER BY id ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product expertise: %w", err)
	}
	defer rows.Close()

	var expertise []model.ProductExpertise
	for rows.Next() {
		var e model.ProductExpertise
		if err := rows.Scan(&e.ID, &e.ExpertiseArea, &e.ExpertiseDescription, &e.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan product expertise: %w", err)
		}
		expertise = append(expertise, e)
	}
	return expertise, rows.Err()
}

func (r *postgresRepository) loadMethodology(ctx context.Context, productID int64) ([]model.ProductMethodology, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, methodology_description, product_id
         FROM product_methodology WHERE product_id = $1 ORDER BY id ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product methodology: %w", err)
	}
	defer rows.Close()

	var methodology []model.ProductMethodology
	for rows.Next() {
		var m model.ProductMethodology
		if err := rows.Scan(&m.ID, &m.MethodologyDescription, &m.ProductID); err != nil {
			return nil, fmt.Errorf("failed to scan product methodology: %w", err)
		}
		methodology = append(methodology, m)
	}
	return methodology, rows.Err()
}
