package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuentista-backend/internal/domains/inquiry/model"
)

type RepositoryInterface interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, inq *model.Inquiry) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.InquiryView, error)
	ResolvePending(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.Inquiry, int, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM inquiry WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check inquiry email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, inq *model.Inquiry) (int64, error) {
	query := `
        INSERT INTO inquiry (first_name, last_name, email, message, phone_number, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query,
		inq.FirstName,
		inq.LastName,
		inq.Email,
		inq.Message,
		inq.PhoneNumber,
		model.StatusPending,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return id, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.InquiryView, error) {
	query := `
        SELECT id, first_name, last_name, email, message, phone_number
        FROM inquiry
        WHERE id = $1
    `

	var v model.InquiryView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.FirstName,
		&v.LastName,
		&v.Email,
		&v.Message,
		&v.PhoneNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &v, nil
}

// ResolvePending flips a Pending inquiry to Resolve. Returns false when no
// row matched, which covers both a missing id and an already resolved row.
func (r *postgresRepository) ResolvePending(ctx context.Context, id int64) (bool, error) {
	query := `
        UPDATE inquiry
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3
    `

	tag, err := r.pool.Exec(ctx, query, model.StatusResolve, id, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) List(ctx context.Context, search, orderBy string, limit, offset int) ([]model.Inquiry, int, error) {
	var where string
	args := []interface{}{}

	if search != "" {
		where = ` WHERE first_name LIKE $1 OR last_name LIKE $1 OR email LIKE $1 OR message LIKE $1`
		args = append(args, "%"+search+"%")
	}

	var builder strings.Builder
	builder.WriteString(`
        SELECT id, first_name, last_name, email, message, phone_number, status, created_at, updated_at
        FROM inquiry`)
	builder.WriteString(where)
	builder.WriteString(fmt.Sprintf(" ORDER BY %s", orderBy))
	builder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []model.Inquiry
	for rows.Next() {
		var inq model.Inquiry
		if err := rows.Scan(
			&inq.ID,
			&inq.FirstName,
			&inq.LastName,
			&inq.Email,
			&inq.Message,
			&inq.PhoneNumber,
			&inq.Status,
			&inq.CreatedAt,
			&inq.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating inquiries: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM inquiry` + where
	countArgs := []interface{}{}
	if search != "" {
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	return inquiries, total, nil
}
