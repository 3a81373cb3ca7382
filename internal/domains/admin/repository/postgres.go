package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cuentista-backend/internal/domains/admin/model"
)

type RepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error

	CreateOtp(ctx context.Context, otp *model.Otp) error
	GetOtpByEmailAndCode(ctx context.Context, email string, code int) (*model.Otp, error)
	DeleteOtp(ctx context.Context, id int64) error
	DeleteExpiredOtps(ctx context.Context, now time.Time) (int64, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password FROM users WHERE email = $1`, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password FROM users WHERE id = $1`, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) CreateOtp(ctx context.Context, otp *model.Otp) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO otp (otp, email, expiration_time) VALUES ($1, $2, $3) RETURNING id`,
		otp.Otp, otp.Email, otp.ExpirationTime).Scan(&otp.ID)
	if err != nil {
		return fmt.Errorf("failed to create otp: %w", err)
	}
	return nil
}

// GetOtpByEmailAndCode resolves the code with a single combined lookup so a
// wrong code and an unknown email are indistinguishable to the caller.
func (r *postgresRepository) GetOtpByEmailAndCode(ctx context.Context, email string, code int) (*model.Otp, error) {
	var o model.Otp
	err := r.pool.QueryRow(ctx,
		`SELECT id, otp, email, expiration_time FROM otp WHERE email = $1 AND otp = $2`,
		email, code).Scan(&o.ID, &o.Otp, &o.Email, &o.ExpirationTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOtpNotFound
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}
	return &o, nil
}

func (r *postgresRepository) DeleteOtp(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM otp WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}

// DeleteExpiredOtps removes rows whose expiration_time is before now.
// expiration_time is RFC3339 text, which compares correctly as a string
// only within one offset, so cast to timestamptz.
func (r *postgresRepository) DeleteExpiredOtps(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM otp WHERE expiration_time::timestamptz < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired otps: %w", err)
	}
	return tag.RowsAffected(), nil
}
