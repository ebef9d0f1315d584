package repository

import (
	"context"
	"errors"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresAdminUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAdminUserRepository(db *pgxpool.Pool) *PostgresAdminUserRepository {
	return &PostgresAdminUserRepository{
		db: db,
	}
}

func (p *PostgresAdminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	query := `SELECT id, name, email, password_hash, active, created_at, version
		FROM admin_users
		WHERE email = $1`

	return p.scanAdminUser(p.db.QueryRow(ctx, query, email))
}

func (p *PostgresAdminUserRepository) GetById(ctx context.Context, id int) (*domain.AdminUser, error) {
	query := `SELECT id, name, email, password_hash, active, created_at, version
		FROM admin_users
		WHERE id = $1`

	return p.scanAdminUser(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresAdminUserRepository) scanAdminUser(row pgx.Row) (*domain.AdminUser, error) {
	var user domain.AdminUser

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password.Hash,
		&user.Active,
		&user.CreatedAt,
		&user.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (p *PostgresAdminUserRepository) Create(ctx context.Context, user *domain.AdminUser) error {
	query := `INSERT INTO admin_users (name, email, password_hash, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`

	err := p.db.QueryRow(ctx,
		query,
		user.Name,
		user.Email,
		user.Password.Hash,
		user.Active).Scan(&user.ID, &user.CreatedAt, &user.Version)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}
