package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresDiscountCodeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDiscountCodeRepository(db *pgxpool.Pool) *PostgresDiscountCodeRepository {
	return &PostgresDiscountCodeRepository{
		db: db,
	}
}

const discountCodeColumns = `id, code, discount_type, discount_value, max_discount_amount, active, expires_at, created_at`

func (p *PostgresDiscountCodeRepository) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	query := fmt.Sprintf(`SELECT %s FROM discount_codes WHERE code = $1`, discountCodeColumns)

	return p.scanDiscountCode(p.db.QueryRow(ctx, query, code))
}

func (p *PostgresDiscountCodeRepository) GetById(ctx context.Context, id int) (*domain.DiscountCode, error) {
	query := fmt.Sprintf(`SELECT %s FROM discount_codes WHERE id = $1`, discountCodeColumns)

	return p.scanDiscountCode(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresDiscountCodeRepository) scanDiscountCode(row pgx.Row) (*domain.DiscountCode, error) {
	var code domain.DiscountCode

	err := row.Scan(
		&code.ID,
		&code.Code,
		&code.Type,
		&code.Value,
		&code.MaxDiscountAmount,
		&code.Active,
		&code.ExpiresAt,
		&code.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &code, nil
}

func (p *PostgresDiscountCodeRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.DiscountCode, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), %s
		FROM discount_codes
		ORDER BY %s %s
		LIMIT $1 OFFSET $2`, discountCodeColumns, pagination.SortColumn(), pagination.SortDirection())

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	codes := []*domain.DiscountCode{}

	for rows.Next() {
		var code domain.DiscountCode

		err := rows.Scan(
			&totalRecords,
			&code.ID,
			&code.Code,
			&code.Type,
			&code.Value,
			&code.MaxDiscountAmount,
			&code.Active,
			&code.ExpiresAt,
			&code.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		codes = append(codes, &code)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return codes, metadata, nil
}

func (p *PostgresDiscountCodeRepository) Create(ctx context.Context, code *domain.DiscountCode) error {
	query := `INSERT INTO discount_codes (code, discount_type, discount_value, max_discount_amount, active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		code.Code,
		code.Type,
		code.Value,
		code.MaxDiscountAmount,
		code.Active,
		code.ExpiresAt).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

func (p *PostgresDiscountCodeRepository) SetActive(ctx context.Context, id int, active bool) error {
	query := `UPDATE discount_codes SET active = $1 WHERE id = $2`

	result, err := p.db.Exec(ctx, query, active, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
