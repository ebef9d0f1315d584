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

type PostgresMerchandiseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMerchandiseRepository(db *pgxpool.Pool) *PostgresMerchandiseRepository {
	return &PostgresMerchandiseRepository{
		db: db,
	}
}

func (p *PostgresMerchandiseRepository) GetByTripId(ctx context.Context, tripID int) ([]*domain.TripMerchandise, error) {
	query := `SELECT id, trip_id, name, description, price, quantity_available, created_at, updated_at
		FROM trip_merchandise
		WHERE trip_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merchandise := []*domain.TripMerchandise{}

	for rows.Next() {
		var merch domain.TripMerchandise

		err := rows.Scan(
			&merch.ID,
			&merch.TripID,
			&merch.Name,
			&merch.Description,
			&merch.Price,
			&merch.QuantityAvailable,
			&merch.CreatedAt,
			&merch.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		merchandise = append(merchandise, &merch)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, merch := range merchandise {
		merch.Variants, err = p.retrieveVariants(ctx, merch.ID)
		if err != nil {
			return nil, err
		}
	}

	return merchandise, nil
}

func (p *PostgresMerchandiseRepository) GetById(ctx context.Context, id int) (*domain.TripMerchandise, error) {
	query := `SELECT id, trip_id, name, description, price, quantity_available, created_at, updated_at
		FROM trip_merchandise
		WHERE id = $1`

	var merch domain.TripMerchandise

	err := p.db.QueryRow(ctx, query, id).Scan(
		&merch.ID,
		&merch.TripID,
		&merch.Name,
		&merch.Description,
		&merch.Price,
		&merch.QuantityAvailable,
		&merch.CreatedAt,
		&merch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	merch.Variants, err = p.retrieveVariants(ctx, merch.ID)
	if err != nil {
		return nil, err
	}

	return &merch, nil
}

func (p *PostgresMerchandiseRepository) retrieveVariants(ctx context.Context, merchID int) ([]domain.MerchandiseVariant, error) {
	query := `SELECT option_name, quantity_available
		FROM merchandise_variants
		WHERE trip_merchandise_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, merchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := []domain.MerchandiseVariant{}

	for rows.Next() {
		var variant domain.MerchandiseVariant

		err := rows.Scan(&variant.Option, &variant.QuantityAvailable)
		if err != nil {
			return nil, err
		}

		variants = append(variants, variant)
	}

	return variants, rows.Err()
}

func (p *PostgresMerchandiseRepository) Create(ctx context.Context, merch *domain.TripMerchandise) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO trip_merchandise (trip_id, name, description, price, quantity_available)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`

		err := tx.QueryRow(ctx,
			query,
			merch.TripID,
			merch.Name,
			merch.Description,
			merch.Price,
			merch.QuantityAvailable).Scan(&merch.ID, &merch.CreatedAt, &merch.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ErrRecordNotFound
			}

			return err
		}

		for _, variant := range merch.Variants {
			_, err = tx.Exec(ctx,
				`INSERT INTO merchandise_variants (trip_merchandise_id, option_name, quantity_available)
				VALUES ($1, $2, $3)`,
				merch.ID, variant.Option, variant.QuantityAvailable)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (p *PostgresMerchandiseRepository) Update(ctx context.Context, merch *domain.TripMerchandise) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE trip_merchandise
			SET name = $1, description = $2, price = $3, quantity_available = $4, updated_at = now()
			WHERE id = $5
			RETURNING updated_at`

		err := tx.QueryRow(ctx,
			query,
			merch.Name,
			merch.Description,
			merch.Price,
			merch.QuantityAvailable,
			merch.ID).Scan(&merch.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM merchandise_variants WHERE trip_merchandise_id = $1`, merch.ID)
		if err != nil {
			return err
		}

		for _, variant := range merch.Variants {
			_, err = tx.Exec(ctx,
				`INSERT INTO merchandise_variants (trip_merchandise_id, option_name, quantity_available)
				VALUES ($1, $2, $3)`,
				merch.ID, variant.Option, variant.QuantityAvailable)
			if err != nil {
				return err
			}
		}

		return nil
	})
}
