package repository

import (
	"context"
	"errors"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBoatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBoatRepository(db *pgxpool.Pool) *PostgresBoatRepository {
	return &PostgresBoatRepository{
		db: db,
	}
}

func (p *PostgresBoatRepository) GetAll(ctx context.Context) ([]*domain.Boat, error) {
	query := `SELECT id, name, description, nominal_capacity, active, created_at, updated_at
		FROM boats
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boats := []*domain.Boat{}

	for rows.Next() {
		var boat domain.Boat

		err := rows.Scan(
			&boat.ID,
			&boat.Name,
			&boat.Description,
			&boat.NominalCapacity,
			&boat.Active,
			&boat.CreatedAt,
			&boat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		boats = append(boats, &boat)
	}

	return boats, rows.Err()
}

func (p *PostgresBoatRepository) GetById(ctx context.Context, id int) (*domain.Boat, error) {
	query := `SELECT id, name, description, nominal_capacity, active, created_at, updated_at
		FROM boats
		WHERE id = $1`

	var boat domain.Boat

	err := p.db.QueryRow(ctx, query, id).Scan(
		&boat.ID,
		&boat.Name,
		&boat.Description,
		&boat.NominalCapacity,
		&boat.Active,
		&boat.CreatedAt,
		&boat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &boat, nil
}

func (p *PostgresBoatRepository) Create(ctx context.Context, boat *domain.Boat) error {
	query := `INSERT INTO boats (name, description, nominal_capacity, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return p.db.QueryRow(ctx,
		query,
		boat.Name,
		boat.Description,
		boat.NominalCapacity,
		boat.Active).Scan(&boat.ID, &boat.CreatedAt, &boat.UpdatedAt)
}

func (p *PostgresBoatRepository) Update(ctx context.Context, boat *domain.Boat) error {
	query := `UPDATE boats
		SET name = $1, description = $2, nominal_capacity = $3, active = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at`

	err := p.db.QueryRow(ctx,
		query,
		boat.Name,
		boat.Description,
		boat.NominalCapacity,
		boat.Active,
		boat.ID).Scan(&boat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}
