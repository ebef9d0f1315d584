package repository

import (
	"context"
	"errors"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMissionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMissionRepository(db *pgxpool.Pool) *PostgresMissionRepository {
	return &PostgresMissionRepository{
		db: db,
	}
}

func (p *PostgresMissionRepository) GetAll(ctx context.Context) ([]*domain.Mission, error) {
	query := `SELECT id, name, description, launch_time, created_at
		FROM missions
		ORDER BY launch_time NULLS LAST, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	missions := []*domain.Mission{}

	for rows.Next() {
		var mission domain.Mission

		err := rows.Scan(
			&mission.ID,
			&mission.Name,
			&mission.Description,
			&mission.LaunchTime,
			&mission.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		missions = append(missions, &mission)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missions, nil
}

func (p *PostgresMissionRepository) GetById(ctx context.Context, id int) (*domain.Mission, error) {
	query := `SELECT id, name, description, launch_time, created_at
		FROM missions
		WHERE id = $1`

	var mission domain.Mission

	err := p.db.QueryRow(ctx, query, id).Scan(
		&mission.ID,
		&mission.Name,
		&mission.Description,
		&mission.LaunchTime,
		&mission.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &mission, nil
}

func (p *PostgresMissionRepository) Create(ctx context.Context, mission *domain.Mission) error {
	query := `INSERT INTO missions (name, description, launch_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		mission.Name,
		mission.Description,
		mission.LaunchTime).Scan(&mission.ID, &mission.CreatedAt)
}
