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

type PostgresTripRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTripRepository(db *pgxpool.Pool) *PostgresTripRepository {
	return &PostgresTripRepository{
		db: db,
	}
}

func (p *PostgresTripRepository) GetAll(ctx context.Context, missionID int, pagination domain.Pagination) ([]*domain.Trip, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), t.id, t.mission_id, m.name, t.name,
			t.departure_time, t.return_time, t.tax_rate_percent, t.status,
			t.created_at, t.updated_at, t.version
		FROM trips t
		JOIN missions m ON m.id = t.mission_id
		WHERE ($1 = 0 OR t.mission_id = $1)
		ORDER BY t.%s %s
		LIMIT $2 OFFSET $3`, pagination.SortColumn(), pagination.SortDirection())

	rows, err := p.db.Query(ctx, query, missionID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	trips := []*domain.Trip{}

	for rows.Next() {
		var trip domain.Trip

		err := rows.Scan(
			&totalRecords,
			&trip.ID,
			&trip.MissionID,
			&trip.MissionName,
			&trip.Name,
			&trip.DepartureTime,
			&trip.ReturnTime,
			&trip.TaxRatePercent,
			&trip.Status,
			&trip.CreatedAt,
			&trip.UpdatedAt,
			&trip.Version,
		)
		if err != nil {
			return nil, nil, err
		}

		trips = append(trips, &trip)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return trips, metadata, nil
}

func (p *PostgresTripRepository) GetById(ctx context.Context, id int) (*domain.Trip, error) {
	query := `SELECT t.id, t.mission_id, m.name, t.name, t.departure_time, t.return_time,
			t.tax_rate_percent, t.status, t.created_at, t.updated_at, t.version
		FROM trips t
		JOIN missions m ON m.id = t.mission_id
		WHERE t.id = $1`

	var trip domain.Trip

	err := p.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.MissionID,
		&trip.MissionName,
		&trip.Name,
		&trip.DepartureTime,
		&trip.ReturnTime,
		&trip.TaxRatePercent,
		&trip.Status,
		&trip.CreatedAt,
		&trip.UpdatedAt,
		&trip.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &trip, nil
}

func (p *PostgresTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `INSERT INTO trips (mission_id, name, departure_time, return_time, tax_rate_percent, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, version`

	return p.db.QueryRow(ctx,
		query,
		trip.MissionID,
		trip.Name,
		trip.DepartureTime,
		trip.ReturnTime,
		trip.TaxRatePercent,
		trip.Status).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt, &trip.Version)
}

func (p *PostgresTripRepository) Update(ctx context.Context, trip *domain.Trip) error {
	query := `UPDATE trips
		SET name = $1, departure_time = $2, return_time = $3, tax_rate_percent = $4,
			status = $5, updated_at = now(), version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version, updated_at`

	err := p.db.QueryRow(ctx,
		query,
		trip.Name,
		trip.DepartureTime,
		trip.ReturnTime,
		trip.TaxRatePercent,
		trip.Status,
		trip.ID,
		trip.Version).Scan(&trip.Version, &trip.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		return err
	}

	return nil
}

func (p *PostgresTripRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM trips WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

const boatAvailabilityQuery = `
	SELECT tb.id, tb.trip_id, tb.boat_id, b.name, tb.max_capacity,
		tb.max_capacity - COALESCE(sold.total, 0)
	FROM trip_boats tb
	JOIN boats b ON b.id = tb.boat_id
	LEFT JOIN (
		SELECT bi.trip_id, bi.boat_id, SUM(bi.quantity) AS total
		FROM booking_items bi
		JOIN bookings bk ON bk.id = bi.booking_id
		WHERE bi.item_type = 'ticket' AND bi.status = 'active' AND bk.status <> 'cancelled'
		GROUP BY bi.trip_id, bi.boat_id
	) sold ON sold.trip_id = tb.trip_id AND sold.boat_id = tb.boat_id
	WHERE tb.trip_id = $1`

func (p *PostgresTripRepository) GetBoatAvailability(ctx context.Context, tripID int) ([]*domain.TripBoatAvailability, error) {
	query := boatAvailabilityQuery + ` ORDER BY tb.id`

	rows, err := p.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boats := []*domain.TripBoatAvailability{}

	for rows.Next() {
		var boat domain.TripBoatAvailability

		err := rows.Scan(
			&boat.ID,
			&boat.TripID,
			&boat.BoatID,
			&boat.BoatName,
			&boat.MaxCapacity,
			&boat.RemainingCapacity,
		)
		if err != nil {
			return nil, err
		}

		boats = append(boats, &boat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, boat := range boats {
		boat.Pricing, err = p.retrieveEffectivePricing(ctx, boat.ID)
		if err != nil {
			return nil, err
		}
	}

	return boats, nil
}

func (p *PostgresTripRepository) GetBoatAvailabilityForBoat(ctx context.Context, tripID, boatID int) (*domain.TripBoatAvailability, error) {
	query := boatAvailabilityQuery + ` AND tb.boat_id = $2`

	var boat domain.TripBoatAvailability

	err := p.db.QueryRow(ctx, query, tripID, boatID).Scan(
		&boat.ID,
		&boat.TripID,
		&boat.BoatID,
		&boat.BoatName,
		&boat.MaxCapacity,
		&boat.RemainingCapacity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	boat.Pricing, err = p.retrieveEffectivePricing(ctx, boat.ID)
	if err != nil {
		return nil, err
	}

	return &boat, nil
}

// retrieveEffectivePricing loads per ticket-type prices with remaining
// inventory net of sold tickets.
func (p *PostgresTripRepository) retrieveEffectivePricing(ctx context.Context, tripBoatID int) ([]domain.EffectivePricingItem, error) {
	query := `SELECT tbp.ticket_type, tbp.price, tbp.inventory - COALESCE(sold.qty, 0)
		FROM trip_boat_pricing tbp
		JOIN trip_boats tb ON tb.id = tbp.trip_boat_id
		LEFT JOIN (
			SELECT bi.trip_id, bi.boat_id, bi.ticket_type, SUM(bi.quantity) AS qty
			FROM booking_items bi
			JOIN bookings bk ON bk.id = bi.booking_id
			WHERE bi.item_type = 'ticket' AND bi.status = 'active' AND bk.status <> 'cancelled'
			GROUP BY bi.trip_id, bi.boat_id, bi.ticket_type
		) sold ON sold.trip_id = tb.trip_id AND sold.boat_id = tb.boat_id AND sold.ticket_type = tbp.ticket_type
		WHERE tbp.trip_boat_id = $1
		ORDER BY tbp.id`

	rows, err := p.db.Query(ctx, query, tripBoatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pricing := []domain.EffectivePricingItem{}

	for rows.Next() {
		var item domain.EffectivePricingItem

		err := rows.Scan(&item.TicketType, &item.Price, &item.Remaining)
		if err != nil {
			return nil, err
		}

		if item.Remaining < 0 {
			item.Remaining = 0
		}

		pricing = append(pricing, item)
	}

	return pricing, rows.Err()
}

// AssignBoat upserts a boat assignment and replaces its pricing table.
func (p *PostgresTripRepository) AssignBoat(ctx context.Context, tripBoat *domain.TripBoat, pricing []domain.EffectivePricingItem) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO trip_boats (trip_id, boat_id, max_capacity)
			VALUES ($1, $2, $3)
			ON CONFLICT (trip_id, boat_id) DO UPDATE SET max_capacity = EXCLUDED.max_capacity
			RETURNING id`

		err := tx.QueryRow(ctx, query, tripBoat.TripID, tripBoat.BoatID, tripBoat.MaxCapacity).Scan(&tripBoat.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ErrRecordNotFound
			}

			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM trip_boat_pricing WHERE trip_boat_id = $1`, tripBoat.ID)
		if err != nil {
			return err
		}

		for _, item := range pricing {
			_, err = tx.Exec(ctx,
				`INSERT INTO trip_boat_pricing (trip_boat_id, ticket_type, price, inventory)
				VALUES ($1, $2, $3, $4)`,
				tripBoat.ID, item.TicketType, item.Price, item.Remaining)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
