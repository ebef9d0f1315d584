package repository

import (
	"context"
	"errors"
	"time"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO bookings (confirmation_code, wizard_session_id, customer_name,
				customer_email, customer_phone, status, payment_status, subtotal,
				discount_amount, tax_amount, tip_amount, total_amount, discount_code_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id, version, created_at, updated_at`

		err := tx.QueryRow(ctx,
			query,
			booking.ConfirmationCode,
			booking.WizardSessionID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Status,
			booking.PaymentStatus,
			booking.Subtotal,
			booking.DiscountAmount,
			booking.TaxAmount,
			booking.TipAmount,
			booking.TotalAmount,
			booking.DiscountCodeID).Scan(&booking.ID, &booking.Version, &booking.CreatedAt, &booking.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrEditConflict
			}

			return err
		}

		rows := make([][]any, len(booking.Items))
		for i, item := range booking.Items {
			var ticketType *string
			if item.TicketType != "" {
				tt := item.TicketType
				ticketType = &tt
			}

			rows[i] = []any{
				booking.ID,
				item.TripID,
				item.BoatID,
				string(item.ItemType),
				ticketType,
				item.TripMerchandiseID,
				item.VariantOption,
				item.Quantity,
				item.PricePerUnit,
				string(item.Status),
			}
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booking_items"},
			[]string{"booking_id", "trip_id", "boat_id", "item_type", "ticket_type",
				"trip_merchandise_id", "variant_option", "quantity", "price_per_unit", "status"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

const bookingColumns = `id, confirmation_code, wizard_session_id, customer_name, customer_email,
	customer_phone, status, payment_status, subtotal, discount_amount, tax_amount,
	tip_amount, total_amount, refunded_adjustment, discount_code_id, payment_intent_id,
	version, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.ConfirmationCode,
		&booking.WizardSessionID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.Subtotal,
		&booking.DiscountAmount,
		&booking.TaxAmount,
		&booking.TipAmount,
		&booking.TotalAmount,
		&booking.RefundedAdjustment,
		&booking.DiscountCodeID,
		&booking.PaymentIntentID,
		&booking.Version,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	return p.retrieveBooking(ctx, query, id)
}

func (p *PostgresBookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE confirmation_code = $1`

	return p.retrieveBooking(ctx, query, code)
}

func (p *PostgresBookingRepository) GetByWizardSessionId(ctx context.Context, wizardSessionID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE wizard_session_id = $1`

	return p.retrieveBooking(ctx, query, wizardSessionID)
}

func (p *PostgresBookingRepository) retrieveBooking(ctx context.Context, query string, arg any) (*domain.Booking, error) {
	booking, err := scanBooking(p.db.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, err
	}

	booking.Items, err = p.retrieveItems(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (p *PostgresBookingRepository) retrieveItems(ctx context.Context, bookingID int) ([]domain.BookingItem, error) {
	query := `SELECT id, booking_id, trip_id, boat_id, item_type, ticket_type,
			trip_merchandise_id, variant_option, quantity, price_per_unit, status,
			refund_reason, refund_notes
		FROM booking_items
		WHERE booking_id = $1
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.BookingItem{}

	for rows.Next() {
		var item domain.BookingItem
		var ticketType *string

		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.TripID,
			&item.BoatID,
			&item.ItemType,
			&ticketType,
			&item.TripMerchandiseID,
			&item.VariantOption,
			&item.Quantity,
			&item.PricePerUnit,
			&item.Status,
			&item.RefundReason,
			&item.RefundNotes,
		)
		if err != nil {
			return nil, err
		}

		if ticketType != nil {
			item.TicketType = *ticketType
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, *domain.Metadata, error) {
	query := `SELECT count(*) OVER(), ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR confirmation_code = $1)
			AND ($2 = '' OR customer_email = $2)
			AND ($3 = 0 OR id IN (SELECT booking_id FROM booking_items WHERE trip_id = $3))
		ORDER BY id DESC
		LIMIT $4 OFFSET $5`

	rows, err := p.db.Query(ctx, query,
		filters.ConfirmationCode,
		filters.CustomerEmail,
		filters.TripID,
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	bookings := []*domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.ConfirmationCode,
			&booking.WizardSessionID,
			&booking.CustomerName,
			&booking.CustomerEmail,
			&booking.CustomerPhone,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.Subtotal,
			&booking.DiscountAmount,
			&booking.TaxAmount,
			&booking.TipAmount,
			&booking.TotalAmount,
			&booking.RefundedAdjustment,
			&booking.DiscountCodeID,
			&booking.PaymentIntentID,
			&booking.Version,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	for _, booking := range bookings {
		booking.Items, err = p.retrieveItems(ctx, booking.ID)
		if err != nil {
			return nil, nil, err
		}
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return bookings, metadata, nil
}

// UpdateItems applies quantity changes and the re-derived pricing in one
// transaction. Zero quantities delete the item row. The booking version
// guards against concurrent edits.
func (p *PostgresBookingRepository) UpdateItems(ctx context.Context, booking *domain.Booking, updates []domain.BookingItemQuantityUpdate, pricing domain.PricingBreakdown) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE bookings
			SET subtotal = $1, discount_amount = $2, tax_amount = $3, tip_amount = $4,
				total_amount = $5, updated_at = now(), version = version + 1
			WHERE id = $6 AND version = $7
			RETURNING version`

		err := tx.QueryRow(ctx,
			query,
			pricing.Subtotal,
			pricing.DiscountAmount,
			pricing.TaxAmount,
			pricing.TipAmount,
			pricing.TotalAmount,
			booking.ID,
			booking.Version).Scan(&booking.Version)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEditConflict
			}

			return err
		}

		for _, update := range updates {
			if update.Quantity == 0 {
				_, err = tx.Exec(ctx,
					`DELETE FROM booking_items WHERE id = $1 AND booking_id = $2`,
					update.ItemID, booking.ID)
			} else {
				_, err = tx.Exec(ctx,
					`UPDATE booking_items SET quantity = $1 WHERE id = $2 AND booking_id = $3`,
					update.Quantity, update.ItemID, booking.ID)
			}

			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (p *PostgresBookingRepository) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus, version int) error {
	query := `UPDATE bookings
		SET status = $1, updated_at = now(), version = version + 1
		WHERE id = $2 AND version = $3`

	result, err := p.db.Exec(ctx, query, status, id, version)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrEditConflict
	}

	return nil
}

func (p *PostgresBookingRepository) UpdatePaymentStatus(ctx context.Context, id int, status domain.PaymentStatus) error {
	query := `UPDATE bookings SET payment_status = $1, updated_at = now() WHERE id = $2`

	result, err := p.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresBookingRepository) SetPaymentIntent(ctx context.Context, id int, paymentIntentID string) error {
	query := `UPDATE bookings SET payment_intent_id = $1, updated_at = now() WHERE id = $2`

	result, err := p.db.Exec(ctx, query, paymentIntentID, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresBookingRepository) ApplyRefund(ctx context.Context, booking *domain.Booking, itemIDs []int, adjustment int64, reason, notes string, paymentStatus domain.PaymentStatus) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE bookings
			SET payment_status = $1, refunded_adjustment = refunded_adjustment + $2,
				updated_at = now(), version = version + 1
			WHERE id = $3 AND version = $4
			RETURNING version`

		err := tx.QueryRow(ctx, query, paymentStatus, adjustment, booking.ID, booking.Version).Scan(&booking.Version)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEditConflict
			}

			return err
		}

		if len(itemIDs) == 0 {
			return nil
		}

		result, err := tx.Exec(ctx,
			`UPDATE booking_items
			SET status = $1, refund_reason = $2, refund_notes = $3
			WHERE booking_id = $4 AND id = ANY($5) AND status = $6`,
			domain.ItemStatusRefunded, reason, notes, booking.ID, itemIDs, domain.ItemStatusActive)
		if err != nil {
			return err
		}

		if result.RowsAffected() != int64(len(itemIDs)) {
			return domain.ErrEditConflict
		}

		return nil
	})
}

func (p *PostgresBookingRepository) GetTripStats(ctx context.Context, from, to time.Time) ([]domain.TripStats, error) {
	// Revenue and refunds aggregate per booking, tickets per item, so the
	// per-booking sums live in a subquery to avoid double counting bookings
	// that span multiple item rows.
	query := `SELECT t.id, t.name, t.departure_time,
			COUNT(agg.booking_id),
			COALESCE(SUM(agg.tickets), 0),
			COALESCE(SUM(agg.total_amount), 0),
			COALESCE(SUM(agg.refunded), 0)
		FROM trips t
		JOIN (
			SELECT bi.trip_id, bk.id AS booking_id, bk.total_amount,
				bk.refunded_adjustment
					+ COALESCE(SUM(bi.quantity * bi.price_per_unit) FILTER (WHERE bi.status = 'refunded'), 0) AS refunded,
				COALESCE(SUM(bi.quantity) FILTER (WHERE bi.item_type = 'ticket' AND bi.status = 'active'), 0) AS tickets
			FROM bookings bk
			JOIN booking_items bi ON bi.booking_id = bk.id
			WHERE bk.status <> 'cancelled'
			GROUP BY bi.trip_id, bk.id
		) agg ON agg.trip_id = t.id
		WHERE t.departure_time BETWEEN $1 AND $2
		GROUP BY t.id, t.name, t.departure_time
		ORDER BY t.departure_time`

	rows, err := p.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.TripStats{}

	for rows.Next() {
		var s domain.TripStats

		err := rows.Scan(
			&s.TripID,
			&s.TripName,
			&s.DepartureTime,
			&s.Bookings,
			&s.TicketsSold,
			&s.Revenue,
			&s.RefundedAmount,
		)
		if err != nil {
			return nil, err
		}

		stats = append(stats, s)
	}

	return stats, rows.Err()
}
