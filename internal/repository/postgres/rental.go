package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental, receipt *domain.Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO rentals (customer_id, start_date, end_date, duration_days, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, idempotency_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rt.CustomerID, rt.StartDate, rt.EndDate, rt.DurationDays, rt.TotalCents, rt.Status,
		rt.PaymentMethod, rt.AmountTenderedCents, rt.ChangeDueCents, rt.IdempotencyKey, now, now,
	).Scan(&rt.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrIdempotencyConflict
		}
		return err
	}

	for i := range rt.Lines {
		line := &rt.Lines[i]
		line.RentalID = rt.ID

		// Guarded decrement keeps the stock invariant under concurrent orders.
		res, err := tx.ExecContext(ctx,
			`UPDATE equipment_items SET stock_quantity = stock_quantity - $1, updated_on = $2
			 WHERE id = $3 AND active = true AND stock_quantity >= $1`,
			line.Quantity, now, line.ItemID,
		)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrInsufficientStock
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO rental_lines (rental_id, item_id, quantity, unit_price_cents, subtotal_cents, returned)
			 VALUES ($1, $2, $3, $4, $5, false) RETURNING id`,
			rt.ID, line.ItemID, line.Quantity, line.UnitPriceCents, line.SubtotalCents,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}

	receipt.OrderID = rt.ID
	if err := insertReceipt(ctx, tx, receipt, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, customer_id, start_date, end_date, duration_days, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, mora_cents, total_with_mora_cents, created_on, updated_on
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.DurationDays, &rt.TotalCents, &rt.Status,
		&rt.PaymentMethod, &rt.AmountTenderedCents, &rt.ChangeDueCents, &rt.MoraCents, &rt.TotalWithMoraCents,
		&rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.loadLines(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Lines = lines
	return rt, nil
}

func (r *rentalRepository) loadLines(ctx context.Context, rentalID int32) ([]domain.RentalLine, error) {
	query := `SELECT l.id, l.rental_id, l.item_id, e.name, l.quantity, l.unit_price_cents, l.subtotal_cents, l.returned
	          FROM rental_lines l JOIN equipment_items e ON e.id = l.item_id
	          WHERE l.rental_id = $1 ORDER BY l.id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RentalLine
	for rows.Next() {
		var line domain.RentalLine
		if err := rows.Scan(&line.ID, &line.RentalID, &line.ItemID, &line.ItemName, &line.Quantity, &line.UnitPriceCents, &line.SubtotalCents, &line.Returned); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, mora_cents=$2, total_with_mora_cents=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.MoraCents, rt.TotalWithMoraCents, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) RegisterReturn(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `UPDATE rental_lines SET returned = true WHERE rental_id = $1`, rt.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE rentals SET status = $1, updated_on = $2 WHERE id = $3`, domain.RentalStatusFinished, now, rt.ID); err != nil {
		return err
	}
	for i := range rt.Lines {
		line := &rt.Lines[i]
		if _, err := tx.ExecContext(ctx,
			`UPDATE equipment_items SET stock_quantity = stock_quantity + $1, updated_on = $2 WHERE id = $3`,
			line.Quantity, now, line.ItemID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *rentalRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, start_date, end_date, duration_days, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, mora_cents, total_with_mora_cents, created_on, updated_on
	          FROM rentals WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.CustomerID, &rt.StartDate, &rt.EndDate, &rt.DurationDays, &rt.TotalCents, &rt.Status,
			&rt.PaymentMethod, &rt.AmountTenderedCents, &rt.ChangeDueCents, &rt.MoraCents, &rt.TotalWithMoraCents,
			&rt.CreatedOn, &rt.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}
