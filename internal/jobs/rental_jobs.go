package jobs

import (
	"context"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/pricing"
)

// MarkOverdueRentals flips every ACTIVE rental whose end date has passed to
// OVERDUE. The rental stays open; the return flow still accepts it.
func (j *JobRunner) MarkOverdueRentals(ctx context.Context) error {
	today := pricing.FormatDate(j.clk.Now())

	query := `UPDATE rentals
	          SET status = $1, updated_on = $2
	          WHERE status = $3 AND end_date < $4
	          RETURNING id, customer_id`
	rows, err := j.db.QueryContext(ctx, query, domain.RentalStatusOverdue, time.Now(), domain.RentalStatusActive, today)
	if err != nil {
		return err
	}
	defer rows.Close()

	var marked int
	for rows.Next() {
		var rentalID, customerID int32
		if err := rows.Scan(&rentalID, &customerID); err != nil {
			return err
		}
		marked++

		_ = j.publisher.PublishOrderEvent(events.OrderEvent{
			Kind:       "rental",
			OrderID:    rentalID,
			CustomerID: customerID,
			OldState:   string(domain.RentalStatusActive),
			NewState:   string(domain.RentalStatusOverdue),
			OccurredAt: j.clk.Now(),
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.Info("Marked overdue rentals", "count", marked)
	return nil
}

// SendOverdueNotices emails every member holding an OVERDUE rental. Send
// failures are logged per rental and do not stop the batch.
func (j *JobRunner) SendOverdueNotices(ctx context.Context) error {
	query := `SELECT r.id, r.end_date, c.email, c.full_name
	          FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          WHERE r.status = $1 AND c.email <> ''`
	rows, err := j.db.QueryContext(ctx, query, domain.RentalStatusOverdue)
	if err != nil {
		return err
	}
	defer rows.Close()

	var sent int
	for rows.Next() {
		var rentalID int32
		var endDate, email, fullName string
		if err := rows.Scan(&rentalID, &endDate, &email, &fullName); err != nil {
			return err
		}

		if err := j.emailSvc.SendOverdueNotice(ctx, email, fullName, rentalID, endDate); err != nil {
			logger.Error("Failed to send overdue notice", "rental_id", rentalID, "error", err)
			continue
		}
		sent++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.Info("Sent overdue notices", "count", sent)
	return nil
}
