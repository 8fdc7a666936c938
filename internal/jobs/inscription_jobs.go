package jobs

import (
	"context"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/pricing"
)

// ExpireInscriptions closes every ACTIVE inscription whose end date has
// passed. SUSPENDED inscriptions are left alone; resuming one past its end
// date is a front-desk decision, not a batch one.
func (j *JobRunner) ExpireInscriptions(ctx context.Context) error {
	today := pricing.FormatDate(j.clk.Now())

	query := `UPDATE inscriptions
	          SET status = $1, updated_on = $2
	          WHERE status = $3 AND end_date < $4
	          RETURNING id, customer_id`
	rows, err := j.db.QueryContext(ctx, query, domain.InscriptionStatusExpired, time.Now(), domain.InscriptionStatusActive, today)
	if err != nil {
		return err
	}
	defer rows.Close()

	var expired int
	for rows.Next() {
		var inscriptionID, customerID int32
		if err := rows.Scan(&inscriptionID, &customerID); err != nil {
			return err
		}
		expired++

		_ = j.publisher.PublishOrderEvent(events.OrderEvent{
			Kind:       "inscription",
			OrderID:    inscriptionID,
			CustomerID: customerID,
			OldState:   string(domain.InscriptionStatusActive),
			NewState:   string(domain.InscriptionStatusExpired),
			OccurredAt: j.clk.Now(),
		})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.Info("Expired inscriptions", "count", expired)
	return nil
}
