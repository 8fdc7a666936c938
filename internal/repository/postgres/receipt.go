package postgres

import (
	"context"
	"database/sql"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

// insertReceipt writes a receipt inside the caller's order transaction so the
// order and its receipt commit or roll back together.
func insertReceipt(ctx context.Context, tx *sql.Tx, receipt *domain.Receipt, now time.Time) error {
	query := `INSERT INTO receipts (receipt_number, kind, order_id, customer_id, method, total_cents, tendered_cents, change_due_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return tx.QueryRowContext(ctx, query,
		receipt.ReceiptNumber, receipt.Kind, receipt.OrderID, receipt.CustomerID, receipt.Method,
		receipt.TotalCents, receipt.TenderedCents, receipt.ChangeDueCents, now,
	).Scan(&receipt.ID)
}

func (r *receiptRepository) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Receipt, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM receipts WHERE customer_id = $1`, customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, receipt_number, kind, order_id, customer_id, method, total_cents, tendered_cents, change_due_cents, created_on
	          FROM receipts WHERE customer_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var rc domain.Receipt
		if err := rows.Scan(&rc.ID, &rc.ReceiptNumber, &rc.Kind, &rc.OrderID, &rc.CustomerID, &rc.Method, &rc.TotalCents, &rc.TenderedCents, &rc.ChangeDueCents, &rc.CreatedOn); err != nil {
			return nil, 0, err
		}
		receipts = append(receipts, rc)
	}
	return receipts, count, rows.Err()
}
