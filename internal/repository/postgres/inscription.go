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

type inscriptionRepository struct {
	db *sql.DB
}

func NewInscriptionRepository(db *sql.DB) repository.InscriptionRepository {
	return &inscriptionRepository{db: db}
}

func (r *inscriptionRepository) Create(ctx context.Context, ins *domain.Inscription, receipt *domain.Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO inscriptions (customer_id, plan_id, instructor_id, slot_id, start_date, end_date, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, idempotency_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	err = tx.QueryRowContext(ctx, query,
		ins.CustomerID, ins.PlanID, ins.InstructorID, ins.SlotID, ins.StartDate, ins.EndDate,
		ins.TotalCents, ins.Status, ins.PaymentMethod, ins.AmountTenderedCents, ins.ChangeDueCents,
		ins.IdempotencyKey, now, now,
	).Scan(&ins.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrIdempotencyConflict
		}
		return err
	}

	receipt.OrderID = ins.ID
	if err := insertReceipt(ctx, tx, receipt, now); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *inscriptionRepository) CountActiveByInstructor(ctx context.Context, instructorID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM inscriptions WHERE instructor_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, instructorID, domain.InscriptionStatusActive).Scan(&count)
	return count, err
}

func (r *inscriptionRepository) GetByID(ctx context.Context, id int32) (*domain.Inscription, error) {
	ins := &domain.Inscription{}
	query := `SELECT id, customer_id, plan_id, instructor_id, slot_id, start_date, end_date, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, created_on, updated_on
	          FROM inscriptions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ins.ID, &ins.CustomerID, &ins.PlanID, &ins.InstructorID, &ins.SlotID, &ins.StartDate, &ins.EndDate,
		&ins.TotalCents, &ins.Status, &ins.PaymentMethod, &ins.AmountTenderedCents, &ins.ChangeDueCents,
		&ins.CreatedOn, &ins.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *inscriptionRepository) UpdateStatus(ctx context.Context, ins *domain.Inscription) error {
	query := `UPDATE inscriptions SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, ins.Status, time.Now(), ins.ID)
	return err
}

func (r *inscriptionRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Inscription, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, plan_id, instructor_id, slot_id, start_date, end_date, total_cents, status, payment_method, amount_tendered_cents, change_due_cents, created_on, updated_on
	          FROM inscriptions WHERE 1=1`

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

	var inscriptions []domain.Inscription
	for rows.Next() {
		var ins domain.Inscription
		if err := rows.Scan(
			&ins.ID, &ins.CustomerID, &ins.PlanID, &ins.InstructorID, &ins.SlotID, &ins.StartDate, &ins.EndDate,
			&ins.TotalCents, &ins.Status, &ins.PaymentMethod, &ins.AmountTenderedCents, &ins.ChangeDueCents,
			&ins.CreatedOn, &ins.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		inscriptions = append(inscriptions, ins)
	}
	return inscriptions, count, rows.Err()
}
