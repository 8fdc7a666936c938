package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, item *domain.EquipmentItem) error {
	query := `INSERT INTO equipment_items (name, description, unit_price_per_day_cents, stock_quantity, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, item.Name, item.Description, item.UnitPricePerDayCents, item.StockQuantity, item.Active, now, now).Scan(&item.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	item := &domain.EquipmentItem{}
	query := `SELECT id, name, description, unit_price_per_day_cents, stock_quantity, active, created_on, updated_on FROM equipment_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description, &item.UnitPricePerDayCents, &item.StockQuantity, &item.Active, &item.CreatedOn, &item.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *equipmentRepository) Update(ctx context.Context, item *domain.EquipmentItem) error {
	query := `UPDATE equipment_items SET name=$1, description=$2, unit_price_per_day_cents=$3, stock_quantity=$4, active=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.UnitPricePerDayCents, item.StockQuantity, item.Active, time.Now(), item.ID)
	return err
}

func (r *equipmentRepository) List(ctx context.Context, activeOnly bool) ([]domain.EquipmentItem, error) {
	query := `SELECT id, name, description, unit_price_per_day_cents, stock_quantity, active, created_on, updated_on FROM equipment_items`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EquipmentItem
	for rows.Next() {
		var item domain.EquipmentItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.UnitPricePerDayCents, &item.StockQuantity, &item.Active, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) RestoreStock(ctx context.Context, itemID int32, quantity int32) error {
	query := `UPDATE equipment_items SET stock_quantity = stock_quantity + $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, quantity, time.Now(), itemID)
	return err
}
