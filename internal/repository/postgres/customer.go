package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (national_id, full_name, email, phone, active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, c.NationalID, c.FullName, c.Email, c.Phone, c.Active, now, now).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, national_id, full_name, email, phone, active, created_on, updated_on FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.NationalID, &c.FullName, &c.Email, &c.Phone, &c.Active, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, national_id, full_name, email, phone, active, created_on, updated_on FROM customers WHERE national_id = $1`
	err := r.db.QueryRowContext(ctx, query, nationalID).Scan(&c.ID, &c.NationalID, &c.FullName, &c.Email, &c.Phone, &c.Active, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET full_name=$1, email=$2, phone=$3, active=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, c.FullName, c.Email, c.Phone, c.Active, time.Now(), c.ID)
	return err
}

func (r *customerRepository) List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, national_id, full_name, email, phone, active, created_on, updated_on FROM customers`
	if activeOnly {
		query += " WHERE active = true"
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY full_name LIMIT $1 OFFSET $2"
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.NationalID, &c.FullName, &c.Email, &c.Phone, &c.Active, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}
