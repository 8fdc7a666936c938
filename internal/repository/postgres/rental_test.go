package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"gympoint-backend/internal/domain"
)

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rental := &domain.Rental{
			CustomerID:          7,
			StartDate:           "2026-09-03",
			EndDate:             "2026-09-05",
			DurationDays:        3,
			TotalCents:          6000,
			Status:              domain.RentalStatusActive,
			PaymentMethod:       domain.PaymentMethodCash,
			AmountTenderedCents: 7000,
			ChangeDueCents:      1000,
			Lines: []domain.RentalLine{
				{ItemID: 1, Quantity: 2, UnitPriceCents: 1000, SubtotalCents: 6000},
			},
		}

		receipt := &domain.Receipt{
			ReceiptNumber: "rcpt-1", Kind: domain.ReceiptKindRental, CustomerID: 7,
			Method: domain.PaymentMethodCash, TotalCents: 6000, TenderedCents: 7000, ChangeDueCents: 1000,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CustomerID, rental.StartDate, rental.EndDate, rental.DurationDays, rental.TotalCents,
				rental.Status, rental.PaymentMethod, rental.AmountTenderedCents, rental.ChangeDueCents,
				rental.IdempotencyKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectExec("UPDATE equipment_items SET stock_quantity = stock_quantity -").
			WithArgs(int32(2), sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rental_lines").
			WithArgs(int32(9), int32(1), int32(2), int64(1000), int64(6000)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
		mock.ExpectQuery("INSERT INTO receipts").
			WithArgs("rcpt-1", domain.ReceiptKindRental, int32(9), int32(7), domain.PaymentMethodCash,
				int64(6000), int64(7000), int64(1000), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
		mock.ExpectCommit()

		err := repo.Create(ctx, rental, receipt)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), rental.ID)
		assert.Equal(t, int32(21), rental.Lines[0].ID)
		assert.Equal(t, int32(9), receipt.OrderID)
		assert.Equal(t, int32(31), receipt.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientStockRollsBack", func(t *testing.T) {
		rental := &domain.Rental{
			CustomerID: 7, StartDate: "2026-09-03", EndDate: "2026-09-05", DurationDays: 3,
			TotalCents: 6000, Status: domain.RentalStatusActive, PaymentMethod: domain.PaymentMethodCash,
			Lines: []domain.RentalLine{{ItemID: 1, Quantity: 99, UnitPriceCents: 1000, SubtotalCents: 6000}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec("UPDATE equipment_items SET stock_quantity = stock_quantity -").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Create(ctx, rental, &domain.Receipt{ReceiptNumber: "rcpt-2", Kind: domain.ReceiptKindRental})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReceiptFailureRollsBackOrder", func(t *testing.T) {
		rental := &domain.Rental{
			CustomerID: 7, StartDate: "2026-09-03", EndDate: "2026-09-05", DurationDays: 3,
			TotalCents: 6000, Status: domain.RentalStatusActive, PaymentMethod: domain.PaymentMethodCard,
			Lines: []domain.RentalLine{{ItemID: 1, Quantity: 1, UnitPriceCents: 2000, SubtotalCents: 6000}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectExec("UPDATE equipment_items SET stock_quantity = stock_quantity -").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO rental_lines").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
		mock.ExpectQuery("INSERT INTO receipts").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Create(ctx, rental, &domain.Receipt{ReceiptNumber: "rcpt-3", Kind: domain.ReceiptKindRental})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateIdempotencyKey", func(t *testing.T) {
		key := "key-123"
		rental := &domain.Rental{
			CustomerID: 7, StartDate: "2026-09-03", EndDate: "2026-09-05", DurationDays: 3,
			TotalCents: 6000, Status: domain.RentalStatusActive, PaymentMethod: domain.PaymentMethodCard,
			IdempotencyKey: &key,
			Lines:          []domain.RentalLine{{ItemID: 1, Quantity: 1}},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO rentals").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(ctx, rental, &domain.Receipt{ReceiptNumber: "rcpt-4", Kind: domain.ReceiptKindRental})
		assert.ErrorIs(t, err, domain.ErrIdempotencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRows := sqlmock.NewRows([]string{
			"id", "customer_id", "start_date", "end_date", "duration_days", "total_cents", "status",
			"payment_method", "amount_tendered_cents", "change_due_cents", "mora_cents", "total_with_mora_cents",
			"created_on", "updated_on",
		}).AddRow(9, 7, "2026-09-03", "2026-09-05", 3, 6000, "ACTIVE", "CASH", 7000, 1000, nil, nil, "2026-09-01", "2026-09-01")

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(9)).
			WillReturnRows(rentalRows)

		lineRows := sqlmock.NewRows([]string{"id", "rental_id", "item_id", "name", "quantity", "unit_price_cents", "subtotal_cents", "returned"}).
			AddRow(21, 9, 1, "Spin Bike", 2, 1000, 6000, false)
		mock.ExpectQuery("SELECT (.+) FROM rental_lines l JOIN equipment_items e").
			WithArgs(int32(9)).
			WillReturnRows(lineRows)

		rental, err := repo.GetByID(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), rental.ID)
		assert.Nil(t, rental.MoraCents)
		assert.Len(t, rental.Lines, 1)
		assert.Equal(t, "Spin Bike", rental.Lines[0].ItemName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRentalRepository_RegisterReturn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	rental := &domain.Rental{
		ID:     9,
		Status: domain.RentalStatusFinished,
		Lines: []domain.RentalLine{
			{ItemID: 1, Quantity: 2},
			{ItemID: 3, Quantity: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rental_lines SET returned = true").
		WithArgs(int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE rentals SET status =").
		WithArgs(domain.RentalStatusFinished, sqlmock.AnyArg(), int32(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE equipment_items SET stock_quantity = stock_quantity \\+").
		WithArgs(int32(2), sqlmock.AnyArg(), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE equipment_items SET stock_quantity = stock_quantity \\+").
		WithArgs(int32(1), sqlmock.AnyArg(), int32(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.RegisterReturn(ctx, rental))
	assert.NoError(t, mock.ExpectationsWereMet())
}
