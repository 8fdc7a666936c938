package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
)

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReceipt(ctx context.Context, toEmail, toName string, receipt *domain.Receipt) error {
	args := m.Called(ctx, toEmail, toName, receipt)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, toEmail, toName string, rentalID int32, endDate string) error {
	args := m.Called(ctx, toEmail, toName, rentalID, endDate)
	return args.Error(0)
}

type capturingPublisher struct {
	published []events.OrderEvent
}

func (p *capturingPublisher) PublishOrderEvent(evt events.OrderEvent) error {
	p.published = append(p.published, evt)
	return nil
}
func (p *capturingPublisher) Close() error { return nil }

func TestMarkOverdueRentals(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	publisher := &capturingPublisher{}
	clk := clock.NewFixed(time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC))
	runner := NewJobRunner(db, new(MockEmailService), publisher, clk)

	dbMock.ExpectQuery("UPDATE rentals").
		WithArgs(domain.RentalStatusOverdue, sqlmock.AnyArg(), domain.RentalStatusActive, "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}).AddRow(9, 7).AddRow(10, 8))

	assert.NoError(t, runner.MarkOverdueRentals(context.Background()))
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.Len(t, publisher.published, 2)
	assert.Equal(t, "OVERDUE", publisher.published[0].NewState)
}

func TestExpireInscriptions(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	publisher := &capturingPublisher{}
	clk := clock.NewFixed(time.Date(2026, 9, 1, 2, 15, 0, 0, time.UTC))
	runner := NewJobRunner(db, new(MockEmailService), publisher, clk)

	dbMock.ExpectQuery("UPDATE inscriptions").
		WithArgs(domain.InscriptionStatusExpired, sqlmock.AnyArg(), domain.InscriptionStatusActive, "2026-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}).AddRow(4, 7))

	assert.NoError(t, runner.ExpireInscriptions(context.Background()))
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, "inscription", publisher.published[0].Kind)
}

func TestSendOverdueNotices(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	emailSvc := new(MockEmailService)
	clk := clock.NewFixed(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	runner := NewJobRunner(db, emailSvc, &capturingPublisher{}, clk)

	dbMock.ExpectQuery("SELECT (.+) FROM rentals r").
		WithArgs(domain.RentalStatusOverdue).
		WillReturnRows(sqlmock.NewRows([]string{"id", "end_date", "email", "full_name"}).
			AddRow(9, "2026-08-28", "ana@example.com", "Ana Gomez").
			AddRow(10, "2026-08-30", "luis@example.com", "Luis Paredes"))

	emailSvc.On("SendOverdueNotice", mock.Anything, "ana@example.com", "Ana Gomez", int32(9), "2026-08-28").Return(nil)
	emailSvc.On("SendOverdueNotice", mock.Anything, "luis@example.com", "Luis Paredes", int32(10), "2026-08-30").Return(nil)

	assert.NoError(t, runner.SendOverdueNotices(context.Background()))
	emailSvc.AssertExpectations(t)
}
