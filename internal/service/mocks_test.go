package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	args := m.Called(ctx, nationalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, activeOnly, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, item *domain.EquipmentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentItem), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, item *domain.EquipmentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, activeOnly bool) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}
func (m *MockEquipmentRepo) RestoreStock(ctx context.Context, itemID int32, quantity int32) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

// MockPlanRepo
type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) GetPlan(ctx context.Context, id int32) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}
func (m *MockPlanRepo) ListPlans(ctx context.Context, activeOnly bool) ([]domain.Plan, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Plan), args.Error(1)
}
func (m *MockPlanRepo) GetInstructor(ctx context.Context, id int32) (*domain.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instructor), args.Error(1)
}
func (m *MockPlanRepo) ListInstructors(ctx context.Context, tier domain.PlanTier) ([]domain.Instructor, error) {
	args := m.Called(ctx, tier)
	return args.Get(0).([]domain.Instructor), args.Error(1)
}
func (m *MockPlanRepo) GetSlot(ctx context.Context, id int32) (*domain.ScheduleSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleSlot), args.Error(1)
}
func (m *MockPlanRepo) ListSlots(ctx context.Context, instructorID int32) ([]domain.ScheduleSlot, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).([]domain.ScheduleSlot), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental, receipt *domain.Receipt) error {
	args := m.Called(ctx, rental, receipt)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) UpdateStatus(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) RegisterReturn(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

// MockInscriptionRepo
type MockInscriptionRepo struct {
	mock.Mock
}

func (m *MockInscriptionRepo) Create(ctx context.Context, ins *domain.Inscription, receipt *domain.Receipt) error {
	args := m.Called(ctx, ins, receipt)
	return args.Error(0)
}
func (m *MockInscriptionRepo) CountActiveByInstructor(ctx context.Context, instructorID int32) (int32, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockInscriptionRepo) GetByID(ctx context.Context, id int32) (*domain.Inscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inscription), args.Error(1)
}
func (m *MockInscriptionRepo) UpdateStatus(ctx context.Context, ins *domain.Inscription) error {
	args := m.Called(ctx, ins)
	return args.Error(0)
}
func (m *MockInscriptionRepo) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Inscription, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Inscription), args.Get(1).(int32), args.Error(2)
}

// MockReceiptRepo
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Receipt, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Receipt), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

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

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	published []events.OrderEvent
}

func (p *capturingPublisher) PublishOrderEvent(evt events.OrderEvent) error {
	p.published = append(p.published, evt)
	return nil
}
func (p *capturingPublisher) Close() error { return nil }
