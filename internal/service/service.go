package service

import (
	"context"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/wizard"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id int32) (*domain.Customer, error)
	FindByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Deactivate(ctx context.Context, id int32) error
	List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Customer, int32, error)
}

type CatalogService interface {
	AddEquipment(ctx context.Context, item *domain.EquipmentItem) error
	UpdateEquipment(ctx context.Context, item *domain.EquipmentItem) error
	GetEquipment(ctx context.Context, id int32) (*domain.EquipmentItem, error)
	ListEquipment(ctx context.Context, activeOnly bool) ([]domain.EquipmentItem, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id int32) (*domain.Plan, error)
	ListInstructors(ctx context.Context, tier domain.PlanTier) ([]domain.Instructor, error)
	ListSlots(ctx context.Context, instructorID int32) ([]domain.ScheduleSlot, error)
}

// RentalLineRequest is one requested item of a rental order.
type RentalLineRequest struct {
	ItemID   int32 `json:"item_id"`
	Quantity int32 `json:"quantity"`
}

// RentalQuote is the server-computed price preview. The create path runs the
// identical computation; the quote is never trusted back from the client.
type RentalQuote struct {
	DurationDays int32               `json:"duration_days"`
	Lines        []domain.RentalLine `json:"lines"`
	TotalCents   int64               `json:"total_cents"`
}

type CreateRentalRequest struct {
	ActorID        int32
	CustomerID     int32
	StartDate      string
	EndDate        string
	Lines          []RentalLineRequest
	PaymentMethod  domain.PaymentMethod
	TenderedCents  int64
	IdempotencyKey string
}

type RentalService interface {
	Quote(ctx context.Context, startDate, endDate string, lines []RentalLineRequest) (*RentalQuote, error)
	Create(ctx context.Context, req CreateRentalRequest) (*domain.Rental, *domain.Receipt, error)
	Get(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	Cancel(ctx context.Context, actorID, id int32) (*domain.Rental, error)
	RegisterReturn(ctx context.Context, actorID, id int32) (*domain.Rental, error)
}

type CreateInscriptionRequest struct {
	ActorID        int32
	CustomerID     int32
	PlanID         int32
	InstructorID   *int32
	SlotID         *int32
	StartDate      string
	PaymentMethod  domain.PaymentMethod
	TenderedCents  int64
	IdempotencyKey string
}

type InscriptionService interface {
	StepPlan(tier domain.PlanTier) []wizard.Step
	Create(ctx context.Context, req CreateInscriptionRequest) (*domain.Inscription, *domain.Receipt, error)
	Get(ctx context.Context, id int32) (*domain.Inscription, error)
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Inscription, int32, error)
	Cancel(ctx context.Context, actorID, id int32) (*domain.Inscription, error)
	Suspend(ctx context.Context, actorID, id int32) (*domain.Inscription, error)
	Resume(ctx context.Context, actorID, id int32) (*domain.Inscription, error)
}

type ReceiptService interface {
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Receipt, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendReceipt(ctx context.Context, toEmail, toName string, receipt *domain.Receipt) error
	SendOverdueNotice(ctx context.Context, toEmail, toName string, rentalID int32, endDate string) error
}
