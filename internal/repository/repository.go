package repository

import (
	"context"

	"gympoint-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Customer, int32, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, item *domain.EquipmentItem) error
	GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error)
	Update(ctx context.Context, item *domain.EquipmentItem) error
	List(ctx context.Context, activeOnly bool) ([]domain.EquipmentItem, error)
	// RestoreStock returns quantities to stock when a rental is cancelled or returned.
	RestoreStock(ctx context.Context, itemID int32, quantity int32) error
}

type PlanRepository interface {
	GetPlan(ctx context.Context, id int32) (*domain.Plan, error)
	ListPlans(ctx context.Context, activeOnly bool) ([]domain.Plan, error)
	GetInstructor(ctx context.Context, id int32) (*domain.Instructor, error)
	ListInstructors(ctx context.Context, tier domain.PlanTier) ([]domain.Instructor, error)
	GetSlot(ctx context.Context, id int32) (*domain.ScheduleSlot, error)
	ListSlots(ctx context.Context, instructorID int32) ([]domain.ScheduleSlot, error)
}

type RentalRepository interface {
	// Create persists the rental with its lines and receipt and decrements
	// equipment stock in one transaction. Stock underflow surfaces as
	// domain.ErrInsufficientStock; a duplicate idempotency key as
	// domain.ErrIdempotencyConflict. No rental row ever exists without its
	// receipt.
	Create(ctx context.Context, rental *domain.Rental, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, rental *domain.Rental) error
	// RegisterReturn flips all line flags and the rental status to FINISHED
	// in one transaction, restoring equipment stock.
	RegisterReturn(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type InscriptionRepository interface {
	// Create persists the inscription and its receipt in one transaction.
	Create(ctx context.Context, ins *domain.Inscription, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id int32) (*domain.Inscription, error)
	UpdateStatus(ctx context.Context, ins *domain.Inscription) error
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Inscription, int32, error)
	// CountActiveByInstructor reports how many ACTIVE inscriptions an
	// instructor currently carries, for the capacity check.
	CountActiveByInstructor(ctx context.Context, instructorID int32) (int32, error)
}

type ReceiptRepository interface {
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Receipt, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
