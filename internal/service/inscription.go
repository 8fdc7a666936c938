package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/pricing"
	"gympoint-backend/internal/repository"
	"gympoint-backend/internal/wizard"
)

type inscriptionService struct {
	inscriptionRepo repository.InscriptionRepository
	planRepo        repository.PlanRepository
	customerRepo    repository.CustomerRepository
	noteRepo        repository.NotificationRepository
	emailSvc        EmailService
	publisher       events.Publisher
	clk             clock.Clock
}

func NewInscriptionService(
	inscriptionRepo repository.InscriptionRepository,
	planRepo repository.PlanRepository,
	customerRepo repository.CustomerRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	publisher events.Publisher,
	clk clock.Clock,
) InscriptionService {
	return &inscriptionService{
		inscriptionRepo: inscriptionRepo,
		planRepo:        planRepo,
		customerRepo:    customerRepo,
		noteRepo:        noteRepo,
		emailSvc:        emailSvc,
		publisher:       publisher,
		clk:             clk,
	}
}

// StepPlan exposes the checkout step list for a tier so the console renders
// the progress indicator from one source of truth.
func (s *inscriptionService) StepPlan(tier domain.PlanTier) []wizard.Step {
	return wizard.ForInscription(tier).Steps()
}

func (s *inscriptionService) Create(ctx context.Context, req CreateInscriptionRequest) (*domain.Inscription, *domain.Receipt, error) {
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if !customer.Active {
		return nil, nil, domain.ErrCustomerNotFound
	}

	plan, err := s.planRepo.GetPlan(ctx, req.PlanID)
	if err != nil {
		return nil, nil, err
	}
	if !plan.Active {
		return nil, nil, domain.ErrItemUnavailable
	}

	if err := s.validateInstructorSelection(ctx, plan, &req); err != nil {
		return nil, nil, err
	}

	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		return nil, nil, err
	}
	today, _ := pricing.ParseDate(pricing.FormatDate(s.clk.Now()))
	if start.Before(today) {
		return nil, nil, domain.ErrStartDateInPast
	}
	end := start.AddDate(0, 0, int(plan.DurationDays)-1)

	reconciliation, err := domain.Reconcile(plan.PriceCents, req.TenderedCents, req.PaymentMethod)
	if err != nil {
		return nil, nil, err
	}

	ins := &domain.Inscription{
		CustomerID:          customer.ID,
		PlanID:              plan.ID,
		InstructorID:        req.InstructorID,
		SlotID:              req.SlotID,
		StartDate:           req.StartDate,
		EndDate:             pricing.FormatDate(end),
		TotalCents:          plan.PriceCents,
		Status:              domain.InscriptionStatusActive,
		PaymentMethod:       req.PaymentMethod,
		AmountTenderedCents: reconciliation.TenderedCents,
		ChangeDueCents:      reconciliation.ChangeDueCents,
	}
	if req.IdempotencyKey != "" {
		ins.IdempotencyKey = &req.IdempotencyKey
	}

	// The repository commits the inscription and its receipt together.
	receipt := &domain.Receipt{
		ReceiptNumber:  uuid.NewString(),
		Kind:           domain.ReceiptKindInscription,
		CustomerID:     customer.ID,
		Method:         req.PaymentMethod,
		TotalCents:     ins.TotalCents,
		TenderedCents:  ins.AmountTenderedCents,
		ChangeDueCents: ins.ChangeDueCents,
	}
	if err := s.inscriptionRepo.Create(ctx, ins, receipt); err != nil {
		return nil, nil, err
	}

	s.afterTransition(ctx, ins, "", req.ActorID, "Inscription Created",
		fmt.Sprintf("Inscription #%d (%s) registered for %s", ins.ID, plan.Name, customer.FullName))

	if customer.Email != "" {
		_ = s.emailSvc.SendReceipt(ctx, customer.Email, customer.FullName, receipt)
	}

	return ins, receipt, nil
}

// validateInstructorSelection enforces the tier gate: PREMIUM requires an
// instructor plus one of that instructor's published slots; for STANDARD the
// steps are skipped entirely, so any stray selection is dropped.
func (s *inscriptionService) validateInstructorSelection(ctx context.Context, plan *domain.Plan, req *CreateInscriptionRequest) error {
	if !plan.RequiresInstructor() {
		req.InstructorID = nil
		req.SlotID = nil
		return nil
	}

	if req.InstructorID == nil {
		return domain.ErrInstructorRequired
	}
	instructor, err := s.planRepo.GetInstructor(ctx, *req.InstructorID)
	if err != nil {
		return err
	}
	if !instructor.Active {
		return domain.ErrItemUnavailable
	}
	if instructor.Tier != plan.Tier {
		return domain.ErrInstructorTierMismatch
	}

	if req.SlotID == nil {
		return domain.ErrSlotRequired
	}
	slot, err := s.planRepo.GetSlot(ctx, *req.SlotID)
	if err != nil {
		return err
	}
	if slot.InstructorID != instructor.ID {
		return domain.ErrSlotNotPublished
	}

	// MaxCapacity zero means unbounded.
	if instructor.MaxCapacity > 0 {
		active, err := s.inscriptionRepo.CountActiveByInstructor(ctx, instructor.ID)
		if err != nil {
			return err
		}
		if active >= instructor.MaxCapacity {
			return domain.ErrInstructorAtCapacity
		}
	}
	return nil
}

func (s *inscriptionService) Get(ctx context.Context, id int32) (*domain.Inscription, error) {
	return s.inscriptionRepo.GetByID(ctx, id)
}

func (s *inscriptionService) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Inscription, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.inscriptionRepo.List(ctx, customerID, status, page, pageSize)
}

func (s *inscriptionService) Cancel(ctx context.Context, actorID, id int32) (*domain.Inscription, error) {
	return s.transition(ctx, actorID, id, domain.InscriptionStatusCancelled, "Inscription Cancelled")
}

func (s *inscriptionService) Suspend(ctx context.Context, actorID, id int32) (*domain.Inscription, error) {
	return s.transition(ctx, actorID, id, domain.InscriptionStatusSuspended, "Inscription Suspended")
}

func (s *inscriptionService) Resume(ctx context.Context, actorID, id int32) (*domain.Inscription, error) {
	return s.transition(ctx, actorID, id, domain.InscriptionStatusActive, "Inscription Resumed")
}

func (s *inscriptionService) transition(ctx context.Context, actorID, id int32, to domain.InscriptionStatus, title string) (*domain.Inscription, error) {
	ins, err := s.inscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := ins.Status
	if err := ins.Transition(to); err != nil {
		return nil, err
	}
	if err := s.inscriptionRepo.UpdateStatus(ctx, ins); err != nil {
		return nil, err
	}

	s.afterTransition(ctx, ins, oldStatus, actorID, title,
		fmt.Sprintf("Inscription #%d moved to %s", ins.ID, ins.Status))
	return ins, nil
}

func (s *inscriptionService) afterTransition(ctx context.Context, ins *domain.Inscription, oldStatus domain.InscriptionStatus, actorID int32, title, message string) {
	_ = s.publisher.PublishOrderEvent(events.OrderEvent{
		Kind:       "inscription",
		OrderID:    ins.ID,
		CustomerID: ins.CustomerID,
		OldState:   string(oldStatus),
		NewState:   string(ins.Status),
		OccurredAt: s.clk.Now(),
	})

	if actorID != 0 {
		note := &domain.Notification{
			UserID:  actorID,
			Title:   title,
			Message: message,
			Attributes: map[string]string{
				"type":           "INSCRIPTION",
				"inscription_id": fmt.Sprintf("%d", ins.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
}
