package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/pricing"
	"gympoint-backend/internal/repository"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	customerRepo  repository.CustomerRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService
	publisher     events.Publisher
	clk           clock.Clock
	maxRentalDays int32
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	customerRepo repository.CustomerRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	publisher events.Publisher,
	clk clock.Clock,
	maxRentalDays int32,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		customerRepo:  customerRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
		publisher:     publisher,
		clk:           clk,
		maxRentalDays: maxRentalDays,
	}
}

// buildQuote is the single pricing path: the preview endpoint and the create
// path both run through here, so the formula can never diverge between them.
func (s *rentalService) buildQuote(ctx context.Context, startDateStr, endDateStr string, reqLines []RentalLineRequest) (*RentalQuote, error) {
	if len(reqLines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	start, err := pricing.ParseDate(startDateStr)
	if err != nil {
		return nil, err
	}
	end, err := pricing.ParseDate(endDateStr)
	if err != nil {
		return nil, err
	}

	days, err := pricing.Duration(start, end)
	if err != nil {
		return nil, err
	}
	if days > s.maxRentalDays {
		return nil, domain.ErrDateRangeTooLong
	}

	today, _ := pricing.ParseDate(pricing.FormatDate(s.clk.Now()))
	if start.Before(today) {
		return nil, domain.ErrStartDateInPast
	}

	// Quantities of the same item are validated across all lines of the order.
	reserved := map[int32]int32{}
	lines := make([]domain.RentalLine, 0, len(reqLines))
	for _, rl := range reqLines {
		item, err := s.equipmentRepo.GetByID(ctx, rl.ItemID)
		if err != nil {
			return nil, err
		}
		if err := item.CheckStock(rl.Quantity, reserved[rl.ItemID]); err != nil {
			return nil, err
		}
		reserved[rl.ItemID] += rl.Quantity

		lines = append(lines, domain.RentalLine{
			ItemID:         item.ID,
			ItemName:       item.Name,
			Quantity:       rl.Quantity,
			UnitPriceCents: item.UnitPricePerDayCents,
			SubtotalCents:  pricing.LineSubtotal(rl.Quantity, item.UnitPricePerDayCents, days),
		})
	}

	return &RentalQuote{
		DurationDays: days,
		Lines:        lines,
		TotalCents:   pricing.OrderTotal(lines),
	}, nil
}

func (s *rentalService) Quote(ctx context.Context, startDate, endDate string, lines []RentalLineRequest) (*RentalQuote, error) {
	return s.buildQuote(ctx, startDate, endDate, lines)
}

func (s *rentalService) Create(ctx context.Context, req CreateRentalRequest) (*domain.Rental, *domain.Receipt, error) {
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if !customer.Active {
		return nil, nil, domain.ErrCustomerNotFound
	}

	quote, err := s.buildQuote(ctx, req.StartDate, req.EndDate, req.Lines)
	if err != nil {
		return nil, nil, err
	}

	reconciliation, err := domain.Reconcile(quote.TotalCents, req.TenderedCents, req.PaymentMethod)
	if err != nil {
		return nil, nil, err
	}

	rental := &domain.Rental{
		CustomerID:          customer.ID,
		Lines:               quote.Lines,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		DurationDays:        quote.DurationDays,
		TotalCents:          quote.TotalCents,
		Status:              domain.RentalStatusActive,
		PaymentMethod:       req.PaymentMethod,
		AmountTenderedCents: reconciliation.TenderedCents,
		ChangeDueCents:      reconciliation.ChangeDueCents,
	}
	if req.IdempotencyKey != "" {
		rental.IdempotencyKey = &req.IdempotencyKey
	}

	// The repository commits the rental and its receipt together; neither
	// row exists without the other.
	receipt := &domain.Receipt{
		ReceiptNumber:  uuid.NewString(),
		Kind:           domain.ReceiptKindRental,
		CustomerID:     customer.ID,
		Method:         req.PaymentMethod,
		TotalCents:     rental.TotalCents,
		TenderedCents:  rental.AmountTenderedCents,
		ChangeDueCents: rental.ChangeDueCents,
	}
	if err := s.rentalRepo.Create(ctx, rental, receipt); err != nil {
		return nil, nil, err
	}

	s.afterTransition(ctx, rental, "", req.ActorID, "Rental Created",
		fmt.Sprintf("Rental #%d for %s registered", rental.ID, customer.FullName))

	if customer.Email != "" {
		_ = s.emailSvc.SendReceipt(ctx, customer.Email, customer.FullName, receipt)
	}

	return rental, receipt, nil
}

func (s *rentalService) Get(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, customerID, status, page, pageSize)
}

func (s *rentalService) Cancel(ctx context.Context, actorID, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := rental.Status
	if err := rental.Transition(domain.RentalStatusCancelled); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.UpdateStatus(ctx, rental); err != nil {
		return nil, err
	}

	// Cancelled rentals release their reserved stock. A failed restore does
	// not undo the cancellation; it is logged for manual stock correction.
	for i := range rental.Lines {
		if err := s.equipmentRepo.RestoreStock(ctx, rental.Lines[i].ItemID, rental.Lines[i].Quantity); err != nil {
			logger.Error("Failed to restore stock after cancellation",
				"rental_id", rental.ID,
				"item_id", rental.Lines[i].ItemID,
				"quantity", rental.Lines[i].Quantity,
				"error", err,
			)
		}
	}

	s.afterTransition(ctx, rental, oldStatus, actorID, "Rental Cancelled",
		fmt.Sprintf("Rental #%d cancelled", rental.ID))
	return rental, nil
}

// RegisterReturn marks every line returned and finishes the rental; the
// repository applies both writes in one transaction.
func (s *rentalService) RegisterReturn(ctx context.Context, actorID, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := rental.Status
	if err := rental.RegisterReturn(); err != nil {
		return nil, err
	}
	if err := s.rentalRepo.RegisterReturn(ctx, rental); err != nil {
		return nil, err
	}

	s.afterTransition(ctx, rental, oldStatus, actorID, "Rental Finished",
		fmt.Sprintf("Rental #%d returned and finished", rental.ID))
	return rental, nil
}

// afterTransition records the side effects of a lifecycle change. Both sinks
// are best-effort; the transition itself is already persisted.
func (s *rentalService) afterTransition(ctx context.Context, rental *domain.Rental, oldStatus domain.RentalStatus, actorID int32, title, message string) {
	_ = s.publisher.PublishOrderEvent(events.OrderEvent{
		Kind:       "rental",
		OrderID:    rental.ID,
		CustomerID: rental.CustomerID,
		OldState:   string(oldStatus),
		NewState:   string(rental.Status),
		OccurredAt: s.clk.Now(),
	})

	if actorID != 0 {
		note := &domain.Notification{
			UserID:  actorID,
			Title:   title,
			Message: message,
			Attributes: map[string]string{
				"type":      "RENTAL",
				"rental_id": fmt.Sprintf("%d", rental.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
	}
}
