package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusFinished  RentalStatus = "FINISHED"
	RentalStatusOverdue   RentalStatus = "OVERDUE"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave this status.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusFinished || s == RentalStatusCancelled
}

// rentalTransitions lists the allowed edges of the rental lifecycle.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusActive:  {RentalStatusFinished, RentalStatusOverdue, RentalStatusCancelled},
	RentalStatusOverdue: {RentalStatusFinished, RentalStatusCancelled},
}

type RentalLine struct {
	ID             int32  `json:"id"`
	RentalID       int32  `json:"rental_id"`
	ItemID         int32  `json:"item_id"`
	ItemName       string `json:"item_name,omitempty"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"` // price snapshot at creation time
	SubtotalCents  int64  `json:"subtotal_cents"`
	Returned       bool   `json:"returned"`
}

type Rental struct {
	ID                  int32         `json:"id"`
	CustomerID          int32         `json:"customer_id"`
	Lines               []RentalLine  `json:"lines"`
	StartDate           string        `json:"start_date"` // YYYY-MM-DD at every boundary
	EndDate             string        `json:"end_date"`
	DurationDays        int32         `json:"duration_days"`
	TotalCents          int64         `json:"total_cents"`
	Status              RentalStatus  `json:"status"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	AmountTenderedCents int64         `json:"amount_tendered_cents"`
	ChangeDueCents      int64         `json:"change_due_cents"`
	// Late-fee fields are computed elsewhere and passed through opaquely.
	MoraCents          *int64  `json:"mora_cents,omitempty"`
	TotalWithMoraCents *int64  `json:"total_with_mora_cents,omitempty"`
	IdempotencyKey     *string `json:"-"`
	CreatedOn          string  `json:"created_on"`
	UpdatedOn          string  `json:"updated_on"`
}

// CanTransition checks the lifecycle edge without applying it.
func (r *Rental) CanTransition(to RentalStatus) error {
	if r.Status.Terminal() {
		return ErrTerminalState
	}
	for _, next := range rentalTransitions[r.Status] {
		if next == to {
			if to == RentalStatusFinished && !r.AllLinesReturned() {
				return ErrLinesNotReturned
			}
			return nil
		}
	}
	return ErrInvalidTransition
}

// Transition applies a guarded state change.
func (r *Rental) Transition(to RentalStatus) error {
	if err := r.CanTransition(to); err != nil {
		return err
	}
	r.Status = to
	return nil
}

// AllLinesReturned reports whether every line carries the returned flag.
func (r *Rental) AllLinesReturned() bool {
	if len(r.Lines) == 0 {
		return false
	}
	for i := range r.Lines {
		if !r.Lines[i].Returned {
			return false
		}
	}
	return true
}

// RegisterReturn marks every line returned and finishes the rental in one
// step; return and finalization are atomic from the caller's perspective.
func (r *Rental) RegisterReturn() error {
	if r.Status.Terminal() {
		return ErrTerminalState
	}
	if r.Status != RentalStatusActive && r.Status != RentalStatusOverdue {
		return ErrInvalidTransition
	}
	for i := range r.Lines {
		r.Lines[i].Returned = true
	}
	return r.Transition(RentalStatusFinished)
}
