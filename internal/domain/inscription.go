package domain

type InscriptionStatus string

const (
	InscriptionStatusActive    InscriptionStatus = "ACTIVE"
	InscriptionStatusExpired   InscriptionStatus = "EXPIRED"
	InscriptionStatusSuspended InscriptionStatus = "SUSPENDED"
	InscriptionStatusCancelled InscriptionStatus = "CANCELLED"
)

func (s InscriptionStatus) Terminal() bool {
	return s == InscriptionStatusExpired || s == InscriptionStatusCancelled
}

var inscriptionTransitions = map[InscriptionStatus][]InscriptionStatus{
	InscriptionStatusActive:    {InscriptionStatusCancelled, InscriptionStatusExpired, InscriptionStatusSuspended},
	InscriptionStatusSuspended: {InscriptionStatusActive, InscriptionStatusCancelled},
}

// Inscription is a customer's subscription to a plan, optionally bound to an
// instructor and one of that instructor's weekly schedule slots.
type Inscription struct {
	ID                  int32             `json:"id"`
	CustomerID          int32             `json:"customer_id"`
	PlanID              int32             `json:"plan_id"`
	InstructorID        *int32            `json:"instructor_id,omitempty"`
	SlotID              *int32            `json:"slot_id,omitempty"`
	StartDate           string            `json:"start_date"`
	EndDate             string            `json:"end_date"`
	TotalCents          int64             `json:"total_cents"`
	Status              InscriptionStatus `json:"status"`
	PaymentMethod       PaymentMethod     `json:"payment_method"`
	AmountTenderedCents int64             `json:"amount_tendered_cents"`
	ChangeDueCents      int64             `json:"change_due_cents"`
	IdempotencyKey      *string           `json:"-"`
	CreatedOn           string            `json:"created_on"`
	UpdatedOn           string            `json:"updated_on"`
}

func (i *Inscription) CanTransition(to InscriptionStatus) error {
	if i.Status.Terminal() {
		return ErrTerminalState
	}
	for _, next := range inscriptionTransitions[i.Status] {
		if next == to {
			return nil
		}
	}
	return ErrInvalidTransition
}

func (i *Inscription) Transition(to InscriptionStatus) error {
	if err := i.CanTransition(to); err != nil {
		return err
	}
	i.Status = to
	return nil
}
