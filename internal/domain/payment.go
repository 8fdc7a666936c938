package domain

import "strings"

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET"
)

// ParsePaymentMethod canonicalizes a method string from the wire.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	case PaymentMethodCard:
		return PaymentMethodCard, nil
	case PaymentMethodWallet:
		return PaymentMethodWallet, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// Cash reports whether the method allows manual tender entry and change.
func (m PaymentMethod) Cash() bool {
	return m == PaymentMethodCash
}

// Reconciliation is the accepted outcome of validating a tendered amount.
type Reconciliation struct {
	TenderedCents  int64
	ChangeDueCents int64
}

// Reconcile validates a tendered amount against a computed total.
// Non-cash instruments are charged exactly the total; the tendered input is
// ignored and no change is due. Cash below the total is rejected.
func Reconcile(totalCents, tenderedCents int64, method PaymentMethod) (Reconciliation, error) {
	if !method.Cash() {
		return Reconciliation{TenderedCents: totalCents, ChangeDueCents: 0}, nil
	}
	if tenderedCents < totalCents {
		return Reconciliation{}, ErrPaymentInsufficient
	}
	return Reconciliation{
		TenderedCents:  tenderedCents,
		ChangeDueCents: tenderedCents - totalCents,
	}, nil
}

type ReceiptKind string

const (
	ReceiptKindRental      ReceiptKind = "RENTAL"
	ReceiptKindInscription ReceiptKind = "INSCRIPTION"
)

// Receipt records a registered payment against a rental or inscription.
type Receipt struct {
	ID             int32         `json:"id"`
	ReceiptNumber  string        `json:"receipt_number"`
	Kind           ReceiptKind   `json:"kind"`
	OrderID        int32         `json:"order_id"`
	CustomerID     int32         `json:"customer_id"`
	Method         PaymentMethod `json:"method"`
	TotalCents     int64         `json:"total_cents"`
	TenderedCents  int64         `json:"tendered_cents"`
	ChangeDueCents int64         `json:"change_due_cents"`
	CreatedOn      string        `json:"created_on"`
}
