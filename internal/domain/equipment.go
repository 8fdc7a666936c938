package domain

// EquipmentItem is a rentable catalog entry. Prices are per day, in cents.
type EquipmentItem struct {
	ID                   int32  `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	UnitPricePerDayCents int64  `json:"unit_price_per_day_cents"`
	StockQuantity        int32  `json:"stock_quantity"`
	Active               bool   `json:"active"`
	CreatedOn            string `json:"created_on"`
	UpdatedOn            string `json:"updated_on"`
}

// Selectable reports whether the item may appear on a new order.
func (e *EquipmentItem) Selectable() bool {
	return e.Active && e.StockQuantity > 0
}

// CheckStock validates a requested quantity against the remaining stock,
// counting quantities already reserved by earlier lines of the same order.
func (e *EquipmentItem) CheckStock(requested, alreadyReserved int32) error {
	if requested < 1 {
		return ErrInvalidQuantity
	}
	if !e.Selectable() {
		return ErrItemUnavailable
	}
	if requested+alreadyReserved > e.StockQuantity {
		return ErrInsufficientStock
	}
	return nil
}
