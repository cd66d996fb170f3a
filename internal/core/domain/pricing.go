package domain

import "fmt"

// LineItemRequest is one requested row of an order before pricing. Unit
// price is in minor currency units.
type LineItemRequest struct {
	DeliverableType string
	Platform        string
	Quantity        int
	UnitPrice       int64
	Description     string
}

// PricedLineItem is a line item request with its computed total.
type PricedLineItem struct {
	LineItemRequest
	TotalPrice int64
}

// Pricing is the result of pricing a set of line items. All amounts are
// minor currency units and total == subtotal + platform fee always holds.
type Pricing struct {
	LineItems   []PricedLineItem
	Subtotal    int64
	PlatformFee int64
	Total       int64
}

// PriceLineItems computes per-row totals, the order subtotal, the platform
// fee and the grand total for a set of requested line items. All arithmetic
// except the fee is exact integer math in minor currency units; the fee is
// subtotal * feeRate rounded half up to the nearest unit.
func PriceLineItems(items []LineItemRequest, feeRate float64) (Pricing, error) {
	if len(items) == 0 {
		return Pricing{}, fmt.Errorf("%w: at least one line item is required", ErrInvalidInput)
	}
	priced := make([]PricedLineItem, 0, len(items))
	var subtotal int64
	for i, item := range items {
		if item.Quantity <= 0 {
			return Pricing{}, fmt.Errorf("%w: line item %d: quantity must be positive", ErrInvalidInput, i)
		}
		if item.UnitPrice < 0 {
			return Pricing{}, fmt.Errorf("%w: line item %d: unit price must not be negative", ErrInvalidInput, i)
		}
		total := int64(item.Quantity) * item.UnitPrice
		priced = append(priced, PricedLineItem{LineItemRequest: item, TotalPrice: total})
		subtotal += total
	}
	fee := roundHalfUp(subtotal, feeRate)
	return Pricing{
		LineItems:   priced,
		Subtotal:    subtotal,
		PlatformFee: fee,
		Total:       subtotal + fee,
	}, nil
}

// roundHalfUp multiplies an integer amount by rate and rounds half up. The
// float product of an int64 amount and a small rate stays well inside the
// exactly-representable range for realistic order sizes.
func roundHalfUp(amount int64, rate float64) int64 {
	return int64(float64(amount)*rate + 0.5)
}
