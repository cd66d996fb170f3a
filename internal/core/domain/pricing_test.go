package domain

import (
	"errors"
	"testing"
)

func TestPriceLineItems(t *testing.T) {
	items := []LineItemRequest{
		{DeliverableType: "sponsored_post", Platform: "instagram", Quantity: 2, UnitPrice: 15000},
		{DeliverableType: "newsletter_feature", Platform: "email", Quantity: 1, UnitPrice: 30000},
	}
	pricing, err := PriceLineItems(items, 0.15)
	if err != nil {
		t.Fatalf("PriceLineItems error: %v", err)
	}
	if pricing.Subtotal != 60000 {
		t.Fatalf("subtotal: got %d, want 60000", pricing.Subtotal)
	}
	if pricing.PlatformFee != 9000 {
		t.Fatalf("platform fee: got %d, want 9000", pricing.PlatformFee)
	}
	if pricing.Total != 69000 {
		t.Fatalf("total: got %d, want 69000", pricing.Total)
	}
	if pricing.LineItems[0].TotalPrice != 30000 || pricing.LineItems[1].TotalPrice != 30000 {
		t.Fatalf("line totals: got %d and %d, want 30000 each",
			pricing.LineItems[0].TotalPrice, pricing.LineItems[1].TotalPrice)
	}
}

func TestPriceLineItemsFeeRoundsHalfUp(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice int64
		feeRate   float64
		wantFee   int64
	}{
		{"exact", 100, 0.15, 15},
		{"half rounds up", 10, 0.15, 2},    // 1.5 -> 2
		{"below half down", 333, 0.15, 50}, // 49.95 -> 50
		{"tiny", 1, 0.15, 0},               // 0.15 -> 0
		{"zero rate", 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pricing, err := PriceLineItems([]LineItemRequest{{Quantity: 1, UnitPrice: tc.unitPrice}}, tc.feeRate)
			if err != nil {
				t.Fatalf("PriceLineItems error: %v", err)
			}
			if pricing.PlatformFee != tc.wantFee {
				t.Fatalf("fee: got %d, want %d", pricing.PlatformFee, tc.wantFee)
			}
			if pricing.Total != pricing.Subtotal+pricing.PlatformFee {
				t.Fatalf("total %d != subtotal %d + fee %d", pricing.Total, pricing.Subtotal, pricing.PlatformFee)
			}
		})
	}
}

func TestPriceLineItemsRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		items []LineItemRequest
	}{
		{"empty", nil},
		{"zero quantity", []LineItemRequest{{Quantity: 0, UnitPrice: 100}}},
		{"negative quantity", []LineItemRequest{{Quantity: -1, UnitPrice: 100}}},
		{"negative price", []LineItemRequest{{Quantity: 1, UnitPrice: -5}}},
		{"bad row after good", []LineItemRequest{{Quantity: 1, UnitPrice: 100}, {Quantity: 0, UnitPrice: 100}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := PriceLineItems(tc.items, 0.15); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}
