package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the authoritative fulfillment status of an order. Orders
// only ever move forward along the transition graph; the engine never
// moves an order backward.
type OrderStatus string

const (
	OrderDraft            OrderStatus = "draft"
	OrderPendingPublisher OrderStatus = "pending_publisher"
	OrderAccepted         OrderStatus = "accepted"
	OrderInProgress       OrderStatus = "in_progress"
	OrderDelivered        OrderStatus = "delivered"
	OrderCompleted        OrderStatus = "completed"
	OrderPaid             OrderStatus = "paid"
	OrderCancelled        OrderStatus = "cancelled"
	OrderRejected         OrderStatus = "rejected"
)

// ProcurementStatus tracks purchase-order paperwork separately from
// fulfillment. It is mutated by an external procurement process.
type ProcurementStatus string

const (
	ProcurementNotSubmitted ProcurementStatus = "not_submitted"
	ProcurementSubmitted    ProcurementStatus = "submitted"
	ProcurementApproved     ProcurementStatus = "approved"
	ProcurementPaid         ProcurementStatus = "paid"
)

// Order is the authoritative fulfillment record for a matched
// campaign/publisher pair. Money fields are integer minor currency units.
type Order struct {
	ID                uuid.UUID
	CampaignID        uuid.UUID
	PublisherID       uuid.UUID
	MatchID           *uuid.UUID
	Status            OrderStatus
	ProcurementStatus ProcurementStatus
	PONumber          string
	Subtotal          int64
	PlatformFee       int64
	Total             int64
	DeliveryDeadline  *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderLineItem is one priced row within an order. Quantity determines how
// many Deliverable records the order spawns for this row. Immutable once
// created.
type OrderLineItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	DeliverableType string
	Platform        string
	Quantity        int
	UnitPrice       int64
	TotalPrice      int64
	Description     string
	CreatedAt       time.Time
}

// StatusChange is one entry of an order's append-only status history log.
type StatusChange struct {
	ID         int64
	OrderID    uuid.UUID
	FromStatus OrderStatus
	ToStatus   OrderStatus
	ChangedAt  time.Time
	ChangedBy  string
	Notes      string
}

// orderGraph lists the forward edges of the order status machine. The
// cancelled and rejected states absorb from any pre-completed state.
var orderGraph = map[OrderStatus][]OrderStatus{
	OrderDraft:            {OrderPendingPublisher, OrderCancelled, OrderRejected},
	OrderPendingPublisher: {OrderAccepted, OrderCancelled, OrderRejected},
	OrderAccepted:         {OrderInProgress, OrderCancelled, OrderRejected},
	OrderInProgress:       {OrderDelivered, OrderCancelled, OrderRejected},
	OrderDelivered:        {OrderCompleted, OrderCancelled, OrderRejected},
	OrderCompleted:        {OrderPaid},
	OrderPaid:             {},
	OrderCancelled:        {},
	OrderRejected:         {},
}

// ValidOrderStatus reports whether s names a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderGraph[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Only forward edges exist; re-entering the current status is not
// a transition.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ShouldAutoAdvance decides whether an order must move to delivered after a
// deliverable update. It fires only when the order is exactly in_progress
// and no deliverable remains pending or in revision. Re-running it for an
// order in any other status is a no-op, which keeps the check idempotent.
func ShouldAutoAdvance(status OrderStatus, deliverables []DeliverableStatus) bool {
	if status != OrderInProgress {
		return false
	}
	if len(deliverables) == 0 {
		return false
	}
	for _, ds := range deliverables {
		if ds != DeliverableSubmitted && ds != DeliverableApproved {
			return false
		}
	}
	return true
}
