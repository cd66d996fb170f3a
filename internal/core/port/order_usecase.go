package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"civic-orders/internal/core/domain"
)

// OrderUseCase is the primary port into the order engine. Mock
// implementations can be generated from this interface for testing.
type OrderUseCase interface {
	// CreateOrder validates the request, prices its line items and
	// materializes the order with one deliverable per unit of line item
	// quantity. When a match id is supplied the match is marked selected.
	// Requests carrying an idempotency key that was already fulfilled
	// return the original order instead of creating a second one.
	CreateOrder(ctx context.Context, req CreateOrderReq) (*OrderResult, error)

	// GetOrder returns the order with its line items, deliverables and
	// status history.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderDetail, error)

	// SubmitDeliverable claims the earliest claimable deliverable of the
	// given line item and records the submission. The result reports
	// whether this submission completed the order's delivery.
	SubmitDeliverable(ctx context.Context, orderID, lineItemID uuid.UUID, sub domain.Submission) (*SubmissionResult, error)

	// ReviewDeliverable applies an advertiser-side review decision to a
	// submitted deliverable.
	ReviewDeliverable(ctx context.Context, deliverableID uuid.UUID, decision ReviewDecision, notes string) (*domain.Deliverable, error)

	// AdvanceOrderStatus applies an externally driven forward transition
	// (accept, complete, pay, cancel, reject, start work).
	AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to domain.OrderStatus, changedBy, notes string) (*domain.Order, error)

	// UpdateProcurement records purchase-order paperwork progress.
	UpdateProcurement(ctx context.Context, orderID uuid.UUID, status domain.ProcurementStatus, poNumber string) (*domain.Order, error)

	// CampaignOverview returns the derived display status for a campaign
	// alongside its engagement counts. Read-only; nothing is written back.
	CampaignOverview(ctx context.Context, campaignID uuid.UUID) (*CampaignOverview, error)

	// ListIncompleteOrders surfaces orders missing line items or
	// deliverables so an operator can complete or void them.
	ListIncompleteOrders(ctx context.Context) ([]IncompleteOrder, error)
}

// CreateOrderReq is the inbound order-creation request.
type CreateOrderReq struct {
	CampaignID       uuid.UUID
	PublisherID      uuid.UUID
	MatchID          *uuid.UUID
	LineItems        []domain.LineItemRequest
	DeliveryDeadline *time.Time
	Notes            string
	IdempotencyKey   string
}

// OrderResult is the response of CreateOrder: the persisted order with its
// priced line items.
type OrderResult struct {
	Order     domain.Order
	LineItems []domain.OrderLineItem
}

// OrderDetail is the full read model of one order.
type OrderDetail struct {
	Order        domain.Order
	LineItems    []domain.OrderLineItem
	Deliverables []domain.Deliverable
	History      []domain.StatusChange
}

// SubmissionResult reports the updated deliverable and whether the
// submission caused the order to reach delivered.
type SubmissionResult struct {
	Deliverable    domain.Deliverable
	OrderDelivered bool
}

// ReviewDecision is an advertiser-side verdict on a submitted deliverable.
type ReviewDecision string

const (
	ReviewApprove         ReviewDecision = "approve"
	ReviewRequestRevision ReviewDecision = "request_revision"
)

// CampaignOverview is the dashboard view of one campaign's engagement.
type CampaignOverview struct {
	CampaignID    uuid.UUID
	StoredStatus  domain.CampaignStatus
	DisplayStatus domain.CampaignStatus
	MatchCount    int
	OrderCount    int
}
