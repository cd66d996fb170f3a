package port

import (
	"context"

	"github.com/google/uuid"

	"civic-orders/internal/core/domain"
)

// OrderRepository is the persistence port of the order engine. An order,
// its line items and its deliverables form one consistency unit, so every
// mutating method runs inside a single transaction. Implementations must
// report failures through the domain error taxonomy.
type OrderRepository interface {
	// GetCampaign returns a campaign by id, or ErrNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// PublisherExists reports whether a publisher id resolves.
	PublisherExists(ctx context.Context, id uuid.UUID) (bool, error)
	// GetMatch returns a campaign match by id, or ErrNotFound.
	GetMatch(ctx context.Context, id uuid.UUID) (*domain.CampaignMatch, error)

	// CreateOrder persists the order, its line items and its deliverables
	// atomically. When the order references a match, the match is flipped
	// to selected in the same transaction with a conditional update; if
	// another order already selected it, nothing is persisted and
	// ErrConflict is returned.
	CreateOrder(ctx context.Context, rec NewOrder) error

	// GetOrder returns an order by id, or ErrNotFound.
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ListLineItems returns an order's line items ordered by creation.
	ListLineItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderLineItem, error)
	// ListDeliverables returns an order's deliverables ordered by creation.
	ListDeliverables(ctx context.Context, orderID uuid.UUID) ([]domain.Deliverable, error)
	// ListStatusHistory returns the append-only status log for an order.
	ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]domain.StatusChange, error)

	// ClaimDeliverable atomically claims the earliest claimable
	// deliverable for the given order and line item, marks it submitted
	// with the submission payload, and re-evaluates the auto-advance rule
	// in the same transaction. The returned flag reports whether this
	// submission moved the order to delivered. ErrNotFound when the
	// order/line item pair does not resolve; ErrConflict when the line
	// item exists but every deliverable has already progressed past a
	// claimable state.
	ClaimDeliverable(ctx context.Context, orderID, lineItemID uuid.UUID, sub domain.Submission) (*domain.Deliverable, bool, error)

	// ReviewDeliverable moves a submitted deliverable to approved or back
	// to revision_requested. ErrConflict if the deliverable is not
	// currently submitted.
	ReviewDeliverable(ctx context.Context, id uuid.UUID, approve bool, notes string) (*domain.Deliverable, error)

	// AdvanceOrderStatus applies an externally driven status transition.
	// The target must be a forward edge of the transition graph relative
	// to the status read under lock; anything else is ErrConflict. The
	// transition and its history entry commit together.
	AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to domain.OrderStatus, changedBy, notes string) (*domain.Order, error)

	// UpdateProcurement records procurement paperwork progress on an
	// order, independent of fulfillment status.
	UpdateProcurement(ctx context.Context, orderID uuid.UUID, status domain.ProcurementStatus, poNumber string) (*domain.Order, error)

	// CampaignEngagement returns the signals the status deriver consumes
	// for one campaign.
	CampaignEngagement(ctx context.Context, campaignID uuid.UUID) (*CampaignEngagement, error)

	// ListIncompleteOrders returns orders whose deliverable count does not
	// match the sum of their line item quantities, for reconciliation.
	ListIncompleteOrders(ctx context.Context) ([]IncompleteOrder, error)
}

// NewOrder bundles the records of one order creation. The factory fills
// every id and computed amount before handing it to the repository.
type NewOrder struct {
	Order        domain.Order
	LineItems    []domain.OrderLineItem
	Deliverables []domain.Deliverable
}

// CampaignEngagement carries the raw inputs of the campaign status
// deriver.
type CampaignEngagement struct {
	Campaign   domain.Campaign
	MatchCount int
	OrderCount int
}

// IncompleteOrder identifies an order missing part of its record set.
type IncompleteOrder struct {
	OrderID        uuid.UUID
	ExpectedUnits  int
	PersistedUnits int
	LineItemCount  int
	Status         domain.OrderStatus
}
