package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

// OrderUseCase implements the order engine's business operations on top of
// the repository port. It validates input, prices line items and decides
// fan-out; all multi-record consistency lives behind the repository.
type OrderUseCase struct {
	repo port.OrderRepository

	// idem is optional. When nil, idempotency keys are accepted but not
	// honoured.
	idem port.IdempotencyStore

	// feeRate is the platform fee as a fraction of the subtotal.
	feeRate float64
}

// NewOrderUseCase creates a usecase over the given repository. idem may be
// nil to disable idempotent creation.
func NewOrderUseCase(repo port.OrderRepository, idem port.IdempotencyStore, feeRate float64) *OrderUseCase {
	return &OrderUseCase{repo: repo, idem: idem, feeRate: feeRate}
}

// CreateOrder validates the request, prices it and persists the order with
// its line items and one pending deliverable per unit of quantity, as a
// single atomic unit. A supplied match is marked selected in the same
// transaction and at most one order can win it.
func (u *OrderUseCase) CreateOrder(ctx context.Context, req port.CreateOrderReq) (*port.OrderResult, error) {
	if req.CampaignID == uuid.Nil {
		return nil, fmt.Errorf("%w: campaign id is required", domain.ErrInvalidInput)
	}
	if req.PublisherID == uuid.Nil {
		return nil, fmt.Errorf("%w: publisher id is required", domain.ErrInvalidInput)
	}
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("%w: at least one line item is required", domain.ErrInvalidInput)
	}

	if req.IdempotencyKey != "" && u.idem != nil {
		// Best effort, same contract as Put below: a store outage degrades
		// duplicate detection to a miss instead of blocking creation.
		if orderID, ok, err := u.idem.Get(ctx, req.IdempotencyKey); err == nil && ok {
			return u.loadResult(ctx, orderID)
		}
	}

	if _, err := u.repo.GetCampaign(ctx, req.CampaignID); err != nil {
		return nil, err
	}
	exists, err := u.repo.PublisherExists(ctx, req.PublisherID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: publisher %s", domain.ErrNotFound, req.PublisherID)
	}
	if req.MatchID != nil {
		match, err := u.repo.GetMatch(ctx, *req.MatchID)
		if err != nil {
			return nil, err
		}
		if match.IsSelected {
			return nil, fmt.Errorf("%w: match %s is already selected", domain.ErrConflict, match.ID)
		}
		if match.CampaignID != req.CampaignID || match.PublisherID != req.PublisherID {
			return nil, fmt.Errorf("%w: match %s does not pair campaign %s with publisher %s",
				domain.ErrInvalidInput, match.ID, req.CampaignID, req.PublisherID)
		}
	}

	pricing, err := domain.PriceLineItems(req.LineItems, u.feeRate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:                uuid.New(),
		CampaignID:        req.CampaignID,
		PublisherID:       req.PublisherID,
		MatchID:           req.MatchID,
		Status:            domain.OrderPendingPublisher,
		ProcurementStatus: domain.ProcurementNotSubmitted,
		Subtotal:          pricing.Subtotal,
		PlatformFee:       pricing.PlatformFee,
		Total:             pricing.Total,
		DeliveryDeadline:  req.DeliveryDeadline,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	lineItems := make([]domain.OrderLineItem, 0, len(pricing.LineItems))
	var deliverables []domain.Deliverable
	for _, priced := range pricing.LineItems {
		item := domain.OrderLineItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			DeliverableType: priced.DeliverableType,
			Platform:        priced.Platform,
			Quantity:        priced.Quantity,
			UnitPrice:       priced.UnitPrice,
			TotalPrice:      priced.TotalPrice,
			Description:     priced.Description,
			CreatedAt:       now,
		}
		lineItems = append(lineItems, item)
		// Quantity N becomes N independently submittable work items.
		for unit := 0; unit < priced.Quantity; unit++ {
			deliverables = append(deliverables, domain.Deliverable{
				ID:              uuid.New(),
				OrderID:         order.ID,
				LineItemID:      item.ID,
				Platform:        item.Platform,
				DeliverableType: item.DeliverableType,
				Status:          domain.DeliverablePending,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
		}
	}

	if err = u.repo.CreateOrder(ctx, port.NewOrder{
		Order:        order,
		LineItems:    lineItems,
		Deliverables: deliverables,
	}); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" && u.idem != nil {
		// Best effort: a lost entry only costs a retried caller the
		// duplicate-detection shortcut, never correctness of this order.
		_ = u.idem.Put(ctx, req.IdempotencyKey, order.ID)
	}

	return &port.OrderResult{Order: order, LineItems: lineItems}, nil
}

// GetOrder returns the full read model of one order.
func (u *OrderUseCase) GetOrder(ctx context.Context, orderID uuid.UUID) (*port.OrderDetail, error) {
	order, err := u.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	deliverables, err := u.repo.ListDeliverables(ctx, orderID)
	if err != nil {
		return nil, err
	}
	history, err := u.repo.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &port.OrderDetail{
		Order:        *order,
		LineItems:    items,
		Deliverables: deliverables,
		History:      history,
	}, nil
}

// SubmitDeliverable records a publisher submission against the earliest
// claimable deliverable of the line item and reports whether the order
// reached delivered as a result.
func (u *OrderUseCase) SubmitDeliverable(ctx context.Context, orderID, lineItemID uuid.UUID, sub domain.Submission) (*port.SubmissionResult, error) {
	if orderID == uuid.Nil || lineItemID == uuid.Nil {
		return nil, fmt.Errorf("%w: order id and line item id are required", domain.ErrInvalidInput)
	}
	if sub.Empty() {
		return nil, fmt.Errorf("%w: submission needs a url, screenshot or notes", domain.ErrInvalidInput)
	}
	deliverable, delivered, err := u.repo.ClaimDeliverable(ctx, orderID, lineItemID, sub)
	if err != nil {
		return nil, err
	}
	return &port.SubmissionResult{Deliverable: *deliverable, OrderDelivered: delivered}, nil
}

// ReviewDeliverable applies an advertiser decision to a submitted
// deliverable.
func (u *OrderUseCase) ReviewDeliverable(ctx context.Context, deliverableID uuid.UUID, decision port.ReviewDecision, notes string) (*domain.Deliverable, error) {
	switch decision {
	case port.ReviewApprove, port.ReviewRequestRevision:
	default:
		return nil, fmt.Errorf("%w: unknown review decision %q", domain.ErrInvalidInput, decision)
	}
	return u.repo.ReviewDeliverable(ctx, deliverableID, decision == port.ReviewApprove, notes)
}

// AdvanceOrderStatus applies an externally driven transition. The target
// status is taken as given; the repository enforces that it is a forward
// edge of the graph.
func (u *OrderUseCase) AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to domain.OrderStatus, changedBy, notes string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(to) {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidInput, to)
	}
	return u.repo.AdvanceOrderStatus(ctx, orderID, to, changedBy, notes)
}

// UpdateProcurement records purchase-order paperwork progress.
func (u *OrderUseCase) UpdateProcurement(ctx context.Context, orderID uuid.UUID, status domain.ProcurementStatus, poNumber string) (*domain.Order, error) {
	switch status {
	case domain.ProcurementNotSubmitted, domain.ProcurementSubmitted, domain.ProcurementApproved, domain.ProcurementPaid:
	default:
		return nil, fmt.Errorf("%w: unknown procurement status %q", domain.ErrInvalidInput, status)
	}
	return u.repo.UpdateProcurement(ctx, orderID, status, poNumber)
}

// CampaignOverview computes the derived display status for a campaign. It
// never writes anything back.
func (u *OrderUseCase) CampaignOverview(ctx context.Context, campaignID uuid.UUID) (*port.CampaignOverview, error) {
	eng, err := u.repo.CampaignEngagement(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &port.CampaignOverview{
		CampaignID:    eng.Campaign.ID,
		StoredStatus:  eng.Campaign.Status,
		DisplayStatus: domain.DeriveCampaignStatus(eng.Campaign.Status, eng.MatchCount, eng.OrderCount),
		MatchCount:    eng.MatchCount,
		OrderCount:    eng.OrderCount,
	}, nil
}

// ListIncompleteOrders surfaces orders whose record set is partial.
func (u *OrderUseCase) ListIncompleteOrders(ctx context.Context) ([]port.IncompleteOrder, error) {
	return u.repo.ListIncompleteOrders(ctx)
}

func (u *OrderUseCase) loadResult(ctx context.Context, orderID uuid.UUID) (*port.OrderResult, error) {
	order, err := u.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &port.OrderResult{Order: *order, LineItems: items}, nil
}
