package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
	"civic-orders/internal/core/port/mocks"
)

const testFeeRate = 0.15

func stubCampaign(id uuid.UUID) *domain.Campaign {
	return &domain.Campaign{ID: id, Status: domain.CampaignDraft}
}

// TestCreateOrderPricesAndFansOut checks that a create computes the fee on
// top of the subtotal and spawns one pending deliverable per unit of line
// item quantity, all handed to the repository as one record set.
func TestCreateOrderPricesAndFansOut(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	campaignID := uuid.New()
	publisherID := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(stubCampaign(campaignID), nil)
	repo.EXPECT().PublisherExists(mock.Anything, publisherID).Return(true, nil)

	var captured port.NewOrder
	repo.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("port.NewOrder")).
		Run(func(ctx context.Context, rec port.NewOrder) { captured = rec }).
		Return(nil)

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	res, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:  campaignID,
		PublisherID: publisherID,
		LineItems: []domain.LineItemRequest{
			{DeliverableType: "sponsored_post", Platform: "instagram", Quantity: 2, UnitPrice: 15000},
			{DeliverableType: "newsletter_feature", Platform: "email", Quantity: 1, UnitPrice: 30000},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if res.Order.Subtotal != 60000 || res.Order.PlatformFee != 9000 || res.Order.Total != 69000 {
		t.Fatalf("pricing: got %d/%d/%d, want 60000/9000/69000",
			res.Order.Subtotal, res.Order.PlatformFee, res.Order.Total)
	}
	if res.Order.Status != domain.OrderPendingPublisher {
		t.Fatalf("status: got %s, want %s", res.Order.Status, domain.OrderPendingPublisher)
	}
	if res.Order.ProcurementStatus != domain.ProcurementNotSubmitted {
		t.Fatalf("procurement status: got %s", res.Order.ProcurementStatus)
	}

	if len(captured.LineItems) != 2 {
		t.Fatalf("line items: got %d, want 2", len(captured.LineItems))
	}
	if len(captured.Deliverables) != 3 {
		t.Fatalf("deliverables: got %d, want 3 (2 + 1)", len(captured.Deliverables))
	}
	perItem := map[uuid.UUID]int{}
	for _, d := range captured.Deliverables {
		if d.Status != domain.DeliverablePending {
			t.Fatalf("deliverable status: got %s, want pending", d.Status)
		}
		if d.OrderID != captured.Order.ID {
			t.Fatalf("deliverable order id mismatch")
		}
		perItem[d.LineItemID]++
	}
	for _, item := range captured.LineItems {
		if perItem[item.ID] != item.Quantity {
			t.Fatalf("line item %s: got %d deliverables, want %d", item.ID, perItem[item.ID], item.Quantity)
		}
	}
}

// TestCreateOrderEmptyLineItems ensures nothing reaches the repository
// when the request carries no line items.
func TestCreateOrderEmptyLineItems(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	svc := NewOrderUseCase(repo, nil, testFeeRate)

	_, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:  uuid.New(),
		PublisherID: uuid.New(),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestCreateOrderUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	campaignID := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, campaignID).
		Return(nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID))

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	_, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:  campaignID,
		PublisherID: uuid.New(),
		LineItems:   []domain.LineItemRequest{{Quantity: 1, UnitPrice: 100}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// TestCreateOrderMatchAlreadySelected ensures a selected match is rejected
// before anything is persisted.
func TestCreateOrderMatchAlreadySelected(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	campaignID := uuid.New()
	publisherID := uuid.New()
	matchID := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(stubCampaign(campaignID), nil)
	repo.EXPECT().PublisherExists(mock.Anything, publisherID).Return(true, nil)
	repo.EXPECT().GetMatch(mock.Anything, matchID).Return(&domain.CampaignMatch{
		ID:          matchID,
		CampaignID:  campaignID,
		PublisherID: publisherID,
		IsSelected:  true,
	}, nil)

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	_, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:  campaignID,
		PublisherID: publisherID,
		MatchID:     &matchID,
		LineItems:   []domain.LineItemRequest{{Quantity: 1, UnitPrice: 100}},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestCreateOrderMatchPairMismatch(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	campaignID := uuid.New()
	publisherID := uuid.New()
	matchID := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(stubCampaign(campaignID), nil)
	repo.EXPECT().PublisherExists(mock.Anything, publisherID).Return(true, nil)
	repo.EXPECT().GetMatch(mock.Anything, matchID).Return(&domain.CampaignMatch{
		ID:          matchID,
		CampaignID:  uuid.New(), // belongs to a different campaign
		PublisherID: publisherID,
	}, nil)

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	_, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:  campaignID,
		PublisherID: publisherID,
		MatchID:     &matchID,
		LineItems:   []domain.LineItemRequest{{Quantity: 1, UnitPrice: 100}},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

// TestCreateOrderIdempotentRetry ensures a retried create with the same
// idempotency key returns the original order without touching the factory
// path again.
func TestCreateOrderIdempotentRetry(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	idem := mocks.NewMockIdempotencyStore(t)

	orderID := uuid.New()
	existing := &domain.Order{ID: orderID, Status: domain.OrderPendingPublisher, Total: 69000}

	idem.EXPECT().Get(mock.Anything, "retry-key").Return(orderID, true, nil)
	repo.EXPECT().GetOrder(mock.Anything, orderID).Return(existing, nil)
	repo.EXPECT().ListLineItems(mock.Anything, orderID).Return([]domain.OrderLineItem{{OrderID: orderID}}, nil)

	svc := NewOrderUseCase(repo, idem, testFeeRate)
	res, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:     uuid.New(),
		PublisherID:    uuid.New(),
		LineItems:      []domain.LineItemRequest{{Quantity: 1, UnitPrice: 100}},
		IdempotencyKey: "retry-key",
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if res.Order.ID != orderID {
		t.Fatalf("got order %s, want the original %s", res.Order.ID, orderID)
	}
}

// TestCreateOrderIdempotencyStoreOutage ensures a failing key store
// degrades to a plain create instead of blocking the request.
func TestCreateOrderIdempotencyStoreOutage(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	idem := mocks.NewMockIdempotencyStore(t)

	campaignID := uuid.New()
	publisherID := uuid.New()

	idem.EXPECT().Get(mock.Anything, "retry-key").
		Return(uuid.Nil, false, fmt.Errorf("%w: store unreachable", domain.ErrDependency))
	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(stubCampaign(campaignID), nil)
	repo.EXPECT().PublisherExists(mock.Anything, publisherID).Return(true, nil)
	repo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("port.NewOrder")).Return(nil)
	idem.EXPECT().Put(mock.Anything, "retry-key", mock.AnythingOfType("uuid.UUID")).Return(nil)

	svc := NewOrderUseCase(repo, idem, testFeeRate)
	res, err := svc.CreateOrder(context.Background(), port.CreateOrderReq{
		CampaignID:     campaignID,
		PublisherID:    publisherID,
		LineItems:      []domain.LineItemRequest{{Quantity: 1, UnitPrice: 100}},
		IdempotencyKey: "retry-key",
	})
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if res.Order.Total != 115 {
		t.Fatalf("total: got %d, want 115", res.Order.Total)
	}
}

func TestSubmitDeliverableReportsDelivery(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	orderID := uuid.New()
	lineItemID := uuid.New()
	sub := domain.Submission{URL: "https://example.com/post/1"}

	repo.EXPECT().ClaimDeliverable(mock.Anything, orderID, lineItemID, sub).
		Return(&domain.Deliverable{OrderID: orderID, LineItemID: lineItemID, Status: domain.DeliverableSubmitted}, true, nil)

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	res, err := svc.SubmitDeliverable(context.Background(), orderID, lineItemID, sub)
	if err != nil {
		t.Fatalf("SubmitDeliverable error: %v", err)
	}
	if !res.OrderDelivered {
		t.Fatal("expected the submission to report delivery")
	}
	if res.Deliverable.Status != domain.DeliverableSubmitted {
		t.Fatalf("deliverable status: got %s, want submitted", res.Deliverable.Status)
	}
}

func TestSubmitDeliverableRequiresProof(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	svc := NewOrderUseCase(repo, nil, testFeeRate)

	_, err := svc.SubmitDeliverable(context.Background(), uuid.New(), uuid.New(), domain.Submission{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestSubmitDeliverableNoneClaimable(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	orderID := uuid.New()
	lineItemID := uuid.New()
	sub := domain.Submission{Notes: "done"}

	repo.EXPECT().ClaimDeliverable(mock.Anything, orderID, lineItemID, sub).
		Return(nil, false, fmt.Errorf("%w: every deliverable of line item %s is already submitted or approved",
			domain.ErrConflict, lineItemID))

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	_, err := svc.SubmitDeliverable(context.Background(), orderID, lineItemID, sub)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestReviewDeliverableRejectsUnknownDecision(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	svc := NewOrderUseCase(repo, nil, testFeeRate)

	_, err := svc.ReviewDeliverable(context.Background(), uuid.New(), "maybe", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestAdvanceOrderStatusRejectsUnknownStatus(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)
	svc := NewOrderUseCase(repo, nil, testFeeRate)

	_, err := svc.AdvanceOrderStatus(context.Background(), uuid.New(), "shipped", "", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}

func TestCampaignOverviewDerivesDisplayStatus(t *testing.T) {
	repo := mocks.NewMockOrderRepository(t)

	campaignID := uuid.New()
	repo.EXPECT().CampaignEngagement(mock.Anything, campaignID).Return(&port.CampaignEngagement{
		Campaign:   domain.Campaign{ID: campaignID, Status: domain.CampaignDraft},
		MatchCount: 2,
		OrderCount: 0,
	}, nil)

	svc := NewOrderUseCase(repo, nil, testFeeRate)
	overview, err := svc.CampaignOverview(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("CampaignOverview error: %v", err)
	}
	if overview.StoredStatus != domain.CampaignDraft {
		t.Fatalf("stored status: got %s, want draft", overview.StoredStatus)
	}
	if overview.DisplayStatus != domain.CampaignMatching {
		t.Fatalf("display status: got %s, want matching", overview.DisplayStatus)
	}
}
