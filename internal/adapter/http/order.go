package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

type createOrderRequest struct {
	CampaignID  uuid.UUID  `json:"campaign_id"`
	PublisherID uuid.UUID  `json:"publisher_id"`
	MatchID     *uuid.UUID `json:"match_id,omitempty"`
	LineItems   []struct {
		DeliverableType string `json:"deliverable_type"`
		Platform        string `json:"platform"`
		Quantity        int    `json:"quantity"`
		UnitPrice       int64  `json:"unit_price"`
		Description     string `json:"description,omitempty"`
	} `json:"line_items"`
	DeliveryDeadline *time.Time `json:"delivery_deadline,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// handleCreateOrder prices and materializes an order. An optional
// Idempotency-Key header makes retries of the same create return the
// original order.
func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req := port.CreateOrderReq{
		CampaignID:       body.CampaignID,
		PublisherID:      body.PublisherID,
		MatchID:          body.MatchID,
		DeliveryDeadline: body.DeliveryDeadline,
		Notes:            body.Notes,
		IdempotencyKey:   r.Header.Get("Idempotency-Key"),
	}
	for _, it := range body.LineItems {
		req.LineItems = append(req.LineItems, domain.LineItemRequest{
			DeliverableType: it.DeliverableType,
			Platform:        it.Platform,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Description:     it.Description,
		})
	}
	res, err := h.svc.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, viewOrderResult(res))
}

// handleGetOrder returns the order with its line items, deliverables and
// status history.
func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathUUID(r, "orderID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	detail, err := h.svc.GetOrder(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Order        orderView          `json:"order"`
		LineItems    []lineItemView     `json:"line_items"`
		Deliverables []deliverableView  `json:"deliverables"`
		History      []statusChangeView `json:"history"`
	}{
		Order:        viewOrder(detail.Order),
		LineItems:    viewLineItems(detail.LineItems),
		Deliverables: viewDeliverables(detail.Deliverables),
		History:      viewHistory(detail.History),
	})
}

// handleAdvanceStatus applies an externally driven status transition such
// as a publisher accepting the order or the advertiser marking it paid.
func (h *Handler) handleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathUUID(r, "orderID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var body struct {
		Status    string `json:"status"`
		ChangedBy string `json:"changed_by,omitempty"`
		Notes     string `json:"notes,omitempty"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	order, err := h.svc.AdvanceOrderStatus(r.Context(), orderID, domain.OrderStatus(body.Status), body.ChangedBy, body.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, viewOrder(*order))
}

// handleProcurement records purchase-order paperwork progress.
func (h *Handler) handleProcurement(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathUUID(r, "orderID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var body struct {
		Status   string `json:"status"`
		PONumber string `json:"po_number,omitempty"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	order, err := h.svc.UpdateProcurement(r.Context(), orderID, domain.ProcurementStatus(body.Status), body.PONumber)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, viewOrder(*order))
}

// handleListIncomplete lists orders missing part of their record set so an
// operator can complete or void them.
func (h *Handler) handleListIncomplete(w http.ResponseWriter, r *http.Request) {
	incomplete, err := h.svc.ListIncompleteOrders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	type incompleteView struct {
		OrderID        uuid.UUID `json:"order_id"`
		Status         string    `json:"status"`
		LineItemCount  int       `json:"line_item_count"`
		ExpectedUnits  int       `json:"expected_units"`
		PersistedUnits int       `json:"persisted_units"`
	}
	views := make([]incompleteView, 0, len(incomplete))
	for _, inc := range incomplete {
		views = append(views, incompleteView{
			OrderID:        inc.OrderID,
			Status:         string(inc.Status),
			LineItemCount:  inc.LineItemCount,
			ExpectedUnits:  inc.ExpectedUnits,
			PersistedUnits: inc.PersistedUnits,
		})
	}
	h.writeJSON(w, http.StatusOK, views)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a uuid", domain.ErrInvalidInput, name)
	}
	return id, nil
}
