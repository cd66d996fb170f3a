package httpadapter

import (
	"encoding/json"
	"net/http"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

// handleSubmitDeliverable records a publisher submission against the
// earliest still-claimable deliverable of the line item. The response
// flags whether this submission completed the order's delivery.
func (h *Handler) handleSubmitDeliverable(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathUUID(r, "orderID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	lineItemID, err := pathUUID(r, "lineItemID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var body struct {
		URL           string `json:"url,omitempty"`
		ScreenshotURL string `json:"screenshot_url,omitempty"`
		Notes         string `json:"notes,omitempty"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.SubmitDeliverable(r.Context(), orderID, lineItemID, domain.Submission{
		URL:           body.URL,
		ScreenshotURL: body.ScreenshotURL,
		Notes:         body.Notes,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Deliverable    deliverableView `json:"deliverable"`
		OrderDelivered bool            `json:"order_delivered"`
	}{
		Deliverable:    viewDeliverable(res.Deliverable),
		OrderDelivered: res.OrderDelivered,
	})
}

// handleReviewDeliverable applies an advertiser review decision to a
// submitted deliverable: approve, or send it back for revision.
func (h *Handler) handleReviewDeliverable(w http.ResponseWriter, r *http.Request) {
	deliverableID, err := pathUUID(r, "deliverableID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	var body struct {
		Decision string `json:"decision"`
		Notes    string `json:"notes,omitempty"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	deliverable, err := h.svc.ReviewDeliverable(r.Context(), deliverableID, port.ReviewDecision(body.Decision), body.Notes)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, viewDeliverable(*deliverable))
}
