package httpadapter

import (
	"time"

	"github.com/google/uuid"

	"civic-orders/internal/core/domain"
	"civic-orders/internal/core/port"
)

// JSON views of the domain entities. Money fields are minor currency
// units, same as stored.

type orderView struct {
	ID                uuid.UUID  `json:"id"`
	CampaignID        uuid.UUID  `json:"campaign_id"`
	PublisherID       uuid.UUID  `json:"publisher_id"`
	MatchID           *uuid.UUID `json:"match_id,omitempty"`
	Status            string     `json:"status"`
	ProcurementStatus string     `json:"procurement_status"`
	PONumber          string     `json:"po_number,omitempty"`
	Subtotal          int64      `json:"subtotal"`
	PlatformFee       int64      `json:"platform_fee"`
	Total             int64      `json:"total"`
	DeliveryDeadline  *time.Time `json:"delivery_deadline,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type lineItemView struct {
	ID              uuid.UUID `json:"id"`
	DeliverableType string    `json:"deliverable_type"`
	Platform        string    `json:"platform"`
	Quantity        int       `json:"quantity"`
	UnitPrice       int64     `json:"unit_price"`
	TotalPrice      int64     `json:"total_price"`
	Description     string    `json:"description,omitempty"`
}

type deliverableView struct {
	ID              uuid.UUID        `json:"id"`
	OrderID         uuid.UUID        `json:"order_id"`
	LineItemID      uuid.UUID        `json:"line_item_id"`
	Platform        string           `json:"platform"`
	DeliverableType string           `json:"deliverable_type"`
	Status          string           `json:"status"`
	SubmissionURL   string           `json:"submission_url,omitempty"`
	ScreenshotURL   string           `json:"screenshot_url,omitempty"`
	SubmissionNotes string           `json:"submission_notes,omitempty"`
	Metrics         map[string]int64 `json:"metrics,omitempty"`
	SubmittedAt     *time.Time       `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time       `json:"approved_at,omitempty"`
}

type statusChangeView struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedAt  time.Time `json:"changed_at"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

func viewOrder(o domain.Order) orderView {
	return orderView{
		ID:                o.ID,
		CampaignID:        o.CampaignID,
		PublisherID:       o.PublisherID,
		MatchID:           o.MatchID,
		Status:            string(o.Status),
		ProcurementStatus: string(o.ProcurementStatus),
		PONumber:          o.PONumber,
		Subtotal:          o.Subtotal,
		PlatformFee:       o.PlatformFee,
		Total:             o.Total,
		DeliveryDeadline:  o.DeliveryDeadline,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func viewLineItems(items []domain.OrderLineItem) []lineItemView {
	views := make([]lineItemView, 0, len(items))
	for _, it := range items {
		views = append(views, lineItemView{
			ID:              it.ID,
			DeliverableType: it.DeliverableType,
			Platform:        it.Platform,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			Description:     it.Description,
		})
	}
	return views
}

func viewDeliverable(d domain.Deliverable) deliverableView {
	return deliverableView{
		ID:              d.ID,
		OrderID:         d.OrderID,
		LineItemID:      d.LineItemID,
		Platform:        d.Platform,
		DeliverableType: d.DeliverableType,
		Status:          string(d.Status),
		SubmissionURL:   d.SubmissionURL,
		ScreenshotURL:   d.ScreenshotURL,
		SubmissionNotes: d.SubmissionNotes,
		Metrics:         d.Metrics,
		SubmittedAt:     d.SubmittedAt,
		ApprovedAt:      d.ApprovedAt,
	}
}

func viewDeliverables(deliverables []domain.Deliverable) []deliverableView {
	views := make([]deliverableView, 0, len(deliverables))
	for _, d := range deliverables {
		views = append(views, viewDeliverable(d))
	}
	return views
}

func viewHistory(history []domain.StatusChange) []statusChangeView {
	views := make([]statusChangeView, 0, len(history))
	for _, sc := range history {
		views = append(views, statusChangeView{
			FromStatus: string(sc.FromStatus),
			ToStatus:   string(sc.ToStatus),
			ChangedAt:  sc.ChangedAt,
			ChangedBy:  sc.ChangedBy,
			Notes:      sc.Notes,
		})
	}
	return views
}

type orderResultView struct {
	Order     orderView      `json:"order"`
	LineItems []lineItemView `json:"line_items"`
}

func viewOrderResult(res *port.OrderResult) orderResultView {
	return orderResultView{Order: viewOrder(res.Order), LineItems: viewLineItems(res.LineItems)}
}
