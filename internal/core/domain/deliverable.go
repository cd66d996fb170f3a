package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliverableStatus is the lifecycle state of a single fulfillable unit.
// pending is initial; approved is the only terminal state. A submitted
// unit may be pushed back to revision_requested and resubmitted.
type DeliverableStatus string

const (
	DeliverablePending           DeliverableStatus = "pending"
	DeliverableSubmitted         DeliverableStatus = "submitted"
	DeliverableApproved          DeliverableStatus = "approved"
	DeliverableRevisionRequested DeliverableStatus = "revision_requested"
)

// Claimable reports whether a deliverable in this status can accept a
// publisher submission.
func (s DeliverableStatus) Claimable() bool {
	return s == DeliverablePending || s == DeliverableRevisionRequested
}

// Deliverable is one trackable unit of work, exactly one per unit of its
// line item's quantity. Created in bulk at order creation, mutated only by
// the submission workflow and reviewer actions.
type Deliverable struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	LineItemID      uuid.UUID
	Platform        string
	DeliverableType string
	Status          DeliverableStatus
	SubmissionURL   string
	ScreenshotURL   string
	SubmissionNotes string
	Metrics         map[string]int64
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Submission is the publisher-supplied proof of work for one deliverable.
// At least one field must be set.
type Submission struct {
	URL           string
	ScreenshotURL string
	Notes         string
}

// Empty reports whether the submission carries no proof at all.
func (s Submission) Empty() bool {
	return s.URL == "" && s.ScreenshotURL == "" && s.Notes == ""
}
