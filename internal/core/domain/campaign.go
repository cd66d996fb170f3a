package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the stored lifecycle status of a campaign. The engine
// reads it and derives a display label from it; it never writes one back.
type CampaignStatus string

const (
	CampaignDraft    CampaignStatus = "draft"
	CampaignMatching CampaignStatus = "matching"
	CampaignActive   CampaignStatus = "active"
	CampaignPaused   CampaignStatus = "paused"
	CampaignEnded    CampaignStatus = "ended"
)

// Campaign is an advertiser's request for outreach. Budgets are stored in
// integer minor currency units. The engine treats campaigns as read-only
// except for status changes driven by order activity.
type Campaign struct {
	ID             uuid.UUID
	AdvertiserID   uuid.UUID
	Name           string
	SourceCategory string // government, business, nonprofit, foundation
	BudgetMin      int64
	BudgetMax      int64
	StartDate      time.Time
	EndDate        time.Time
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CampaignMatch is a proposed campaign/publisher pairing produced by an
// external matching process. The engine only ever flips IsSelected to true.
type CampaignMatch struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	PublisherID uuid.UUID
	IsSelected  bool
	CreatedAt   time.Time
}

// DeriveCampaignStatus computes the coarse display label dashboards show
// for a campaign. It is a pure projection over the stored status plus
// engagement counts and is never persisted: a campaign with open matches
// looks like it is matching, and one with real orders looks active, without
// any intermediate system having to write that status back.
func DeriveCampaignStatus(raw CampaignStatus, matchCount, orderCount int) CampaignStatus {
	if orderCount > 0 && (raw == CampaignDraft || raw == CampaignMatching) {
		return CampaignActive
	}
	if matchCount > 0 && raw == CampaignDraft {
		return CampaignMatching
	}
	return raw
}
