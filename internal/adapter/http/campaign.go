package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

// handleCampaignOverview returns the derived display status dashboards
// show for a campaign. The label is computed at read time from engagement
// counts and is never written back to the campaign.
func (h *Handler) handleCampaignOverview(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathUUID(r, "campaignID")
	if err != nil {
		h.writeError(w, err)
		return
	}
	overview, err := h.svc.CampaignOverview(r.Context(), campaignID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		CampaignID    uuid.UUID `json:"campaign_id"`
		StoredStatus  string    `json:"stored_status"`
		DisplayStatus string    `json:"display_status"`
		MatchCount    int       `json:"match_count"`
		OrderCount    int       `json:"order_count"`
	}{
		CampaignID:    overview.CampaignID,
		StoredStatus:  string(overview.StoredStatus),
		DisplayStatus: string(overview.DisplayStatus),
		MatchCount:    overview.MatchCount,
		OrderCount:    overview.OrderCount,
	})
}
