package domain

import "testing"

func TestDeriveCampaignStatus(t *testing.T) {
	cases := []struct {
		name       string
		raw        CampaignStatus
		matchCount int
		orderCount int
		want       CampaignStatus
	}{
		{"draft with nothing stays draft", CampaignDraft, 0, 0, CampaignDraft},
		{"draft with matches looks matching", CampaignDraft, 3, 0, CampaignMatching},
		{"draft with orders looks active", CampaignDraft, 0, 1, CampaignActive},
		{"matching with orders looks active", CampaignMatching, 2, 1, CampaignActive},
		{"stored active passes through", CampaignActive, 5, 2, CampaignActive},
		{"paused is never overridden", CampaignPaused, 4, 3, CampaignPaused},
		{"ended is never overridden", CampaignEnded, 1, 1, CampaignEnded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveCampaignStatus(tc.raw, tc.matchCount, tc.orderCount); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}
