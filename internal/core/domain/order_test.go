package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderDraft, OrderPendingPublisher},
		{OrderPendingPublisher, OrderAccepted},
		{OrderAccepted, OrderInProgress},
		{OrderInProgress, OrderDelivered},
		{OrderDelivered, OrderCompleted},
		{OrderCompleted, OrderPaid},
		{OrderPendingPublisher, OrderRejected},
		{OrderInProgress, OrderCancelled},
		{OrderDelivered, OrderCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Fatalf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to OrderStatus }{
		{OrderDelivered, OrderInProgress}, // no backward moves
		{OrderPaid, OrderCompleted},
		{OrderCancelled, OrderInProgress}, // absorbing
		{OrderRejected, OrderAccepted},
		{OrderCompleted, OrderCancelled}, // only pre-completed states can cancel
		{OrderDraft, OrderDelivered},     // no skipping
		{OrderInProgress, OrderInProgress},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Fatalf("%s -> %s should be forbidden", tc.from, tc.to)
		}
	}
}

func TestShouldAutoAdvance(t *testing.T) {
	cases := []struct {
		name         string
		status       OrderStatus
		deliverables []DeliverableStatus
		want         bool
	}{
		{
			name:         "all submitted while in progress",
			status:       OrderInProgress,
			deliverables: []DeliverableStatus{DeliverableSubmitted, DeliverableSubmitted, DeliverableSubmitted},
			want:         true,
		},
		{
			name:         "mix of submitted and approved counts as done",
			status:       OrderInProgress,
			deliverables: []DeliverableStatus{DeliverableApproved, DeliverableSubmitted},
			want:         true,
		},
		{
			name:         "one unit still pending",
			status:       OrderInProgress,
			deliverables: []DeliverableStatus{DeliverableSubmitted, DeliverablePending},
			want:         false,
		},
		{
			name:         "revision in flight blocks advance",
			status:       OrderInProgress,
			deliverables: []DeliverableStatus{DeliverableSubmitted, DeliverableRevisionRequested},
			want:         false,
		},
		{
			name:         "already delivered is a no-op",
			status:       OrderDelivered,
			deliverables: []DeliverableStatus{DeliverableSubmitted, DeliverableSubmitted},
			want:         false,
		},
		{
			name:         "not yet in progress never advances",
			status:       OrderAccepted,
			deliverables: []DeliverableStatus{DeliverableSubmitted},
			want:         false,
		},
		{
			name:         "no deliverables never advances",
			status:       OrderInProgress,
			deliverables: nil,
			want:         false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldAutoAdvance(tc.status, tc.deliverables); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeliverableStatusClaimable(t *testing.T) {
	if !DeliverablePending.Claimable() || !DeliverableRevisionRequested.Claimable() {
		t.Fatal("pending and revision_requested must be claimable")
	}
	if DeliverableSubmitted.Claimable() || DeliverableApproved.Claimable() {
		t.Fatal("submitted and approved must not be claimable")
	}
}
