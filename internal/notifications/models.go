package notifications

import "time"

// Activity event types emitted by the lifecycle and investment flows.
const (
	EventAssetSubmitted = "ASSET_SUBMITTED"
	EventAssetApproved  = "ASSET_APPROVED"
	EventAssetRejected  = "ASSET_REJECTED"
	EventAssetUnlisted  = "ASSET_UNLISTED"
	EventReviewRevoked  = "REVIEW_REVOKED"
	EventInvestmentMade = "INVESTMENT_MADE"
	EventDividendPaid   = "DIVIDEND_PAID"
	EventMilestoneHit   = "MILESTONE_REACHED"
)

// Event is a single activity feed entry, also pushed to websocket
// subscribers.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Recorder receives lifecycle events. Implemented by the websocket hub
// and the dashboard activity log.
type Recorder interface {
	Record(eventType, description string)
}

// Fanout forwards each event to every recorder.
type Fanout []Recorder

func (f Fanout) Record(eventType, description string) {
	for _, r := range f {
		r.Record(eventType, description)
	}
}
