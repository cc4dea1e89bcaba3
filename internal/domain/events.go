package domain

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType identifies a workflow event published for external observers
type EventType string

const (
	EventPhotoSubmitted          EventType = "photo_submitted"
	EventColorizationRequested   EventType = "colorization_requested"
	EventColorizationCompleted   EventType = "colorization_completed"
	EventManualAdjustmentMade    EventType = "manual_adjustment_made"
	EventAssetMinted             EventType = "asset_minted"
	EventProcessorRegistered     EventType = "processor_registered"
	EventProcessorStatusChanged  EventType = "processor_status_changed"
	EventReputationUpdated       EventType = "reputation_updated"
	EventFeesUpdated             EventType = "fees_updated"
	EventTreasuryWithdrawn       EventType = "treasury_withdrawn"
)

// Event is the envelope published to the message broker after a transition commits.
// IDs are ULIDs so consumers can order events lexicographically.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewEvent wraps a payload in an event envelope with a fresh ULID
func NewEvent(eventType EventType, payload any, at time.Time) *Event {
	return &Event{
		ID:        ulid.Make().String(),
		Type:      eventType,
		Timestamp: at,
		Payload:   payload,
	}
}

// PhotoSubmittedPayload is emitted when a new photo enters the workflow
type PhotoSubmittedPayload struct {
	PhotoID     uint64 `json:"photo_id"`
	Owner       string `json:"owner"`
	OriginalRef string `json:"original_ref"`
}

// ColorizationRequestedPayload signals processors that a photo awaits colorization
type ColorizationRequestedPayload struct {
	PhotoID   uint64 `json:"photo_id"`
	Requester string `json:"requester"`
	Fee       int64  `json:"fee"`
}

// ColorizationCompletedPayload is emitted when a processor delivers a result
type ColorizationCompletedPayload struct {
	PhotoID      uint64 `json:"photo_id"`
	ColorizedRef string `json:"colorized_ref"`
	Processor    string `json:"processor"`
	Payout       int64  `json:"payout"`
}

// ManualAdjustmentMadePayload is emitted for each owner adjustment
type ManualAdjustmentMadePayload struct {
	PhotoID  uint64          `json:"photo_id"`
	Adjuster string          `json:"adjuster"`
	Payload  json.RawMessage `json:"payload"`
}

// AssetMintedPayload is emitted when the external ledger issues the collectible
type AssetMintedPayload struct {
	AssetID string `json:"asset_id"`
	PhotoID uint64 `json:"photo_id"`
	Owner   string `json:"owner"`
}

// ProcessorRegisteredPayload is emitted when a new processor joins the pool
type ProcessorRegisteredPayload struct {
	Identity string `json:"identity"`
	ModelRef string `json:"model_ref"`
}

// ProcessorStatusChangedPayload is emitted on administrative activation changes
type ProcessorStatusChangedPayload struct {
	Identity string `json:"identity"`
	Active   bool   `json:"active"`
}

// ReputationUpdatedPayload is emitted on administrative reputation changes
type ReputationUpdatedPayload struct {
	Identity   string `json:"identity"`
	Reputation int    `json:"reputation"`
}

// FeesUpdatedPayload is emitted when the administrative actor changes fee rates
type FeesUpdatedPayload struct {
	ColorizationFee int64 `json:"colorization_fee"`
	AdjustmentFee   int64 `json:"adjustment_fee"`
	MintFee         int64 `json:"mint_fee"`
}

// TreasuryWithdrawnPayload is emitted when pooled platform revenue is withdrawn
type TreasuryWithdrawnPayload struct {
	Amount int64  `json:"amount"`
	To     string `json:"to"`
}
