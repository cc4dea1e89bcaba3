package domain

// PhotoStatus represents the workflow state of a photo restoration record
type PhotoStatus string

const (
	// StatusSubmitted means the photo has been submitted and is awaiting colorization
	StatusSubmitted PhotoStatus = "submitted"
	// StatusAIColorized means a processor has delivered a colorized result
	StatusAIColorized PhotoStatus = "ai_colorized"
	// StatusManuallyAdjusted means the owner has applied at least one manual adjustment
	StatusManuallyAdjusted PhotoStatus = "manually_adjusted"
	// StatusCompleted means the restoration is finalized but not yet minted
	StatusCompleted PhotoStatus = "completed"
	// StatusAssetMinted means the final asset has been minted on the external ledger
	StatusAssetMinted PhotoStatus = "asset_minted"
)

// Valid reports whether the status is one of the known workflow states
func (s PhotoStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusAIColorized, StatusManuallyAdjusted, StatusCompleted, StatusAssetMinted:
		return true
	}
	return false
}

// AcceptsColorization reports whether a colorization result may be applied.
// Only a freshly submitted photo accepts one; this is what prevents a second
// processor from overwriting an already-colorized photo or re-collecting payment.
func (s PhotoStatus) AcceptsColorization() bool {
	return s == StatusSubmitted
}

// AcceptsAdjustment reports whether the owner may apply a manual adjustment
func (s PhotoStatus) AcceptsAdjustment() bool {
	return s == StatusAIColorized || s == StatusManuallyAdjusted
}

// AcceptsMint reports whether the photo may be minted as a collectible
func (s PhotoStatus) AcceptsMint() bool {
	return s == StatusAIColorized || s == StatusManuallyAdjusted || s == StatusCompleted
}

// Reputation bounds for processor profiles
const (
	MinReputation = 0
	MaxReputation = 100
	// DefaultReputation is assigned to newly registered processors
	DefaultReputation = 50
)

// ValidReputation reports whether value is within the allowed reputation range
func ValidReputation(value int) bool {
	return value >= MinReputation && value <= MaxReputation
}
