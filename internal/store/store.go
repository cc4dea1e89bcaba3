package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/palettelab/retint/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names Store=MockStore

// MintFunc performs the external mint for a photo and returns the asset id.
// It is invoked inside the minting transaction so that a mint failure rolls
// back the status change and the escrow together.
type MintFunc func(ctx context.Context, owner, metadataRef string) (assetID string, err error)

// CreatePhotoSubmissionInput carries the data for a new submission
type CreatePhotoSubmissionInput struct {
	Owner       string
	OriginalRef string
	EscrowedFee int64
	SubmittedAt time.Time
}

// ApplyColorizationInput carries the data for a colorization delivery.
// The transition collects no payment; the payout is carved out of the fee
// escrowed at submission time.
type ApplyColorizationInput struct {
	PhotoID      uint64
	Processor    string
	ColorizedRef string
	// ShareBPS is the processor's share of the escrowed fee, in basis points
	ShareBPS    int64
	ColorizedAt time.Time
}

// ApplyColorizationResult reports the outcome of a colorization transition
type ApplyColorizationResult struct {
	Photo         *schema.Photo
	Payout        int64
	PlatformShare int64
}

// AppendAdjustmentInput carries the data for a manual adjustment
type AppendAdjustmentInput struct {
	PhotoID   uint64
	Adjuster  string
	Payload   json.RawMessage
	FinalRef  string
	Payment   int64
	AppliedAt time.Time
}

// MintPhotoInput carries the data for a mint transition
type MintPhotoInput struct {
	PhotoID     uint64
	Minter      string
	MetadataRef string
	Payment     int64
	MintedAt    time.Time
}

// LedgerEntriesFilter narrows a journal listing. Zero values mean no filter.
type LedgerEntriesFilter struct {
	EntryType schema.LedgerEntryType
	PhotoID   *uint64
	Offset    int
	Limit     int
}

// Store provides the persistence layer for photos, processors, and the
// fee ledger. Each transition method runs as a single transaction with the
// photo row locked FOR UPDATE, which serializes transitions per photo.
type Store interface {
	// Bootstrap seeds the singleton treasury and fee schedule rows if absent
	Bootstrap(ctx context.Context, colorizationFee, adjustmentFee, mintFee int64) error

	// GetFeeSchedule returns the current fee schedule
	GetFeeSchedule(ctx context.Context) (*schema.FeeSchedule, error)

	// UpdateFeeSchedule replaces the fee schedule rates
	UpdateFeeSchedule(ctx context.Context, colorizationFee, adjustmentFee, mintFee int64, updatedAt time.Time) (*schema.FeeSchedule, error)

	// CreatePhotoSubmission inserts a new photo in the submitted state,
	// escrows the payment, and journals it
	CreatePhotoSubmission(ctx context.Context, input CreatePhotoSubmissionInput) (*schema.Photo, error)

	// ApplyColorization transitions a photo to ai_colorized, escrows the
	// payment, and disburses the processor's share from the pool
	ApplyColorization(ctx context.Context, input ApplyColorizationInput) (*ApplyColorizationResult, error)

	// AppendAdjustment records a manual edit, transitions the photo to
	// manually_adjusted, and escrows the payment
	AppendAdjustment(ctx context.Context, input AppendAdjustmentInput) (*schema.Photo, error)

	// MintPhoto escrows the payment, invokes mint, and finalizes the photo
	// as asset_minted. A mint failure rolls back the whole transition.
	MintPhoto(ctx context.Context, input MintPhotoInput, mint MintFunc) (*schema.Photo, error)

	// GetPhotoByID returns a photo with its adjustments, or nil if absent
	GetPhotoByID(ctx context.Context, id uint64) (*schema.Photo, error)

	// GetPhotoIDsByOwner returns the ids of the owner's photos in submission order
	GetPhotoIDsByOwner(ctx context.Context, owner string) ([]uint64, error)

	// GetAdjustmentsByPhotoID returns a photo's adjustments in submission order
	GetAdjustmentsByPhotoID(ctx context.Context, photoID uint64) ([]schema.Adjustment, error)

	// CreateProcessor registers a new processor profile
	CreateProcessor(ctx context.Context, processor schema.Processor) error

	// GetProcessor returns a processor profile, or nil if absent
	GetProcessor(ctx context.Context, identity string) (*schema.Processor, error)

	// SetProcessorActive flips a processor's active flag
	SetProcessorActive(ctx context.Context, identity string, active bool) (*schema.Processor, error)

	// SetProcessorReputation overwrites a processor's reputation score
	SetProcessorReputation(ctx context.Context, identity string, reputation int) (*schema.Processor, error)

	// TreasuryBalance returns the current pooled balance
	TreasuryBalance(ctx context.Context) (int64, error)

	// WithdrawTreasury drains the pool to zero and journals the withdrawal,
	// returning the withdrawn amount
	WithdrawTreasury(ctx context.Context, to string, at time.Time) (int64, error)

	// GetLedgerEntries returns journal rows matching the filter, newest first,
	// along with the unpaged total
	GetLedgerEntries(ctx context.Context, filter LedgerEntriesFilter) ([]schema.LedgerEntry, int64, error)
}
