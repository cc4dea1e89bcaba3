package schema

import (
	"time"

	"github.com/palettelab/retint/internal/domain"
)

// Photo represents the photos table - one row per restoration submission.
// IDs are assigned by the database sequence: monotonic, never reused.
type Photo struct {
	// ID is the internal database primary key and the public photo id
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Owner is the identity of the submitting actor; immutable after creation
	Owner string `gorm:"column:owner;not null;type:text;index:idx_photos_owner"`
	// OriginalRef is the opaque content reference for the submitted image
	OriginalRef string `gorm:"column:original_ref;not null;type:text"`
	// ColorizedRef is the content reference delivered by the processor (nil until colorized)
	ColorizedRef *string `gorm:"column:colorized_ref;type:text"`
	// FinalRef is the content reference of the current final asset.
	// Non-nil iff the photo has been colorized at least once.
	FinalRef *string `gorm:"column:final_ref;type:text"`
	// Status is the current workflow state
	Status domain.PhotoStatus `gorm:"column:status;not null;type:text"`
	// EscrowedFee is the amount deposited at submission time; immutable once set
	EscrowedFee int64 `gorm:"column:escrowed_fee;not null"`
	// AssignedProcessor is the identity that produced the colorization (nil until then)
	AssignedProcessor *string `gorm:"column:assigned_processor;type:text"`
	// MintedAssetID is set exactly once, when the minting transition succeeds
	MintedAssetID *string `gorm:"column:minted_asset_id;type:text"`
	// SubmittedAt is the submission timestamp
	SubmittedAt time.Time `gorm:"column:submitted_at;not null"`
	// ColorizedAt is the colorization timestamp (nil until colorized)
	ColorizedAt *time.Time `gorm:"column:colorized_at"`

	// Associations
	Adjustments []Adjustment `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Photo model
func (Photo) TableName() string {
	return "photos"
}
