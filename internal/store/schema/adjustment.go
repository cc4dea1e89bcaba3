package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Adjustment represents the adjustments table - append-only manual edit history
// owned by a photo. Rows are ordered by id, which follows submission order; they
// are never mutated or deleted.
type Adjustment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PhotoID is a back-reference to the owning photo
	PhotoID uint64 `gorm:"column:photo_id;not null;index:idx_adjustments_photo_id"`
	// Adjuster is the identity that applied the edit
	Adjuster string `gorm:"column:adjuster;not null;type:text"`
	// Payload is the opaque structured adjustment data
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// AppliedAt is the adjustment timestamp
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

// TableName specifies the table name for the Adjustment model
func (Adjustment) TableName() string {
	return "adjustments"
}
