package schema

import (
	"time"
)

// FeeSchedule represents the fee_schedule table - a single row of process-wide
// fee rates, mutable only by the administrative actor. Transitions read the
// current row inside their own transaction, so a change takes effect for all
// transitions initiated after the update; already-escrowed amounts are
// unaffected.
type FeeSchedule struct {
	ID int16 `gorm:"column:id;primaryKey"`
	// ColorizationFee is the minimum payment bound to a submission
	ColorizationFee int64 `gorm:"column:colorization_fee;not null"`
	// AdjustmentFee is the minimum payment bound to a manual adjustment
	AdjustmentFee int64 `gorm:"column:adjustment_fee;not null"`
	// MintFee is the minimum payment bound to a mint
	MintFee int64 `gorm:"column:mint_fee;not null"`
	// UpdatedAt is the last administrative change timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the FeeSchedule model
func (FeeSchedule) TableName() string {
	return "fee_schedule"
}
