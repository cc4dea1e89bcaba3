package schema

import (
	"time"
)

// Processor represents the processors table - one row per registered
// colorization agent.
type Processor struct {
	// Identity is the processor's actor identity
	Identity string `gorm:"column:identity;primaryKey;type:text"`
	// ModelRef is an opaque descriptor of the colorization capability
	ModelRef string `gorm:"column:model_ref;not null;type:text"`
	// TotalProcessed counts successful colorization submissions.
	// Incremented only by the workflow engine.
	TotalProcessed uint64 `gorm:"column:total_processed;not null;default:0"`
	// Reputation is a bounded score in [0,100], adjustable only administratively
	Reputation int `gorm:"column:reputation;not null;default:50"`
	// Active gates whether the processor may submit colorizations
	Active bool `gorm:"column:active;not null;default:true"`
	// RegisteredAt is the registration timestamp
	RegisteredAt time.Time `gorm:"column:registered_at;not null"`
}

// TableName specifies the table name for the Processor model
func (Processor) TableName() string {
	return "processors"
}
