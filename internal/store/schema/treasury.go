package schema

// Treasury represents the treasury table - a single row holding the pooled
// balance from which disbursements are made. The row is locked FOR UPDATE by
// every transition that moves value, so escrow/disburse pairs never interleave.
type Treasury struct {
	ID int16 `gorm:"column:id;primaryKey"`
	// Balance is the pooled balance in base units
	Balance int64 `gorm:"column:balance;not null;default:0"`
}

// TableName specifies the table name for the Treasury model
func (Treasury) TableName() string {
	return "treasury"
}
