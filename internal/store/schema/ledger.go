package schema

import (
	"time"
)

// LedgerEntryType classifies a treasury movement
type LedgerEntryType string

const (
	// LedgerEntryEscrow records value deposited into the pool by an actor
	LedgerEntryEscrow LedgerEntryType = "escrow"
	// LedgerEntryPayout records value disbursed from the pool to a processor
	LedgerEntryPayout LedgerEntryType = "payout"
	// LedgerEntryWithdrawal records platform revenue withdrawn by the administrator
	LedgerEntryWithdrawal LedgerEntryType = "withdrawal"
)

// LedgerEntry represents the ledger_entries table - an append-only journal of
// every escrow, payout, and withdrawal. Each row is written in the same
// transaction as the transition that caused it.
type LedgerEntry struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EntryType classifies the movement
	EntryType LedgerEntryType `gorm:"column:entry_type;not null;type:text"`
	// PhotoID links the entry to a photo (nil for withdrawals)
	PhotoID *uint64 `gorm:"column:photo_id;index:idx_ledger_entries_photo_id"`
	// Counterparty is the actor on the other side of the movement:
	// the payer for escrows, the payee for payouts and withdrawals
	Counterparty string `gorm:"column:counterparty;not null;type:text"`
	// Amount is the moved value in base units, always positive
	Amount int64 `gorm:"column:amount;not null"`
	// CreatedAt is the movement timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
