package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/store/schema"
)

// singletonRowID is the fixed primary key of the treasury and fee_schedule rows
const singletonRowID = int16(1)

// defaultLedgerPageSize caps unbounded journal listings
const (
	defaultLedgerPageSize = 50
	maxLedgerPageSize     = 200
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. It accesses the underlying *sql.DB and sets the pool
// configuration. Zero values fall back to the defaults applied by
// NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Migrate creates or updates the database schema from the model definitions
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&schema.Photo{},
		&schema.Adjustment{},
		&schema.Processor{},
		&schema.LedgerEntry{},
		&schema.Treasury{},
		&schema.FeeSchedule{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Bootstrap seeds the singleton treasury and fee schedule rows if absent.
// Existing rows are left untouched, so restarting the process never resets
// the pooled balance or administratively changed fee rates.
func (s *pgStore) Bootstrap(ctx context.Context, colorizationFee, adjustmentFee, mintFee int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Seed the treasury row
		treasury := schema.Treasury{ID: singletonRowID, Balance: 0}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&treasury).Error; err != nil {
			return fmt.Errorf("failed to seed treasury: %w", err)
		}

		// 2. Seed the fee schedule row
		feeSchedule := schema.FeeSchedule{
			ID:              singletonRowID,
			ColorizationFee: colorizationFee,
			AdjustmentFee:   adjustmentFee,
			MintFee:         mintFee,
			UpdatedAt:       time.Now().UTC(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&feeSchedule).Error; err != nil {
			return fmt.Errorf("failed to seed fee schedule: %w", err)
		}

		return nil
	})
}

// GetFeeSchedule returns the current fee schedule
func (s *pgStore) GetFeeSchedule(ctx context.Context) (*schema.FeeSchedule, error) {
	var feeSchedule schema.FeeSchedule
	err := s.db.WithContext(ctx).
		Where("id = ?", singletonRowID).
		First(&feeSchedule).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get fee schedule: %w", err)
	}
	return &feeSchedule, nil
}

// UpdateFeeSchedule replaces the fee schedule rates
func (s *pgStore) UpdateFeeSchedule(ctx context.Context, colorizationFee, adjustmentFee, mintFee int64, updatedAt time.Time) (*schema.FeeSchedule, error) {
	var feeSchedule schema.FeeSchedule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the fee schedule row to serialize administrative updates
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", singletonRowID).
			First(&feeSchedule).Error
		if err != nil {
			return fmt.Errorf("failed to lock fee schedule: %w", err)
		}

		// 2. Overwrite the rates
		feeSchedule.ColorizationFee = colorizationFee
		feeSchedule.AdjustmentFee = adjustmentFee
		feeSchedule.MintFee = mintFee
		feeSchedule.UpdatedAt = updatedAt

		if err := tx.Save(&feeSchedule).Error; err != nil {
			return fmt.Errorf("failed to update fee schedule: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &feeSchedule, nil
}

// CreatePhotoSubmission inserts a new photo in the submitted state, escrows
// the payment into the pool, and journals the escrow. The photo id is
// assigned by the database sequence.
func (s *pgStore) CreatePhotoSubmission(ctx context.Context, input CreatePhotoSubmissionInput) (*schema.Photo, error) {
	var photo schema.Photo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Check the payment against the current colorization fee
		var feeSchedule schema.FeeSchedule
		if err := tx.Where("id = ?", singletonRowID).First(&feeSchedule).Error; err != nil {
			return fmt.Errorf("failed to get fee schedule: %w", err)
		}
		if input.EscrowedFee < feeSchedule.ColorizationFee {
			return domain.ErrInsufficientPayment
		}

		// 2. Create the photo record
		photo = schema.Photo{
			Owner:       input.Owner,
			OriginalRef: input.OriginalRef,
			Status:      domain.StatusSubmitted,
			EscrowedFee: input.EscrowedFee,
			SubmittedAt: input.SubmittedAt,
		}
		if err := tx.Create(&photo).Error; err != nil {
			return fmt.Errorf("failed to create photo: %w", err)
		}

		// 3. Escrow the payment into the pool
		if err := creditTreasury(tx, input.EscrowedFee); err != nil {
			return err
		}

		// 4. Journal the escrow
		entry := schema.LedgerEntry{
			EntryType:    schema.LedgerEntryEscrow,
			PhotoID:      &photo.ID,
			Counterparty: input.Owner,
			Amount:       input.EscrowedFee,
			CreatedAt:    input.SubmittedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to journal escrow: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ApplyColorization transitions a photo from submitted to ai_colorized and
// disburses the processor's share of the escrowed fee from the pool. The
// photo row is locked FOR UPDATE so a second processor racing on the same
// photo observes the new state and fails the transition guard.
func (s *pgStore) ApplyColorization(ctx context.Context, input ApplyColorizationInput) (*ApplyColorizationResult, error) {
	var result ApplyColorizationResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the photo row
		var photo schema.Photo
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.PhotoID).
			First(&photo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock photo: %w", err)
		}

		// 2. The actor must be an active registered processor
		var processor schema.Processor
		err = tx.Where("identity = ?", input.Processor).First(&processor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("failed to get processor: %w", err)
		}
		if !processor.Active {
			return domain.ErrUnauthorized
		}

		// 3. Only a submitted photo may be colorized. This also blocks a
		// second processor from overwriting a delivered result or
		// re-collecting the payout.
		if !photo.Status.AcceptsColorization() {
			return domain.ErrInvalidTransition
		}

		// 4. Split the escrowed fee and disburse the processor's share
		payout, platformShare := domain.SplitFee(photo.EscrowedFee, input.ShareBPS)
		if err := debitTreasury(tx, payout); err != nil {
			return err
		}

		// 5. Advance the photo
		photo.Status = domain.StatusAIColorized
		photo.ColorizedRef = &input.ColorizedRef
		photo.FinalRef = &input.ColorizedRef
		photo.AssignedProcessor = &input.Processor
		photo.ColorizedAt = &input.ColorizedAt
		if err := tx.Save(&photo).Error; err != nil {
			return fmt.Errorf("failed to update photo: %w", err)
		}

		// 6. Credit the processor's history
		err = tx.Model(&schema.Processor{}).
			Where("identity = ?", input.Processor).
			Update("total_processed", gorm.Expr("total_processed + 1")).Error
		if err != nil {
			return fmt.Errorf("failed to increment processor history: %w", err)
		}

		// 7. Journal the payout
		entry := schema.LedgerEntry{
			EntryType:    schema.LedgerEntryPayout,
			PhotoID:      &photo.ID,
			Counterparty: input.Processor,
			Amount:       payout,
			CreatedAt:    input.ColorizedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to journal payout: %w", err)
		}

		result = ApplyColorizationResult{
			Photo:         &photo,
			Payout:        payout,
			PlatformShare: platformShare,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AppendAdjustment records a manual edit against a colorized photo, escrows
// the adjustment fee, and advances the photo to manually_adjusted
func (s *pgStore) AppendAdjustment(ctx context.Context, input AppendAdjustmentInput) (*schema.Photo, error) {
	var photo schema.Photo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the photo row
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.PhotoID).
			First(&photo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock photo: %w", err)
		}

		// 2. Only the owner may adjust
		if input.Adjuster != photo.Owner {
			return domain.ErrUnauthorized
		}

		// 3. Adjustments require a colorized result to edit
		if !photo.Status.AcceptsAdjustment() {
			return domain.ErrInvalidTransition
		}

		// 4. Check the payment against the current adjustment fee
		var feeSchedule schema.FeeSchedule
		if err := tx.Where("id = ?", singletonRowID).First(&feeSchedule).Error; err != nil {
			return fmt.Errorf("failed to get fee schedule: %w", err)
		}
		if input.Payment < feeSchedule.AdjustmentFee {
			return domain.ErrInsufficientPayment
		}

		// 5. Append the edit history row
		adjustment := schema.Adjustment{
			PhotoID:   photo.ID,
			Adjuster:  input.Adjuster,
			Payload:   datatypes.JSON(input.Payload),
			AppliedAt: input.AppliedAt,
		}
		if err := tx.Create(&adjustment).Error; err != nil {
			return fmt.Errorf("failed to create adjustment: %w", err)
		}

		// 6. Advance the photo
		photo.Status = domain.StatusManuallyAdjusted
		photo.FinalRef = &input.FinalRef
		if err := tx.Save(&photo).Error; err != nil {
			return fmt.Errorf("failed to update photo: %w", err)
		}

		// 7. Escrow the payment into the pool and journal it
		if err := creditTreasury(tx, input.Payment); err != nil {
			return err
		}
		entry := schema.LedgerEntry{
			EntryType:    schema.LedgerEntryEscrow,
			PhotoID:      &photo.ID,
			Counterparty: input.Adjuster,
			Amount:       input.Payment,
			CreatedAt:    input.AppliedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to journal escrow: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// MintPhoto escrows the mint fee, invokes the external mint, and finalizes
// the photo as asset_minted. The mint callback runs inside the transaction:
// if it fails, the escrow and the status change both roll back, so the photo
// never ends up paid-but-not-minted or minted-but-unpaid.
func (s *pgStore) MintPhoto(ctx context.Context, input MintPhotoInput, mint MintFunc) (*schema.Photo, error) {
	var photo schema.Photo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the photo row
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.PhotoID).
			First(&photo).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock photo: %w", err)
		}

		// 2. Only the owner may mint
		if input.Minter != photo.Owner {
			return domain.ErrUnauthorized
		}

		// 3. The photo must hold a colorized result and must not have been
		// minted already. Minting is one-shot.
		if !photo.Status.AcceptsMint() || photo.MintedAssetID != nil {
			return domain.ErrInvalidTransition
		}

		// 4. Check the payment against the current mint fee
		var feeSchedule schema.FeeSchedule
		if err := tx.Where("id = ?", singletonRowID).First(&feeSchedule).Error; err != nil {
			return fmt.Errorf("failed to get fee schedule: %w", err)
		}
		if input.Payment < feeSchedule.MintFee {
			return domain.ErrInsufficientPayment
		}

		// 5. Escrow the payment into the pool and journal it
		if err := creditTreasury(tx, input.Payment); err != nil {
			return err
		}
		entry := schema.LedgerEntry{
			EntryType:    schema.LedgerEntryEscrow,
			PhotoID:      &photo.ID,
			Counterparty: input.Minter,
			Amount:       input.Payment,
			CreatedAt:    input.MintedAt,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to journal escrow: %w", err)
		}

		// 6. Invoke the external mint. A failure aborts the transaction.
		assetID, err := mint(ctx, photo.Owner, input.MetadataRef)
		if err != nil {
			return fmt.Errorf("failed to mint asset: %w", err)
		}

		// 7. Finalize the photo
		photo.Status = domain.StatusAssetMinted
		photo.MintedAssetID = &assetID
		if err := tx.Save(&photo).Error; err != nil {
			return fmt.Errorf("failed to update photo: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetPhotoByID returns a photo with its adjustment history, or nil if absent
func (s *pgStore) GetPhotoByID(ctx context.Context, id uint64) (*schema.Photo, error) {
	var photo schema.Photo
	err := s.db.WithContext(ctx).
		Preload("Adjustments", func(db *gorm.DB) *gorm.DB {
			return db.Order("adjustments.id ASC")
		}).
		Where("id = ?", id).
		First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

// GetPhotoIDsByOwner returns the ids of the owner's photos in submission order
func (s *pgStore) GetPhotoIDsByOwner(ctx context.Context, owner string) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.Photo{}).
		Where("owner = ?", owner).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get photo ids by owner: %w", err)
	}
	return ids, nil
}

// GetAdjustmentsByPhotoID returns a photo's adjustments in submission order
func (s *pgStore) GetAdjustmentsByPhotoID(ctx context.Context, photoID uint64) ([]schema.Adjustment, error) {
	var adjustments []schema.Adjustment
	err := s.db.WithContext(ctx).
		Where("photo_id = ?", photoID).
		Order("id ASC").
		Find(&adjustments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get adjustments: %w", err)
	}
	return adjustments, nil
}

// CreateProcessor registers a new processor profile
func (s *pgStore) CreateProcessor(ctx context.Context, processor schema.Processor) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity"}},
		DoNothing: true,
	}).Create(&processor)
	if result.Error != nil {
		return fmt.Errorf("failed to create processor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyRegistered
	}
	return nil
}

// GetProcessor returns a processor profile, or nil if absent
func (s *pgStore) GetProcessor(ctx context.Context, identity string) (*schema.Processor, error) {
	var processor schema.Processor
	err := s.db.WithContext(ctx).
		Where("identity = ?", identity).
		First(&processor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get processor: %w", err)
	}
	return &processor, nil
}

// SetProcessorActive flips a processor's active flag
func (s *pgStore) SetProcessorActive(ctx context.Context, identity string, active bool) (*schema.Processor, error) {
	return s.updateProcessor(ctx, identity, func(processor *schema.Processor) {
		processor.Active = active
	})
}

// SetProcessorReputation overwrites a processor's reputation score. Range
// validation happens in the registry service before the write.
func (s *pgStore) SetProcessorReputation(ctx context.Context, identity string, reputation int) (*schema.Processor, error) {
	return s.updateProcessor(ctx, identity, func(processor *schema.Processor) {
		processor.Reputation = reputation
	})
}

func (s *pgStore) updateProcessor(ctx context.Context, identity string, apply func(*schema.Processor)) (*schema.Processor, error) {
	var processor schema.Processor
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the processor row
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("identity = ?", identity).
			First(&processor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to lock processor: %w", err)
		}

		// 2. Apply and persist the mutation
		apply(&processor)
		if err := tx.Save(&processor).Error; err != nil {
			return fmt.Errorf("failed to update processor: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &processor, nil
}

// TreasuryBalance returns the current pooled balance
func (s *pgStore) TreasuryBalance(ctx context.Context) (int64, error) {
	var treasury schema.Treasury
	err := s.db.WithContext(ctx).
		Where("id = ?", singletonRowID).
		First(&treasury).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get treasury: %w", err)
	}
	return treasury.Balance, nil
}

// WithdrawTreasury drains the pooled balance to zero and journals the
// withdrawal, returning the withdrawn amount
func (s *pgStore) WithdrawTreasury(ctx context.Context, to string, at time.Time) (int64, error) {
	var amount int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the treasury row
		var treasury schema.Treasury
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", singletonRowID).
			First(&treasury).Error
		if err != nil {
			return fmt.Errorf("failed to lock treasury: %w", err)
		}

		// 2. A withdrawal of nothing is an error, not a no-op
		if treasury.Balance == 0 {
			return domain.ErrEmptyTreasury
		}
		amount = treasury.Balance

		// 3. Drain the pool
		treasury.Balance = 0
		if err := tx.Save(&treasury).Error; err != nil {
			return fmt.Errorf("failed to update treasury: %w", err)
		}

		// 4. Journal the withdrawal
		entry := schema.LedgerEntry{
			EntryType:    schema.LedgerEntryWithdrawal,
			Counterparty: to,
			Amount:       amount,
			CreatedAt:    at,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to journal withdrawal: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// GetLedgerEntries returns journal rows matching the filter, newest first,
// along with the unpaged total
func (s *pgStore) GetLedgerEntries(ctx context.Context, filter LedgerEntriesFilter) ([]schema.LedgerEntry, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.LedgerEntry{})
	if filter.EntryType != "" {
		query = query.Where("entry_type = ?", filter.EntryType)
	}
	if filter.PhotoID != nil {
		query = query.Where("photo_id = ?", *filter.PhotoID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}
	if limit > maxLedgerPageSize {
		limit = maxLedgerPageSize
	}

	var entries []schema.LedgerEntry
	err := query.
		Order("id DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, total, nil
}

// creditTreasury adds amount to the pooled balance
func creditTreasury(tx *gorm.DB, amount int64) error {
	err := tx.Model(&schema.Treasury{}).
		Where("id = ?", singletonRowID).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
	if err != nil {
		return fmt.Errorf("failed to credit treasury: %w", err)
	}
	return nil
}

// debitTreasury removes amount from the pooled balance after locking the row
// and checking it covers the disbursement. A shortfall means the escrow and
// disburse bookkeeping has diverged somewhere, so it surfaces as
// ErrInsufficientEscrow and aborts the surrounding transaction.
func debitTreasury(tx *gorm.DB, amount int64) error {
	var treasury schema.Treasury
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", singletonRowID).
		First(&treasury).Error
	if err != nil {
		return fmt.Errorf("failed to lock treasury: %w", err)
	}
	if treasury.Balance < amount {
		return domain.ErrInsufficientEscrow
	}

	err = tx.Model(&schema.Treasury{}).
		Where("id = ?", singletonRowID).
		Update("balance", gorm.Expr("balance - ?", amount)).Error
	if err != nil {
		return fmt.Errorf("failed to debit treasury: %w", err)
	}
	return nil
}
