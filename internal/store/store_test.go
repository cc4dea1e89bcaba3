package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/store/schema"
)

// Seed fee rates used by every test database
const (
	testColorizationFee = int64(10_000)
	testAdjustmentFee   = int64(2_000)
	testMintFee         = int64(20_000)
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Test Data Builders
// =============================================================================

// submitTestPhoto creates a photo in the submitted state
func submitTestPhoto(t *testing.T, store Store, owner string, payment int64) *schema.Photo {
	photo, err := store.CreatePhotoSubmission(context.Background(), CreatePhotoSubmissionInput{
		Owner:       owner,
		OriginalRef: "bafy-original",
		EscrowedFee: payment,
		SubmittedAt: testTime,
	})
	require.NoError(t, err)
	require.NotNil(t, photo)
	return photo
}

// registerTestProcessor creates a processor profile
func registerTestProcessor(t *testing.T, store Store, identity string, active bool) {
	err := store.CreateProcessor(context.Background(), schema.Processor{
		Identity:     identity,
		ModelRef:     "colorizer-v3",
		Reputation:   domain.DefaultReputation,
		Active:       active,
		RegisteredAt: testTime,
	})
	require.NoError(t, err)
}

// colorizeTestPhoto moves a submitted photo to ai_colorized
func colorizeTestPhoto(t *testing.T, store Store, photoID uint64, processor string) *ApplyColorizationResult {
	result, err := store.ApplyColorization(context.Background(), ApplyColorizationInput{
		PhotoID:      photoID,
		Processor:    processor,
		ColorizedRef: "bafy-colorized",
		ShareBPS:     domain.ProcessorShareBPS,
		ColorizedAt:  testTime,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

// noopMint is a mint callback that always succeeds
func noopMint(_ context.Context, _, _ string) (string, error) {
	return "0xcontract/1", nil
}

// =============================================================================
// Test: FeeSchedule
// =============================================================================

func testFeeSchedule(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("bootstrap seeds the configured rates", func(t *testing.T) {
		feeSchedule, err := store.GetFeeSchedule(ctx)
		require.NoError(t, err)
		assert.Equal(t, testColorizationFee, feeSchedule.ColorizationFee)
		assert.Equal(t, testAdjustmentFee, feeSchedule.AdjustmentFee)
		assert.Equal(t, testMintFee, feeSchedule.MintFee)
	})

	t.Run("bootstrap never resets existing rates", func(t *testing.T) {
		_, err := store.UpdateFeeSchedule(ctx, 1, 2, 3, testTime)
		require.NoError(t, err)

		err = store.Bootstrap(ctx, testColorizationFee, testAdjustmentFee, testMintFee)
		require.NoError(t, err)

		feeSchedule, err := store.GetFeeSchedule(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), feeSchedule.ColorizationFee)
	})

	t.Run("update replaces the rates", func(t *testing.T) {
		updated, err := store.UpdateFeeSchedule(ctx, 15_000, 3_000, 25_000, testTime)
		require.NoError(t, err)
		assert.Equal(t, int64(15_000), updated.ColorizationFee)
		assert.Equal(t, int64(3_000), updated.AdjustmentFee)
		assert.Equal(t, int64(25_000), updated.MintFee)

		feeSchedule, err := store.GetFeeSchedule(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(15_000), feeSchedule.ColorizationFee)
	})
}

// =============================================================================
// Test: CreatePhotoSubmission
// =============================================================================

func testCreatePhotoSubmission(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("successful submission escrows the payment and journals it", func(t *testing.T) {
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		assert.Equal(t, domain.StatusSubmitted, photo.Status)
		assert.Equal(t, "alice", photo.Owner)
		assert.Equal(t, testColorizationFee, photo.EscrowedFee)
		assert.Nil(t, photo.ColorizedRef)
		assert.Nil(t, photo.MintedAssetID)

		balance, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, testColorizationFee, balance)

		entries, total, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{PhotoID: &photo.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, schema.LedgerEntryEscrow, entries[0].EntryType)
		assert.Equal(t, "alice", entries[0].Counterparty)
		assert.Equal(t, testColorizationFee, entries[0].Amount)
	})

	t.Run("overpayment is escrowed in full", func(t *testing.T) {
		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		photo := submitTestPhoto(t, store, "alice", testColorizationFee+500)
		assert.Equal(t, testColorizationFee+500, photo.EscrowedFee)

		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+testColorizationFee+500, after)
	})

	t.Run("payment below the colorization fee is rejected", func(t *testing.T) {
		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		_, err = store.CreatePhotoSubmission(ctx, CreatePhotoSubmissionInput{
			Owner:       "alice",
			OriginalRef: "bafy-original",
			EscrowedFee: testColorizationFee - 1,
			SubmittedAt: testTime,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

		// Nothing was escrowed
		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

// =============================================================================
// Test: ApplyColorization
// =============================================================================

func testApplyColorization(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("successful delivery pays out the processor share and keeps the rest pooled", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-1", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)

		result := colorizeTestPhoto(t, store, photo.ID, "proc-1")
		assert.Equal(t, int64(7_000), result.Payout)
		assert.Equal(t, int64(3_000), result.PlatformShare)
		assert.Equal(t, domain.StatusAIColorized, result.Photo.Status)
		require.NotNil(t, result.Photo.ColorizedRef)
		assert.Equal(t, "bafy-colorized", *result.Photo.ColorizedRef)
		require.NotNil(t, result.Photo.FinalRef)
		assert.Equal(t, "bafy-colorized", *result.Photo.FinalRef)
		require.NotNil(t, result.Photo.AssignedProcessor)
		assert.Equal(t, "proc-1", *result.Photo.AssignedProcessor)

		// The pool kept exactly the platform share
		balance, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3_000), balance)

		// The payout is journaled against the processor
		entries, _, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{EntryType: schema.LedgerEntryPayout, PhotoID: &photo.ID})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "proc-1", entries[0].Counterparty)
		assert.Equal(t, int64(7_000), entries[0].Amount)

		// The processor's history advanced
		processor, err := store.GetProcessor(ctx, "proc-1")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), processor.TotalProcessed)
	})

	t.Run("unknown photo", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-unknown-photo", true)

		_, err := store.ApplyColorization(ctx, ApplyColorizationInput{
			PhotoID:      999_999,
			Processor:    "proc-unknown-photo",
			ColorizedRef: "bafy-colorized",
			ShareBPS:     domain.ProcessorShareBPS,
			ColorizedAt:  testTime,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unregistered processor is rejected", func(t *testing.T) {
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)

		_, err := store.ApplyColorization(ctx, ApplyColorizationInput{
			PhotoID:      photo.ID,
			Processor:    "ghost",
			ColorizedRef: "bafy-colorized",
			ShareBPS:     domain.ProcessorShareBPS,
			ColorizedAt:  testTime,
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("deactivated processor is rejected", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-inactive", false)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)

		_, err := store.ApplyColorization(ctx, ApplyColorizationInput{
			PhotoID:      photo.ID,
			Processor:    "proc-inactive",
			ColorizedRef: "bafy-colorized",
			ShareBPS:     domain.ProcessorShareBPS,
			ColorizedAt:  testTime,
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("second delivery on the same photo fails and pays nothing", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-first", true)
		registerTestProcessor(t, store, "proc-second", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-first")

		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		_, err = store.ApplyColorization(ctx, ApplyColorizationInput{
			PhotoID:      photo.ID,
			Processor:    "proc-second",
			ColorizedRef: "bafy-other",
			ShareBPS:     domain.ProcessorShareBPS,
			ColorizedAt:  testTime,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		// The first delivery stands
		got, err := store.GetPhotoByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, "bafy-colorized", *got.ColorizedRef)
		assert.Equal(t, "proc-first", *got.AssignedProcessor)
	})

	t.Run("escrowed overpayment splits in full", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-over", true)
		photo := submitTestPhoto(t, store, "alice", 15_000)

		result := colorizeTestPhoto(t, store, photo.ID, "proc-over")
		assert.Equal(t, int64(10_500), result.Payout)
		assert.Equal(t, int64(4_500), result.PlatformShare)
	})
}

// =============================================================================
// Test: AppendAdjustment
// =============================================================================

func testAppendAdjustment(t *testing.T, store Store) {
	ctx := context.Background()

	adjust := func(photoID uint64, adjuster string, payment int64) (*schema.Photo, error) {
		return store.AppendAdjustment(ctx, AppendAdjustmentInput{
			PhotoID:   photoID,
			Adjuster:  adjuster,
			Payload:   json.RawMessage(`{"contrast":12,"crop":[0,0,800,600]}`),
			FinalRef:  "bafy-adjusted",
			Payment:   payment,
			AppliedAt: testTime,
		})
	}

	t.Run("successful adjustment records the edit and escrows the fee", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-adj", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-adj")

		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		updated, err := adjust(photo.ID, "alice", testAdjustmentFee)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusManuallyAdjusted, updated.Status)
		require.NotNil(t, updated.FinalRef)
		assert.Equal(t, "bafy-adjusted", *updated.FinalRef)

		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+testAdjustmentFee, after)

		adjustments, err := store.GetAdjustmentsByPhotoID(ctx, photo.ID)
		require.NoError(t, err)
		require.Len(t, adjustments, 1)
		assert.Equal(t, "alice", adjustments[0].Adjuster)
		assert.JSONEq(t, `{"contrast":12,"crop":[0,0,800,600]}`, string(adjustments[0].Payload))
	})

	t.Run("adjustments accumulate in order", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-adj2", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-adj2")

		_, err := adjust(photo.ID, "alice", testAdjustmentFee)
		require.NoError(t, err)
		_, err = adjust(photo.ID, "alice", testAdjustmentFee)
		require.NoError(t, err)

		adjustments, err := store.GetAdjustmentsByPhotoID(ctx, photo.ID)
		require.NoError(t, err)
		require.Len(t, adjustments, 2)
		assert.Less(t, adjustments[0].ID, adjustments[1].ID)
	})

	t.Run("unknown photo", func(t *testing.T) {
		_, err := adjust(999_999, "alice", testAdjustmentFee)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("only the owner may adjust", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-adj3", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-adj3")

		_, err := adjust(photo.ID, "mallory", testAdjustmentFee)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("a photo without a colorized result cannot be adjusted", func(t *testing.T) {
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)

		_, err := adjust(photo.ID, "alice", testAdjustmentFee)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("payment below the adjustment fee is rejected", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-adj4", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-adj4")

		_, err := adjust(photo.ID, "alice", testAdjustmentFee-1)
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)

		// The edit history stayed empty
		adjustments, err := store.GetAdjustmentsByPhotoID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Empty(t, adjustments)
	})
}

// =============================================================================
// Test: MintPhoto
// =============================================================================

func testMintPhoto(t *testing.T, store Store) {
	ctx := context.Background()

	mint := func(photoID uint64, minter string, payment int64, fn MintFunc) (*schema.Photo, error) {
		return store.MintPhoto(ctx, MintPhotoInput{
			PhotoID:     photoID,
			Minter:      minter,
			MetadataRef: "bafy-metadata",
			Payment:     payment,
			MintedAt:    testTime,
		}, fn)
	}

	t.Run("successful mint escrows the fee and finalizes the photo", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint")

		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		minted, err := mint(photo.ID, "alice", testMintFee, func(_ context.Context, owner, metadataRef string) (string, error) {
			assert.Equal(t, "alice", owner)
			assert.Equal(t, "bafy-metadata", metadataRef)
			return "0xcontract/42", nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAssetMinted, minted.Status)
		require.NotNil(t, minted.MintedAssetID)
		assert.Equal(t, "0xcontract/42", *minted.MintedAssetID)

		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+testMintFee, after)
	})

	t.Run("mint after adjustment", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint2", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint2")

		_, err := store.AppendAdjustment(ctx, AppendAdjustmentInput{
			PhotoID:   photo.ID,
			Adjuster:  "alice",
			Payload:   json.RawMessage(`{"contrast":1}`),
			FinalRef:  "bafy-adjusted",
			Payment:   testAdjustmentFee,
			AppliedAt: testTime,
		})
		require.NoError(t, err)

		minted, err := mint(photo.ID, "alice", testMintFee, noopMint)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAssetMinted, minted.Status)
	})

	t.Run("mint failure rolls back the escrow and the status", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint3", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint3")

		before, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)

		_, err = mint(photo.ID, "alice", testMintFee, func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("rpc unavailable")
		})
		require.Error(t, err)

		// Neither the escrow nor the status change survived
		after, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		got, err := store.GetPhotoByID(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAIColorized, got.Status)
		assert.Nil(t, got.MintedAssetID)
	})

	t.Run("minting is one-shot", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint4", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint4")

		_, err := mint(photo.ID, "alice", testMintFee, noopMint)
		require.NoError(t, err)

		_, err = mint(photo.ID, "alice", testMintFee, noopMint)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("only the owner may mint", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint5", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint5")

		_, err := mint(photo.ID, "mallory", testMintFee, noopMint)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("a submitted photo cannot be minted", func(t *testing.T) {
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)

		_, err := mint(photo.ID, "alice", testMintFee, noopMint)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("payment below the mint fee is rejected", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-mint6", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-mint6")

		_, err := mint(photo.ID, "alice", testMintFee-1, noopMint)
		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	})
}

// =============================================================================
// Test: Photo queries
// =============================================================================

func testPhotoQueries(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get photo by id preloads adjustments", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-q", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		colorizeTestPhoto(t, store, photo.ID, "proc-q")

		_, err := store.AppendAdjustment(ctx, AppendAdjustmentInput{
			PhotoID:   photo.ID,
			Adjuster:  "alice",
			Payload:   json.RawMessage(`{"contrast":1}`),
			FinalRef:  "bafy-adjusted",
			Payment:   testAdjustmentFee,
			AppliedAt: testTime,
		})
		require.NoError(t, err)

		got, err := store.GetPhotoByID(ctx, photo.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Len(t, got.Adjustments, 1)
	})

	t.Run("get photo by id returns nil for unknown id", func(t *testing.T) {
		got, err := store.GetPhotoByID(ctx, 999_999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("photo ids by owner come back in submission order", func(t *testing.T) {
		first := submitTestPhoto(t, store, "bob", testColorizationFee)
		second := submitTestPhoto(t, store, "bob", testColorizationFee)
		submitTestPhoto(t, store, "carol", testColorizationFee)

		ids, err := store.GetPhotoIDsByOwner(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, []uint64{first.ID, second.ID}, ids)
	})

	t.Run("photo ids by owner is empty for unknown owner", func(t *testing.T) {
		ids, err := store.GetPhotoIDsByOwner(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

// =============================================================================
// Test: Processors
// =============================================================================

func testProcessors(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-p1", true)

		processor, err := store.GetProcessor(ctx, "proc-p1")
		require.NoError(t, err)
		require.NotNil(t, processor)
		assert.Equal(t, "colorizer-v3", processor.ModelRef)
		assert.Equal(t, domain.DefaultReputation, processor.Reputation)
		assert.True(t, processor.Active)
		assert.Equal(t, uint64(0), processor.TotalProcessed)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-p2", true)

		err := store.CreateProcessor(ctx, schema.Processor{
			Identity:     "proc-p2",
			ModelRef:     "colorizer-v4",
			Reputation:   domain.DefaultReputation,
			Active:       true,
			RegisteredAt: testTime,
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

		// The original profile is untouched
		processor, err := store.GetProcessor(ctx, "proc-p2")
		require.NoError(t, err)
		assert.Equal(t, "colorizer-v3", processor.ModelRef)
	})

	t.Run("get returns nil for unknown identity", func(t *testing.T) {
		processor, err := store.GetProcessor(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, processor)
	})

	t.Run("set active", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-p3", true)

		processor, err := store.SetProcessorActive(ctx, "proc-p3", false)
		require.NoError(t, err)
		assert.False(t, processor.Active)

		processor, err = store.SetProcessorActive(ctx, "proc-p3", true)
		require.NoError(t, err)
		assert.True(t, processor.Active)
	})

	t.Run("set reputation", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-p4", true)

		processor, err := store.SetProcessorReputation(ctx, "proc-p4", 80)
		require.NoError(t, err)
		assert.Equal(t, 80, processor.Reputation)
	})

	t.Run("updates on unknown identity", func(t *testing.T) {
		_, err := store.SetProcessorActive(ctx, "ghost", false)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = store.SetProcessorReputation(ctx, "ghost", 80)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// =============================================================================
// Test: Treasury
// =============================================================================

func testTreasury(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("starts empty", func(t *testing.T) {
		balance, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("withdrawal of an empty pool is an error", func(t *testing.T) {
		_, err := store.WithdrawTreasury(ctx, "platform-operator", testTime)
		assert.ErrorIs(t, err, domain.ErrEmptyTreasury)
	})

	t.Run("withdrawal drains the pool and journals it", func(t *testing.T) {
		submitTestPhoto(t, store, "alice", testColorizationFee)

		amount, err := store.WithdrawTreasury(ctx, "platform-operator", testTime)
		require.NoError(t, err)
		assert.Equal(t, testColorizationFee, amount)

		balance, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		entries, _, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{EntryType: schema.LedgerEntryWithdrawal})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "platform-operator", entries[0].Counterparty)
		assert.Equal(t, testColorizationFee, entries[0].Amount)
		assert.Nil(t, entries[0].PhotoID)
	})

	t.Run("full workflow leaves the pool balancing the journal", func(t *testing.T) {
		registerTestProcessor(t, store, "proc-t", true)
		photo := submitTestPhoto(t, store, "alice", testColorizationFee)
		result := colorizeTestPhoto(t, store, photo.ID, "proc-t")

		_, err := store.AppendAdjustment(ctx, AppendAdjustmentInput{
			PhotoID:   photo.ID,
			Adjuster:  "alice",
			Payload:   json.RawMessage(`{"contrast":1}`),
			FinalRef:  "bafy-adjusted",
			Payment:   testAdjustmentFee,
			AppliedAt: testTime,
		})
		require.NoError(t, err)

		_, err = store.MintPhoto(ctx, MintPhotoInput{
			PhotoID:     photo.ID,
			Minter:      "alice",
			MetadataRef: "bafy-metadata",
			Payment:     testMintFee,
			MintedAt:    testTime,
		}, noopMint)
		require.NoError(t, err)

		// escrows minus the payout
		want := testColorizationFee + testAdjustmentFee + testMintFee - result.Payout
		balance, err := store.TreasuryBalance(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, balance)
	})
}

// =============================================================================
// Test: GetLedgerEntries
// =============================================================================

func testGetLedgerEntries(t *testing.T, store Store) {
	ctx := context.Background()

	registerTestProcessor(t, store, "proc-l", true)
	first := submitTestPhoto(t, store, "alice", testColorizationFee)
	second := submitTestPhoto(t, store, "bob", testColorizationFee)
	colorizeTestPhoto(t, store, first.ID, "proc-l")

	t.Run("unfiltered listing is newest first with the unpaged total", func(t *testing.T) {
		entries, total, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, entries, 3)
		assert.Equal(t, schema.LedgerEntryPayout, entries[0].EntryType)
		assert.Greater(t, entries[0].ID, entries[1].ID)
	})

	t.Run("filter by entry type", func(t *testing.T) {
		entries, total, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{EntryType: schema.LedgerEntryEscrow})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, entries, 2)
	})

	t.Run("filter by photo id", func(t *testing.T) {
		entries, total, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{PhotoID: &second.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, "bob", entries[0].Counterparty)
	})

	t.Run("pagination", func(t *testing.T) {
		page, total, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, page, 2)

		rest, _, err := store.GetLedgerEntries(ctx, LedgerEntriesFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Less(t, rest[0].ID, page[1].ID)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the store test suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"FeeSchedule", testFeeSchedule},
		{"CreatePhotoSubmission", testCreatePhotoSubmission},
		{"ApplyColorization", testApplyColorization},
		{"AppendAdjustment", testAppendAdjustment},
		{"MintPhoto", testMintPhoto},
		{"PhotoQueries", testPhotoQueries},
		{"Processors", testProcessors},
		{"Treasury", testTreasury},
		{"GetLedgerEntries", testGetLedgerEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
