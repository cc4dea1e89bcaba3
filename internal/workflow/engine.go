package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/palettelab/retint/internal/adapter"
	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/events"
	"github.com/palettelab/retint/internal/logger"
	"github.com/palettelab/retint/internal/minting"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/store/schema"
)

// Engine drives the photo restoration state machine. Every state-changing
// method validates its inputs, runs the transition as a single store
// transaction, and dispatches the resulting events after commit. Per-photo
// serialization comes from the store's row locks, so concurrent calls on the
// same photo cannot both pass the same guard.
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Submit enters a new photo into the workflow, escrowing the payment
	Submit(ctx context.Context, owner, originalRef string, payment int64) (*schema.Photo, error)
	// SubmitColorization delivers a processor's colorized result and pays
	// out the processor's share of the escrowed fee
	SubmitColorization(ctx context.Context, processor string, photoID uint64, colorizedRef string) (*store.ApplyColorizationResult, error)
	// Adjust applies an owner's manual edit on top of a colorized result
	Adjust(ctx context.Context, adjuster string, photoID uint64, payload json.RawMessage, finalRef string, payment int64) (*schema.Photo, error)
	// Mint finalizes the photo as an externally owned collectible
	Mint(ctx context.Context, owner string, photoID uint64, metadataRef string, payment int64) (*schema.Photo, error)

	// GetPhoto returns a photo with its adjustment history, or nil if absent
	GetPhoto(ctx context.Context, id uint64) (*schema.Photo, error)
	// ListPhotoIDsByOwner returns the owner's photo ids in submission order
	ListPhotoIDsByOwner(ctx context.Context, owner string) ([]uint64, error)
	// GetAdjustments returns a photo's adjustment history in order
	GetAdjustments(ctx context.Context, photoID uint64) ([]schema.Adjustment, error)
}

type engine struct {
	store      store.Store
	minter     minting.Minter
	dispatcher events.Dispatcher
	clock      adapter.Clock
}

// NewEngine creates a workflow engine
func NewEngine(s store.Store, minter minting.Minter, dispatcher events.Dispatcher, clock adapter.Clock) Engine {
	return &engine{
		store:      s,
		minter:     minter,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Submit enters a new photo into the workflow. The payment is escrowed in
// full; it implicitly requests colorization, so both the submission and the
// colorization request events are emitted.
func (e *engine) Submit(ctx context.Context, owner, originalRef string, payment int64) (*schema.Photo, error) {
	if originalRef == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := e.clock.Now()
	photo, err := e.store.CreatePhotoSubmission(ctx, store.CreatePhotoSubmissionInput{
		Owner:       owner,
		OriginalRef: originalRef,
		EscrowedFee: payment,
		SubmittedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit photo: %w", err)
	}

	logger.InfoCtx(ctx, "Photo submitted",
		zap.Uint64("photo_id", photo.ID),
		zap.String("owner", owner),
		zap.Int64("escrowed_fee", payment))

	e.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventPhotoSubmitted, domain.PhotoSubmittedPayload{
		PhotoID:     photo.ID,
		Owner:       owner,
		OriginalRef: originalRef,
	}, now))
	e.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventColorizationRequested, domain.ColorizationRequestedPayload{
		PhotoID:   photo.ID,
		Requester: owner,
		Fee:       payment,
	}, now))

	return photo, nil
}

// SubmitColorization delivers a processor's colorized result. The processor
// receives its share of the fee escrowed at submission time; the remainder
// stays in the pool as platform revenue.
func (e *engine) SubmitColorization(ctx context.Context, processor string, photoID uint64, colorizedRef string) (*store.ApplyColorizationResult, error) {
	if colorizedRef == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := e.clock.Now()
	result, err := e.store.ApplyColorization(ctx, store.ApplyColorizationInput{
		PhotoID:      photoID,
		Processor:    processor,
		ColorizedRef: colorizedRef,
		ShareBPS:     domain.ProcessorShareBPS,
		ColorizedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply colorization: %w", err)
	}

	logger.InfoCtx(ctx, "Colorization completed",
		zap.Uint64("photo_id", photoID),
		zap.String("processor", processor),
		zap.Int64("payout", result.Payout))

	e.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventColorizationCompleted, domain.ColorizationCompletedPayload{
		PhotoID:      photoID,
		ColorizedRef: colorizedRef,
		Processor:    processor,
		Payout:       result.Payout,
	}, now))

	return result, nil
}

// Adjust applies an owner's manual edit. Each call appends a history row and
// replaces the final reference; the adjustment fee is escrowed in full.
func (e *engine) Adjust(ctx context.Context, adjuster string, photoID uint64, payload json.RawMessage, finalRef string, payment int64) (*schema.Photo, error) {
	if len(payload) == 0 || finalRef == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := e.clock.Now()
	photo, err := e.store.AppendAdjustment(ctx, store.AppendAdjustmentInput{
		PhotoID:   photoID,
		Adjuster:  adjuster,
		Payload:   payload,
		FinalRef:  finalRef,
		Payment:   payment,
		AppliedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append adjustment: %w", err)
	}

	e.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventManualAdjustmentMade, domain.ManualAdjustmentMadePayload{
		PhotoID:  photoID,
		Adjuster: adjuster,
		Payload:  payload,
	}, now))

	return photo, nil
}

// Mint finalizes the photo as an externally owned collectible. The external
// mint runs inside the store transaction, so a failed mint leaves the photo
// and the escrow untouched.
func (e *engine) Mint(ctx context.Context, owner string, photoID uint64, metadataRef string, payment int64) (*schema.Photo, error) {
	if metadataRef == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := e.clock.Now()
	photo, err := e.store.MintPhoto(ctx, store.MintPhotoInput{
		PhotoID:     photoID,
		Minter:      owner,
		MetadataRef: metadataRef,
		Payment:     payment,
		MintedAt:    now,
	}, e.minter.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to mint photo: %w", err)
	}

	logger.InfoCtx(ctx, "Asset minted",
		zap.Uint64("photo_id", photoID),
		zap.Stringp("asset_id", photo.MintedAssetID))

	e.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventAssetMinted, domain.AssetMintedPayload{
		AssetID: *photo.MintedAssetID,
		PhotoID: photoID,
		Owner:   owner,
	}, now))

	return photo, nil
}

// GetPhoto returns a photo with its adjustment history, or nil if absent
func (e *engine) GetPhoto(ctx context.Context, id uint64) (*schema.Photo, error) {
	return e.store.GetPhotoByID(ctx, id)
}

// ListPhotoIDsByOwner returns the owner's photo ids in submission order
func (e *engine) ListPhotoIDsByOwner(ctx context.Context, owner string) ([]uint64, error) {
	return e.store.GetPhotoIDsByOwner(ctx, owner)
}

// GetAdjustments returns a photo's adjustment history in order
func (e *engine) GetAdjustments(ctx context.Context, photoID uint64) ([]schema.Adjustment, error) {
	photo, err := e.store.GetPhotoByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, domain.ErrNotFound
	}
	return e.store.GetAdjustmentsByPhotoID(ctx, photoID)
}
