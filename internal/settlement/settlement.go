package settlement

import (
	"context"
	"fmt"

	"github.com/palettelab/retint/internal/adapter"
	"github.com/palettelab/retint/internal/auth"
	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/events"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/store/schema"
)

// Settlement exposes the fee schedule and the pooled platform revenue
//
//go:generate mockgen -source=settlement.go -destination=../mocks/settlement.go -package=mocks -mock_names=Settlement=MockSettlement
type Settlement interface {
	// Fees returns the current fee schedule
	Fees(ctx context.Context) (*schema.FeeSchedule, error)
	// SetFees replaces the fee schedule rates. Administrative. The new rates
	// apply to transitions initiated after the change.
	SetFees(ctx context.Context, actor string, colorizationFee, adjustmentFee, mintFee int64) (*schema.FeeSchedule, error)
	// Balance returns the pooled platform balance
	Balance(ctx context.Context) (int64, error)
	// Withdraw drains the pooled balance to the calling administrator
	Withdraw(ctx context.Context, actor string) (int64, error)
	// LedgerEntries lists journal rows matching the filter, newest first
	LedgerEntries(ctx context.Context, filter store.LedgerEntriesFilter) ([]schema.LedgerEntry, int64, error)
}

type service struct {
	store      store.Store
	authorizer auth.Authorizer
	dispatcher events.Dispatcher
	clock      adapter.Clock
}

// NewService creates a settlement service backed by the store
func NewService(s store.Store, authorizer auth.Authorizer, dispatcher events.Dispatcher, clock adapter.Clock) Settlement {
	return &service{
		store:      s,
		authorizer: authorizer,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Fees returns the current fee schedule
func (s *service) Fees(ctx context.Context) (*schema.FeeSchedule, error) {
	return s.store.GetFeeSchedule(ctx)
}

// SetFees replaces the fee schedule rates. Only the administrative capability
// may call it. Already-escrowed amounts are unaffected.
func (s *service) SetFees(ctx context.Context, actor string, colorizationFee, adjustmentFee, mintFee int64) (*schema.FeeSchedule, error) {
	if !s.authorizer.IsAdministrator(actor) {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	feeSchedule, err := s.store.UpdateFeeSchedule(ctx, colorizationFee, adjustmentFee, mintFee, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update fees: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventFeesUpdated, domain.FeesUpdatedPayload{
		ColorizationFee: colorizationFee,
		AdjustmentFee:   adjustmentFee,
		MintFee:         mintFee,
	}, now))

	return feeSchedule, nil
}

// Balance returns the pooled platform balance
func (s *service) Balance(ctx context.Context) (int64, error) {
	return s.store.TreasuryBalance(ctx)
}

// Withdraw drains the pooled balance to the calling administrator. An empty
// pool is an error, not a zero-amount withdrawal.
func (s *service) Withdraw(ctx context.Context, actor string) (int64, error) {
	if !s.authorizer.IsAdministrator(actor) {
		return 0, domain.ErrUnauthorized
	}

	now := s.clock.Now()
	amount, err := s.store.WithdrawTreasury(ctx, actor, now)
	if err != nil {
		return 0, fmt.Errorf("failed to withdraw treasury: %w", err)
	}

	s.dispatcher.Dispatch(ctx, domain.NewEvent(domain.EventTreasuryWithdrawn, domain.TreasuryWithdrawnPayload{
		Amount: amount,
		To:     actor,
	}, now))

	return amount, nil
}

// LedgerEntries lists journal rows matching the filter, newest first
func (s *service) LedgerEntries(ctx context.Context, filter store.LedgerEntriesFilter) ([]schema.LedgerEntry, int64, error) {
	return s.store.GetLedgerEntries(ctx, filter)
}
