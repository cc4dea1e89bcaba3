package settlement_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/palettelab/retint/internal/domain"
	"github.com/palettelab/retint/internal/logger"
	"github.com/palettelab/retint/internal/mocks"
	"github.com/palettelab/retint/internal/settlement"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testSettlementMocks contains all the mocks needed for testing settlement
type testSettlementMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	authorizer *mocks.MockAuthorizer
	dispatcher *mocks.MockDispatcher
	clock      *mocks.MockClock
	settlement settlement.Settlement
}

func setupTestSettlement(t *testing.T) *testSettlementMocks {
	ctrl := gomock.NewController(t)

	tm := &testSettlementMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		authorizer: mocks.NewMockAuthorizer(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.settlement = settlement.NewService(tm.store, tm.authorizer, tm.dispatcher, tm.clock)
	return tm
}

func tearDownTestSettlement(tm *testSettlementMocks) {
	tm.ctrl.Finish()
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestSettlement_Fees(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()
	want := &schema.FeeSchedule{ColorizationFee: 10_000, AdjustmentFee: 2_000, MintFee: 20_000}
	tm.store.EXPECT().GetFeeSchedule(ctx).Return(want, nil)

	fees, err := tm.settlement.Fees(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, fees)
}

func TestSettlement_SetFees(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()
	want := &schema.FeeSchedule{ColorizationFee: 15_000, AdjustmentFee: 3_000, MintFee: 25_000, UpdatedAt: testNow}

	tm.authorizer.EXPECT().IsAdministrator("platform-operator").Return(true)
	tm.clock.EXPECT().Now().Return(testNow)
	tm.store.EXPECT().UpdateFeeSchedule(ctx, int64(15_000), int64(3_000), int64(25_000), testNow).Return(want, nil)
	tm.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.Event) {
		assert.Equal(t, domain.EventFeesUpdated, event.Type)
		payload := event.Payload.(domain.FeesUpdatedPayload)
		assert.Equal(t, int64(15_000), payload.ColorizationFee)
	})

	fees, err := tm.settlement.SetFees(ctx, "platform-operator", 15_000, 3_000, 25_000)
	assert.NoError(t, err)
	assert.Equal(t, want, fees)
}

func TestSettlement_SetFees_NotAdministrator(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	tm.authorizer.EXPECT().IsAdministrator("mallory").Return(false)

	_, err := tm.settlement.SetFees(context.Background(), "mallory", 15_000, 3_000, 25_000)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSettlement_Balance(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()
	tm.store.EXPECT().TreasuryBalance(ctx).Return(int64(3_000), nil)

	balance, err := tm.settlement.Balance(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3_000), balance)
}

func TestSettlement_Withdraw(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()

	tm.authorizer.EXPECT().IsAdministrator("platform-operator").Return(true)
	tm.clock.EXPECT().Now().Return(testNow)
	tm.store.EXPECT().WithdrawTreasury(ctx, "platform-operator", testNow).Return(int64(3_000), nil)
	tm.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.Event) {
		assert.Equal(t, domain.EventTreasuryWithdrawn, event.Type)
		payload := event.Payload.(domain.TreasuryWithdrawnPayload)
		assert.Equal(t, int64(3_000), payload.Amount)
		assert.Equal(t, "platform-operator", payload.To)
	})

	amount, err := tm.settlement.Withdraw(ctx, "platform-operator")
	assert.NoError(t, err)
	assert.Equal(t, int64(3_000), amount)
}

func TestSettlement_Withdraw_NotAdministrator(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	tm.authorizer.EXPECT().IsAdministrator("mallory").Return(false)

	_, err := tm.settlement.Withdraw(context.Background(), "mallory")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSettlement_Withdraw_EmptyTreasury(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()
	tm.authorizer.EXPECT().IsAdministrator("platform-operator").Return(true)
	tm.clock.EXPECT().Now().Return(testNow)
	tm.store.EXPECT().WithdrawTreasury(ctx, "platform-operator", testNow).Return(int64(0), domain.ErrEmptyTreasury)

	_, err := tm.settlement.Withdraw(ctx, "platform-operator")
	assert.ErrorIs(t, err, domain.ErrEmptyTreasury)
}

func TestSettlement_LedgerEntries(t *testing.T) {
	tm := setupTestSettlement(t)
	defer tearDownTestSettlement(tm)

	ctx := context.Background()
	photoID := uint64(1)
	filter := store.LedgerEntriesFilter{EntryType: schema.LedgerEntryEscrow, PhotoID: &photoID, Limit: 10}
	want := []schema.LedgerEntry{{ID: 1, EntryType: schema.LedgerEntryEscrow, PhotoID: &photoID, Amount: 10_000}}

	tm.store.EXPECT().GetLedgerEntries(ctx, filter).Return(want, int64(1), nil)

	entries, total, err := tm.settlement.LedgerEntries(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, want, entries)
}
