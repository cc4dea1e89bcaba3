package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palettelab/retint/internal/domain"
)

func TestPhotoStatus_Valid(t *testing.T) {
	for _, status := range []domain.PhotoStatus{
		domain.StatusSubmitted,
		domain.StatusAIColorized,
		domain.StatusManuallyAdjusted,
		domain.StatusCompleted,
		domain.StatusAssetMinted,
	} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	assert.False(t, domain.PhotoStatus("in_processing").Valid())
	assert.False(t, domain.PhotoStatus("").Valid())
}

func TestPhotoStatus_AcceptsColorization(t *testing.T) {
	assert.True(t, domain.StatusSubmitted.AcceptsColorization())

	// A colorized photo never accepts a second result
	assert.False(t, domain.StatusAIColorized.AcceptsColorization())
	assert.False(t, domain.StatusManuallyAdjusted.AcceptsColorization())
	assert.False(t, domain.StatusCompleted.AcceptsColorization())
	assert.False(t, domain.StatusAssetMinted.AcceptsColorization())
}

func TestPhotoStatus_AcceptsAdjustment(t *testing.T) {
	assert.False(t, domain.StatusSubmitted.AcceptsAdjustment())
	assert.True(t, domain.StatusAIColorized.AcceptsAdjustment())
	assert.True(t, domain.StatusManuallyAdjusted.AcceptsAdjustment())
	assert.False(t, domain.StatusCompleted.AcceptsAdjustment())
	assert.False(t, domain.StatusAssetMinted.AcceptsAdjustment())
}

func TestPhotoStatus_AcceptsMint(t *testing.T) {
	assert.False(t, domain.StatusSubmitted.AcceptsMint())
	assert.True(t, domain.StatusAIColorized.AcceptsMint())
	assert.True(t, domain.StatusManuallyAdjusted.AcceptsMint())
	assert.True(t, domain.StatusCompleted.AcceptsMint())
	assert.False(t, domain.StatusAssetMinted.AcceptsMint())
}

func TestValidReputation(t *testing.T) {
	assert.True(t, domain.ValidReputation(0))
	assert.True(t, domain.ValidReputation(50))
	assert.True(t, domain.ValidReputation(100))
	assert.False(t, domain.ValidReputation(-1))
	assert.False(t, domain.ValidReputation(101))
}

func TestSplitFee(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		shareBPS      int64
		wantShare     int64
		wantRemainder int64
	}{
		{
			name:          "even split",
			amount:        10_000,
			shareBPS:      domain.ProcessorShareBPS,
			wantShare:     7_000,
			wantRemainder: 3_000,
		},
		{
			name:          "truncates towards the pool",
			amount:        99,
			shareBPS:      domain.ProcessorShareBPS,
			wantShare:     69,
			wantRemainder: 30,
		},
		{
			name:          "zero amount",
			amount:        0,
			shareBPS:      domain.ProcessorShareBPS,
			wantShare:     0,
			wantRemainder: 0,
		},
		{
			name:          "full share",
			amount:        12_345,
			shareBPS:      10_000,
			wantShare:     12_345,
			wantRemainder: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, remainder := domain.SplitFee(tt.amount, tt.shareBPS)
			assert.Equal(t, tt.wantShare, share)
			assert.Equal(t, tt.wantRemainder, remainder)

			// Nothing is created or destroyed by a split
			assert.Equal(t, tt.amount, share+remainder)
		})
	}
}
