package rest

import (
	"encoding/json"
	"time"

	"github.com/palettelab/retint/internal/store/schema"
)

// submitPhotoRequest is the payload for POST /api/v1/photos
type submitPhotoRequest struct {
	OriginalRef string `json:"original_ref" binding:"required"`
	Payment     int64  `json:"payment" binding:"min=0"`
}

// submitColorizationRequest is the payload for POST /api/v1/photos/:id/colorization
type submitColorizationRequest struct {
	ColorizedRef string `json:"colorized_ref" binding:"required"`
}

// adjustPhotoRequest is the payload for POST /api/v1/photos/:id/adjustments
type adjustPhotoRequest struct {
	Payload  json.RawMessage `json:"payload" binding:"required"`
	FinalRef string          `json:"final_ref" binding:"required"`
	Payment  int64           `json:"payment" binding:"min=0"`
}

// mintPhotoRequest is the payload for POST /api/v1/photos/:id/mint
type mintPhotoRequest struct {
	MetadataRef string `json:"metadata_ref" binding:"required"`
	Payment     int64  `json:"payment" binding:"min=0"`
}

// registerProcessorRequest is the payload for POST /api/v1/processors
type registerProcessorRequest struct {
	ModelRef string `json:"model_ref" binding:"required"`
}

// setProcessorStatusRequest is the payload for PATCH /api/v1/processors/:identity/status
type setProcessorStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// setReputationRequest is the payload for PATCH /api/v1/processors/:identity/reputation
type setReputationRequest struct {
	Reputation *int `json:"reputation" binding:"required"`
}

// setFeesRequest is the payload for PUT /api/v1/fees
type setFeesRequest struct {
	ColorizationFee int64 `json:"colorization_fee" binding:"min=0"`
	AdjustmentFee   int64 `json:"adjustment_fee" binding:"min=0"`
	MintFee         int64 `json:"mint_fee" binding:"min=0"`
}

// photoResponse is the public representation of a photo record
type photoResponse struct {
	ID                uint64               `json:"id"`
	Owner             string               `json:"owner"`
	OriginalRef       string               `json:"original_ref"`
	ColorizedRef      *string              `json:"colorized_ref,omitempty"`
	FinalRef          *string              `json:"final_ref,omitempty"`
	Status            string               `json:"status"`
	EscrowedFee       int64                `json:"escrowed_fee"`
	AssignedProcessor *string              `json:"assigned_processor,omitempty"`
	MintedAssetID     *string              `json:"minted_asset_id,omitempty"`
	SubmittedAt       time.Time            `json:"submitted_at"`
	ColorizedAt       *time.Time           `json:"colorized_at,omitempty"`
	Adjustments       []adjustmentResponse `json:"adjustments,omitempty"`
}

// adjustmentResponse is the public representation of an adjustment entry
type adjustmentResponse struct {
	ID        uint64          `json:"id"`
	PhotoID   uint64          `json:"photo_id"`
	Adjuster  string          `json:"adjuster"`
	Payload   json.RawMessage `json:"payload"`
	AppliedAt time.Time       `json:"applied_at"`
}

// colorizationResponse reports a completed colorization and its settlement
type colorizationResponse struct {
	Photo         photoResponse `json:"photo"`
	Payout        int64         `json:"payout"`
	PlatformShare int64         `json:"platform_share"`
}

// processorResponse is the public representation of a processor profile
type processorResponse struct {
	Identity       string    `json:"identity"`
	ModelRef       string    `json:"model_ref"`
	TotalProcessed uint64    `json:"total_processed"`
	Reputation     int       `json:"reputation"`
	Active         bool      `json:"active"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// feeScheduleResponse is the public representation of the fee schedule
type feeScheduleResponse struct {
	ColorizationFee int64     `json:"colorization_fee"`
	AdjustmentFee   int64     `json:"adjustment_fee"`
	MintFee         int64     `json:"mint_fee"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// treasuryResponse reports the pooled platform balance
type treasuryResponse struct {
	Balance int64 `json:"balance"`
}

// withdrawResponse reports a completed withdrawal
type withdrawResponse struct {
	Amount int64  `json:"amount"`
	To     string `json:"to"`
}

// ledgerEntryResponse is the public representation of a journal row
type ledgerEntryResponse struct {
	ID           uint64    `json:"id"`
	EntryType    string    `json:"entry_type"`
	PhotoID      *uint64   `json:"photo_id,omitempty"`
	Counterparty string    `json:"counterparty"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// ledgerEntriesResponse pages journal rows
type ledgerEntriesResponse struct {
	Entries []ledgerEntryResponse `json:"entries"`
	Total   int64                 `json:"total"`
}

// photoIDsResponse lists photo ids belonging to an owner
type photoIDsResponse struct {
	Owner    string   `json:"owner"`
	PhotoIDs []uint64 `json:"photo_ids"`
}

func toPhotoResponse(photo *schema.Photo) photoResponse {
	resp := photoResponse{
		ID:                photo.ID,
		Owner:             photo.Owner,
		OriginalRef:       photo.OriginalRef,
		ColorizedRef:      photo.ColorizedRef,
		FinalRef:          photo.FinalRef,
		Status:            string(photo.Status),
		EscrowedFee:       photo.EscrowedFee,
		AssignedProcessor: photo.AssignedProcessor,
		MintedAssetID:     photo.MintedAssetID,
		SubmittedAt:       photo.SubmittedAt,
		ColorizedAt:       photo.ColorizedAt,
	}
	for _, adjustment := range photo.Adjustments {
		resp.Adjustments = append(resp.Adjustments, toAdjustmentResponse(adjustment))
	}
	return resp
}

func toAdjustmentResponse(adjustment schema.Adjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:        adjustment.ID,
		PhotoID:   adjustment.PhotoID,
		Adjuster:  adjustment.Adjuster,
		Payload:   json.RawMessage(adjustment.Payload),
		AppliedAt: adjustment.AppliedAt,
	}
}

func toProcessorResponse(processor *schema.Processor) processorResponse {
	return processorResponse{
		Identity:       processor.Identity,
		ModelRef:       processor.ModelRef,
		TotalProcessed: processor.TotalProcessed,
		Reputation:     processor.Reputation,
		Active:         processor.Active,
		RegisteredAt:   processor.RegisteredAt,
	}
}

func toFeeScheduleResponse(feeSchedule *schema.FeeSchedule) feeScheduleResponse {
	return feeScheduleResponse{
		ColorizationFee: feeSchedule.ColorizationFee,
		AdjustmentFee:   feeSchedule.AdjustmentFee,
		MintFee:         feeSchedule.MintFee,
		UpdatedAt:       feeSchedule.UpdatedAt,
	}
}

func toLedgerEntryResponse(entry schema.LedgerEntry) ledgerEntryResponse {
	return ledgerEntryResponse{
		ID:           entry.ID,
		EntryType:    string(entry.EntryType),
		PhotoID:      entry.PhotoID,
		Counterparty: entry.Counterparty,
		Amount:       entry.Amount,
		CreatedAt:    entry.CreatedAt,
	}
}
