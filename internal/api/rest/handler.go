package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/palettelab/retint/internal/api/middleware"
	"github.com/palettelab/retint/internal/registry"
	"github.com/palettelab/retint/internal/settlement"
	"github.com/palettelab/retint/internal/store"
	"github.com/palettelab/retint/internal/store/schema"
	"github.com/palettelab/retint/internal/workflow"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitPhoto enters a new photo into the restoration workflow
	// POST /api/v1/photos
	SubmitPhoto(c *gin.Context)

	// SubmitColorization delivers a processor's colorized result
	// POST /api/v1/photos/:id/colorization
	SubmitColorization(c *gin.Context)

	// AdjustPhoto applies an owner's manual edit
	// POST /api/v1/photos/:id/adjustments
	AdjustPhoto(c *gin.Context)

	// MintPhoto finalizes a photo as an externally owned collectible
	// POST /api/v1/photos/:id/mint
	MintPhoto(c *gin.Context)

	// GetPhoto retrieves a photo with its adjustment history
	// GET /api/v1/photos/:id
	GetPhoto(c *gin.Context)

	// ListPhotos retrieves photo ids by owner
	// GET /api/v1/photos?owner=<identity>
	ListPhotos(c *gin.Context)

	// GetAdjustments retrieves a photo's adjustment history
	// GET /api/v1/photos/:id/adjustments
	GetAdjustments(c *gin.Context)

	// RegisterProcessor adds the calling identity to the processor pool
	// POST /api/v1/processors
	RegisterProcessor(c *gin.Context)

	// GetProcessor retrieves a processor profile
	// GET /api/v1/processors/:identity
	GetProcessor(c *gin.Context)

	// SetProcessorStatus flips a processor's active flag (administrative)
	// PATCH /api/v1/processors/:identity/status
	SetProcessorStatus(c *gin.Context)

	// SetProcessorReputation overwrites a processor's reputation (administrative)
	// PATCH /api/v1/processors/:identity/reputation
	SetProcessorReputation(c *gin.Context)

	// GetFees retrieves the current fee schedule
	// GET /api/v1/fees
	GetFees(c *gin.Context)

	// SetFees replaces the fee schedule rates (administrative)
	// PUT /api/v1/fees
	SetFees(c *gin.Context)

	// GetTreasury reports the pooled platform balance
	// GET /api/v1/treasury
	GetTreasury(c *gin.Context)

	// WithdrawTreasury drains the pooled balance (administrative)
	// POST /api/v1/treasury/withdraw
	WithdrawTreasury(c *gin.Context)

	// GetLedgerEntries retrieves the settlement journal
	// GET /api/v1/treasury/entries?entry_type=<type>&photo_id=<id>&limit=<limit>&offset=<offset>
	GetLedgerEntries(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine     workflow.Engine
	registry   registry.Registry
	settlement settlement.Settlement
}

// NewHandler creates a new REST API handler
func NewHandler(engine workflow.Engine, reg registry.Registry, settle settlement.Settlement) Handler {
	return &handler{
		engine:     engine,
		registry:   reg,
		settlement: settle,
	}
}

// SubmitPhoto enters a new photo into the restoration workflow
func (h *handler) SubmitPhoto(c *gin.Context) {
	var req submitPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	photo, err := h.engine.Submit(c.Request.Context(), middleware.Subject(c), req.OriginalRef, req.Payment)
	if err != nil {
		respondDomainError(c, err, "Failed to submit photo")
		return
	}

	c.JSON(http.StatusCreated, toPhotoResponse(photo))
}

// SubmitColorization delivers a processor's colorized result
func (h *handler) SubmitColorization(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	var req submitColorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.engine.SubmitColorization(c.Request.Context(), middleware.Subject(c), photoID, req.ColorizedRef)
	if err != nil {
		respondDomainError(c, err, "Failed to submit colorization")
		return
	}

	c.JSON(http.StatusOK, colorizationResponse{
		Photo:         toPhotoResponse(result.Photo),
		Payout:        result.Payout,
		PlatformShare: result.PlatformShare,
	})
}

// AdjustPhoto applies an owner's manual edit
func (h *handler) AdjustPhoto(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	var req adjustPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	photo, err := h.engine.Adjust(c.Request.Context(), middleware.Subject(c), photoID, req.Payload, req.FinalRef, req.Payment)
	if err != nil {
		respondDomainError(c, err, "Failed to adjust photo")
		return
	}

	c.JSON(http.StatusOK, toPhotoResponse(photo))
}

// MintPhoto finalizes a photo as an externally owned collectible
func (h *handler) MintPhoto(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	var req mintPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	photo, err := h.engine.Mint(c.Request.Context(), middleware.Subject(c), photoID, req.MetadataRef, req.Payment)
	if err != nil {
		respondDomainError(c, err, "Failed to mint photo")
		return
	}

	c.JSON(http.StatusOK, toPhotoResponse(photo))
}

// GetPhoto retrieves a photo with its adjustment history
func (h *handler) GetPhoto(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	photo, err := h.engine.GetPhoto(c.Request.Context(), photoID)
	if err != nil {
		respondInternalError(c, err, "Failed to get photo")
		return
	}
	if photo == nil {
		respondNotFound(c, "Photo not found")
		return
	}

	c.JSON(http.StatusOK, toPhotoResponse(photo))
}

// ListPhotos retrieves photo ids by owner
func (h *handler) ListPhotos(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respondBadRequest(c, "Owner is required")
		return
	}

	ids, err := h.engine.ListPhotoIDsByOwner(c.Request.Context(), owner)
	if err != nil {
		respondInternalError(c, err, "Failed to list photos")
		return
	}

	c.JSON(http.StatusOK, photoIDsResponse{
		Owner:    owner,
		PhotoIDs: ids,
	})
}

// GetAdjustments retrieves a photo's adjustment history
func (h *handler) GetAdjustments(c *gin.Context) {
	photoID, ok := photoIDParam(c)
	if !ok {
		return
	}

	adjustments, err := h.engine.GetAdjustments(c.Request.Context(), photoID)
	if err != nil {
		respondDomainError(c, err, "Failed to get adjustments")
		return
	}

	resp := make([]adjustmentResponse, 0, len(adjustments))
	for _, adjustment := range adjustments {
		resp = append(resp, toAdjustmentResponse(adjustment))
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterProcessor adds the calling identity to the processor pool
func (h *handler) RegisterProcessor(c *gin.Context) {
	var req registerProcessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	processor, err := h.registry.Register(c.Request.Context(), middleware.Subject(c), req.ModelRef)
	if err != nil {
		respondDomainError(c, err, "Failed to register processor")
		return
	}

	c.JSON(http.StatusCreated, toProcessorResponse(processor))
}

// GetProcessor retrieves a processor profile
func (h *handler) GetProcessor(c *gin.Context) {
	identity := c.Param("identity")
	if identity == "" {
		respondBadRequest(c, "Processor identity is required")
		return
	}

	processor, err := h.registry.Get(c.Request.Context(), identity)
	if err != nil {
		respondInternalError(c, err, "Failed to get processor")
		return
	}
	if processor == nil {
		respondNotFound(c, "Processor not found")
		return
	}

	c.JSON(http.StatusOK, toProcessorResponse(processor))
}

// SetProcessorStatus flips a processor's active flag
func (h *handler) SetProcessorStatus(c *gin.Context) {
	identity := c.Param("identity")

	var req setProcessorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	processor, err := h.registry.SetActive(c.Request.Context(), middleware.Subject(c), identity, *req.Active)
	if err != nil {
		respondDomainError(c, err, "Failed to set processor status")
		return
	}

	c.JSON(http.StatusOK, toProcessorResponse(processor))
}

// SetProcessorReputation overwrites a processor's reputation
func (h *handler) SetProcessorReputation(c *gin.Context) {
	identity := c.Param("identity")

	var req setReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	processor, err := h.registry.SetReputation(c.Request.Context(), middleware.Subject(c), identity, *req.Reputation)
	if err != nil {
		respondDomainError(c, err, "Failed to set processor reputation")
		return
	}

	c.JSON(http.StatusOK, toProcessorResponse(processor))
}

// GetFees retrieves the current fee schedule
func (h *handler) GetFees(c *gin.Context) {
	feeSchedule, err := h.settlement.Fees(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get fees")
		return
	}

	c.JSON(http.StatusOK, toFeeScheduleResponse(feeSchedule))
}

// SetFees replaces the fee schedule rates
func (h *handler) SetFees(c *gin.Context) {
	var req setFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	feeSchedule, err := h.settlement.SetFees(c.Request.Context(), middleware.Subject(c),
		req.ColorizationFee, req.AdjustmentFee, req.MintFee)
	if err != nil {
		respondDomainError(c, err, "Failed to set fees")
		return
	}

	c.JSON(http.StatusOK, toFeeScheduleResponse(feeSchedule))
}

// GetTreasury reports the pooled platform balance
func (h *handler) GetTreasury(c *gin.Context) {
	balance, err := h.settlement.Balance(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get treasury balance")
		return
	}

	c.JSON(http.StatusOK, treasuryResponse{Balance: balance})
}

// WithdrawTreasury drains the pooled balance to the calling administrator
func (h *handler) WithdrawTreasury(c *gin.Context) {
	actor := middleware.Subject(c)
	amount, err := h.settlement.Withdraw(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err, "Failed to withdraw treasury")
		return
	}

	c.JSON(http.StatusOK, withdrawResponse{
		Amount: amount,
		To:     actor,
	})
}

// GetLedgerEntries retrieves the settlement journal
func (h *handler) GetLedgerEntries(c *gin.Context) {
	filter := store.LedgerEntriesFilter{
		EntryType: schema.LedgerEntryType(c.Query("entry_type")),
	}

	if raw := c.Query("photo_id"); raw != "" {
		photoID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid photo id", err.Error())
			return
		}
		filter.PhotoID = &photoID
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondBadRequest(c, "Invalid limit")
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondBadRequest(c, "Invalid offset")
			return
		}
		filter.Offset = offset
	}

	entries, total, err := h.settlement.LedgerEntries(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to get ledger entries")
		return
	}

	resp := ledgerEntriesResponse{
		Entries: make([]ledgerEntryResponse, 0, len(entries)),
		Total:   total,
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, toLedgerEntryResponse(entry))
	}
	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// photoIDParam parses the :id path parameter, responding 400 on garbage
func photoIDParam(c *gin.Context) (uint64, bool) {
	photoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid photo id", err.Error())
		return 0, false
	}
	return photoID, true
}
