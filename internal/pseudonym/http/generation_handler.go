// Package http provides HTTP handlers for pseudonym generation and lookup.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rlink7/rlink-pseudonym/internal/httputil"
	"github.com/rlink7/rlink-pseudonym/internal/pseudonym/http/dto"
	pseudonymUseCase "github.com/rlink7/rlink-pseudonym/internal/pseudonym/usecase"
	customValidation "github.com/rlink7/rlink-pseudonym/internal/validation"
)

// GenerationHandler handles HTTP requests for pseudonym generation, lookup and
// verification. Coordinates with GenerationUseCase.
type GenerationHandler struct {
	useCase            pseudonymUseCase.GenerationUseCase
	defaultDigits      int
	defaultMinDistance int
	logger             *slog.Logger
}

// NewGenerationHandler creates a new generation handler with required dependencies.
// defaultDigits and defaultMinDistance fill in request fields the client omitted.
func NewGenerationHandler(
	useCase pseudonymUseCase.GenerationUseCase,
	defaultDigits int,
	defaultMinDistance int,
	logger *slog.Logger,
) *GenerationHandler {
	return &GenerationHandler{
		useCase:            useCase,
		defaultDigits:      defaultDigits,
		defaultMinDistance: defaultMinDistance,
		logger:             logger,
	}
}

// GenerateHandler runs a generation pass and persists the resulting batch.
// POST /v1/pseudonyms/generate
// Returns 201 Created with the batch, its pseudonyms and the fulfillment report.
func (h *GenerationHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateBatchRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	spec := req.ToGenerationSpec(h.defaultDigits, h.defaultMinDistance)

	// Call use case
	batch, err := h.useCase.GenerateBatch(c.Request.Context(), spec, req.DryRun)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !batch.Report.Fulfilled() {
		h.logger.Warn("candidate space exhausted before all quotas were met",
			slog.String("batch_id", batch.ID.String()),
			slog.Int("unfulfilled_prefixes", len(batch.Report.Unfulfilled())),
		)
	}

	// Return response
	response := dto.MapBatchToResponse(batch)
	c.JSON(http.StatusCreated, response)
}

// VerifyHandler checks a pseudonym value's check digit and looks it up.
// POST /v1/pseudonyms/verify
// Returns 200 OK with the pseudonym when it verifies and was issued.
func (h *GenerationHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	pseudonym, err := h.useCase.Verify(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	response := dto.MapPseudonymToResponse(pseudonym)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves issued pseudonyms with pagination support.
// GET /v1/pseudonyms?offset=0&limit=50
// Returns 200 OK with the paginated pseudonym list.
func (h *GenerationHandler) ListHandler(c *gin.Context) {
	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	pseudonyms, err := h.useCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Map to response
	response := dto.MapPseudonymsToListResponse(pseudonyms)
	c.JSON(http.StatusOK, response)
}
