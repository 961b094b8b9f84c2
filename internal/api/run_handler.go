package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/models"
	"github.com/trip-content-validator/internal/service"
)

// RunHandler handles validation run endpoints
type RunHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewRunHandler creates a new RunHandler
func NewRunHandler(services *service.Services, log zerolog.Logger) *RunHandler {
	return &RunHandler{
		services: services,
		log:      log.With().Str("handler", "run").Logger(),
	}
}

// CreateRun handles POST /v1/validations
// Creates a validation run over the configured content directory; an
// optional JSON body can override the directory.
func (h *RunHandler) CreateRun(c *gin.Context) {
	ctx := c.Request.Context()

	// Get idempotency key from header
	idempotencyKey := c.GetHeader("Idempotency-Key")

	// Check for existing run with same idempotency key
	if idempotencyKey != "" {
		existingRun, err := h.services.Run.GetRunByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to check idempotency key")
		}
		if existingRun != nil {
			h.log.Info().Str("run_id", existingRun.ID).Msg("Returning existing run for idempotency key")
			c.JSON(http.StatusOK, existingRun)
			return
		}
	}

	req := models.RunRequest{IdempotencyKey: idempotencyKey}
	if c.Request.ContentLength > 0 {
		var body struct {
			ContentDir string `json:"content_dir"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		req.ContentDir = body.ContentDir
	}

	run, err := h.services.Validation.CreateRun(ctx, &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create validation run")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create validation run"})
		return
	}

	c.JSON(http.StatusAccepted, run)
}

// GetRunStatus handles GET /v1/validations/:run_id
func (h *RunHandler) GetRunStatus(c *gin.Context) {
	runID := c.Param("run_id")

	run, err := h.services.Run.GetRun(c.Request.Context(), runID)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", runID).Msg("Failed to get run")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get run"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// GetRunFindings handles GET /v1/validations/:run_id/findings
func (h *RunHandler) GetRunFindings(c *gin.Context) {
	runID := c.Param("run_id")

	limit := 0
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	findings, err := h.services.Run.GetRunFindings(c.Request.Context(), runID, limit)
	if err != nil {
		h.log.Error().Err(err).Str("run_id", runID).Msg("Failed to get findings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get findings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":   runID,
		"count":    len(findings),
		"findings": findings,
	})
}

// GetRunReport handles GET /v1/validations/:run_id/report
// Renders the run's persisted results as a plain-text report.
func (h *RunHandler) GetRunReport(c *gin.Context) {
	runID := c.Param("run_id")

	text, err := h.services.Run.GetRunReport(c.Request.Context(), runID)
	if err == service.ErrRunNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("run_id", runID).Msg("Failed to generate report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.String(http.StatusOK, text)
}
