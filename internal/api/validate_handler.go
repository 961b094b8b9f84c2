package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trip-content-validator/internal/config"
	"github.com/trip-content-validator/internal/service"
)

// ValidateHandler handles synchronous single-document validation
type ValidateHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewValidateHandler creates a new ValidateHandler
func NewValidateHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ValidateHandler {
	return &ValidateHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "validate").Logger(),
	}
}

// ValidateDocument handles POST /v1/validate
// The request body is one raw Markdown document; the trip ID is taken
// from the optional ?id= query parameter. The response is the full
// validation result, HTTP 200 regardless of validity — validation
// findings are data, not transport errors.
func (h *ValidateHandler) ValidateDocument(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		id = "document"
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, h.cfg.Content.MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if int64(len(raw)) > h.cfg.Content.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document too large"})
		return
	}
	if len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is required"})
		return
	}

	result := h.services.Validation.ValidateDocument(id, string(raw))
	c.JSON(http.StatusOK, result)
}
