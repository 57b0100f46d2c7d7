package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vidyasetu/scholartrack-backend/internal/response"
)

// verifiedCookie is set by the out-of-scope verification flow.
const verifiedCookie = "verifiedData"

// VerifiedHandler serves the verified-data passthrough: it parses the
// cookie as JSON and returns it verbatim, with no normalization or schema.
type VerifiedHandler struct {
	log zerolog.Logger
}

func NewVerifiedHandler(log zerolog.Logger) *VerifiedHandler {
	return &VerifiedHandler{log: log.With().Str("component", "verified_handler").Logger()}
}

// GetVerifiedData godoc
// GET /api/verified-data
func (h *VerifiedHandler) GetVerifiedData(c *gin.Context) {
	raw, err := c.Cookie(verifiedCookie)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "No verified data found")
		return
	}

	var payload interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		h.log.Error().Err(err).Msg("Stored verified data is not valid JSON")
		response.Fail(c, http.StatusInternalServerError, "Failed to parse verified data")
		return
	}

	response.Success(c, http.StatusOK, payload)
}
