package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidyasetu/scholartrack-backend/internal/model"
	"github.com/vidyasetu/scholartrack-backend/internal/response"
	"github.com/vidyasetu/scholartrack-backend/internal/service"
	"github.com/vidyasetu/scholartrack-backend/internal/validator"
)

const (
	msgIDRequired  = "Application ID is required"
	msgIDNotNumber = "Application ID must be a number"
)

type TrackHandler struct {
	trackingService *service.TrackingService
}

func NewTrackHandler(trackingService *service.TrackingService) *TrackHandler {
	return &TrackHandler{trackingService: trackingService}
}

// TrackApplication godoc
// GET /api/track?id=<identifier>
func (h *TrackHandler) TrackApplication(c *gin.Context) {
	var q model.TrackQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.Fail(c, http.StatusBadRequest, msgIDRequired)
		return
	}

	record, err := h.trackingService.Track(c.Request.Context(), q.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingID):
			response.Fail(c, http.StatusBadRequest, msgIDRequired)
		case errors.Is(err, service.ErrInvalidID):
			response.Fail(c, http.StatusBadRequest, msgIDNotNumber)
		case errors.Is(err, service.ErrApplicationNotFound):
			response.FailCode(c, http.StatusNotFound, response.ErrNotFound)
		default:
			var storeErr *service.StoreError
			if errors.As(err, &storeErr) {
				response.FailStore(c, http.StatusInternalServerError, storeErr.Code, storeErr.Err.Error())
			} else {
				response.FailStore(c, http.StatusInternalServerError, response.ErrDB, err.Error())
			}
		}
		return
	}

	response.Success(c, http.StatusOK, record)
}
