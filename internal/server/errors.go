package server

import (
	"errors"
	"net/http"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AbortWithError translates domain sentinels into the stable envelope.
// Unrecognized errors are logged with their real cause and surfaced with the
// caller-supplied fallback message so store internals never leak.
func (s *Server) AbortWithError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, meterdomain.ErrMissingFields):
		respondFailure(c, http.StatusBadRequest, "Missing Meter ID, Reading Value, or Date.")
	case errors.Is(err, meterdomain.ErrInvalidReadingValue):
		respondFailure(c, http.StatusBadRequest, "Reading value must be a number.")
	case errors.Is(err, meterdomain.ErrInvalidReadingDate):
		respondFailure(c, http.StatusBadRequest, "Reading date must be YYYY-MM-DD.")
	case errors.Is(err, meterdomain.ErrMeterNotFound):
		respondFailure(c, http.StatusNotFound, "Meter not found.")
	case errors.Is(err, meterdomain.ErrUnknownMeter):
		respondFailure(c, http.StatusInternalServerError, "Failed to submit reading. Check if Meter ID is correct.")
	case errors.Is(err, authdomain.ErrMissingCredentials):
		respondFailure(c, http.StatusBadRequest, "Missing username, password, or role.")
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		respondFailure(c, http.StatusUnauthorized, "Invalid credentials or incorrect role selected.")
	default:
		s.log.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		respondFailure(c, http.StatusInternalServerError, fallback)
	}
}
