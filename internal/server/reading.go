package server

import (
	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"github.com/gin-gonic/gin"
)

// @Summary      List assigned route
// @Description  Active meters with no reading recorded this calendar month
// @Tags         reading
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /getRoutes [get]
func (s *Server) ListRoutes(c *gin.Context) {
	stops, err := s.meterSvc.ListEligibleRoutes(c.Request.Context())
	if err != nil {
		s.AbortWithError(c, err, "Failed to retrieve routes.")
		return
	}

	// An empty route is a success with zero stops, never null.
	if stops == nil {
		stops = []meterdomain.RouteStop{}
	}
	respondData(c, stops)
}

// @Summary      Meter details
// @Description  Customer context for one meter, pre-filling the reading form
// @Tags         reading
// @Produce      json
// @Param        id  path  string  true  "Meter ID"
// @Success      200  {object}  map[string]any
// @Router       /api/meter-details/{id} [get]
func (s *Server) GetMeterDetails(c *gin.Context) {
	mc, err := s.meterSvc.GetMeterContext(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.AbortWithError(c, err, "Failed to retrieve meter details.")
		return
	}
	respondData(c, mc)
}

// @Summary      Submit reading
// @Description  Record one meter reading for the current period
// @Tags         reading
// @Accept       json
// @Produce      json
// @Param        request body meterdomain.SubmitReadingRequest true "Reading"
// @Success      200  {object}  map[string]any
// @Router       /submitReading [post]
func (s *Server) SubmitReading(c *gin.Context) {
	var req meterdomain.SubmitReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, meterdomain.ErrMissingFields, "")
		return
	}

	// No session binding yet; readings are attributed to the configured
	// field officer.
	req.SubmittedBy = s.cfg.Field.OfficerID

	if _, err := s.meterSvc.SubmitReading(c.Request.Context(), req); err != nil {
		s.AbortWithError(c, err, "Failed to submit reading. Check if Meter ID is correct.")
		return
	}
	respondMessage(c, "Reading submitted successfully.")
}
