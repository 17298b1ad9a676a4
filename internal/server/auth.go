package server

import (
	"net/http"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

// @Summary      Staff login
// @Description  Validate staff credentials and role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body authdomain.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]any
// @Router       /login [post]
func (s *Server) Login(c *gin.Context) {
	var req authdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.AbortWithError(c, authdomain.ErrMissingCredentials, "")
		return
	}

	identity, err := s.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		s.AbortWithError(c, err, "Server error during login process.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": identity})
}
