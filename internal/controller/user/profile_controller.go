package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/middleware"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's profile and quiz statistics
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Profile unavailable"
// @Security BearerAuth
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	profile, err := ctrl.profileService.GetProfile(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("GetProfile: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
