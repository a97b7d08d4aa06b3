package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/middleware"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(leaderboardService service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Completed runs ordered by score, highest first; equal scores keep submission order. The filter restricts entries to a trailing window. Authenticated callers also get their own rank.
// @Tags Leaderboard
// @Produce json
// @Param filter query string false "Time window" Enums(all, daily, weekly, monthly) default(all)
// @Success 200 {object} dto.LeaderboardDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown filter value"
// @Failure 500 {object} dto.ErrorResponse "Leaderboard unavailable"
// @Security BearerAuth
// @Router /leaderboard [get]
func (ctrl *LeaderboardController) GetLeaderboard(c *gin.Context) {
	filter, err := service.ParseTimeFilter(c.Query("filter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	var userID *uint
	if user := middleware.CurrentUser(c); user != nil {
		userID = &user.ID
	}

	board, err := ctrl.leaderboardService.GetLeaderboard(c.Request.Context(), filter, userID)
	if err != nil {
		if errors.Is(err, quiz.ErrFetch) {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve leaderboard"})
			return
		}
		log.Error().Err(err).Str("filter", string(filter)).Msg("GetLeaderboard: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve leaderboard"})
		return
	}
	c.JSON(http.StatusOK, board)
}
