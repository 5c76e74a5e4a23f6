package http

import (
	"net/http"
	"strconv"
	"time"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardUseCase usecase.LeaderboardUseCase
	defaultWindow      time.Duration
	defaultLimit       int
	logger             *logger.Logger
}

func NewLeaderboardHandler(
	leaderboardUseCase usecase.LeaderboardUseCase,
	defaultWindow time.Duration,
	defaultLimit int,
	logger *logger.Logger,
) *LeaderboardHandler {
	if defaultWindow <= 0 {
		defaultWindow = usecase.DefaultLeaderboardWindow
	}
	if defaultLimit <= 0 {
		defaultLimit = usecase.DefaultLeaderboardLimit
	}
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		defaultWindow:      defaultWindow,
		defaultLimit:       defaultLimit,
		logger:             logger,
	}
}

// GetLeaderboard godoc
// @Summary      Karma leaderboard
// @Description  Top users by karma earned in the trailing window (5 per post like, 1 per comment like)
// @Tags         leaderboard
// @Produce      json
// @Param        window query string false "Window as a Go duration, e.g. 24h"
// @Param        limit query int false "Number of entries (max 100)"
// @Success      200  {array}   entity.LeaderboardEntry
// @Failure      400  {object}  map[string]string
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	window := h.defaultWindow
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window"})
			return
		}
		window = parsed
	}

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardUseCase.GetLeaderboard(c.Request.Context(), window, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
