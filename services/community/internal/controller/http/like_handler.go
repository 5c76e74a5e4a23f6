package http

import (
	"net/http"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleLike godoc
// @Summary      Toggle like on a post or comment
// @Description  Exactly one of post_id and comment_id must be set
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ToggleLikeRequest true "Like target"
// @Success      201  {object}  map[string]bool
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /likes [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	var req ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	target, err := entity.ParseLikeTarget(req.PostID, req.CommentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	liked, err := h.likeUseCase.ToggleLike(c.Request.Context(), actorFrom(c, req.User), target)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(likeStatus(liked), gin.H{"liked": liked})
}
