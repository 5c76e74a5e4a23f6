package http

import (
	"net/http"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	likeUseCase    usecase.LikeUseCase
	logger         *logger.Logger
}

func NewCommentHandler(
	commentUseCase usecase.CommentUseCase,
	likeUseCase usecase.LikeUseCase,
	logger *logger.Logger,
) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		likeUseCase:    likeUseCase,
		logger:         logger,
	}
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Top-level comment, or a reply when parent is set
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment"
// @Success      201  {object}  entity.CommentNode
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), actorFrom(c, req.User), req.Post, req.Parent, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Removes the comment and every reply beneath it
// @Tags         comments
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body ActorRequest false "Identity when no token is sent"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	var req ActorRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.Param("id"), actorFrom(c, req.User)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LikeComment godoc
// @Summary      Toggle like on a comment
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Param        request body ActorRequest false "Identity when no token is sent"
// @Success      201  {object}  map[string]bool
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/like [post]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	var req ActorRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	liked, err := h.likeUseCase.ToggleLike(c.Request.Context(), actorFrom(c, req.User), entity.CommentTarget(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(likeStatus(liked), gin.H{"liked": liked})
}
