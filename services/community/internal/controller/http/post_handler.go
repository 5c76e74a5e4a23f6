package http

import (
	"net/http"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase    usecase.PostUseCase
	commentUseCase usecase.CommentUseCase
	likeUseCase    usecase.LikeUseCase
	logger         *logger.Logger
}

func NewPostHandler(
	postUseCase usecase.PostUseCase,
	commentUseCase usecase.CommentUseCase,
	likeUseCase usecase.LikeUseCase,
	logger *logger.Logger,
) *PostHandler {
	return &PostHandler{
		postUseCase:    postUseCase,
		commentUseCase: commentUseCase,
		likeUseCase:    likeUseCase,
		logger:         logger,
	}
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a text post as the session user or the identity in the body
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  entity.PostSummary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), actorFrom(c, req.User), req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  All posts newest first with like and comment counts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.PostSummary
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostSummary
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"), viewerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Authors may delete their own posts, moderators any post
// @Tags         posts
// @Accept       json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ActorRequest false "Identity when no token is sent"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	var req ActorRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), c.Param("id"), actorFrom(c, req.User)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCommentTree godoc
// @Summary      Get the comment tree of a post
// @Description  Threaded comments, oldest first at every level
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {array}   entity.CommentNode
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *PostHandler) GetCommentTree(c *gin.Context) {
	tree, err := h.commentUseCase.GetCommentTree(c.Request.Context(), c.Param("id"), viewerID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

// LikePost godoc
// @Summary      Toggle like on a post
// @Description  Likes the post, or removes the like if it already exists
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ActorRequest false "Identity when no token is sent"
// @Success      201  {object}  map[string]bool
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	var req ActorRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	liked, err := h.likeUseCase.ToggleLike(c.Request.Context(), actorFrom(c, req.User), entity.PostTarget(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(likeStatus(liked), gin.H{"liked": liked})
}
