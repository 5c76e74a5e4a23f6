package http

import (
	"errors"
	"io"
	"net/http"

	"community-feed/pkg/middleware"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ActorRequest carries the optional external identity for callers without a
// session token.
type ActorRequest struct {
	User *entity.IdentityPayload `json:"user"`
}

type CreatePostRequest struct {
	Text string                  `json:"text"`
	User *entity.IdentityPayload `json:"user"`
}

type CreateCommentRequest struct {
	Post   string                  `json:"post"`
	Parent *string                 `json:"parent"`
	Text   string                  `json:"text"`
	User   *entity.IdentityPayload `json:"user"`
}

type ToggleLikeRequest struct {
	PostID    *string                 `json:"post_id"`
	CommentID *string                 `json:"comment_id"`
	User      *entity.IdentityPayload `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindOptionalJSON binds the body when there is one. Likes and deletes are
// usually sent without a body by session holders.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// actorFrom describes the caller for a mutation. The use case resolves it
// after validating the request.
func actorFrom(c *gin.Context, payload *entity.IdentityPayload) usecase.Actor {
	return usecase.Actor{
		SessionUserID: c.GetString(middleware.ContextUserID),
		Identity:      payload,
	}
}

func viewerID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func likeStatus(liked bool) int {
	if liked {
		return http.StatusCreated
	}
	return http.StatusOK
}
