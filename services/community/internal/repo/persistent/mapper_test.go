package persistent

import (
	"testing"
	"time"

	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapping(t *testing.T) {
	now := time.Now()
	m := &models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Role: models.RoleModerator, CreatedAt: now}

	e := ToUserEntity(m)
	assert.Equal(t, "alice", e.Username)
	assert.Equal(t, entity.RoleModerator, e.Role)
	assert.True(t, e.IsPrivileged())

	back := ToUserModel(e)
	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, m.Role, back.Role)
	assert.Equal(t, now, back.CreatedAt)

	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserModel(nil))
}

func TestToLikeModel(t *testing.T) {
	postLike := ToLikeModel("u-1", entity.PostTarget("p-1"))
	require.NotNil(t, postLike.PostID)
	assert.Equal(t, "p-1", *postLike.PostID)
	assert.Nil(t, postLike.CommentID)
	assert.NoError(t, postLike.Validate())

	commentLike := ToLikeModel("u-1", entity.CommentTarget("c-1"))
	assert.Nil(t, commentLike.PostID)
	require.NotNil(t, commentLike.CommentID)
	assert.Equal(t, "c-1", *commentLike.CommentID)
}

func TestToLikeEntity(t *testing.T) {
	commentID := "c-1"
	like := ToLikeEntity(&models.Like{ID: "l-1", UserID: "u-1", CommentID: &commentID})

	assert.Equal(t, "l-1", like.ID)
	assert.Equal(t, entity.TargetComment, like.Target.Kind())
	assert.Equal(t, "c-1", like.Target.ID())
}

func TestCommentMapping_KeepsParent(t *testing.T) {
	parent := "c-parent"
	e := ToCommentEntity(&models.Comment{ID: "c-1", PostID: "p-1", ParentID: &parent, AuthorID: "u-1", Text: "hi"})

	require.NotNil(t, e.ParentID)
	assert.Equal(t, parent, *e.ParentID)
	assert.Equal(t, e.ParentID, ToCommentModel(e).ParentID)
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(""))
	assert.Equal(t, "u-1", nullableID("u-1"))
}
