package persistent

import (
	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      models.UserRole(e.Role),
		CreatedAt: e.CreatedAt,
	}
}

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	return &models.Post{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		ParentID:  m.ParentID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		PostID:    e.PostID,
		ParentID:  e.ParentID,
		AuthorID:  e.AuthorID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}

func ToLikeModel(userID string, target entity.LikeTarget) *models.Like {
	return &models.Like{
		UserID:    userID,
		PostID:    target.PostID(),
		CommentID: target.CommentID(),
	}
}

func ToLikeEntity(m *models.Like) *entity.Like {
	if m == nil {
		return nil
	}

	like := &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
	if target, err := entity.ParseLikeTarget(m.PostID, m.CommentID); err == nil {
		like.Target = target
	}
	return like
}
