package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidLikeTarget = errors.New("like must target exactly one of post or comment")

// Like targets exactly one post or one comment. The partial unique indexes
// idx_likes_user_post and idx_likes_user_comment and the CHECK constraint are
// created by migrations/00001_init.sql.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID    *string   `gorm:"type:uuid;index;check:chk_likes_single_target,(post_id IS NULL) <> (comment_id IS NULL)" json:"post_id"`
	CommentID *string   `gorm:"type:uuid;index" json:"comment_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Foreign keys
	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post    *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comment *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

func (l *Like) Validate() error {
	hasPost := l.PostID != nil && *l.PostID != ""
	hasComment := l.CommentID != nil && *l.CommentID != ""
	if hasPost == hasComment {
		return ErrInvalidLikeTarget
	}
	return nil
}
