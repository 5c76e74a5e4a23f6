package persistent

import (
	"context"
	"time"

	"community-feed/pkg/database"
	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Exists(ctx context.Context, id string) (bool, error)
	ListRecordsForPost(ctx context.Context, postID, viewerID string) ([]*entity.CommentRecord, error)
	DeleteMany(ctx context.Context, ids []string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

type commentRecordRow struct {
	ID             string
	PostID         string
	ParentID       *string
	AuthorID       string
	AuthorUsername string
	Text           string
	CreatedAt      time.Time
	LikeCount      int64
	IsLiked        bool
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}

	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	if database.IsInvalidInput(err) {
		return false, nil
	}
	return count > 0, err
}

// ListRecordsForPost loads every comment of the post with author, like count
// and viewer like state in a single query, oldest first.
func (r *commentRepository) ListRecordsForPost(ctx context.Context, postID, viewerID string) ([]*entity.CommentRecord, error) {
	var rows []commentRecordRow
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select(`c.id, c.post_id, c.parent_id, c.author_id, u.username AS author_username, c.text, c.created_at,
			(SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.id) AS like_count,
			EXISTS (SELECT 1 FROM likes l WHERE l.comment_id = c.id AND l.user_id = ?) AS is_liked`,
			nullableID(viewerID)).
		Joins("JOIN users u ON u.id = c.author_id").
		Where("c.post_id = ?", postID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entity.CommentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &entity.CommentRecord{
			Comment: entity.Comment{
				ID:        row.ID,
				PostID:    row.PostID,
				ParentID:  row.ParentID,
				AuthorID:  row.AuthorID,
				Text:      row.Text,
				CreatedAt: row.CreatedAt,
			},
			Author:    entity.UserRef{ID: row.AuthorID, Username: row.AuthorUsername},
			LikeCount: row.LikeCount,
			IsLiked:   row.IsLiked,
		})
	}
	return records, nil
}

// DeleteMany removes the given comments and their likes.
func (r *commentRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN ?", ids).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Comment{}).Error
	})
}
