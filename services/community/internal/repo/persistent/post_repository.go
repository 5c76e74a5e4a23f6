package persistent

import (
	"context"
	"time"

	"community-feed/pkg/database"
	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetSummary(ctx context.Context, id, viewerID string) (*entity.PostSummary, error)
	ListSummaries(ctx context.Context, viewerID string) ([]*entity.PostSummary, error)
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

type postSummaryRow struct {
	ID             string
	AuthorID       string
	AuthorUsername string
	Text           string
	CreatedAt      time.Time
	LikeCount      int64
	CommentCount   int64
	IsLiked        bool
}

func (row postSummaryRow) toEntity() *entity.PostSummary {
	return &entity.PostSummary{
		ID:           row.ID,
		Author:       entity.UserRef{ID: row.AuthorID, Username: row.AuthorUsername},
		Text:         row.Text,
		CreatedAt:    row.CreatedAt,
		LikeCount:    row.LikeCount,
		CommentCount: row.CommentCount,
		IsLiked:      row.IsLiked,
	}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	if database.IsInvalidInput(err) {
		return false, nil
	}
	return count > 0, err
}

// summaries selects posts with their like and comment counts and the viewer's
// like state in one round trip, so listing never issues per-post queries.
func (r *postRepository) summaries(ctx context.Context, viewerID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts AS p").
		Select(`p.id, p.author_id, u.username AS author_username, p.text, p.created_at,
			(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
			EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = ?) AS is_liked`,
			nullableID(viewerID)).
		Joins("JOIN users u ON u.id = p.author_id")
}

func (r *postRepository) GetSummary(ctx context.Context, id, viewerID string) (*entity.PostSummary, error) {
	var rows []postSummaryRow
	if err := r.summaries(ctx, viewerID).Where("p.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].toEntity(), nil
}

func (r *postRepository) ListSummaries(ctx context.Context, viewerID string) ([]*entity.PostSummary, error) {
	var rows []postSummaryRow
	if err := r.summaries(ctx, viewerID).Order("p.created_at DESC, p.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.PostSummary, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toEntity())
	}
	return posts, nil
}

// Delete removes the post together with its comments and every like that
// pointed at either, in one transaction.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Post{})
		if result.Error != nil {
			return translateNotFound(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// nullableID binds an anonymous viewer as NULL so the EXISTS check is false.
func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}
