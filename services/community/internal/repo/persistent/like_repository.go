package persistent

import (
	"context"
	"errors"

	"community-feed/pkg/database"
	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Exists(ctx context.Context, userID string, target entity.LikeTarget) (bool, error)
	Create(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error)
	Delete(ctx context.Context, userID string, target entity.LikeTarget) (bool, error)
	Count(ctx context.Context, target entity.LikeTarget) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func byTarget(target entity.LikeTarget) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if target.Kind() == entity.TargetPost {
			return db.Where("post_id = ?", target.ID())
		}
		return db.Where("comment_id = ?", target.ID())
	}
}

func (r *likeRepository) Exists(ctx context.Context, userID string, target entity.LikeTarget) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Scopes(byTarget(target)).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the like. The partial unique indexes on (user, target) are
// the only arbiter of duplicates: a conflicting insert surfaces as
// ErrDuplicateLike.
func (r *likeRepository) Create(ctx context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	likeModel := ToLikeModel(userID, target)
	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateLike
		}
		if errors.Is(err, models.ErrInvalidLikeTarget) {
			return nil, entity.ErrInvalidLikeTarget
		}
		return nil, err
	}
	return ToLikeEntity(likeModel), nil
}

// Delete reports whether a like was actually removed.
func (r *likeRepository) Delete(ctx context.Context, userID string, target entity.LikeTarget) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Scopes(byTarget(target)).
		Where("user_id = ?", userID).
		Delete(&models.Like{})
	return result.RowsAffected > 0, result.Error
}

func (r *likeRepository) Count(ctx context.Context, target entity.LikeTarget) (int64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Scopes(byTarget(target)).Count(&count).Error
	return count, err
}
