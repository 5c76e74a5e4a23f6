package persistent

import (
	"context"

	"community-feed/pkg/database"
	"community-feed/pkg/models"
	"community-feed/services/community/internal/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateEmail(ctx context.Context, id, email string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and fills in the generated id. A taken username is
// reported as ErrDuplicateUsername so get-or-create callers can re-read.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, id, email string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("email", email).Error
}
