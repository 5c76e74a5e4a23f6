package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"community-feed/pkg/jwt"
	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthUseCase interface {
	Register(ctx context.Context, email, username, password string) (*entity.User, string, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, username, password string) (*entity.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", validationError("username is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", validationError("password must be at least %d characters", minPasswordLength)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    strings.TrimSpace(email),
		Username: username,
		Password: string(hashedPassword),
		Role:     entity.RoleMember,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicateUsername) {
			return nil, "", fmt.Errorf("%w: username already taken", ErrConflict)
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", ErrAuthRequired)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	// Users created from an external identity have no password and can only
	// act through that identity.
	if user.Password == "" {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrAuthRequired)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrAuthRequired)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}
