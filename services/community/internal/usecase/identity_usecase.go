package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

// Actor names who performs a mutation: the session user when SessionUserID is
// set, else the external Identity from the request body. Use cases resolve it
// only after the request itself has been checked, so rejected requests never
// provision a user.
type Actor struct {
	SessionUserID string
	Identity      *entity.IdentityPayload
}

type ActorResolver interface {
	ResolveActor(ctx context.Context, actor Actor) (*entity.User, error)
}

type IdentityUseCase interface {
	ActorResolver
	ResolveOrCreate(ctx context.Context, payload entity.IdentityPayload) (*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

type identityUseCase struct {
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logger.Logger
}

func NewIdentityUseCase(
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger *logger.Logger,
) IdentityUseCase {
	return &identityUseCase{
		userRepo:    userRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (uc *identityUseCase) ResolveActor(ctx context.Context, actor Actor) (*entity.User, error) {
	if actor.SessionUserID != "" {
		user, err := uc.GetUser(ctx, actor.SessionUserID)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: session user no longer exists", ErrAuthRequired)
		}
		return user, err
	}

	if actor.Identity == nil {
		return nil, ErrAuthRequired
	}
	return uc.ResolveOrCreate(ctx, *actor.Identity)
}

// ResolveOrCreate maps an external identity onto a local user, creating it on
// first sight. Concurrent first requests for the same identity converge on
// one row: the loser of the username insert race re-reads the winner.
// Accounts that require a session are never handed out for a payload.
func (uc *identityUseCase) ResolveOrCreate(ctx context.Context, payload entity.IdentityPayload) (*entity.User, error) {
	username := payload.Username()
	if username == "" {
		return nil, fmt.Errorf("%w: identity has neither email nor id", ErrAuthRequired)
	}

	if user := uc.cachedUser(ctx, username); user != nil && !user.RequiresSession() {
		return user, nil
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, persistent.ErrNotFound) {
		user, err = uc.createUser(ctx, username, payload.Email)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if user.RequiresSession() {
		uc.logger.Warn("Refused identity payload for session-only account %s", username)
		return nil, fmt.Errorf("%w: account %s requires a session token", ErrAuthRequired, username)
	}

	if user.Email == "" && payload.Email != "" {
		if err := uc.userRepo.UpdateEmail(ctx, user.ID, payload.Email); err != nil {
			uc.logger.Warn("Failed to sync email for user %s: %v", user.ID, err)
		} else {
			user.Email = payload.Email
		}
	}

	uc.cacheUser(ctx, user)
	return user, nil
}

func (uc *identityUseCase) createUser(ctx context.Context, username, email string) (*entity.User, error) {
	user := &entity.User{
		Username: username,
		Email:    email,
		Role:     entity.RoleMember,
	}

	err := uc.userRepo.Create(ctx, user)
	if err == nil {
		uc.logger.Info("Created user %s for external identity", username)
		return user, nil
	}
	if !errors.Is(err, persistent.ErrDuplicateUsername) {
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after conflict: %w", err)
	}
	return existing, nil
}

func (uc *identityUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

func identityCacheKey(username string) string {
	return fmt.Sprintf("identity:user:%s", username)
}

func (uc *identityUseCase) cachedUser(ctx context.Context, username string) *entity.User {
	if uc.redisClient == nil {
		return nil
	}

	data, err := uc.redisClient.Get(ctx, identityCacheKey(username)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("Identity cache read failed: %v", err)
		}
		return nil
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

func (uc *identityUseCase) cacheUser(ctx context.Context, user *entity.User) {
	if uc.redisClient == nil || user == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := uc.redisClient.Set(ctx, identityCacheKey(user.Username), data, uc.cacheTTL).Err(); err != nil {
		uc.logger.Warn("Identity cache write failed: %v", err)
	}
}
