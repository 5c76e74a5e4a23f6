package usecase

import (
	"context"
	"errors"
	"fmt"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"
)

type LikeUseCase interface {
	// ToggleLike flips the user's like on the target and reports the state
	// after the call.
	ToggleLike(ctx context.Context, actor Actor, target entity.LikeTarget) (bool, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	actors      ActorResolver
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	actors ActorResolver,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		actors:      actors,
		logger:      logger,
	}
}

func (uc *likeUseCase) ToggleLike(ctx context.Context, actor Actor, target entity.LikeTarget) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := uc.ensureTargetExists(ctx, target); err != nil {
		return false, err
	}

	user, err := uc.actors.ResolveActor(ctx, actor)
	if err != nil {
		return false, err
	}

	liked, err := uc.likeRepo.Exists(ctx, user.ID, target)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if _, err := uc.likeRepo.Delete(ctx, user.ID, target); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return false, fmt.Errorf("failed to unlike: %w", err)
		}
		return false, nil
	}

	if _, err := uc.likeRepo.Create(ctx, user.ID, target); err != nil {
		// A concurrent toggle inserted the same like first; the user's
		// intent to like is satisfied either way.
		if errors.Is(err, persistent.ErrDuplicateLike) {
			uc.logger.Info("Like %s by %s already recorded by a concurrent request", target, user.ID)
			return true, nil
		}
		uc.logger.Error("Failed to create like: %v", err)
		return false, fmt.Errorf("failed to like: %w", err)
	}
	return true, nil
}

func (uc *likeUseCase) ensureTargetExists(ctx context.Context, target entity.LikeTarget) error {
	var (
		exists bool
		err    error
	)
	switch target.Kind() {
	case entity.TargetPost:
		exists, err = uc.postRepo.Exists(ctx, target.ID())
	case entity.TargetComment:
		exists, err = uc.commentRepo.Exists(ctx, target.ID())
	}
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", target.Kind(), err)
	}
	if !exists {
		return notFoundError(string(target.Kind()))
	}
	return nil
}
