package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"
)

type PostUseCase interface {
	CreatePost(ctx context.Context, actor Actor, text string) (*entity.PostSummary, error)
	ListPosts(ctx context.Context, viewerID string) ([]*entity.PostSummary, error)
	GetPost(ctx context.Context, postID, viewerID string) (*entity.PostSummary, error)
	DeletePost(ctx context.Context, postID string, actor Actor) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	actors   ActorResolver
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, actors ActorResolver, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		actors:   actors,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, actor Actor, text string) (*entity.PostSummary, error) {
	if strings.TrimSpace(text) == "" {
		return nil, validationError("text is required")
	}

	author, err := uc.actors.ResolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		AuthorID: author.ID,
		Text:     text,
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &entity.PostSummary{
		ID:        post.ID,
		Author:    author.Ref(),
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
	}, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, viewerID string) ([]*entity.PostSummary, error) {
	posts, err := uc.postRepo.ListSummaries(ctx, viewerID)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.PostSummary, error) {
	post, err := uc.postRepo.GetSummary(ctx, postID, viewerID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, notFoundError("post")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// DeletePost removes a post the actor owns, or any post for a moderator.
func (uc *postUseCase) DeletePost(ctx context.Context, postID string, actor Actor) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFoundError("post")
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	user, err := uc.actors.ResolveActor(ctx, actor)
	if err != nil {
		return err
	}

	if post.AuthorID != user.ID && !user.IsPrivileged() {
		return fmt.Errorf("%w: only the author or a moderator can delete this post", ErrPermissionDenied)
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFoundError("post")
		}
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	uc.logger.Info("Post %s deleted by %s", postID, user.ID)
	return nil
}
