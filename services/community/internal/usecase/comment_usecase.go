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

type CommentUseCase interface {
	CreateComment(ctx context.Context, actor Actor, postID string, parentID *string, text string) (*entity.CommentNode, error)
	GetCommentTree(ctx context.Context, postID, viewerID string) ([]*entity.CommentNode, error)
	DeleteComment(ctx context.Context, commentID string, actor Actor) error
}

type commentUseCase struct {
	commentRepo  persistent.CommentRepository
	postRepo     persistent.PostRepository
	actors       ActorResolver
	orphanPolicy OrphanPolicy
	logger       *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	actors ActorResolver,
	orphanPolicy OrphanPolicy,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		actors:       actors,
		orphanPolicy: orphanPolicy,
		logger:       logger,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, actor Actor, postID string, parentID *string, text string) (*entity.CommentNode, error) {
	if postID == "" {
		return nil, validationError("post is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, validationError("text is required")
	}

	exists, err := uc.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up post: %w", err)
	}
	if !exists {
		return nil, notFoundError("post")
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		parent, err := uc.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, persistent.ErrNotFound) {
				return nil, notFoundError("parent comment")
			}
			return nil, fmt.Errorf("failed to look up parent comment: %w", err)
		}
		if parent.PostID != postID {
			return nil, validationError("parent comment belongs to a different post")
		}
	}

	author, err := uc.actors.ResolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   postID,
		ParentID: parentID,
		AuthorID: author.ID,
		Text:     text,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &entity.CommentNode{
		ID:        comment.ID,
		PostID:    comment.PostID,
		ParentID:  comment.ParentID,
		Author:    author.Ref(),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		Replies:   make([]*entity.CommentNode, 0),
	}, nil
}

// GetCommentTree loads every comment of the post in one query and assembles
// the reply forest in memory.
func (uc *commentUseCase) GetCommentTree(ctx context.Context, postID, viewerID string) ([]*entity.CommentNode, error) {
	exists, err := uc.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up post: %w", err)
	}
	if !exists {
		return nil, notFoundError("post")
	}

	records, err := uc.commentRepo.ListRecordsForPost(ctx, postID, viewerID)
	if err != nil {
		uc.logger.Error("Failed to load comments for post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	return BuildCommentTree(records, uc.orphanPolicy), nil
}

// DeleteComment removes the comment with all replies beneath it.
func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID string, actor Actor) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return notFoundError("comment")
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}

	user, err := uc.actors.ResolveActor(ctx, actor)
	if err != nil {
		return err
	}

	if comment.AuthorID != user.ID && !user.IsPrivileged() {
		return fmt.Errorf("%w: only the author or a moderator can delete this comment", ErrPermissionDenied)
	}

	records, err := uc.commentRepo.ListRecordsForPost(ctx, comment.PostID, "")
	if err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	ids := SubtreeIDs(BuildCommentTree(records, OrphansAtRoot), commentID)
	if len(ids) == 0 {
		ids = []string{commentID}
	}

	if err := uc.commentRepo.DeleteMany(ctx, ids); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Info("Comment %s and %d replies deleted by %s", commentID, len(ids)-1, user.ID)
	return nil
}
