package http

import (
	"context"
	"time"

	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, actor usecase.Actor, text string) (*entity.PostSummary, error) {
	args := m.Called(ctx, actor, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostSummary), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, viewerID string) ([]*entity.PostSummary, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PostSummary), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.PostSummary, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostSummary), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, postID string, actor usecase.Actor) error {
	args := m.Called(ctx, postID, actor)
	return args.Error(0)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, actor usecase.Actor, postID string, parentID *string, text string) (*entity.CommentNode, error) {
	args := m.Called(ctx, actor, postID, parentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CommentNode), args.Error(1)
}

func (m *MockCommentUseCase) GetCommentTree(ctx context.Context, postID, viewerID string) ([]*entity.CommentNode, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommentNode), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, commentID string, actor usecase.Actor) error {
	args := m.Called(ctx, commentID, actor)
	return args.Error(0)
}

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(ctx context.Context, actor usecase.Actor, target entity.LikeTarget) (bool, error) {
	args := m.Called(ctx, actor, target)
	return args.Bool(0), args.Error(1)
}

type MockIdentityUseCase struct {
	mock.Mock
}

func (m *MockIdentityUseCase) ResolveActor(ctx context.Context, actor usecase.Actor) (*entity.User, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockIdentityUseCase) ResolveOrCreate(ctx context.Context, payload entity.IdentityPayload) (*entity.User, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockIdentityUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockLeaderboardUseCase struct {
	mock.Mock
}

func (m *MockLeaderboardUseCase) GetLeaderboard(ctx context.Context, window time.Duration, limit int) ([]entity.LeaderboardEntry, error) {
	args := m.Called(ctx, window, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeaderboardEntry), args.Error(1)
}

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, email, username, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

var (
	_ usecase.PostUseCase        = (*MockPostUseCase)(nil)
	_ usecase.CommentUseCase     = (*MockCommentUseCase)(nil)
	_ usecase.LikeUseCase        = (*MockLikeUseCase)(nil)
	_ usecase.IdentityUseCase    = (*MockIdentityUseCase)(nil)
	_ usecase.LeaderboardUseCase = (*MockLeaderboardUseCase)(nil)
	_ usecase.AuthUseCase        = (*MockAuthUseCase)(nil)
)
