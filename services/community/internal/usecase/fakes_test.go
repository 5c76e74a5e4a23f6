package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"community-feed/pkg/logger"
	"community-feed/services/community/internal/entity"
	"community-feed/services/community/internal/repo/persistent"

	"go.uber.org/zap"
)

func testLogger() *logger.Logger {
	return logger.FromZap(zap.NewNop())
}

type fakeUserRepo struct {
	mu      sync.Mutex
	seq     int
	byID    map[string]*entity.User
	creates int
	// beforeCreate runs outside the lock so tests can line up racing inserts.
	beforeCreate func()
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

// put stores users under their given ids without counting them as created.
func (r *fakeUserRepo) put(users ...*entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range users {
		stored := *user
		r.byID[user.ID] = &stored
	}
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// newActorStore backs actor resolution with the real identity use case over
// an in-memory user table.
func newActorStore(users ...*entity.User) (IdentityUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	repo.put(users...)
	return NewIdentityUseCase(repo, nil, 0, testLogger()), repo
}

func sessionOf(userID string) Actor {
	return Actor{SessionUserID: userID}
}

func identityOf(email string) Actor {
	return Actor{Identity: &entity.IdentityPayload{ID: "ext-" + email, Email: email}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == user.Username {
			return persistent.ErrDuplicateUsername
		}
	}
	r.seq++
	r.creates++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, persistent.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byID {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, persistent.ErrNotFound
}

func (r *fakeUserRepo) UpdateEmail(_ context.Context, id, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		user.Email = email
	}
	return nil
}

type fakePostRepo struct {
	mu      sync.Mutex
	seq     int
	posts   map[string]*entity.Post
	deleted []string
}

func newFakePostRepo(posts ...*entity.Post) *fakePostRepo {
	r := &fakePostRepo{posts: make(map[string]*entity.Post)}
	for _, post := range posts {
		r.posts[post.ID] = post
	}
	return r
}

func (r *fakePostRepo) Create(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	post.ID = fmt.Sprintf("post-%d", r.seq)
	post.CreatedAt = time.Now()
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, persistent.ErrNotFound
	}
	return post, nil
}

func (r *fakePostRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.posts[id]
	return ok, nil
}

func (r *fakePostRepo) GetSummary(ctx context.Context, id, _ string) (*entity.PostSummary, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.PostSummary{ID: post.ID, Author: entity.UserRef{ID: post.AuthorID}, Text: post.Text, CreatedAt: post.CreatedAt}, nil
}

func (r *fakePostRepo) ListSummaries(_ context.Context, _ string) ([]*entity.PostSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.PostSummary, 0, len(r.posts))
	for _, post := range r.posts {
		out = append(out, &entity.PostSummary{ID: post.ID, Author: entity.UserRef{ID: post.AuthorID}, Text: post.Text, CreatedAt: post.CreatedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return persistent.ErrNotFound
	}
	delete(r.posts, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments map[string]*entity.Comment
	deleted  []string
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
	for _, comment := range comments {
		r.comments[comment.ID] = comment
	}
	return r
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	comment.ID = fmt.Sprintf("comment-%d", r.seq)
	comment.CreatedAt = time.Now()
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, persistent.ErrNotFound
	}
	return comment, nil
}

func (r *fakeCommentRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.comments[id]
	return ok, nil
}

func (r *fakeCommentRepo) ListRecordsForPost(_ context.Context, postID, _ string) ([]*entity.CommentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []*entity.CommentRecord
	for _, comment := range r.comments {
		if comment.PostID == postID {
			records = append(records, &entity.CommentRecord{Comment: *comment, Author: entity.UserRef{ID: comment.AuthorID}})
		}
	}
	return records, nil
}

func (r *fakeCommentRepo) DeleteMany(_ context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		delete(r.comments, id)
	}
	r.deleted = append(r.deleted, ids...)
	return nil
}

// fakeLikeRepo enforces (user, target) uniqueness the way the partial unique
// indexes do.
type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[string]bool
	// existsBarrier, when set, holds every Exists caller until all expected
	// callers have read the state.
	existsBarrier *sync.WaitGroup
	duplicates    int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]bool)}
}

func likeKey(userID string, target entity.LikeTarget) string {
	return userID + "|" + target.String()
}

func (r *fakeLikeRepo) Exists(_ context.Context, userID string, target entity.LikeTarget) (bool, error) {
	r.mu.Lock()
	liked := r.likes[likeKey(userID, target)]
	r.mu.Unlock()

	if r.existsBarrier != nil {
		r.existsBarrier.Done()
		r.existsBarrier.Wait()
	}
	return liked, nil
}

func (r *fakeLikeRepo) Create(_ context.Context, userID string, target entity.LikeTarget) (*entity.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey(userID, target)
	if r.likes[key] {
		r.duplicates++
		return nil, persistent.ErrDuplicateLike
	}
	r.likes[key] = true
	return &entity.Like{ID: key, UserID: userID, Target: target, CreatedAt: time.Now()}, nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, userID string, target entity.LikeTarget) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey(userID, target)
	if !r.likes[key] {
		return false, nil
	}
	delete(r.likes, key)
	return true, nil
}

func (r *fakeLikeRepo) Count(_ context.Context, target entity.LikeTarget) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	suffix := "|" + target.String()
	for key := range r.likes {
		if len(key) >= len(suffix) && key[len(key)-len(suffix):] == suffix {
			count++
		}
	}
	return count, nil
}

type fakeKarmaRepo struct {
	events    []entity.KarmaEvent
	lastSince time.Time
	err       error
}

func (r *fakeKarmaRepo) EventsSince(_ context.Context, since time.Time) ([]entity.KarmaEvent, error) {
	r.lastSince = since
	if r.err != nil {
		return nil, r.err
	}

	var out []entity.KarmaEvent
	for _, ev := range r.events {
		if !ev.CreatedAt.Before(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}

var (
	_ persistent.UserRepository    = (*fakeUserRepo)(nil)
	_ persistent.PostRepository    = (*fakePostRepo)(nil)
	_ persistent.CommentRepository = (*fakeCommentRepo)(nil)
	_ persistent.LikeRepository    = (*fakeLikeRepo)(nil)
	_ persistent.KarmaRepository   = (*fakeKarmaRepo)(nil)
)
