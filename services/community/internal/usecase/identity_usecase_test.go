package usecase

import (
	"sync"
	"testing"

	"community-feed/services/community/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrCreate_Idempotent(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewIdentityUseCase(users, nil, 0, testLogger())
	payload := entity.IdentityPayload{ID: "ext-123", Email: "alice@example.com"}

	first, err := uc.ResolveOrCreate(ctxBG(), payload)
	require.NoError(t, err)
	second, err := uc.ResolveOrCreate(ctxBG(), payload)
	require.NoError(t, err)

	assert.Equal(t, "alice", first.Username)
	assert.Equal(t, entity.RoleMember, first.Role)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, users.creates)
}

func TestResolveOrCreate_UsernameFromID(t *testing.T) {
	uc := NewIdentityUseCase(newFakeUserRepo(), nil, 0, testLogger())

	user, err := uc.ResolveOrCreate(ctxBG(), entity.IdentityPayload{ID: "0123456789abcdefXYZ"})
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcde", user.Username)
}

func TestResolveOrCreate_Unresolvable(t *testing.T) {
	uc := NewIdentityUseCase(newFakeUserRepo(), nil, 0, testLogger())

	_, err := uc.ResolveOrCreate(ctxBG(), entity.IdentityPayload{})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestResolveOrCreate_FillsMissingEmail(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewIdentityUseCase(users, nil, 0, testLogger())

	created, err := uc.ResolveOrCreate(ctxBG(), entity.IdentityPayload{ID: "bob"})
	require.NoError(t, err)
	assert.Empty(t, created.Email)

	synced, err := uc.ResolveOrCreate(ctxBG(), entity.IdentityPayload{ID: "other", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, synced.ID)
	assert.Equal(t, "bob@example.com", synced.Email)
}

func TestResolveOrCreate_ConcurrentFirstSight(t *testing.T) {
	users := newFakeUserRepo()
	// Hold both creators until both have missed the lookup.
	gate := &sync.WaitGroup{}
	gate.Add(2)
	users.beforeCreate = func() {
		gate.Done()
		gate.Wait()
	}
	uc := NewIdentityUseCase(users, nil, 0, testLogger())
	payload := entity.IdentityPayload{Email: "carol@example.com"}

	resolved := make([]*entity.User, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resolved[i], errs[i] = uc.ResolveOrCreate(ctxBG(), payload)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, resolved[0].ID, resolved[1].ID)
	assert.Equal(t, 1, users.creates)
}

func TestResolveActor(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewIdentityUseCase(users, nil, 0, testLogger())

	existing := &entity.User{Username: "dave"}
	require.NoError(t, users.Create(ctxBG(), existing))

	// The session wins over any payload.
	actor, err := uc.ResolveActor(ctxBG(), Actor{SessionUserID: existing.ID, Identity: &entity.IdentityPayload{Email: "someone@else.com"}})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, actor.ID)

	actor, err = uc.ResolveActor(ctxBG(), identityOf("erin@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "erin", actor.Username)

	_, err = uc.ResolveActor(ctxBG(), Actor{})
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = uc.ResolveActor(ctxBG(), sessionOf("ghost"))
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestResolveOrCreate_SessionOnlyAccounts(t *testing.T) {
	actors, users := newActorStore(
		&entity.User{ID: "u-mod", Username: "mod", Role: entity.RoleModerator},
		&entity.User{ID: "u-reg", Username: "registered", Password: "$2a$10$hash"},
	)

	for _, email := range []string{"mod@evil.example", "registered@evil.example"} {
		_, err := actors.ResolveOrCreate(ctxBG(), entity.IdentityPayload{Email: email})
		assert.ErrorIs(t, err, ErrAuthRequired, email)
	}

	// Their own sessions still work.
	mod, err := actors.ResolveActor(ctxBG(), sessionOf("u-mod"))
	require.NoError(t, err)
	assert.True(t, mod.IsPrivileged())

	assert.Equal(t, 0, users.creates)
	assert.Equal(t, 2, users.count())
}

func TestDeletePost_PayloadCannotBorrowModerator(t *testing.T) {
	actors, _ := newActorStore(&entity.User{ID: "u-mod", Username: "mod", Role: entity.RoleModerator})
	posts := newFakePostRepo(&entity.Post{ID: "p1", AuthorID: "someone"})
	uc := NewPostUseCase(posts, actors, testLogger())

	err := uc.DeletePost(ctxBG(), "p1", identityOf("mod@example.com"))
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, posts.deleted)
}
