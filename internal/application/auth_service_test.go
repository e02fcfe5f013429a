package application

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// fakeUserRepo is an in-memory UserRepository with the same duplicate-email
// behavior as the postgres implementation.
type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = uuid.NewString()
	u.Channels = []string{}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func newTestService(repo repository.UserRepository) *AuthService {
	return NewAuthService(repo, helpers.NewJWTManager("test-secret"), nil)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)

	// the stored credential is a hash, never the plaintext
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2a$"))
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "password123"))
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice Again", "alice@example.com", "different1")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.byID, 1)
}

// racePassRepo simulates two identical registrations racing past the
// existence pre-check: the lookup misses, the insert hits the unique
// constraint.
type racePassRepo struct {
	*fakeUserRepo
}

func (r *racePassRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func TestAuthService_Register_RaceBackstop(t *testing.T) {
	ctx := context.Background()
	base := newFakeUserRepo()
	svc := newTestService(&racePassRepo{base})

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	reg, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, token, err := svc.Authenticate(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, reg.ID, u.ID)

		claims, err := svc.JWT.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, reg.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "alice@example.com", "password124")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "bob@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
