package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
	handlers "github.com/devconnect/devconnect-api/internal/interface/http"
	"github.com/devconnect/devconnect-api/internal/interface/middleware"
	"github.com/devconnect/devconnect-api/internal/router/modules"
	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

// In-memory repositories mirroring the postgres implementations' error
// contract so the full middleware/handler stack runs without a database.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	u.ID = uuid.NewString()
	u.Channels = []string{}
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type memChannelRepo struct {
	channels map[string]*entity.Channel
}

func newMemChannelRepo() *memChannelRepo {
	return &memChannelRepo{channels: map[string]*entity.Channel{}}
}

func (r *memChannelRepo) Create(_ context.Context, ch *entity.Channel) error {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ch.ID = uuid.NewString()
	ch.CreatedAt = now
	ch.UpdatedAt = now
	cp := *ch
	r.channels[ch.ID] = &cp
	return nil
}

func (r *memChannelRepo) GetByID(_ context.Context, id string) (*entity.Channel, error) {
	ch, ok := r.channels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *ch
	return &cp, nil
}

func (r *memChannelRepo) List(_ context.Context) ([]*entity.Channel, error) {
	out := make([]*entity.Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		cp := *ch
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memChannelRepo) Update(_ context.Context, ch *entity.Channel) error {
	if _, ok := r.channels[ch.ID]; !ok {
		return repository.ErrNotFound
	}
	ch.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	cp := *ch
	r.channels[ch.ID] = &cp
	return nil
}

func (r *memChannelRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.channels[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.channels, id)
	return nil
}

type testServer struct {
	router   *gin.Engine
	users    *memUserRepo
	channels *memChannelRepo
	jwt      *helpers.JWTManager
}

// newTestServer wires the real modules, middleware, and handlers over
// in-memory repositories. Redis is absent so the auth rate limiters are
// no-ops, matching a deployment without REDIS_ADDR.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := newMemUserRepo()
	channels := newMemChannelRepo()
	jwt := helpers.NewJWTManager("test-secret")
	authSvc := application.NewAuthService(users, jwt, logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	api := r.Group("/api")
	modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)).Register(api)
	modules.NewUserModule(handlers.NewUserHandler(users, logger), jwt).Register(api)
	modules.NewChannelModule(handlers.NewChannelHandler(channels, logger), channels, jwt).Register(api)

	return &testServer{router: r, users: users, channels: channels, jwt: jwt}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonUnmarshal(b []byte, v any) error { return json.Unmarshal(b, v) }

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates a user over HTTP and returns its ID.
func (s *testServer) register(t *testing.T, name, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

// login authenticates over HTTP and returns the bearer token.
func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)["token"].(string)
}
