package repository

import (
	"context"
	"errors"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

// Store-level sentinel errors. Repositories translate driver failures into
// these so callers never see raw database errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
