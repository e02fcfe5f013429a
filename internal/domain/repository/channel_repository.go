package repository

import (
	"context"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

// ChannelRepository defines the interface for channel-related database operations.
type ChannelRepository interface {
	Create(ctx context.Context, ch *entity.Channel) error
	GetByID(ctx context.Context, id string) (*entity.Channel, error)
	List(ctx context.Context) ([]*entity.Channel, error)
	Update(ctx context.Context, ch *entity.Channel) error
	Delete(ctx context.Context, id string) error
}
