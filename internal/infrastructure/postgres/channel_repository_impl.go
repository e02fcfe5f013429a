package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

type ChannelRepository struct {
	pool *pgxpool.Pool
}

func NewChannelRepository(pool *pgxpool.Pool) *ChannelRepository {
	return &ChannelRepository{pool: pool}
}

func (r *ChannelRepository) Create(ctx context.Context, ch *entity.Channel) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO channels (name, description, members, admins)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, ch.Name, ch.Description, ch.Members, ch.Admins)

	return row.Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
}

func (r *ChannelRepository) GetByID(ctx context.Context, id string) (*entity.Channel, error) {
	ch := &entity.Channel{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, members, admins, created_at, updated_at
		FROM channels
		WHERE id = $1
	`, id)

	if err := row.Scan(&ch.ID, &ch.Name, &ch.Description, &ch.Members, &ch.Admins,
		&ch.CreatedAt, &ch.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return ch, nil
}

func (r *ChannelRepository) List(ctx context.Context) ([]*entity.Channel, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, members, admins, created_at, updated_at
		FROM channels
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := make([]*entity.Channel, 0)
	for rows.Next() {
		ch := &entity.Channel{}
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.Description, &ch.Members, &ch.Admins,
			&ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// Update persists name and description only; membership is fixed at creation.
func (r *ChannelRepository) Update(ctx context.Context, ch *entity.Channel) error {
	ch.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE channels
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`, ch.Name, ch.Description, ch.UpdatedAt, ch.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ChannelRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return repository.ErrNotFound
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ChannelRepository = (*ChannelRepository)(nil)
