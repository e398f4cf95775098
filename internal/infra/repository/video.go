package repository

import (
	"context"

	"carmommy/internal/infra"
	"carmommy/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VideoRepository struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewVideoRepository(db *pgxpool.Pool, clk clock.Clock) *VideoRepository {
	return &VideoRepository{db: db, clock: clk}
}

func (r *VideoRepository) Create(ctx context.Context, vin, storageRef string) (uuid.UUID, error) {
	const query = `INSERT INTO videos (id, vin, storage_ref, created_at) VALUES ($1, $2, $3, $4)`

	id := uuid.New()
	if _, err := r.db.Exec(ctx, query, id, vin, storageRef, r.clock.Now()); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create video record", err)
	}
	return id, nil
}
