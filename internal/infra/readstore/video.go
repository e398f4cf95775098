package readstore

import (
	"context"

	"carmommy/internal/infra"
	"carmommy/internal/pkg/pgconv"
	"carmommy/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type VideoReadStore struct {
	db *pgxpool.Pool
}

func NewVideoReadStore(db *pgxpool.Pool) *VideoReadStore {
	return &VideoReadStore{db: db}
}

func (r *VideoReadStore) FindByVIN(ctx context.Context, vin string) (*queries.VideoView, error) {
	const query = `
		SELECT id, vin, storage_ref, created_at
		FROM videos
		WHERE vin = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var view queries.VideoView
	err := r.db.QueryRow(ctx, query, vin).
		Scan(&view.ID, &view.VIN, &view.StorageRef, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("video not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find video by vin", err)
	}
	return &view, nil
}
