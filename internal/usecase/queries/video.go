package queries

import (
	"context"
	"time"

	"carmommy/internal/infra"
	"carmommy/internal/pkg/errs"

	"github.com/google/uuid"
)

type VideoView struct {
	ID         uuid.UUID `json:"id"`
	VIN        string    `json:"vin"`
	StorageRef string    `json:"storage_ref"`
	CreatedAt  time.Time `json:"created_at"`
}

type VideoViewRepo interface {
	FindByVIN(ctx context.Context, vin string) (*VideoView, error)
}

type VideoQueries interface {
	GetByVIN(ctx context.Context, vin string) (*VideoView, error)
}

type videoQueriesImpl struct {
	repo VideoViewRepo
}

func NewVideoQueries(repo VideoViewRepo) VideoQueries {
	return &videoQueriesImpl{repo: repo}
}

func (q *videoQueriesImpl) GetByVIN(ctx context.Context, vin string) (*VideoView, error) {
	view, err := q.repo.FindByVIN(ctx, vin)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrVideoNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
