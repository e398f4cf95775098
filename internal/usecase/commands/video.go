package commands

import (
	"context"

	"github.com/google/uuid"
)

type VideoCommands interface {
	// SaveVideo records a generated marketing video for a VIN. Records are
	// immutable once written.
	SaveVideo(ctx context.Context, vin, storageRef string) (uuid.UUID, error)
}

type videoUseCaseImpl struct {
	videos VideoWriteRepo
}

func NewVideoUseCase(videos VideoWriteRepo) VideoCommands {
	return &videoUseCaseImpl{videos: videos}
}

func (v *videoUseCaseImpl) SaveVideo(ctx context.Context, vin, storageRef string) (uuid.UUID, error) {
	return v.videos.Create(ctx, vin, storageRef)
}
