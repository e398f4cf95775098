package commands

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"carmommy/internal/pkg/errs"
)

type VoiceCommands interface {
	// CreateVoice uploads a base64-encoded audio sample to the vendor and
	// returns the vendor's response verbatim.
	CreateVoice(ctx context.Context, name, audioBase64 string) (json.RawMessage, error)
}

type voiceUseCaseImpl struct {
	vendor VoiceVendor
}

func NewVoiceUseCase(vendor VoiceVendor) VoiceCommands {
	return &voiceUseCaseImpl{vendor: vendor}
}

func (v *voiceUseCaseImpl) CreateVoice(ctx context.Context, name, audioBase64 string) (json.RawMessage, error) {
	audio, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid base64 audio payload"), errs.ErrDomainValidation)
	}

	raw, err := v.vendor.CreateVoice(ctx, name, audio)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVoiceUploadFailed)
	}
	return raw, nil
}
