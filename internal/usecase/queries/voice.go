package queries

import "context"

type VoiceView struct {
	Name    string `json:"name"`
	VoiceID string `json:"voiceId"`
}

// VoiceDirectory lists the cloneable voices available on the vendor account.
type VoiceDirectory interface {
	ListVoices(ctx context.Context) ([]VoiceView, error)
}

type VoiceQueries interface {
	GetVoices(ctx context.Context) ([]VoiceView, error)
}

type voiceQueriesImpl struct {
	directory VoiceDirectory
}

func NewVoiceQueries(directory VoiceDirectory) VoiceQueries {
	return &voiceQueriesImpl{directory: directory}
}

func (q *voiceQueriesImpl) GetVoices(ctx context.Context) ([]VoiceView, error) {
	return q.directory.ListVoices(ctx)
}
