//go:build unit

package call_test

import (
	"testing"

	"carmommy/internal/domain/call"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		name           string
		callSuccessful bool
		summary        string
		want           call.Status
	}{
		{
			name:           "unsuccessful call is failed regardless of transcript",
			callSuccessful: false,
			summary:        "The dealer gave a final offer of $23,500 for the vehicle",
			want:           call.StatusFailed,
		},
		{
			name:           "successful call with offer keyword is quoted",
			callSuccessful: true,
			summary:        "The dealer gave a final offer of $23,500 for the vehicle",
			want:           call.StatusQuoted,
		},
		{
			name:           "keyword match is case-insensitive",
			callSuccessful: true,
			summary:        "Dealer provided a QUOTE over the phone",
			want:           call.StatusQuoted,
		},
		{
			name:           "price keyword is quoted",
			callSuccessful: true,
			summary:        "They discussed the price of the Camry",
			want:           call.StatusQuoted,
		},
		{
			name:           "successful call without pricing language is completed",
			callSuccessful: true,
			summary:        "Left an answering machine message, nobody picked up",
			want:           call.StatusCompleted,
		},
		{
			name:           "empty summary on successful call is completed",
			callSuccessful: true,
			summary:        "",
			want:           call.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, call.ClassifyOutcome(tt.callSuccessful, tt.summary))
		})
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, call.StatusPending.IsActive())
	assert.True(t, call.StatusCompleted.IsActive())
	assert.True(t, call.StatusQuoted.IsActive())
	assert.False(t, call.StatusFailed.IsActive())
	assert.False(t, call.StatusConfirmedQuote.IsActive())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []call.Status{
		call.StatusPending, call.StatusCompleted, call.StatusFailed,
		call.StatusQuoted, call.StatusConfirmedQuote,
	} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, call.Status("canceled").IsValid())
}
