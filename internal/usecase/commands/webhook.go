package commands

import (
	"context"
	"log/slog"

	"carmommy/internal/domain/call"
	"carmommy/internal/pkg/ptr"
)

type WebhookCommands interface {
	ProcessTranscription(ctx context.Context, conversationID string, callSuccessful bool, transcriptSummary *string) error
	ProcessInitiationFailure(ctx context.Context, conversationID, failureReason string) error
}

type webhookUseCaseImpl struct {
	calls     CallWriteRepo
	extractor PriceExtractor
}

func NewWebhookUseCase(calls CallWriteRepo, extractor PriceExtractor) WebhookCommands {
	return &webhookUseCaseImpl{
		calls:     calls,
		extractor: extractor,
	}
}

// ProcessTranscription applies a post_call_transcription event. A missing
// transcript summary means the vendor sent an incomplete webhook; the event is
// dropped without touching the record. Price extraction failures degrade to
// "no price" and never block the status update.
func (w *webhookUseCaseImpl) ProcessTranscription(ctx context.Context, conversationID string, callSuccessful bool, transcriptSummary *string) error {
	if transcriptSummary == nil || *transcriptSummary == "" {
		slog.Warn("transcript summary missing, dropping webhook", "conversation_id", conversationID)
		return nil
	}

	var confirmedPrice *float64
	extraction, err := w.extractor.ExtractFromTranscript(ctx, *transcriptSummary)
	if err != nil {
		slog.Error("price extraction failed", "error", err, "conversation_id", conversationID)
	} else if extraction != nil && extraction.FinalPrice != nil {
		confirmedPrice = extraction.FinalPrice
	}

	status := call.ClassifyOutcome(callSuccessful, *transcriptSummary)

	updated, err := w.calls.UpdateOutcomeByConversationID(ctx, conversationID, CallOutcome{
		Status:            status.String(),
		TranscriptSummary: transcriptSummary,
		CallSuccessful:    ptr.Of(callSuccessful),
		ConfirmedPrice:    confirmedPrice,
	})
	if err != nil {
		return err
	}
	if !updated {
		slog.Warn("no call record for conversation, skipping update", "conversation_id", conversationID)
		return nil
	}

	slog.Info("call outcome recorded",
		"conversation_id", conversationID,
		"status", status.String(),
		"price_extracted", confirmedPrice != nil)
	return nil
}

// ProcessInitiationFailure marks the call failed with a synthesized transcript
// note carrying the vendor's reason.
func (w *webhookUseCaseImpl) ProcessInitiationFailure(ctx context.Context, conversationID, failureReason string) error {
	note := "Call initiation failed: " + failureReason

	updated, err := w.calls.UpdateOutcomeByConversationID(ctx, conversationID, CallOutcome{
		Status:            call.StatusFailed.String(),
		TranscriptSummary: &note,
		CallSuccessful:    ptr.Of(false),
	})
	if err != nil {
		return err
	}
	if !updated {
		slog.Warn("no call record for conversation, skipping failure update", "conversation_id", conversationID)
	}
	return nil
}
