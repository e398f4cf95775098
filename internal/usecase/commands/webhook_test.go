//go:build unit

package commands_test

import (
	"context"
	"testing"

	"carmommy/internal/domain/call"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/pkg/ptr"
	"carmommy/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type WebhookProcessTestSuite struct {
	suite.Suite
	calls     *fakeCallWriteRepo
	extractor *fakePriceExtractor
	uc        commands.WebhookCommands
}

func (s *WebhookProcessTestSuite) SetupTest() {
	s.calls = &fakeCallWriteRepo{outcomeUpdated: true}
	s.extractor = &fakePriceExtractor{}
	s.uc = commands.NewWebhookUseCase(s.calls, s.extractor)
}

func TestWebhookProcessSuite(t *testing.T) {
	suite.Run(t, new(WebhookProcessTestSuite))
}

func (s *WebhookProcessTestSuite) TestQuotedOutcomeWithExtractedPrice() {
	s.extractor.transcript = &commands.TranscriptExtraction{
		FinalPrice: ptr.Of(23500.0),
		Summary:    "Dealer offered 23500 out the door",
	}
	summary := "The dealer gave a quote of $23,500 including fees."

	err := s.uc.ProcessTranscription(context.Background(), "conv_abc", true, &summary)

	s.Require().NoError(err)
	outcome := s.calls.outcomes["conv_abc"]
	s.Equal(call.StatusQuoted.String(), outcome.Status)
	s.Require().NotNil(outcome.ConfirmedPrice)
	s.Equal(23500.0, *outcome.ConfirmedPrice)
	s.Equal(&summary, outcome.TranscriptSummary)
	s.Equal(ptr.Of(true), outcome.CallSuccessful)
}

func (s *WebhookProcessTestSuite) TestUnsuccessfulCallMarkedFailedDespiteQuoteKeywords() {
	summary := "Call dropped before any price was discussed."

	err := s.uc.ProcessTranscription(context.Background(), "conv_abc", false, &summary)

	s.Require().NoError(err)
	s.Equal(call.StatusFailed.String(), s.calls.outcomes["conv_abc"].Status)
}

func (s *WebhookProcessTestSuite) TestCompletedWithoutQuoteKeywords() {
	summary := "Spoke with reception, salesperson will follow up tomorrow."

	err := s.uc.ProcessTranscription(context.Background(), "conv_abc", true, &summary)

	s.Require().NoError(err)
	s.Equal(call.StatusCompleted.String(), s.calls.outcomes["conv_abc"].Status)
}

func (s *WebhookProcessTestSuite) TestMissingSummaryDropsEvent() {
	err := s.uc.ProcessTranscription(context.Background(), "conv_abc", true, nil)

	s.Require().NoError(err)
	s.Empty(s.calls.outcomes)
}

func (s *WebhookProcessTestSuite) TestExtractionFailureStillUpdatesStatus() {
	s.extractor.transcriptErr = errs.New("model unavailable")
	summary := "Dealer confirmed the listed price over the phone."

	err := s.uc.ProcessTranscription(context.Background(), "conv_abc", true, &summary)

	s.Require().NoError(err)
	outcome := s.calls.outcomes["conv_abc"]
	s.Equal(call.StatusQuoted.String(), outcome.Status)
	s.Nil(outcome.ConfirmedPrice)
}

func (s *WebhookProcessTestSuite) TestUnknownConversationIsNoOp() {
	s.calls.outcomeUpdated = false
	summary := "Some summary text."

	err := s.uc.ProcessTranscription(context.Background(), "conv_unknown", true, &summary)

	s.Require().NoError(err)
}

func (s *WebhookProcessTestSuite) TestInitiationFailureMarksFailed() {
	err := s.uc.ProcessInitiationFailure(context.Background(), "conv_abc", "busy line")

	s.Require().NoError(err)
	outcome := s.calls.outcomes["conv_abc"]
	s.Equal(call.StatusFailed.String(), outcome.Status)
	s.Equal(ptr.Of(false), outcome.CallSuccessful)
	s.Require().NotNil(outcome.TranscriptSummary)
	s.Contains(*outcome.TranscriptSummary, "busy line")
}
