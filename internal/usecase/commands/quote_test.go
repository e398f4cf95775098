//go:build unit

package commands_test

import (
	"context"
	"testing"

	"carmommy/internal/pkg/errs"
	"carmommy/internal/pkg/ptr"
	"carmommy/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
)

type QuoteTestSuite struct {
	suite.Suite
	calls     *fakeCallWriteRepo
	extractor *fakePriceExtractor
	uc        commands.QuoteCommands
}

func (s *QuoteTestSuite) SetupTest() {
	s.calls = &fakeCallWriteRepo{quoteUpdated: true}
	s.extractor = &fakePriceExtractor{}
	s.uc = commands.NewQuoteUseCase(s.calls, s.extractor)
}

func TestQuoteSuite(t *testing.T) {
	suite.Run(t, new(QuoteTestSuite))
}

func (s *QuoteTestSuite) TestConfirmQuoteUpdatesLatestCall() {
	err := s.uc.ConfirmQuote(context.Background(), "1HGCM82633A004352", 28750)

	s.Require().NoError(err)
	s.Equal("1HGCM82633A004352", s.calls.lastQuoteVIN)
	s.Equal(28750.0, s.calls.lastQuote)
}

func (s *QuoteTestSuite) TestConfirmQuoteWithoutRecordIsNoOp() {
	s.calls.quoteUpdated = false

	err := s.uc.ConfirmQuote(context.Background(), "NOVINHERE000000000", 28750)

	s.Require().NoError(err)
}

func (s *QuoteTestSuite) TestConfirmQuotePropagatesRepoError() {
	s.calls.quoteErr = errs.New("connection reset")

	err := s.uc.ConfirmQuote(context.Background(), "1HGCM82633A004352", 28750)

	s.Require().Error(err)
}

func (s *QuoteTestSuite) TestParseEmailReturnsExtraction() {
	s.extractor.email = &commands.EmailExtraction{
		FinalPrice: ptr.Of(27999.0),
		Tax:        ptr.Of(2400.0),
		Fees:       ptr.Of(499.0),
	}

	extraction, err := s.uc.ParseEmail(context.Background(), "Out the door: $27,999 plus $2,400 tax and $499 doc fee")

	s.Require().NoError(err)
	s.Equal(27999.0, *extraction.FinalPrice)
	s.Equal(2400.0, *extraction.Tax)
	s.Equal(499.0, *extraction.Fees)
}
