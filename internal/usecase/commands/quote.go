package commands

import (
	"context"
	"log/slog"
)

type QuoteCommands interface {
	// ConfirmQuote records an email-derived quote against the latest call for
	// a VIN. A missing record is a logged no-op, not an error.
	ConfirmQuote(ctx context.Context, vin string, finalPrice float64) error

	// ParseEmail extracts price/tax/fees from forwarded dealer email content.
	ParseEmail(ctx context.Context, emailContent string) (*EmailExtraction, error)
}

type quoteUseCaseImpl struct {
	calls     CallWriteRepo
	extractor PriceExtractor
}

func NewQuoteUseCase(calls CallWriteRepo, extractor PriceExtractor) QuoteCommands {
	return &quoteUseCaseImpl{
		calls:     calls,
		extractor: extractor,
	}
}

func (q *quoteUseCaseImpl) ConfirmQuote(ctx context.Context, vin string, finalPrice float64) error {
	updated, err := q.calls.UpdateQuoteByVIN(ctx, vin, finalPrice)
	if err != nil {
		return err
	}
	if !updated {
		slog.Warn("no call record for vin, skipping quote update", "vin", vin)
		return nil
	}

	slog.Info("quote confirmed", "vin", vin, "final_price", finalPrice)
	return nil
}

func (q *quoteUseCaseImpl) ParseEmail(ctx context.Context, emailContent string) (*EmailExtraction, error) {
	return q.extractor.ParseEmail(ctx, emailContent)
}
