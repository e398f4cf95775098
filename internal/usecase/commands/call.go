package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"carmommy/internal/pkg/errs"
)

type RequestCallInput struct {
	VIN              string
	Year             int32
	Make             string
	Model            string
	Zipcode          int32
	DealerName       string
	MSRP             int64
	ListingPrice     int64
	StockNumber      string
	PhoneNumber      string
	VoiceID          string
	PaymentSignature string
}

type RequestCallResult struct {
	CallSID        string
	ConversationID string
	VendorPayload  json.RawMessage
}

type CallCommands interface {
	RequestCall(ctx context.Context, input RequestCallInput) (*RequestCallResult, error)
}

type callUseCaseImpl struct {
	payments        PaymentCommands
	vendor          VoiceVendor
	calls           CallWriteRepo
	merchantAddress string
}

func NewCallUseCase(payments PaymentCommands, vendor VoiceVendor, calls CallWriteRepo, merchantAddress string) CallCommands {
	return &callUseCaseImpl{
		payments:        payments,
		vendor:          vendor,
		calls:           calls,
		merchantAddress: merchantAddress,
	}
}

// RequestCall gates the outbound vendor call behind payment verification and
// records the pending call. Vendor failures leave no partial record behind.
func (c *callUseCaseImpl) RequestCall(ctx context.Context, input RequestCallInput) (*RequestCallResult, error) {
	verification := c.payments.Verify(ctx, input.PaymentSignature, c.merchantAddress)
	if !verification.Valid {
		return nil, errs.Mark(errs.New(verification.Message), errs.ErrPaymentInvalid)
	}

	result, err := c.vendor.StartOutboundCall(ctx, OutboundCall{
		ToNumber:     input.PhoneNumber,
		VoiceID:      input.VoiceID,
		VIN:          input.VIN,
		Year:         input.Year,
		Make:         input.Make,
		Model:        input.Model,
		Zipcode:      input.Zipcode,
		DealerName:   input.DealerName,
		MSRP:         input.MSRP,
		ListingPrice: input.ListingPrice,
		StockNumber:  input.StockNumber,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrVendorCallFailed)
	}

	_, err = c.calls.Create(ctx, NewCall{
		CallSID:        result.CallSID,
		ConversationID: result.ConversationID,
		VIN:            input.VIN,
		Year:           input.Year,
		Make:           input.Make,
		Model:          input.Model,
		Zipcode:        input.Zipcode,
		DealerName:     input.DealerName,
		MSRP:           input.MSRP,
		ListingPrice:   input.ListingPrice,
		StockNumber:    input.StockNumber,
		PhoneNumber:    input.PhoneNumber,
	})
	if err != nil {
		// The vendor call is already in flight; surface the error so the
		// caller knows the record is missing.
		slog.Error("failed to persist pending call", "error", err, "conversation_id", result.ConversationID)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RequestCallResult{
		CallSID:        result.CallSID,
		ConversationID: result.ConversationID,
		VendorPayload:  result.Raw,
	}, nil
}
