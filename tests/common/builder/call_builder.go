//go:build unit || integration

package builder

import (
	"time"

	"carmommy/internal/domain/call"
	"carmommy/internal/usecase/commands"

	"github.com/google/uuid"
)

type CallBuilder struct {
	ID                uuid.UUID
	CallSID           string
	ConversationID    string
	VIN               string
	Year              int32
	Make              string
	Model             string
	Zipcode           int32
	DealerName        string
	MSRP              int64
	ListingPrice      int64
	StockNumber       string
	PhoneNumber       string
	Status            call.Status
	TranscriptSummary *string
	CallSuccessful    *bool
	ConfirmedPrice    *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewCallBuilder() *CallBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &CallBuilder{
		ID:             uuid.New(),
		CallSID:        "CA" + uuid.New().String()[:8],
		ConversationID: "conv_" + uuid.New().String()[:8],
		VIN:            "1HGCM82633A004352",
		Year:           2024,
		Make:           "Honda",
		Model:          "Accord",
		Zipcode:        94103,
		DealerName:     "Bay Honda",
		MSRP:           32000,
		ListingPrice:   29500,
		StockNumber:    "H1234",
		PhoneNumber:    "+14155550134",
		Status:         call.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CallBuilder) With(mutate func(*CallBuilder)) *CallBuilder {
	mutate(b)
	return b
}

func (b *CallBuilder) BuildNewCall() commands.NewCall {
	return commands.NewCall{
		CallSID:        b.CallSID,
		ConversationID: b.ConversationID,
		VIN:            b.VIN,
		Year:           b.Year,
		Make:           b.Make,
		Model:          b.Model,
		Zipcode:        b.Zipcode,
		DealerName:     b.DealerName,
		MSRP:           b.MSRP,
		ListingPrice:   b.ListingPrice,
		StockNumber:    b.StockNumber,
		PhoneNumber:    b.PhoneNumber,
	}
}
