package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CallView struct {
	ID                uuid.UUID `json:"id"`
	CallSID           string    `json:"call_sid"`
	ConversationID    string    `json:"conversation_id"`
	VIN               string    `json:"vin"`
	Year              int32     `json:"year"`
	Make              string    `json:"make"`
	Model             string    `json:"model"`
	Zipcode           int32     `json:"zipcode"`
	DealerName        string    `json:"dealer_name"`
	MSRP              int64     `json:"msrp"`
	ListingPrice      int64     `json:"listing_price"`
	StockNumber       string    `json:"stock_number"`
	PhoneNumber       string    `json:"phone_number"`
	Status            string    `json:"status"`
	TranscriptSummary *string   `json:"transcript_summary,omitempty"`
	CallSuccessful    *bool     `json:"call_successful,omitempty"`
	ConfirmedPrice    *float64  `json:"confirmed_price,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ExistingCallView is the slim projection the frontend polls while waiting
// for a call to finish.
type ExistingCallView struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	ConfirmedPrice *float64  `json:"confirmed_price,omitempty"`
}

type DealView struct {
	DealerName     string  `json:"dealerName"`
	ConfirmedPrice float64 `json:"confirmedPrice"`
}

type CallQueries interface {
	// CheckExistingCall returns the newest active record for a VIN, or nil
	// when a fresh call may be placed. Active is a query-time filter, not a
	// uniqueness constraint.
	CheckExistingCall(ctx context.Context, vin string) (*ExistingCallView, error)

	// CompetitiveDeals lists priced, non-pending outcomes for a make/model,
	// matched case-insensitively.
	CompetitiveDeals(ctx context.Context, makeName, model string) ([]DealView, error)
}

type CallViewRepo interface {
	FindActiveByVIN(ctx context.Context, vin string) (*ExistingCallView, error)
	FindDeals(ctx context.Context, makeName, model string) ([]DealView, error)
}

type callQueriesImpl struct {
	repo CallViewRepo
}

func NewCallQueries(repo CallViewRepo) CallQueries {
	return &callQueriesImpl{repo: repo}
}

func (q *callQueriesImpl) CheckExistingCall(ctx context.Context, vin string) (*ExistingCallView, error) {
	return q.repo.FindActiveByVIN(ctx, vin)
}

func (q *callQueriesImpl) CompetitiveDeals(ctx context.Context, makeName, model string) ([]DealView, error) {
	return q.repo.FindDeals(ctx, makeName, model)
}
