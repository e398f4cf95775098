package commands

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// Write-side snapshots and vendor ports. Handlers and infra adapters depend on
// these, never the other way around.

// LedgerTransaction is a confirmed ledger transaction reduced to what payment
// verification needs. Legacy and versioned encodings both produce the same
// ordered static account key list, index-aligned with the balance slices.
type LedgerTransaction struct {
	AccountKeys  []string
	PreBalances  []uint64
	PostBalances []uint64
	HasMeta      bool
	ErrText      string // empty when the transaction executed without error
}

// BalanceDelta returns post minus pre for the account at index i.
func (t *LedgerTransaction) BalanceDelta(i int) int64 {
	return int64(t.PostBalances[i]) - int64(t.PreBalances[i])
}

type LedgerClient interface {
	// GetTransaction fetches a transaction at confirmed commitment.
	// Returns an error marked with errs.ErrTransactionNotFound when absent.
	GetTransaction(ctx context.Context, signature string) (*LedgerTransaction, error)

	// ValidateAddress checks address format offline, without RPC access.
	ValidateAddress(address string) error
}

type PaymentLedger interface {
	Exists(ctx context.Context, signature string) (bool, error)
	Record(ctx context.Context, signature string, amountSOL float64, merchantAddress string) error
}

// NewCall captures the listing attributes frozen into a call record at
// request time.
type NewCall struct {
	CallSID        string
	ConversationID string
	VIN            string
	Year           int32
	Make           string
	Model          string
	Zipcode        int32
	DealerName     string
	MSRP           int64
	ListingPrice   int64
	StockNumber    string
	PhoneNumber    string
}

// CallOutcome is the mutable slice of a call record written by webhook
// ingestion. A nil ConfirmedPrice leaves any previously stored price in place.
type CallOutcome struct {
	Status            string
	TranscriptSummary *string
	CallSuccessful    *bool
	ConfirmedPrice    *float64
}

type CallWriteRepo interface {
	Create(ctx context.Context, call NewCall) (uuid.UUID, error)
	UpdateOutcomeByConversationID(ctx context.Context, conversationID string, outcome CallOutcome) (bool, error)
	UpdateQuoteByVIN(ctx context.Context, vin string, confirmedPrice float64) (bool, error)
}

type OutboundCall struct {
	ToNumber     string
	VoiceID      string
	VIN          string
	Year         int32
	Make         string
	Model        string
	Zipcode      int32
	DealerName   string
	MSRP         int64
	ListingPrice int64
	StockNumber  string
}

type OutboundCallResult struct {
	CallSID        string
	ConversationID string
	Raw            json.RawMessage
}

type VoiceVendor interface {
	StartOutboundCall(ctx context.Context, call OutboundCall) (*OutboundCallResult, error)
	CreateVoice(ctx context.Context, name string, audio []byte) (json.RawMessage, error)
}

// TranscriptExtraction is the fixed contract of the transcript prompt.
type TranscriptExtraction struct {
	FinalPrice *float64 `json:"final_price"`
	Summary    string   `json:"summary"`
}

// EmailExtraction is the fixed contract of the email prompt.
type EmailExtraction struct {
	FinalPrice *float64 `json:"final_price"`
	Tax        *float64 `json:"tax"`
	Fees       *float64 `json:"fees"`
}

type PriceExtractor interface {
	ExtractFromTranscript(ctx context.Context, transcript string) (*TranscriptExtraction, error)
	ParseEmail(ctx context.Context, emailContent string) (*EmailExtraction, error)
}

type VideoWriteRepo interface {
	Create(ctx context.Context, vin, storageRef string) (uuid.UUID, error)
}
