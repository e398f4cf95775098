//go:build unit

package commands_test

import (
	"context"
	"encoding/json"

	"carmommy/internal/usecase/commands"

	"github.com/google/uuid"
)

type fakeLedgerClient struct {
	tx        *commands.LedgerTransaction
	txErr     error
	addrErr   error
	getCalls  int
	lastSig   string
	validated []string
}

func (f *fakeLedgerClient) GetTransaction(_ context.Context, signature string) (*commands.LedgerTransaction, error) {
	f.getCalls++
	f.lastSig = signature
	if f.txErr != nil {
		return nil, f.txErr
	}
	return f.tx, nil
}

func (f *fakeLedgerClient) ValidateAddress(address string) error {
	f.validated = append(f.validated, address)
	return f.addrErr
}

type recordedPayment struct {
	Signature       string
	AmountSOL       float64
	MerchantAddress string
}

type fakePaymentLedger struct {
	exists    bool
	existsErr error
	recordErr error
	recorded  []recordedPayment
}

func (f *fakePaymentLedger) Exists(_ context.Context, _ string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakePaymentLedger) Record(_ context.Context, signature string, amountSOL float64, merchantAddress string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, recordedPayment{signature, amountSOL, merchantAddress})
	return nil
}

type fakeVoiceVendor struct {
	result     *commands.OutboundCallResult
	startErr   error
	startCalls int
	lastCall   commands.OutboundCall

	voiceRaw json.RawMessage
	voiceErr error
}

func (f *fakeVoiceVendor) StartOutboundCall(_ context.Context, call commands.OutboundCall) (*commands.OutboundCallResult, error) {
	f.startCalls++
	f.lastCall = call
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.result, nil
}

func (f *fakeVoiceVendor) CreateVoice(_ context.Context, _ string, _ []byte) (json.RawMessage, error) {
	if f.voiceErr != nil {
		return nil, f.voiceErr
	}
	return f.voiceRaw, nil
}

type fakeCallWriteRepo struct {
	createID  uuid.UUID
	createErr error
	created   []commands.NewCall

	outcomeUpdated  bool
	outcomeErr      error
	outcomes        map[string]commands.CallOutcome
	lastOutcomeConv string

	quoteUpdated bool
	quoteErr     error
	lastQuoteVIN string
	lastQuote    float64
}

func (f *fakeCallWriteRepo) Create(_ context.Context, call commands.NewCall) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, call)
	return f.createID, nil
}

func (f *fakeCallWriteRepo) UpdateOutcomeByConversationID(_ context.Context, conversationID string, outcome commands.CallOutcome) (bool, error) {
	if f.outcomeErr != nil {
		return false, f.outcomeErr
	}
	if f.outcomes == nil {
		f.outcomes = make(map[string]commands.CallOutcome)
	}
	f.outcomes[conversationID] = outcome
	f.lastOutcomeConv = conversationID
	return f.outcomeUpdated, nil
}

func (f *fakeCallWriteRepo) UpdateQuoteByVIN(_ context.Context, vin string, confirmedPrice float64) (bool, error) {
	if f.quoteErr != nil {
		return false, f.quoteErr
	}
	f.lastQuoteVIN = vin
	f.lastQuote = confirmedPrice
	return f.quoteUpdated, nil
}

type fakePriceExtractor struct {
	transcript    *commands.TranscriptExtraction
	transcriptErr error
	email         *commands.EmailExtraction
	emailErr      error
}

func (f *fakePriceExtractor) ExtractFromTranscript(_ context.Context, _ string) (*commands.TranscriptExtraction, error) {
	if f.transcriptErr != nil {
		return nil, f.transcriptErr
	}
	return f.transcript, nil
}

func (f *fakePriceExtractor) ParseEmail(_ context.Context, _ string) (*commands.EmailExtraction, error) {
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	return f.email, nil
}

type fakeVideoWriteRepo struct {
	createID  uuid.UUID
	createErr error
	created   [][2]string
}

func (f *fakeVideoWriteRepo) Create(_ context.Context, vin, storageRef string) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, [2]string{vin, storageRef})
	return f.createID, nil
}
