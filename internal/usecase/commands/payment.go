package commands

import (
	"context"
	"fmt"
	errors "github.com/cockroachdb/errors"
	"log/slog"

	"carmommy/internal/domain/payment"
	"carmommy/internal/infra"
	"carmommy/internal/pkg/errs"
)

// VerifyResult mirrors the verifier contract surfaced to the frontend:
// failures are data, not errors. AmountSOL is set on success and on amount
// mismatch (the observed delta), nil otherwise.
type VerifyResult struct {
	Valid     bool
	Message   string
	AmountSOL *float64
}

type PaymentCommands interface {
	Verify(ctx context.Context, signature, merchantAddress string) VerifyResult
}

type paymentUseCaseImpl struct {
	ledger   LedgerClient
	payments PaymentLedger
}

func NewPaymentUseCase(ledger LedgerClient, payments PaymentLedger) PaymentCommands {
	return &paymentUseCaseImpl{
		ledger:   ledger,
		payments: payments,
	}
}

func (p *paymentUseCaseImpl) Verify(ctx context.Context, signature, merchantAddress string) VerifyResult {
	// Format checks never touch the network.
	if len(signature) < payment.MinSignatureLength {
		return VerifyResult{Valid: false, Message: "Invalid transaction signature format"}
	}
	if err := p.ledger.ValidateAddress(merchantAddress); err != nil {
		return VerifyResult{Valid: false, Message: "Invalid merchant address format"}
	}

	tx, err := p.ledger.GetTransaction(ctx, signature)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return VerifyResult{Valid: false, Message: "Transaction not found on devnet"}
		}
		slog.Error("ledger transaction fetch failed", "error", err)
		return VerifyResult{Valid: false, Message: "Verification failed: " + err.Error()}
	}

	if !tx.HasMeta {
		return VerifyResult{Valid: false, Message: "Transaction metadata not available"}
	}
	if tx.ErrText != "" {
		return VerifyResult{Valid: false, Message: "Transaction failed: " + tx.ErrText}
	}

	used, err := p.payments.Exists(ctx, signature)
	if err != nil {
		slog.Error("payment ledger lookup failed", "error", err)
		return VerifyResult{Valid: false, Message: "Verification failed: " + err.Error()}
	}
	if used {
		return VerifyResult{Valid: false, Message: "This payment has already been used"}
	}

	// Scan every referenced account for a positive merchant-side delta.
	var (
		paymentFound bool
		actualDelta  int64
	)
	for i, key := range tx.AccountKeys {
		if i >= len(tx.PreBalances) || i >= len(tx.PostBalances) {
			break
		}
		if key != merchantAddress {
			continue
		}
		delta := tx.BalanceDelta(i)
		if delta <= 0 {
			continue
		}
		actualDelta = delta
		if payment.WithinTolerance(delta) {
			paymentFound = true
			break
		}
	}

	if !paymentFound {
		actualSOL := payment.LamportsToSOL(actualDelta)
		return VerifyResult{
			Valid: false,
			Message: fmt.Sprintf("Payment amount mismatch. Expected ~%v SOL, but transaction shows different amount",
				payment.ExpectedAmountSOL),
			AmountSOL: &actualSOL,
		}
	}

	amountSOL := payment.LamportsToSOL(actualDelta)

	// Check-then-insert: the existence check above narrows but does not close
	// the race window; the unique index on signature catches the remainder.
	if err := p.payments.Record(ctx, signature, amountSOL, merchantAddress); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return VerifyResult{Valid: false, Message: "This payment has already been used"}
		}
		slog.Error("payment record insert failed", "error", err, "signature", signature)
		return VerifyResult{Valid: false, Message: "Verification failed: " + err.Error()}
	}

	return VerifyResult{
		Valid:     true,
		Message:   "Payment verified successfully",
		AmountSOL: &amountSOL,
	}
}
