package solana

import (
	"context"
	"errors"
	"fmt"

	"carmommy/internal/pkg/config"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/commands"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client is the ledger gateway backing payment verification. All fetches run
// at confirmed commitment against the configured RPC endpoint (devnet by
// default).
type Client struct {
	rpc *rpc.Client
}

func NewClient(cfg config.SolanaConfig) *Client {
	return &Client{rpc: rpc.New(cfg.RPCURL)}
}

func (c *Client) ValidateAddress(address string) error {
	if _, err := solanago.PublicKeyFromBase58(address); err != nil {
		return errs.Wrap(err, "invalid ledger address")
	}
	return nil
}

func (c *Client) GetTransaction(ctx context.Context, signature string) (*commands.LedgerTransaction, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return nil, errs.Wrap(err, "invalid transaction signature")
	}

	maxVersion := uint64(0)
	out, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, errs.Mark(err, errs.ErrTransactionNotFound)
		}
		return nil, errs.Wrap(err, "failed to fetch transaction")
	}
	if out == nil {
		return nil, errs.Mark(errs.New("transaction not on ledger"), errs.ErrTransactionNotFound)
	}

	result := &commands.LedgerTransaction{}

	if out.Meta != nil {
		result.HasMeta = true
		result.PreBalances = out.Meta.PreBalances
		result.PostBalances = out.Meta.PostBalances
		if out.Meta.Err != nil {
			result.ErrText = fmt.Sprintf("%v", out.Meta.Err)
		}
	}

	// The static account key list is index-aligned with the balance slices in
	// both legacy and versioned encodings; addresses loaded from lookup
	// tables never include the merchant for a plain transfer.
	tx, err := out.Transaction.GetTransaction()
	if err != nil {
		return nil, errs.Wrap(err, "failed to decode transaction")
	}
	result.AccountKeys = make([]string, len(tx.Message.AccountKeys))
	for i, key := range tx.Message.AccountKeys {
		result.AccountKeys[i] = key.String()
	}

	return result, nil
}
