//go:build integration

package dbtest

import (
	"context"
	"testing"

	"carmommy/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// InsertCall writes a call row exactly as built, bypassing the repository so
// tests control status, prices and timestamps directly.
func InsertCall(t *testing.T, db DBLike, b *builder.CallBuilder) uuid.UUID {
	t.Helper()

	const query = `
		INSERT INTO calls (
			id, call_sid, conversation_id, vin, year, make, model, zipcode,
			dealer_name, msrp, listing_price, stock_number, phone_number, status,
			transcript_summary, call_successful, confirmed_price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := db.Exec(context.Background(), query,
		b.ID, b.CallSID, b.ConversationID, b.VIN, b.Year, b.Make, b.Model, b.Zipcode,
		b.DealerName, b.MSRP, b.ListingPrice, b.StockNumber, b.PhoneNumber, b.Status.String(),
		b.TranscriptSummary, b.CallSuccessful, b.ConfirmedPrice, b.CreatedAt, b.UpdatedAt,
	)
	require.NoError(t, err, "failed to insert call fixture")

	return b.ID
}
