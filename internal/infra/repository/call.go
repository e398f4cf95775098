package repository

import (
	"context"

	"carmommy/internal/domain/call"
	"carmommy/internal/infra"
	"carmommy/internal/pkg/clock"
	"carmommy/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CallRepository struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewCallRepository(db *pgxpool.Pool, clk clock.Clock) *CallRepository {
	return &CallRepository{db: db, clock: clk}
}

func (r *CallRepository) Create(ctx context.Context, c commands.NewCall) (uuid.UUID, error) {
	const query = `
		INSERT INTO calls (
			id, call_sid, conversation_id, vin, year, make, model, zipcode,
			dealer_name, msrp, listing_price, stock_number, phone_number, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`

	id := uuid.New()
	_, err := r.db.Exec(ctx, query,
		id, c.CallSID, c.ConversationID, c.VIN, c.Year, c.Make, c.Model, c.Zipcode,
		c.DealerName, c.MSRP, c.ListingPrice, c.StockNumber, c.PhoneNumber,
		call.StatusPending.String(), r.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create call record", err)
	}
	return id, nil
}

// UpdateOutcomeByConversationID rewrites the mutable outcome slice of the
// record. A nil ConfirmedPrice keeps any previously stored price.
func (r *CallRepository) UpdateOutcomeByConversationID(ctx context.Context, conversationID string, outcome commands.CallOutcome) (bool, error) {
	const query = `
		UPDATE calls SET
			status = $2,
			transcript_summary = $3,
			call_successful = $4,
			confirmed_price = COALESCE($5, confirmed_price),
			updated_at = $6
		WHERE conversation_id = $1`

	tag, err := r.db.Exec(ctx, query,
		conversationID, outcome.Status, outcome.TranscriptSummary,
		outcome.CallSuccessful, outcome.ConfirmedPrice, r.clock.Now(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update call outcome", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateQuoteByVIN confirms an email-derived quote against the newest call for
// the VIN. VIN is not unique-indexed; only the latest record is touched.
func (r *CallRepository) UpdateQuoteByVIN(ctx context.Context, vin string, confirmedPrice float64) (bool, error) {
	const query = `
		UPDATE calls SET
			status = $2,
			confirmed_price = $3,
			updated_at = $4
		WHERE id = (
			SELECT id FROM calls WHERE vin = $1 ORDER BY created_at DESC LIMIT 1
		)`

	tag, err := r.db.Exec(ctx, query, vin, call.StatusConfirmedQuote.String(), confirmedPrice, r.clock.Now())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update quote by vin", err)
	}
	return tag.RowsAffected() > 0, nil
}
