package readstore

import (
	"context"

	"carmommy/internal/domain/call"
	"carmommy/internal/infra"
	"carmommy/internal/pkg/pgconv"
	"carmommy/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CallReadStore struct {
	db *pgxpool.Pool
}

func NewCallReadStore(db *pgxpool.Pool) *CallReadStore {
	return &CallReadStore{db: db}
}

// FindActiveByVIN returns the newest record that should block a duplicate
// call, or nil when none exists. Nil is a normal answer here, not an error.
func (r *CallReadStore) FindActiveByVIN(ctx context.Context, vin string) (*queries.ExistingCallView, error) {
	const query = `
		SELECT id, status, confirmed_price
		FROM calls
		WHERE vin = $1 AND status = ANY($2)
		ORDER BY created_at DESC
		LIMIT 1`

	activeStatuses := []string{
		call.StatusPending.String(),
		call.StatusCompleted.String(),
		call.StatusQuoted.String(),
	}

	var view queries.ExistingCallView
	err := r.db.QueryRow(ctx, query, vin, activeStatuses).
		Scan(&view.ID, &view.Status, &view.ConfirmedPrice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active call by vin", err)
	}
	return &view, nil
}

func (r *CallReadStore) FindDeals(ctx context.Context, makeName, model string) ([]queries.DealView, error) {
	const query = `
		SELECT dealer_name, confirmed_price
		FROM calls
		WHERE lower(make) = lower($1)
		  AND lower(model) = lower($2)
		  AND status <> $3
		  AND confirmed_price IS NOT NULL
		ORDER BY confirmed_price ASC`

	rows, err := r.db.Query(ctx, query, makeName, model, call.StatusPending.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query competitive deals", err)
	}
	defer rows.Close()

	var deals []queries.DealView
	for rows.Next() {
		var d queries.DealView
		if err := rows.Scan(&d.DealerName, &d.ConfirmedPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal row", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deal rows", err)
	}
	return deals, nil
}
