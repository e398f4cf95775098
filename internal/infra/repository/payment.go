package repository

import (
	"context"

	"carmommy/internal/infra"
	"carmommy/internal/pkg/clock"
	"carmommy/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewPaymentRepository(db *pgxpool.Pool, clk clock.Clock) *PaymentRepository {
	return &PaymentRepository{db: db, clock: clk}
}

func (r *PaymentRepository) Exists(ctx context.Context, signature string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM payments WHERE signature = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, signature).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check payment existence", err)
	}
	return exists, nil
}

// Record inserts exactly one consumed signature. The unique index on
// signature turns a lost check-then-insert race into a DUPLICATE_KEY error.
func (r *PaymentRepository) Record(ctx context.Context, signature string, amountSOL float64, merchantAddress string) error {
	const query = `
		INSERT INTO payments (id, signature, amount_sol, merchant_address, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, uuid.New(), signature, amountSOL, merchantAddress, r.clock.Now())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("payment already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to record payment", err)
	}
	return nil
}
