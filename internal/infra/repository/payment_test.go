//go:build integration

package repository_test

import (
	"context"
	"testing"

	"carmommy/internal/infra"
	"carmommy/internal/infra/repository"
	"carmommy/internal/pkg/clock"
	"carmommy/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepository_RecordAndExists(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Setup(t)
	repo := repository.NewPaymentRepository(pool, clock.NewMockClock(fixedTime))

	const signature = "5VERYLongBase58SignatureUsedOnlyInTestsAAAAAAAAAAAAAAAAAAAAAAAAA"

	exists, err := repo.Exists(ctx, signature)
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Record(ctx, signature, 0.001, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	require.NoError(t, err)

	exists, err = repo.Exists(ctx, signature)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPaymentRepository_DuplicateSignature(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Setup(t)
	repo := repository.NewPaymentRepository(pool, clock.NewMockClock(fixedTime))

	const signature = "5AnotherLongBase58SignatureUsedOnlyInTestsBBBBBBBBBBBBBBBBBBBBBB"

	err := repo.Record(ctx, signature, 0.001, "merchant1")
	require.NoError(t, err)

	err = repo.Record(ctx, signature, 0.001, "merchant2")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey),
		"second insert of the same signature must surface as a duplicate key, got %v", err)
}
