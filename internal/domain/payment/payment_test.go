//go:build unit

package payment_test

import (
	"testing"

	"carmommy/internal/domain/payment"

	"github.com/stretchr/testify/assert"
)

func TestWithinTolerance(t *testing.T) {
	expected := payment.ExpectedAmountLamports

	tests := []struct {
		name  string
		delta int64
		want  bool
	}{
		{"exact amount", expected, true},
		{"lower bound", expected - 1000, true},
		{"upper bound", expected + 1000, true},
		{"below lower bound", expected - 1001, false},
		{"above upper bound", expected + 1001, false},
		{"zero delta", 0, false},
		{"tiny payment", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payment.WithinTolerance(tt.delta))
		})
	}
}

func TestLamportsToSOL(t *testing.T) {
	assert.InDelta(t, 0.001, payment.LamportsToSOL(payment.ExpectedAmountLamports), 1e-12)
	assert.InDelta(t, 1.0, payment.LamportsToSOL(payment.LamportsPerSOL), 1e-12)
}
