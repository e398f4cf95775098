package payment

const (
	// LamportsPerSOL is the native unit scale of the ledger.
	LamportsPerSOL = 1_000_000_000

	// ExpectedAmountSOL is the flat fee for one negotiation call.
	ExpectedAmountSOL      = 0.001
	ExpectedAmountLamports = int64(ExpectedAmountSOL * LamportsPerSOL)

	// ToleranceLamports absorbs fee-related rounding in the observed delta.
	ToleranceLamports = int64(1000)

	// MinSignatureLength is the shortest base58 string that can encode a
	// transaction signature.
	MinSignatureLength = 64
)

// WithinTolerance reports whether a positive merchant balance delta counts as
// the expected payment.
func WithinTolerance(deltaLamports int64) bool {
	return deltaLamports >= ExpectedAmountLamports-ToleranceLamports &&
		deltaLamports <= ExpectedAmountLamports+ToleranceLamports
}

func LamportsToSOL(lamports int64) float64 {
	return float64(lamports) / LamportsPerSOL
}
