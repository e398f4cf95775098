package response

import "carmommy/internal/usecase/commands"

type VerifyPaymentResponse struct {
	Valid   bool     `json:"valid"`
	Message string   `json:"message"`
	Amount  *float64 `json:"amount,omitempty"`
}

func FromVerifyResult(result commands.VerifyResult) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		Valid:   result.Valid,
		Message: result.Message,
		Amount:  result.AmountSOL,
	}
}
