package response

import "carmommy/internal/usecase/commands"

type ParsedEmailResponse struct {
	FinalPrice *float64 `json:"final_price"`
	Tax        *float64 `json:"tax"`
	Fees       *float64 `json:"fees"`
}

func FromEmailExtraction(e *commands.EmailExtraction) *ParsedEmailResponse {
	return &ParsedEmailResponse{
		FinalPrice: e.FinalPrice,
		Tax:        e.Tax,
		Fees:       e.Fees,
	}
}
