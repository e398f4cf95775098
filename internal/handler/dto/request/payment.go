package request

type VerifyPaymentRequest struct {
	Signature       string `json:"signature" binding:"required"`
	MerchantAddress string `json:"merchantAddress" binding:"required"`
}
