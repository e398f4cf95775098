package api

import (
	"net/http"

	reqdto "carmommy/internal/handler/dto/request"
	resdto "carmommy/internal/handler/dto/response"
	"carmommy/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Verify Solana payment
// @Description Verify a devnet payment transaction against the merchant address
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Payment verification request"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} map[string]string
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Verification failures are part of the response body, not HTTP errors.
	result := h.paymentCommands.Verify(c.Request.Context(), req.Signature, req.MerchantAddress)
	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}
