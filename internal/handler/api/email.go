package api

import (
	"net/http"

	reqdto "carmommy/internal/handler/dto/request"
	resdto "carmommy/internal/handler/dto/response"
	"carmommy/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	quoteCommands commands.QuoteCommands
}

func NewEmailHandler(quoteCommands commands.QuoteCommands) *EmailHandler {
	return &EmailHandler{quoteCommands: quoteCommands}
}

// @Summary Parse a dealer quote email
// @Description Extract final price, tax and fees from forwarded email content
// @Tags emails
// @Accept json
// @Produce json
// @Param request body reqdto.ParseEmailRequest true "Email content"
// @Success 200 {object} resdto.ParsedEmailResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /emails/parse [post]
func (h *EmailHandler) ParseEmail(c *gin.Context) {
	var req reqdto.ParseEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	extraction, err := h.quoteCommands.ParseEmail(c.Request.Context(), req.EmailContent)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to parse email",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEmailExtraction(extraction))
}
