package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	eventTranscription     = "post_call_transcription"
	eventAudio             = "post_call_audio"
	eventInitiationFailure = "call_initiation_failure"

	noOffersSentinel = "no offer avaliables"
)

type ElevenLabsHandler struct {
	webhookCommands commands.WebhookCommands
	quoteCommands   commands.QuoteCommands
	callQueries     queries.CallQueries
	webhookSecret   string
}

func NewElevenLabsHandler(
	webhookCommands commands.WebhookCommands,
	quoteCommands commands.QuoteCommands,
	callQueries queries.CallQueries,
	webhookSecret string,
) *ElevenLabsHandler {
	return &ElevenLabsHandler{
		webhookCommands: webhookCommands,
		quoteCommands:   quoteCommands,
		callQueries:     callQueries,
		webhookSecret:   webhookSecret,
	}
}

type postCallEvent struct {
	Type string `json:"type"`
	Data struct {
		ConversationID string `json:"conversation_id"`
		Analysis       struct {
			CallSuccessful    string  `json:"call_successful"`
			TranscriptSummary *string `json:"transcript_summary"`
		} `json:"analysis"`
		FailureReason string `json:"failure_reason"`
	} `json:"data"`
}

// PostCall receives ElevenLabs post-call events. The vendor retries on
// non-2xx, so usecase failures are logged and acknowledged; only an
// unreadable body earns a 500.
func (h *ElevenLabsHandler) PostCall(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	if h.webhookSecret != "" {
		if !verifySignature(h.webhookSecret, c.GetHeader("elevenlabs-signature"), body) {
			slog.Warn("webhook signature verification failed")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid signature",
			})
			return
		}
	}

	var event postCallEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to parse webhook body",
		})
		return
	}

	ctx := c.Request.Context()
	switch event.Type {
	case eventTranscription:
		callSuccessful := event.Data.Analysis.CallSuccessful == "success"
		if err := h.webhookCommands.ProcessTranscription(ctx, event.Data.ConversationID, callSuccessful, event.Data.Analysis.TranscriptSummary); err != nil {
			slog.Error("failed to process transcription webhook", "error", err, "conversation_id", event.Data.ConversationID)
		}
	case eventInitiationFailure:
		if err := h.webhookCommands.ProcessInitiationFailure(ctx, event.Data.ConversationID, event.Data.FailureReason); err != nil {
			slog.Error("failed to process initiation failure webhook", "error", err, "conversation_id", event.Data.ConversationID)
		}
	case eventAudio:
		// Audio payloads are not stored.
	default:
		slog.Warn("unknown webhook event type", "type", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

type quoteRequest struct {
	VIN        string   `json:"vin"`
	FinalPrice *float64 `json:"finalPrice"`
}

// ConfirmQuote is the tool endpoint the call agent hits once a dealer commits
// to a number.
func (h *ElevenLabsHandler) ConfirmQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if req.VIN == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "vin is required",
		})
		return
	}
	if req.FinalPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "finalPrice is required",
		})
		return
	}

	if err := h.quoteCommands.ConfirmQuote(c.Request.Context(), req.VIN, *req.FinalPrice); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Quote recorded",
		"vin":        req.VIN,
		"finalPrice": *req.FinalPrice,
	})
}

type dealsRequest struct {
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
}

// CompetitiveDeals answers the agent's mid-call tool query with a plain-text
// summary it can read to the dealer.
func (h *ElevenLabsHandler) CompetitiveDeals(c *gin.Context) {
	var req dealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "make and model are required",
		})
		return
	}

	deals, err := h.callQueries.CompetitiveDeals(c.Request.Context(), req.Make, req.Model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.String(http.StatusOK, formatDeals(deals))
}

func formatDeals(deals []queries.DealView) string {
	if len(deals) == 0 {
		return noOffersSentinel
	}

	parts := make([]string, 0, len(deals))
	for _, d := range deals {
		parts = append(parts, fmt.Sprintf("%s: %.2f", d.DealerName, d.ConfirmedPrice))
	}
	return strings.Join(parts, ", ")
}

// verifySignature checks the "t=<unix>,v0=<hex>" HMAC header format where the
// digest covers "<timestamp>.<body>".
func verifySignature(secret, header string, body []byte) bool {
	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		switch {
		case strings.HasPrefix(part, "t="):
			timestamp = strings.TrimPrefix(part, "t=")
		case strings.HasPrefix(part, "v0="):
			signature = strings.TrimPrefix(part, "v0=")
		}
	}
	if timestamp == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
