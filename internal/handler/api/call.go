package api

import (
	errors "github.com/cockroachdb/errors"
	"net/http"

	reqdto "carmommy/internal/handler/dto/request"
	"carmommy/internal/pkg/errs"
	"carmommy/internal/usecase/commands"
	"carmommy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	callCommands commands.CallCommands
	callQueries  queries.CallQueries
}

func NewCallHandler(callCommands commands.CallCommands, callQueries queries.CallQueries) *CallHandler {
	return &CallHandler{
		callCommands: callCommands,
		callQueries:  callQueries,
	}
}

// @Summary Request a negotiation call
// @Description Verify payment and start an outbound AI call to the dealership
// @Tags calls
// @Accept json
// @Produce json
// @Param request body reqdto.RequestCallRequest true "Call request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /calls [post]
func (h *CallHandler) RequestCall(c *gin.Context) {
	var req reqdto.RequestCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.callCommands.RequestCall(c.Request.Context(), commands.RequestCallInput{
		VIN:              req.VIN,
		Year:             req.Year,
		Make:             req.Make,
		Model:            req.Model,
		Zipcode:          req.Zipcode,
		DealerName:       req.DealerName,
		MSRP:             req.MSRP,
		ListingPrice:     req.ListingPrice,
		StockNumber:      req.StockNumber,
		PhoneNumber:      req.PhoneNumber,
		VoiceID:          req.VoiceID,
		PaymentSignature: req.PaymentSignature,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentInvalid):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, errs.ErrVendorCallFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to start outbound call",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"callSid":         result.CallSID,
		"conversation_id": result.ConversationID,
	})
}

// @Summary Check for an existing call
// @Description Return the newest active call record for a VIN, null when none
// @Tags calls
// @Produce json
// @Param vin query string true "Vehicle VIN"
// @Success 200 {object} queries.ExistingCallView
// @Failure 400 {object} map[string]string
// @Router /calls/existing [get]
func (h *CallHandler) CheckExistingCall(c *gin.Context) {
	vin := c.Query("vin")
	if vin == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "vin is required",
		})
		return
	}

	view, err := h.callQueries.CheckExistingCall(c.Request.Context(), vin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Renders null when no active call exists; the frontend treats that as
	// permission to place a fresh call.
	c.JSON(http.StatusOK, view)
}

// @Summary List competitive deals
// @Description List confirmed prices negotiated for the same make and model
// @Tags calls
// @Produce json
// @Param make query string true "Vehicle make"
// @Param model query string true "Vehicle model"
// @Success 200 {array} queries.DealView
// @Failure 400 {object} map[string]string
// @Router /deals [get]
func (h *CallHandler) CompetitiveDeals(c *gin.Context) {
	makeName := c.Query("make")
	model := c.Query("model")
	if makeName == "" || model == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "make and model are required",
		})
		return
	}

	deals, err := h.callQueries.CompetitiveDeals(c.Request.Context(), makeName, model)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, deals)
}
