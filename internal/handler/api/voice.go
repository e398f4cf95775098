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

type VoiceHandler struct {
	voiceCommands commands.VoiceCommands
	voiceQueries  queries.VoiceQueries
}

func NewVoiceHandler(voiceCommands commands.VoiceCommands, voiceQueries queries.VoiceQueries) *VoiceHandler {
	return &VoiceHandler{
		voiceCommands: voiceCommands,
		voiceQueries:  voiceQueries,
	}
}

// @Summary List available voices
// @Description List the voices available for outbound calls, including clones
// @Tags voices
// @Produce json
// @Success 200 {array} queries.VoiceView
// @Failure 502 {object} map[string]string
// @Router /voices [get]
func (h *VoiceHandler) ListVoices(c *gin.Context) {
	voices, err := h.voiceQueries.GetVoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list voices",
		})
		return
	}

	c.JSON(http.StatusOK, voices)
}

// @Summary Clone a voice
// @Description Upload a base64-encoded audio sample and create a cloned voice
// @Tags voices
// @Accept json
// @Produce json
// @Param request body reqdto.CreateVoiceRequest true "Voice creation request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /voices [post]
func (h *VoiceHandler) CreateVoice(c *gin.Context) {
	var req reqdto.CreateVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	raw, err := h.voiceCommands.CreateVoice(c.Request.Context(), req.Name, req.Audio)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid base64 audio payload",
			})
		case errors.Is(err, errs.ErrVoiceUploadFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to create voice",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
