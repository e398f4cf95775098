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

type VideoHandler struct {
	videoCommands commands.VideoCommands
	videoQueries  queries.VideoQueries
}

func NewVideoHandler(videoCommands commands.VideoCommands, videoQueries queries.VideoQueries) *VideoHandler {
	return &VideoHandler{
		videoCommands: videoCommands,
		videoQueries:  videoQueries,
	}
}

// @Summary Save a generated video
// @Description Record a generated marketing video for a VIN
// @Tags videos
// @Accept json
// @Produce json
// @Param request body reqdto.CreateVideoRequest true "Video record"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req reqdto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.videoCommands.SaveVideo(c.Request.Context(), req.VIN, req.StorageRef)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": id.String(),
	})
}

// @Summary Get the video for a VIN
// @Description Return the newest video record for a VIN
// @Tags videos
// @Produce json
// @Param vin path string true "Vehicle VIN"
// @Success 200 {object} queries.VideoView
// @Failure 404 {object} map[string]string
// @Router /videos/{vin} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	vin := c.Param("vin")

	view, err := h.videoQueries.GetByVIN(c.Request.Context(), vin)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Video not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
