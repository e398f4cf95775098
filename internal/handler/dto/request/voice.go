package request

type CreateVoiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Audio string `json:"audio" binding:"required"` // base64-encoded sample
}
