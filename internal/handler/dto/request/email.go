package request

type ParseEmailRequest struct {
	EmailContent string `json:"emailContent" binding:"required"`
}
