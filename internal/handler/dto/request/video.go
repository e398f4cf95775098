package request

type CreateVideoRequest struct {
	VIN        string `json:"vin" binding:"required"`
	StorageRef string `json:"storage_ref" binding:"required"`
}
