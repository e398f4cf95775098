package request

type SearchListingsQuery struct {
	ZipCode     string `form:"zipCode" binding:"required"`
	Make        string `form:"make" binding:"required"`
	Model       string `form:"model" binding:"required"`
	RadiusMiles int32  `form:"radiusMiles,default=50" binding:"omitempty,gt=0"`
}
