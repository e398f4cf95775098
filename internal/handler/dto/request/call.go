package request

type RequestCallRequest struct {
	VIN              string `json:"vin" binding:"required"`
	Year             int32  `json:"year" binding:"required"`
	Make             string `json:"make" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Zipcode          int32  `json:"zipcode" binding:"required"`
	DealerName       string `json:"dealer_name" binding:"required"`
	MSRP             int64  `json:"msrp"`
	ListingPrice     int64  `json:"listing_price" binding:"required"`
	StockNumber      string `json:"stock_number"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	VoiceID          string `json:"voice_id"`
	PaymentSignature string `json:"paymentSignature" binding:"required"`
}
