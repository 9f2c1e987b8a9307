package request

type PaymentWebhookRequest struct {
	PaymentRef string `json:"payment_ref" binding:"required"`
	Outcome    string `json:"outcome" binding:"required,oneof=succeeded failed"`
}
