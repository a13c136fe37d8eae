package request_models

type DepositRequest struct {
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethodID string  `json:"payment_method_id"`
}
