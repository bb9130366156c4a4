package dto

// CreatePaymentRequest is the payload for starting a provider checkout
type CreatePaymentRequest struct {
	OrderID  uint64 `json:"orderId" binding:"required"`
	Currency string `json:"currency"`
}

// PaymentOrderResponse is the checkout reference returned to the buyer
type PaymentOrderResponse struct {
	OrderID     uint64 `json:"orderId"`
	PrepayID    string `json:"prepayId"`
	CheckoutURL string `json:"checkoutUrl"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

// PaymentStatusResponse reports payment progress for an order
type PaymentStatusResponse struct {
	OrderID           uint64 `json:"orderId"`
	OrderStatus       string `json:"orderStatus"`
	TransactionStatus string `json:"transactionStatus,omitempty"`
	Amount            string `json:"amount"`
}

// WebhookAck is the body returned to the provider after processing
type WebhookAck struct {
	ReturnCode    string `json:"returnCode"`
	ReturnMessage string `json:"returnMessage"`
}
