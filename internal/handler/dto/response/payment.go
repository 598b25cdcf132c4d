package response

import "payconnect/internal/usecase/commands"

type InitiatePaymentResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func FromInitiationResult(r *commands.InitiatePaymentResult) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		Success: r.Success(),
		OrderID: r.OrderID,
		Status:  string(r.Status),
		Message: r.Message,
	}
}

type WebhookAckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromWebhookResult(r *commands.WebhookResult) WebhookAckResponse {
	return WebhookAckResponse{
		Success: r.Success,
		Message: r.Message,
	}
}
