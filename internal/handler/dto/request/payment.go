package request

type InitiatePaymentRequest struct {
	Phone       string  `json:"phone" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	ExternalRef string  `json:"externalref,omitempty"`
	OTPCode     string  `json:"otpcode,omitempty"`

	// Product metadata carried through to the confirmation webhook.
	DataPlan  string `json:"dataPlan,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Email     string `json:"email,omitempty"`
}
