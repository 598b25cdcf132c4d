package request

// MoolreWebhookRequest is the asynchronous confirmation event posted by
// the processor. Moolre has delivered the shared secret both at the top
// level and inside data across API revisions, so both spots are read.
type MoolreWebhookRequest struct {
	Secret string      `json:"secret"`
	Data   WebhookData `json:"data"`
}

type WebhookData struct {
	Secret      string          `json:"secret"`
	TxStatus    int             `json:"txstatus"`
	ExternalRef string          `json:"externalref"`
	Payer       string          `json:"payer"`
	Amount      float64         `json:"amount"`
	Metadata    WebhookMetadata `json:"metadata"`
}

// WebhookMetadata is the processor's echo of metadata attached at
// charge time. Used as the fallback source when the pending store no
// longer holds the initiation-time values.
type WebhookMetadata struct {
	CustomerID string `json:"customer_id"`
	DataPlan   string `json:"dataPlan"`
	Recipient  string `json:"recipient"`
	Email      string `json:"email"`
}

// SharedSecret returns the secret wherever the processor put it.
func (r MoolreWebhookRequest) SharedSecret() string {
	if r.Data.Secret != "" {
		return r.Data.Secret
	}
	return r.Secret
}
