package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"payconnect/internal/infra"
	"payconnect/internal/pkg/config"
	"payconnect/internal/pkg/phone"
)

const smsSendPath = "/v1/messages/send"

type SMSResult struct {
	// Body is the raw provider payload, kept for the order-record audit
	// fields.
	Body json.RawMessage
}

// HubtelClient sends SMS notifications through the Hubtel SMSC API.
type HubtelClient struct {
	cfg        config.HubtelConfig
	httpClient *http.Client
}

func NewHubtelClient(cfg config.HubtelConfig) *HubtelClient {
	return &HubtelClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HubtelClient) Send(ctx context.Context, to, message string) (*SMSResult, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return nil, infra.WrapGatewayErr(infra.KindMisconfigured, "hubtel credentials missing", nil)
	}

	payload := struct {
		From    string `json:"From"`
		To      string `json:"To"`
		Content string `json:"Content"`
	}{
		From:    c.cfg.Sender,
		To:      phone.Normalize(to),
		Content: message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "failed to encode sms request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+smsSendPath, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "failed to build sms request", err)
	}
	httpReq.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, infra.WrapGatewayErr(infra.KindUpstreamTimeout, "hubtel call timed out", err)
		}
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "hubtel call failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "failed to read hubtel response", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "hubtel api returned "+resp.Status+": "+string(raw), nil)
	}

	return &SMSResult{Body: raw}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
