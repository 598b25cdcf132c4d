package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"payconnect/internal/infra"
	"payconnect/internal/pkg/config"
)

// CodeOTPRequired is the Moolre response code demanding an OTP
// round-trip before the charge prompt is sent.
const CodeOTPRequired = "TP14"

const chargePath = "/open/transact/payment"

type ChargeRequest struct {
	Type          int    `json:"type"`
	Channel       int    `json:"channel"`
	Currency      string `json:"currency"`
	Payer         string `json:"payer"`
	Amount        string `json:"amount"`
	ExternalRef   string `json:"externalref"`
	OTPCode       string `json:"otpcode"`
	Reference     string `json:"reference"`
	AccountNumber string `json:"accountnumber"`
}

type ChargeResult struct {
	Status    int
	Code      string
	Message   string
	SessionID string
	// Raw carries the undecoded processor payload for diagnosis.
	Raw json.RawMessage
}

func (r *ChargeResult) Successful() bool {
	return r.Status == 1
}

func (r *ChargeResult) OTPRequired() bool {
	return r.Code == CodeOTPRequired
}

// MoolreClient talks to the Moolre open transact API.
type MoolreClient struct {
	cfg        config.MoolreConfig
	httpClient *http.Client
}

func NewMoolreClient(cfg config.MoolreConfig) *MoolreClient {
	return &MoolreClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *MoolreClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if c.cfg.PublicAPIKey == "" || c.cfg.Username == "" || c.cfg.AccountNumber == "" {
		return nil, infra.WrapGatewayErr(infra.KindMisconfigured, "moolre credentials missing", nil)
	}

	req.AccountNumber = c.cfg.AccountNumber
	body, err := json.Marshal(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "failed to encode charge request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+chargePath, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "failed to build charge request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-PUBKEY", c.cfg.PublicAPIKey)
	httpReq.Header.Set("X-API-USER", c.cfg.Username)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, infra.WrapGatewayErr(infra.KindUpstreamTimeout, "moolre call timed out", err)
		}
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "moolre call failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "failed to read moolre response", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, infra.WrapGatewayErr(infra.KindUpstreamFailure, "moolre api returned "+resp.Status, nil)
	}

	var decoded struct {
		Status  int    `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    struct {
			SessionID string `json:"sessionid"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "failed to decode moolre response", err)
	}

	return &ChargeResult{
		Status:    decoded.Status,
		Code:      decoded.Code,
		Message:   decoded.Message,
		SessionID: decoded.Data.SessionID,
		Raw:       raw,
	}, nil
}
