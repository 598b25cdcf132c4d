package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"payconnect/internal/infra"
	"payconnect/internal/pkg/config"
)

// OrderRecord is the final, reconciled record written to the external
// order store once per successful transaction.
type OrderRecord struct {
	OrderID         string
	CustomerPhone   string
	CustomerEmail   string
	RecipientNumber string
	DataPlan        string
	Amount          float64
	Status          string
	HubtelSent      bool
	HubtelResponse  string
	MoolreResponse  string
}

// airtableFields maps an OrderRecord onto the spreadsheet column names.
type airtableFields struct {
	OrderID         string  `json:"Order ID"`
	CustomerPhone   string  `json:"Customer Phone"`
	CustomerEmail   string  `json:"Customer Email"`
	RecipientNumber string  `json:"Data Recipient Number"`
	DataPlan        string  `json:"Data Plan"`
	Amount          float64 `json:"Amount"`
	Status          string  `json:"Status"`
	HubtelSent      bool    `json:"Hubtel Sent"`
	HubtelResponse  string  `json:"Hubtel Response"`
	MoolreResponse  string  `json:"Moolre Response"`
}

// AirtableClient reads and writes order records in the spreadsheet
// backing store.
type AirtableClient struct {
	cfg        config.AirtableConfig
	httpClient *http.Client
}

func NewAirtableClient(cfg config.AirtableConfig) *AirtableClient {
	return &AirtableClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *AirtableClient) tableURL() string {
	return fmt.Sprintf("%s/v0/%s/%s", c.cfg.BaseURL, c.cfg.BaseID, url.PathEscape(c.cfg.Table))
}

// Exists checks the order store for a record with the given order
// reference. An unconfigured store reports absence so the webhook flow
// can still proceed; the suppression window covers retries in that
// degraded mode.
func (c *AirtableClient) Exists(ctx context.Context, ref string) (bool, error) {
	if c.cfg.APIKey == "" || c.cfg.BaseID == "" {
		slog.Warn("airtable not configured, skipping existence check", "ref", ref)
		return false, nil
	}

	formula := fmt.Sprintf("({Order ID}='%s')", escapeFormulaValue(ref))
	reqURL := c.tableURL() + "?filterByFormula=" + url.QueryEscape(formula)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, infra.WrapGatewayErr(infra.KindUpstreamFailure, "failed to build airtable read request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return false, infra.WrapGatewayErr(infra.KindUpstreamTimeout, "airtable read timed out", err)
		}
		return false, infra.WrapGatewayErr(infra.KindUpstreamFailure, "airtable read failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return false, infra.WrapGatewayErr(infra.KindUpstreamFailure, "airtable read returned "+resp.Status, nil)
	}

	var decoded struct {
		Records []json.RawMessage `json:"records"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return false, infra.WrapGatewayErr(infra.KindBadResponse, "failed to decode airtable read response", err)
	}
	return len(decoded.Records) > 0, nil
}

func (c *AirtableClient) CreateRecord(ctx context.Context, rec OrderRecord) error {
	if c.cfg.APIKey == "" || c.cfg.BaseID == "" {
		return infra.WrapGatewayErr(infra.KindMisconfigured, "airtable configuration missing", nil)
	}

	body, err := json.Marshal(struct {
		Fields airtableFields `json:"fields"`
	}{Fields: airtableFields(rec)})
	if err != nil {
		return infra.WrapGatewayErr(infra.KindBadResponse, "failed to encode airtable record", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(body))
	if err != nil {
		return infra.WrapGatewayErr(infra.KindUpstreamFailure, "failed to build airtable create request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return infra.WrapGatewayErr(infra.KindUpstreamTimeout, "airtable create timed out", err)
		}
		return infra.WrapGatewayErr(infra.KindUpstreamFailure, "airtable create failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return infra.WrapGatewayErr(infra.KindUpstreamFailure, "airtable create returned "+resp.Status, nil)
	}
	return nil
}

// single quotes would otherwise terminate the formula string literal
func escapeFormulaValue(v string) string {
	return strings.ReplaceAll(v, "'", "\\'")
}
