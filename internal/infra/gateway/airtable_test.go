//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payconnect/internal/infra"
	"payconnect/internal/infra/gateway"
	"payconnect/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airtableTestConfig(baseURL string) config.AirtableConfig {
	return config.AirtableConfig{
		BaseURL: baseURL,
		APIKey:  "key-1",
		BaseID:  "appBase",
		Table:   "Orders",
		Timeout: time.Second,
	}
}

func TestExistsQueriesByOrderReference(t *testing.T) {
	var gotAuth, gotFormula, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFormula = r.URL.Query().Get("filterByFormula")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"records":[{"id":"rec1","fields":{}}]}`))
	}))
	defer srv.Close()

	client := gateway.NewAirtableClient(airtableTestConfig(srv.URL))
	exists, err := client.Exists(context.Background(), "T100000000000001")
	require.NoError(t, err)

	assert.True(t, exists)
	assert.Equal(t, "Bearer key-1", gotAuth)
	assert.Equal(t, "/v0/appBase/Orders", gotPath)
	assert.Equal(t, "({Order ID}='T100000000000001')", gotFormula)
}

func TestExistsEscapesQuotesInReference(t *testing.T) {
	var gotFormula string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFormula = r.URL.Query().Get("filterByFormula")
		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	client := gateway.NewAirtableClient(airtableTestConfig(srv.URL))
	exists, err := client.Exists(context.Background(), "T1'); DELETE")
	require.NoError(t, err)

	assert.False(t, exists)
	assert.Equal(t, `({Order ID}='T1\'); DELETE')`, gotFormula)
}

func TestExistsDegradesWhenUnconfigured(t *testing.T) {
	client := gateway.NewAirtableClient(config.AirtableConfig{Table: "Orders", Timeout: time.Second})
	exists, err := client.Exists(context.Background(), "T100000000000001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateRecordWritesSpreadsheetColumns(t *testing.T) {
	var gotBody struct {
		Fields map[string]any `json:"fields"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0/appBase/Orders", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"rec1"}`))
	}))
	defer srv.Close()

	client := gateway.NewAirtableClient(airtableTestConfig(srv.URL))
	err := client.CreateRecord(context.Background(), gateway.OrderRecord{
		OrderID:         "T100000000000001",
		CustomerPhone:   "233531300654",
		CustomerEmail:   "a@b.com",
		RecipientNumber: "233244000000",
		DataPlan:        "5GB (express)",
		Amount:          10,
		Status:          "Pending",
		HubtelSent:      true,
		HubtelResponse:  `{"status":0}`,
		MoolreResponse:  `{"txstatus":1}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "T100000000000001", gotBody.Fields["Order ID"])
	assert.Equal(t, "233531300654", gotBody.Fields["Customer Phone"])
	assert.Equal(t, "a@b.com", gotBody.Fields["Customer Email"])
	assert.Equal(t, "233244000000", gotBody.Fields["Data Recipient Number"])
	assert.Equal(t, "5GB (express)", gotBody.Fields["Data Plan"])
	assert.Equal(t, float64(10), gotBody.Fields["Amount"])
	assert.Equal(t, "Pending", gotBody.Fields["Status"])
	assert.Equal(t, true, gotBody.Fields["Hubtel Sent"])
}

func TestCreateRecordFailsWhenUnconfigured(t *testing.T) {
	client := gateway.NewAirtableClient(config.AirtableConfig{Table: "Orders", Timeout: time.Second})
	err := client.CreateRecord(context.Background(), gateway.OrderRecord{OrderID: "T1"})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindMisconfigured))
}

func TestCreateRecordSurfacesHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"INVALID_REQUEST"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := gateway.NewAirtableClient(airtableTestConfig(srv.URL))
	err := client.CreateRecord(context.Background(), gateway.OrderRecord{OrderID: "T1", Status: "Pending"})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindUpstreamFailure))
}
