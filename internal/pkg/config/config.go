package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values without a workable fallback (service port)
// - default: provider endpoints and tunables common across environments
// Collaborator credentials deliberately default to empty: the original
// deployment tolerates partially configured providers and the flows
// degrade per collaborator (see gateway packages).
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Moolre   MoolreConfig
	Hubtel   HubtelConfig
	Airtable AirtableConfig
	Store    StoreConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
	// Externally reachable base URL, used to advertise the webhook
	// callback endpoint registered with the processor.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type MoolreConfig struct {
	BaseURL       string        `envconfig:"MOOLRE_BASE" default:"https://api.moolre.com"`
	PublicAPIKey  string        `envconfig:"MOOLRE_PUBLIC_API_KEY" default:""`
	Username      string        `envconfig:"MOOLRE_USERNAME" default:""`
	WebhookSecret string        `envconfig:"MOOLRE_SECRET" default:""`
	AccountNumber string        `envconfig:"MOOLRE_ACCOUNT_NUMBER" default:""`
	Timeout       time.Duration `envconfig:"MOOLRE_TIMEOUT" default:"10s"`
}

type HubtelConfig struct {
	BaseURL      string        `envconfig:"HUBTEL_BASE" default:"https://smsc.hubtel.com"`
	ClientID     string        `envconfig:"HUBTEL_CLIENT_ID" default:""`
	ClientSecret string        `envconfig:"HUBTEL_CLIENT_SECRET" default:""`
	Sender       string        `envconfig:"HUBTEL_SENDER" default:"Pconnect"`
	Timeout      time.Duration `envconfig:"HUBTEL_TIMEOUT" default:"10s"`
}

type AirtableConfig struct {
	BaseURL string        `envconfig:"AIRTABLE_BASE_URL" default:"https://api.airtable.com"`
	APIKey  string        `envconfig:"AIRTABLE_API_KEY" default:""`
	BaseID  string        `envconfig:"AIRTABLE_BASE" default:""`
	Table   string        `envconfig:"AIRTABLE_TABLE" default:"Orders"`
	Timeout time.Duration `envconfig:"AIRTABLE_TIMEOUT" default:"10s"`
}

type StoreConfig struct {
	// TTL for pending-transaction metadata awaiting a webhook.
	PendingTTL           time.Duration `envconfig:"PENDING_TTL" default:"15m"`
	PendingSweepInterval time.Duration `envconfig:"PENDING_SWEEP_INTERVAL" default:"1m"`
	// Advisory window suppressing duplicate webhook deliveries.
	SuppressionTTL time.Duration `envconfig:"SUPPRESSION_TTL" default:"60s"`
}

func (c ServerConfig) WebhookCallbackURL() string {
	return c.PublicBaseURL + "/api/webhook/moolre"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Moolre: MoolreConfig{
			BaseURL:       "http://localhost:9991",
			PublicAPIKey:  "test-pubkey",
			Username:      "test-user",
			WebhookSecret: "test-secret",
			AccountNumber: "100000",
			Timeout:       time.Second,
		},
		Hubtel: HubtelConfig{
			BaseURL:      "http://localhost:9992",
			ClientID:     "test-client",
			ClientSecret: "test-client-secret",
			Sender:       "Pconnect",
			Timeout:      time.Second,
		},
		Airtable: AirtableConfig{
			BaseURL: "http://localhost:9993",
			APIKey:  "test-key",
			BaseID:  "appTest",
			Table:   "Orders",
			Timeout: time.Second,
		},
		Store: StoreConfig{
			PendingTTL:           15 * time.Minute,
			PendingSweepInterval: time.Minute,
			SuppressionTTL:       time.Minute,
		},
	}
}
