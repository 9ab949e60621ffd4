// Package config loads service settings from the environment (and .env via
// godotenv/autoload in cmd/api).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"

	ProcessorPayPal      = "paypal"
	ProcessorMercadoPago = "mercadopago"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the api.
type Config struct {
	Port          string `mapstructure:"PORT"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	PledgesTable       string `mapstructure:"PLEDGES_TABLE"`
	LedgerSchemaTable  string `mapstructure:"LEDGER_SCHEMA_TABLE"`
	ProjectsTable      string `mapstructure:"PROJECTS_TABLE"`
	AclsTable          string `mapstructure:"ACLS_TABLE"`

	PaymentProcessor       string `mapstructure:"PAYMENT_PROCESSOR"`
	PayPalClientID         string `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalAppSecret        string `mapstructure:"PAYPAL_APP_SECRET"`
	PayPalAPIURL           string `mapstructure:"PAYPAL_API_URL"`
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`

	AdminPassword    string `mapstructure:"ADMIN_PASSWORD"`
	FrontendURL      string `mapstructure:"FRONTEND_URL"`
	IdentityJWKSURL  string `mapstructure:"IDENTITY_JWKS_URL"`
	IdentityAudience string `mapstructure:"IDENTITY_AUDIENCE"`
	IdentityIssuer   string `mapstructure:"IDENTITY_ISSUER"`

	AMQPURL        string `mapstructure:"AMQP_URL"`
	EventsExchange string `mapstructure:"EVENTS_EXCHANGE"`

	SweepSchedule string `mapstructure:"SWEEP_SCHEDULE"`
	SweepProjects string `mapstructure:"SWEEP_PROJECTS"`
}

var keys = []string{
	"PORT", "STORAGE_DRIVER",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"PLEDGES_TABLE", "LEDGER_SCHEMA_TABLE", "PROJECTS_TABLE", "ACLS_TABLE",
	"PAYMENT_PROCESSOR", "PAYPAL_CLIENT_ID", "PAYPAL_APP_SECRET", "PAYPAL_API_URL",
	"MERCADOPAGO_ACCESS_TOKEN", "PAYMENT_GATEWAY_MOCK",
	"ADMIN_PASSWORD", "FRONTEND_URL", "IDENTITY_JWKS_URL", "IDENTITY_AUDIENCE", "IDENTITY_ISSUER",
	"AMQP_URL", "EVENTS_EXCHANGE", "SWEEP_SCHEDULE", "SWEEP_PROJECTS",
}

// LoadConfig reads configuration from environment variables and validates the
// settings required by the selected storage driver and payment processor.
func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	viper.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("PLEDGES_TABLE", "pledges")
	viper.SetDefault("LEDGER_SCHEMA_TABLE", "ledger_schema")
	viper.SetDefault("PROJECTS_TABLE", "projects")
	viper.SetDefault("ACLS_TABLE", "acls")
	viper.SetDefault("PAYMENT_PROCESSOR", ProcessorPayPal)
	viper.SetDefault("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com")
	viper.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	viper.SetDefault("EVENTS_EXCHANGE", "dac.events")
	viper.AutomaticEnv()

	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.PaymentProcessor = strings.ToLower(strings.TrimSpace(cfg.PaymentProcessor))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageMemory:
	default:
		return fmt.Errorf("%w: STORAGE_DRIVER must be %q or %q, got %q", ErrInvalidConfig, StorageDynamoDB, StorageMemory, c.StorageDriver)
	}

	if c.PaymentGatewayMock {
		return nil
	}
	switch c.PaymentProcessor {
	case ProcessorPayPal:
		if c.PayPalClientID == "" || c.PayPalAppSecret == "" {
			return fmt.Errorf("%w: PAYPAL_CLIENT_ID and PAYPAL_APP_SECRET are required", ErrInvalidConfig)
		}
	case ProcessorMercadoPago:
		if c.MercadoPagoAccessToken == "" {
			return fmt.Errorf("%w: MERCADOPAGO_ACCESS_TOKEN is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: PAYMENT_PROCESSOR must be %q or %q, got %q", ErrInvalidConfig, ProcessorPayPal, ProcessorMercadoPago, c.PaymentProcessor)
	}
	return nil
}

// SweepProjectIDs splits SWEEP_PROJECTS; empty means every stored project.
func (c *Config) SweepProjectIDs() []string {
	var ids []string
	for _, id := range strings.Split(c.SweepProjects, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
