package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageDriver != StorageDynamoDB || cfg.PledgesTable != "pledges" || cfg.EventsExchange != "dac.events" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode")
	}
}

func TestLoadConfig_PayPalRequiresCredentials(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PAYMENT_GATEWAY_MOCK", "false")
	t.Setenv("PAYMENT_PROCESSOR", "paypal")
	t.Setenv("PAYPAL_CLIENT_ID", "")
	t.Setenv("PAYPAL_APP_SECRET", "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "PAYPAL_CLIENT_ID") {
		t.Fatalf("expected error to mention PAYPAL_CLIENT_ID, got %v", err)
	}
}

func TestLoadConfig_MercadoPago(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("PAYMENT_PROCESSOR", "MercadoPago")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("STORAGE_DRIVER", "Memory")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PaymentProcessor != ProcessorMercadoPago || cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_RejectsUnknownStorage(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	t.Setenv("STORAGE_DRIVER", "redis")

	if _, err := LoadConfig(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfig_SweepProjectIDs(t *testing.T) {
	cfg := &Config{SweepProjects: " p1, ,p2 "}
	got := cfg.SweepProjectIDs()
	if len(got) != 2 || got[0] != "p1" || got[1] != "p2" {
		t.Fatalf("unexpected ids: %v", got)
	}
	if ids := (&Config{}).SweepProjectIDs(); len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}
