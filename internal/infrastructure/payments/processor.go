package payments

import (
	"context"
	"fmt"

	"dominant_assurance/internal/config"
	"dominant_assurance/internal/usecase/interfaces"
)

// NewProcessor builds the payment processor selected by PAYMENT_PROCESSOR.
// PAYMENT_GATEWAY_MOCK wins over any processor setting.
func NewProcessor(ctx context.Context, cfg *config.Config) (interfaces.IPaymentProcessor, error) {
	if cfg.PaymentGatewayMock {
		return NewMockProcessor(), nil
	}
	switch cfg.PaymentProcessor {
	case config.ProcessorPayPal:
		return NewPayPalGateway(ctx, cfg.PayPalAPIURL, cfg.PayPalClientID, cfg.PayPalAppSecret)
	case config.ProcessorMercadoPago:
		return NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	default:
		return nil, fmt.Errorf("%w: unknown payment processor %q", config.ErrInvalidConfig, cfg.PaymentProcessor)
	}
}
