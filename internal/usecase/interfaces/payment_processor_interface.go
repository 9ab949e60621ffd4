package interfaces

import (
	"context"

	"dominant_assurance/internal/domain/entities"
)

// IPaymentProcessor abstracts the external payment provider (PayPal or
// Mercado Pago). Every call is remote and may fail; callers wrap failures as
// upstream errors.
type IPaymentProcessor interface {
	CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error)
	CapturePayment(ctx context.Context, orderID string) (entities.Capture, error)
	// RefundCapture issues a full refund. The capture id doubles as the
	// idempotency key so a retried sweep never refunds twice.
	RefundCapture(ctx context.Context, captureID string) (entities.Refund, error)
	Payout(ctx context.Context, batchID string, items []entities.PayoutItem) (entities.PayoutBatch, error)
	GetCapture(ctx context.Context, captureID string) (entities.Capture, error)
}
