package payments

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

const (
	MockPayerEmail = "mock-payer@example.com"
	MockPayerName  = "Mock Payer"
)

var (
	mockFeePercent = decimal.RequireFromString("3.49")
	mockFeeFixed   = decimal.RequireFromString("0.49")
)

// MockProcessor is the PAYMENT_GATEWAY_MOCK processor: orders are approved
// immediately and every call succeeds without leaving the process.
type MockProcessor struct {
	mu       deadlock.Mutex
	orders   map[string]entities.OrderRequest
	captures map[string]entities.Capture
	refunds  map[string]entities.Refund
}

var _ interfaces.IPaymentProcessor = (*MockProcessor)(nil)

func NewMockProcessor() *MockProcessor {
	log.Printf("[payment][mock] mock mode enabled")
	return &MockProcessor{
		orders:   map[string]entities.OrderRequest{},
		captures: map[string]entities.Capture{},
		refunds:  map[string]entities.Refund{},
	}
}

func mockID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

func (m *MockProcessor) CreateOrder(_ context.Context, req entities.OrderRequest) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := mockID("O")
	m.orders[id] = req
	log.Printf("[payment][mock] create-order project_id=%s order_id=%s amount=%s", req.ProjectID, id, req.Amount.StringFixed(2))
	return entities.Order{
		ID:     id,
		Status: "CREATED",
		Links: []entities.OrderLink{
			{Href: "https://mock.invalid/checkoutnow?token=" + id, Method: "GET", Rel: "approve"},
		},
	}, nil
}

func (m *MockProcessor) CapturePayment(_ context.Context, orderID string) (entities.Capture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return entities.Capture{}, fmt.Errorf("mock: order %s not found", orderID)
	}
	for _, c := range m.captures {
		if c.OrderID == orderID {
			return c, nil
		}
	}
	amount := order.Amount
	c := entities.Capture{
		ProjectID:    order.ProjectID,
		OrderID:      orderID,
		CaptureID:    mockID("C"),
		Status:       entities.CaptureStatusCompleted,
		PayerEmail:   MockPayerEmail,
		PayerName:    MockPayerName,
		Amount:       amount,
		ProcessorFee: amount.Mul(mockFeePercent).Div(decimal.NewFromInt(100)).Add(mockFeeFixed).Round(2),
		CapturedAt:   time.Now().UTC(),
	}
	m.captures[c.CaptureID] = c
	return c, nil
}

// RefundCapture is idempotent per capture id.
func (m *MockProcessor) RefundCapture(_ context.Context, captureID string) (entities.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.refunds[captureID]; ok {
		return r, nil
	}
	if _, ok := m.captures[captureID]; !ok {
		return entities.Refund{}, fmt.Errorf("mock: capture %s not found", captureID)
	}
	r := entities.Refund{ID: mockID("R"), CaptureID: captureID, Status: entities.CaptureStatusCompleted}
	m.refunds[captureID] = r
	return r, nil
}

func (m *MockProcessor) Payout(_ context.Context, batchID string, items []entities.PayoutItem) (entities.PayoutBatch, error) {
	log.Printf("[payment][mock] payout batch_id=%s items=%d", batchID, len(items))
	return entities.PayoutBatch{BatchID: batchID, ProviderID: mockID("B"), Status: "PENDING"}, nil
}

func (m *MockProcessor) GetCapture(_ context.Context, captureID string) (entities.Capture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.captures[captureID]
	if !ok {
		return entities.Capture{}, fmt.Errorf("mock: capture %s not found", captureID)
	}
	return c, nil
}
