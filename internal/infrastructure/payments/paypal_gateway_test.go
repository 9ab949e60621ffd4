package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dominant_assurance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func newPayPalTestServer(t *testing.T, routes map[string]http.HandlerFunc) *PayPalGateway {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	})
	for pattern, h := range routes {
		h := h
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				t.Fatalf("missing bearer token on %s", r.URL.Path)
			}
			h(w, r)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	gw, err := NewPayPalGateway(context.Background(), srv.URL+"/", "id", "secret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return gw
}

func TestNewPayPalGateway_MissingCredentials(t *testing.T) {
	if _, err := NewPayPalGateway(context.Background(), "http://x", "", "secret"); !errors.Is(err, ErrMissingPayPalCredentials) {
		t.Fatalf("expected ErrMissingPayPalCredentials, got %v", err)
	}
}

func TestPayPalGateway_CreateOrder(t *testing.T) {
	gw := newPayPalTestServer(t, map[string]http.HandlerFunc{
		"/v2/checkout/orders": func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Intent        string `json:"intent"`
				PurchaseUnits []struct {
					Amount   paypalMoney `json:"amount"`
					CustomID string      `json:"custom_id"`
				} `json:"purchase_units"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Intent != "CAPTURE" || body.PurchaseUnits[0].Amount.Value != "12.50" || body.PurchaseUnits[0].Amount.CurrencyCode != "USD" || body.PurchaseUnits[0].CustomID != "p1" {
				t.Fatalf("unexpected body: %+v", body)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"ORDER1","status":"CREATED","links":[{"href":"https://paypal/approve","rel":"approve","method":"GET"}]}`)
		},
	})

	order, err := gw.CreateOrder(context.Background(), entities.OrderRequest{ProjectID: "p1", Amount: decimal.RequireFromString("12.5")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if order.ID != "ORDER1" || len(order.Links) != 1 || order.Links[0].Rel != "approve" {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestPayPalGateway_CapturePayment(t *testing.T) {
	gw := newPayPalTestServer(t, map[string]http.HandlerFunc{
		"/v2/checkout/orders/ORDER1/capture": func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("PayPal-Request-Id") != "capture-ORDER1" {
				t.Fatalf("unexpected request id %q", r.Header.Get("PayPal-Request-Id"))
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{
				"id":"ORDER1","status":"COMPLETED",
				"payment_source":{"paypal":{"email_address":"john@example.com","name":{"given_name":"John","surname":"Doe"}}},
				"purchase_units":[{"custom_id":"p1","payments":{"captures":[{
					"id":"CAP1","status":"COMPLETED","amount":{"currency_code":"USD","value":"11.00"},
					"create_time":"2024-06-01T10:00:00Z",
					"seller_receivable_breakdown":{"paypal_fee":{"currency_code":"USD","value":"0.87"}}
				}]}}]
			}`)
		},
	})

	c, err := gw.CapturePayment(context.Background(), "ORDER1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.CaptureID != "CAP1" || c.OrderID != "ORDER1" || c.Status != entities.CaptureStatusCompleted {
		t.Fatalf("unexpected capture: %+v", c)
	}
	if c.ProjectID != "p1" {
		t.Fatalf("expected project from purchase unit custom_id, got %q", c.ProjectID)
	}
	if c.PayerEmail != "john@example.com" || c.PayerName != "John Doe" {
		t.Fatalf("unexpected payer: %+v", c)
	}
	if !c.Amount.Equal(decimal.NewFromInt(11)) || !c.ProcessorFee.Equal(decimal.RequireFromString("0.87")) || c.CapturedAt.IsZero() {
		t.Fatalf("unexpected money fields: %+v", c)
	}
}

func TestPayPalGateway_APIError(t *testing.T) {
	gw := newPayPalTestServer(t, map[string]http.HandlerFunc{
		"/v2/payments/captures/CAP1/refund": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"name":"CAPTURE_FULLY_REFUNDED","message":"already refunded","debug_id":"dbg"}`)
		},
	})

	_, err := gw.RefundCapture(context.Background(), "CAP1")
	var apiErr *PayPalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected PayPalAPIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity || apiErr.Name != "CAPTURE_FULLY_REFUNDED" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestPayPalGateway_RefundAndPayout(t *testing.T) {
	gw := newPayPalTestServer(t, map[string]http.HandlerFunc{
		"/v2/payments/captures/CAP1/refund": func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("PayPal-Request-Id") != "CAP1" {
				t.Fatalf("refund must be keyed by capture id")
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"REF1","status":"COMPLETED"}`)
		},
		"/v1/payments/payouts": func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Header map[string]string `json:"sender_batch_header"`
				Items  []struct {
					Amount       map[string]string `json:"amount"`
					SenderItemID string            `json:"sender_item_id"`
					Receiver     string            `json:"receiver"`
				} `json:"items"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Header["sender_batch_id"] != "batch1" || body.Header["recipient_type"] != "EMAIL" {
				t.Fatalf("unexpected header: %+v", body.Header)
			}
			if len(body.Items) != 1 || body.Items[0].Amount["value"] != "3.20" || body.Items[0].Receiver != "a@example.com" || body.Items[0].SenderItemID != "o1" {
				t.Fatalf("unexpected items: %+v", body.Items)
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"batch_header":{"payout_batch_id":"PB1","batch_status":"PENDING"}}`)
		},
	})

	ref, err := gw.RefundCapture(context.Background(), "CAP1")
	if err != nil || ref.ID != "REF1" || ref.CaptureID != "CAP1" {
		t.Fatalf("unexpected refund %+v err=%v", ref, err)
	}

	batch, err := gw.Payout(context.Background(), "batch1", []entities.PayoutItem{{ItemID: "o1", Receiver: "a@example.com", Amount: decimal.RequireFromString("3.2")}})
	if err != nil || batch.ProviderID != "PB1" || batch.BatchID != "batch1" || batch.Status != "PENDING" {
		t.Fatalf("unexpected batch %+v err=%v", batch, err)
	}
}

func TestPayPalGateway_GetCapture(t *testing.T) {
	gw := newPayPalTestServer(t, map[string]http.HandlerFunc{
		"/v2/payments/captures/CAP1": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Fatalf("unexpected method %s", r.Method)
			}
			_, _ = io.WriteString(w, `{"id":"CAP1","status":"REFUNDED","custom_id":"p2","amount":{"value":"32.00"},"seller_receivable_breakdown":{"paypal_fee":{"value":"1.42"}}}`)
		},
	})

	c, err := gw.GetCapture(context.Background(), "CAP1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !c.ProcessorFee.Equal(decimal.RequireFromString("1.42")) || !c.Amount.Equal(decimal.NewFromInt(32)) || c.ProjectID != "p2" {
		t.Fatalf("unexpected capture: %+v", c)
	}
}

func TestMockProcessor(t *testing.T) {
	ctx := context.Background()
	m := NewMockProcessor()

	order, err := m.CreateOrder(ctx, entities.OrderRequest{ProjectID: "p1", Amount: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	c, err := m.CapturePayment(ctx, order.ID)
	if err != nil || c.Status != entities.CaptureStatusCompleted || !c.Amount.Equal(decimal.NewFromInt(10)) || c.ProjectID != "p1" {
		t.Fatalf("unexpected capture %+v err=%v", c, err)
	}
	again, _ := m.CapturePayment(ctx, order.ID)
	if again.CaptureID != c.CaptureID {
		t.Fatalf("capture must be idempotent per order")
	}
	if !c.ProcessorFee.Equal(decimal.RequireFromString("0.84")) {
		t.Fatalf("unexpected fee %s", c.ProcessorFee)
	}

	r1, _ := m.RefundCapture(ctx, c.CaptureID)
	r2, _ := m.RefundCapture(ctx, c.CaptureID)
	if r1.ID == "" || r1.ID != r2.ID {
		t.Fatalf("refund must be idempotent per capture: %+v %+v", r1, r2)
	}
	if _, err := m.CapturePayment(ctx, "missing"); err == nil {
		t.Fatalf("expected error for unknown order")
	}
}
