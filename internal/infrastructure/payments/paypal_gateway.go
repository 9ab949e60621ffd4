package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	paypalCurrency     = "USD"
	paypalEmailSubject = "Thank you for backing us"
	paypalEmailMessage = "We did not reach our funding goal. Your pledge was refunded and this is a little extra for supporting us."
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_APP_SECRET")

// PayPalAPIError is a non-2xx answer from the PayPal REST API.
type PayPalAPIError struct {
	StatusCode int
	Name       string `json:"name"`
	Message    string `json:"message"`
	DebugID    string `json:"debug_id"`
}

func (e *PayPalAPIError) Error() string {
	return fmt.Sprintf("paypal: status=%d name=%s message=%s debug_id=%s", e.StatusCode, e.Name, e.Message, e.DebugID)
}

// PayPalGateway implements IPaymentProcessor with the Orders v2, Payments v2
// and Payouts v1 APIs. Access tokens come from the client-credentials grant
// and are cached and refreshed by the oauth2 transport.
type PayPalGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPaymentProcessor = (*PayPalGateway)(nil)

func NewPayPalGateway(ctx context.Context, baseURL, clientID, appSecret string) (*PayPalGateway, error) {
	if clientID == "" || appSecret == "" {
		log.Printf("[payment][paypal] missing credentials")
		return nil, ErrMissingPayPalCredentials
	}
	baseURL = strings.TrimRight(baseURL, "/")
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: appSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	log.Printf("[payment][paypal] client initialized base_url=%s", baseURL)
	return &PayPalGateway{baseURL: baseURL, client: cc.Client(ctx)}, nil
}

type paypalMoney struct {
	CurrencyCode string `json:"currency_code,omitempty"`
	Value        string `json:"value"`
}

type paypalName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type paypalBreakdown struct {
	PayPalFee paypalMoney `json:"paypal_fee"`
}

type paypalCapture struct {
	ID                        string          `json:"id"`
	Status                    string          `json:"status"`
	CustomID                  string          `json:"custom_id"`
	Amount                    paypalMoney     `json:"amount"`
	CreateTime                string          `json:"create_time"`
	SellerReceivableBreakdown paypalBreakdown `json:"seller_receivable_breakdown"`
}

type paypalCaptureOrderResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentSource struct {
		PayPal struct {
			EmailAddress string     `json:"email_address"`
			Name         paypalName `json:"name"`
		} `json:"paypal"`
	} `json:"payment_source"`
	Payer struct {
		EmailAddress string     `json:"email_address"`
		Name         paypalName `json:"name"`
	} `json:"payer"`
	PurchaseUnits []struct {
		CustomID string `json:"custom_id"`
		Payments struct {
			Captures []paypalCapture `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	body := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"amount":      paypalMoney{CurrencyCode: paypalCurrency, Value: req.Amount.StringFixed(2)},
			"description": req.Description,
			"custom_id":   req.ProjectID,
		}},
	}
	var out struct {
		ID     string               `json:"id"`
		Status string               `json:"status"`
		Links  []entities.OrderLink `json:"links"`
	}
	if err := g.do(ctx, http.MethodPost, "/v2/checkout/orders", body, nil, &out); err != nil {
		log.Printf("[payment][paypal] create-order failed project_id=%s err=%v", req.ProjectID, err)
		return entities.Order{}, err
	}
	log.Printf("[payment][paypal] create-order success order_id=%s status=%s", out.ID, out.Status)
	return entities.Order{ID: out.ID, Status: out.Status, Links: out.Links}, nil
}

func (g *PayPalGateway) CapturePayment(ctx context.Context, orderID string) (entities.Capture, error) {
	var out paypalCaptureOrderResponse
	headers := map[string]string{"PayPal-Request-Id": "capture-" + orderID}
	if err := g.do(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", nil, headers, &out); err != nil {
		log.Printf("[payment][paypal] capture failed order_id=%s err=%v", orderID, err)
		return entities.Capture{}, err
	}
	if len(out.PurchaseUnits) == 0 || len(out.PurchaseUnits[0].Payments.Captures) == 0 {
		return entities.Capture{}, fmt.Errorf("paypal: order %s has no capture", orderID)
	}
	c, err := fromPayPalCapture(out.PurchaseUnits[0].Payments.Captures[0])
	if err != nil {
		return entities.Capture{}, err
	}
	c.OrderID = orderID
	if c.ProjectID == "" {
		c.ProjectID = out.PurchaseUnits[0].CustomID
	}

	email, name := out.PaymentSource.PayPal.EmailAddress, out.PaymentSource.PayPal.Name
	if email == "" {
		email, name = out.Payer.EmailAddress, out.Payer.Name
	}
	c.PayerEmail = email
	c.PayerName = strings.TrimSpace(name.GivenName + " " + name.Surname)
	// Sandbox captures can omit the per-capture status; the order status decides.
	if c.Status == "" {
		c.Status = out.Status
	}
	log.Printf("[payment][paypal] capture success order_id=%s capture_id=%s status=%s", orderID, c.CaptureID, c.Status)
	return c, nil
}

func (g *PayPalGateway) RefundCapture(ctx context.Context, captureID string) (entities.Refund, error) {
	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	headers := map[string]string{"PayPal-Request-Id": captureID}
	if err := g.do(ctx, http.MethodPost, "/v2/payments/captures/"+captureID+"/refund", map[string]any{}, headers, &out); err != nil {
		log.Printf("[payment][paypal] refund failed capture_id=%s err=%v", captureID, err)
		return entities.Refund{}, err
	}
	log.Printf("[payment][paypal] refund success capture_id=%s refund_id=%s status=%s", captureID, out.ID, out.Status)
	return entities.Refund{ID: out.ID, CaptureID: captureID, Status: out.Status}, nil
}

func (g *PayPalGateway) Payout(ctx context.Context, batchID string, items []entities.PayoutItem) (entities.PayoutBatch, error) {
	payoutItems := make([]map[string]any, 0, len(items))
	for _, it := range items {
		payoutItems = append(payoutItems, map[string]any{
			"amount":           map[string]string{"value": it.Amount.StringFixed(2), "currency": paypalCurrency},
			"sender_item_id":   it.ItemID,
			"recipient_wallet": "PAYPAL",
			"receiver":         it.Receiver,
		})
	}
	body := map[string]any{
		"sender_batch_header": map[string]string{
			"sender_batch_id": batchID,
			"recipient_type":  "EMAIL",
			"email_subject":   paypalEmailSubject,
			"email_message":   paypalEmailMessage,
		},
		"items": payoutItems,
	}
	var out struct {
		BatchHeader struct {
			PayoutBatchID string `json:"payout_batch_id"`
			BatchStatus   string `json:"batch_status"`
		} `json:"batch_header"`
	}
	if err := g.do(ctx, http.MethodPost, "/v1/payments/payouts", body, nil, &out); err != nil {
		log.Printf("[payment][paypal] payout failed batch_id=%s items=%d err=%v", batchID, len(items), err)
		return entities.PayoutBatch{}, err
	}
	log.Printf("[payment][paypal] payout accepted batch_id=%s payout_batch_id=%s status=%s", batchID, out.BatchHeader.PayoutBatchID, out.BatchHeader.BatchStatus)
	return entities.PayoutBatch{BatchID: batchID, ProviderID: out.BatchHeader.PayoutBatchID, Status: out.BatchHeader.BatchStatus}, nil
}

func (g *PayPalGateway) GetCapture(ctx context.Context, captureID string) (entities.Capture, error) {
	var out paypalCapture
	if err := g.do(ctx, http.MethodGet, "/v2/payments/captures/"+captureID, nil, nil, &out); err != nil {
		return entities.Capture{}, err
	}
	return fromPayPalCapture(out)
}

func fromPayPalCapture(pc paypalCapture) (entities.Capture, error) {
	amount, err := decimal.NewFromString(pc.Amount.Value)
	if err != nil {
		return entities.Capture{}, fmt.Errorf("paypal: capture %s amount %q: %w", pc.ID, pc.Amount.Value, err)
	}
	fee := decimal.Zero
	if v := pc.SellerReceivableBreakdown.PayPalFee.Value; v != "" {
		if fee, err = decimal.NewFromString(v); err != nil {
			return entities.Capture{}, fmt.Errorf("paypal: capture %s fee %q: %w", pc.ID, v, err)
		}
	}
	var at time.Time
	if pc.CreateTime != "" {
		at, _ = time.Parse(time.RFC3339, pc.CreateTime)
	}
	return entities.Capture{
		ProjectID:    pc.CustomID,
		CaptureID:    pc.ID,
		Status:       pc.Status,
		Amount:       amount,
		ProcessorFee: fee,
		CapturedAt:   at,
	}, nil
}

func (g *PayPalGateway) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &PayPalAPIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
