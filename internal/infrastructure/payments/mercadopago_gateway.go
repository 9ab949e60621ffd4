package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMercadoPagoPayoutUnsupported = errors.New("mercado pago does not support email payouts")

// MercadoPagoGateway authorizes a payment on CreateOrder (capture=false) and
// captures it on CapturePayment, so an order id is a Mercado Pago payment id.
type MercadoPagoGateway struct {
	client  payment.Client
	refunds refund.Client
}

var _ interfaces.IPaymentProcessor = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), refunds: refund.NewClient(cfg)}, nil
}

type mercadoPagoPayment struct {
	ID                int     `json:"id"`
	Status            string  `json:"status"`
	TransactionAmount float64 `json:"transaction_amount"`
	DateApproved      string  `json:"date_approved"`
	DateCreated       string  `json:"date_created"`
	ExternalReference string  `json:"external_reference"`
	Payer             struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"payer"`
	FeeDetails []struct {
		Amount float64 `json:"amount"`
	} `json:"fee_details"`
}

func (g *MercadoPagoGateway) ready() error {
	if g == nil || g.client == nil {
		log.Printf("[payment][mercadopago] gateway not configured")
		return ErrMercadoPagoGatewayNotConfigured
	}
	return nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (entities.Order, error) {
	if err := g.ready(); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[payment][mercadopago] create start project_id=%s payload_len=%d", req.ProjectID, len(req.Payload))

	body := map[string]any{}
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &body); err != nil {
			log.Printf("[payment][mercadopago] payload unmarshal failed err=%v", err)
			return entities.Order{}, err
		}
	}
	body["transaction_amount"] = req.Amount.InexactFloat64()
	body["description"] = req.Description
	body["external_reference"] = req.ProjectID
	body["capture"] = false

	b, err := json.Marshal(body)
	if err != nil {
		return entities.Order{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(b, &sdkReq); err != nil {
		log.Printf("[payment][mercadopago] request build failed err=%v", err)
		return entities.Order{}, err
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create failed err=%v", err)
		return entities.Order{}, err
	}
	log.Printf("[payment][mercadopago] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return entities.Order{ID: strconv.Itoa(resp.ID), Status: resp.Status}, nil
}

func (g *MercadoPagoGateway) CapturePayment(ctx context.Context, orderID string) (entities.Capture, error) {
	if err := g.ready(); err != nil {
		return entities.Capture{}, err
	}
	id, err := parseMercadoPagoID(orderID)
	if err != nil {
		return entities.Capture{}, err
	}
	resp, err := g.client.Capture(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk capture failed order_id=%s err=%v", orderID, err)
		return entities.Capture{}, err
	}
	c, err := fromMercadoPago(resp)
	if err != nil {
		return entities.Capture{}, err
	}
	c.OrderID = orderID
	log.Printf("[payment][mercadopago] capture success order_id=%s status=%s", orderID, c.Status)
	return c, nil
}

func (g *MercadoPagoGateway) RefundCapture(ctx context.Context, captureID string) (entities.Refund, error) {
	if err := g.ready(); err != nil {
		return entities.Refund{}, err
	}
	id, err := parseMercadoPagoID(captureID)
	if err != nil {
		return entities.Refund{}, err
	}
	resp, err := g.refunds.Create(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk refund failed capture_id=%s err=%v", captureID, err)
		return entities.Refund{}, err
	}
	log.Printf("[payment][mercadopago] refund success capture_id=%s refund_id=%d status=%s", captureID, resp.ID, resp.Status)
	return entities.Refund{ID: strconv.Itoa(resp.ID), CaptureID: captureID, Status: resp.Status}, nil
}

func (g *MercadoPagoGateway) Payout(_ context.Context, batchID string, items []entities.PayoutItem) (entities.PayoutBatch, error) {
	log.Printf("[payment][mercadopago] payout rejected batch_id=%s items=%d", batchID, len(items))
	return entities.PayoutBatch{}, ErrMercadoPagoPayoutUnsupported
}

func (g *MercadoPagoGateway) GetCapture(ctx context.Context, captureID string) (entities.Capture, error) {
	if err := g.ready(); err != nil {
		return entities.Capture{}, err
	}
	id, err := parseMercadoPagoID(captureID)
	if err != nil {
		return entities.Capture{}, err
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		return entities.Capture{}, err
	}
	return fromMercadoPago(resp)
}

func parseMercadoPagoID(id string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return 0, fmt.Errorf("mercadopago: invalid payment id %q", id)
	}
	return n, nil
}

// fromMercadoPago goes through JSON so only the documented wire fields are read.
func fromMercadoPago(resp any) (entities.Capture, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][mercadopago] response marshal failed err=%v", err)
		return entities.Capture{}, err
	}
	var p mercadoPagoPayment
	if err := json.Unmarshal(b, &p); err != nil {
		return entities.Capture{}, err
	}

	fee := decimal.Zero
	for _, f := range p.FeeDetails {
		fee = fee.Add(decimal.NewFromFloat(f.Amount))
	}
	status := p.Status
	if strings.EqualFold(status, "approved") {
		status = entities.CaptureStatusCompleted
	}
	at, _ := time.Parse(time.RFC3339Nano, p.DateApproved)
	if at.IsZero() {
		at, _ = time.Parse(time.RFC3339Nano, p.DateCreated)
	}
	return entities.Capture{
		ProjectID:    p.ExternalReference,
		CaptureID:    strconv.Itoa(p.ID),
		Status:       status,
		PayerEmail:   p.Payer.Email,
		PayerName:    strings.TrimSpace(p.Payer.FirstName + " " + p.Payer.LastName),
		Amount:       decimal.NewFromFloat(p.TransactionAmount).Round(2),
		ProcessorFee: fee.Round(2),
		CapturedAt:   at,
	}, nil
}
