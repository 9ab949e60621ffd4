package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest asks the processor to open a checkout for a pledge.
//
// Payload is forwarded as-is to processors that need client-side data
// (e.g. a Mercado Pago card token); PayPal ignores it.
type OrderRequest struct {
	ProjectID   string
	Amount      decimal.Decimal
	Description string
	Payload     json.RawMessage
}

type OrderLink struct {
	Href   string `json:"href"`
	Method string `json:"method"`
	Rel    string `json:"rel"`
}

type Order struct {
	ID     string
	Status string
	Links  []OrderLink
}

// CaptureStatusCompleted is the normalised status of a successful capture.
const CaptureStatusCompleted = "COMPLETED"

// Capture is the processor's confirmation that funds were collected.
type Capture struct {
	// ProjectID is the project the order was created for, echoed back by the processor.
	ProjectID    string
	OrderID      string
	CaptureID    string
	Status       string
	PayerEmail   string
	PayerName    string
	Amount       decimal.Decimal
	ProcessorFee decimal.Decimal
	CapturedAt   time.Time
}

type Refund struct {
	ID        string
	CaptureID string
	Status    string
}

type PayoutItem struct {
	ItemID   string
	Receiver string
	Amount   decimal.Decimal
}

type PayoutBatch struct {
	BatchID    string
	ProviderID string
	Status     string
}
