package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PledgeBonus is the extra paid back to a pledger when the project fails.
// Amount is frozen at capture time.
type PledgeBonus struct {
	Amount   decimal.Decimal
	Refunded bool
}

// PledgeRecord is one captured pledge inside a project's ledger.
//
// Storage model (DynamoDB):
//   - PK: project_id
//   - SK: order_id
//
// OrderID is the idempotency key: a second write with the same OrderID is ignored.
// Only Refunded and Bonus.Refunded change after creation.
type PledgeRecord struct {
	OrderID       string
	ReturnAddress string
	CaptureID     string
	Amount        decimal.Decimal
	ProcessorFee  decimal.Decimal
	Name          string
	Time          time.Time
	Refunded      bool
	Bonus         PledgeBonus
	Seq           int
}

// PledgeInput carries the fields supplied when a capture succeeds.
type PledgeInput struct {
	ReturnAddress      string
	CaptureID          string
	Amount             decimal.Decimal
	ProcessorFee       decimal.Decimal
	Name               string
	RefundBonusPercent decimal.Decimal
	Time               time.Time
}

// PublicOrder is the anonymised view of a pledge shown on the project page.
type PublicOrder struct {
	Time   time.Time
	Name   string
	Amount decimal.Decimal
}

type LedgerSummary struct {
	Amount decimal.Decimal
	Orders []PublicOrder
}

type PendingBonus struct {
	Email  string
	Amount decimal.Decimal
}

type InvoiceLine struct {
	Time         time.Time
	Name         string
	Amount       decimal.Decimal
	ProcessorFee decimal.Decimal
}

type SuccessInvoice struct {
	Lines      []InvoiceLine
	AuthorName string
}

// ComputeBonus returns amount * percent / 100 rounded to cents.
func ComputeBonus(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}

// AnonymizeName keeps the given names and reduces the surname to an initial:
// "John Doe" -> "John D.".
func AnonymizeName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return strings.Join(parts, " ")
	}
	last := []rune(parts[len(parts)-1])
	return strings.Join(parts[:len(parts)-1], " ") + " " + strings.ToUpper(string(last[0])) + "."
}
