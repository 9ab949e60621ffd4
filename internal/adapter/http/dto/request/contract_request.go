package request

import (
	"github.com/shopspring/decimal"
)

// CreateContractRequest is the public pledge form. Other fields in the body
// are forwarded to the processor untouched.
type CreateContractRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}
