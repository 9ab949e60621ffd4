package request

import (
	"errors"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidPledgeTime = errors.New("invalid pledge time")

// RecordPledgeRequest is the internal ledger write body.
type RecordPledgeRequest struct {
	ReturnAddress      string           `json:"returnAddress"`
	CaptureID          string           `json:"captureId"`
	Amount             decimal.Decimal  `json:"amount"`
	ProcessorFee       decimal.Decimal  `json:"processorFee"`
	Name               string           `json:"name"`
	RefundBonusPercent *decimal.Decimal `json:"refundBonusPercent"`
	Time               string           `json:"time"`
}

func (r RecordPledgeRequest) ToInput() (entities.PledgeInput, error) {
	in := entities.PledgeInput{
		ReturnAddress:      strings.TrimSpace(r.ReturnAddress),
		CaptureID:          strings.TrimSpace(r.CaptureID),
		Amount:             r.Amount,
		ProcessorFee:       r.ProcessorFee,
		Name:               r.Name,
		RefundBonusPercent: decimal.NewFromInt(entities.DefaultRefundBonusPercent),
	}
	if r.RefundBonusPercent != nil {
		in.RefundBonusPercent = *r.RefundBonusPercent
	}
	if v := strings.TrimSpace(r.Time); v != "" {
		at, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return entities.PledgeInput{}, ErrInvalidPledgeTime
		}
		in.Time = at
	}
	return in, nil
}
