package response

import (
	"dominant_assurance/internal/domain/entities"
)

type OrderDTO struct {
	Time   string  `json:"time"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type CounterResponse struct {
	Amount float64    `json:"amount"`
	Orders []OrderDTO `json:"orders"`
}

func FromLedgerSummary(s entities.LedgerSummary) CounterResponse {
	orders := make([]OrderDTO, 0, len(s.Orders))
	for _, o := range s.Orders {
		orders = append(orders, OrderDTO{Time: entities.FormatISOTime(o.Time), Name: o.Name, Amount: o.Amount.InexactFloat64()})
	}
	return CounterResponse{Amount: s.Amount.InexactFloat64(), Orders: orders}
}

type RefundsResponse struct {
	CaptureIDs []string `json:"captureIds"`
}

type BonusDTO struct {
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
}

type BonusesResponse struct {
	Bonuses map[string]BonusDTO `json:"bonuses"`
}

func FromPendingBonuses(bonuses map[string]entities.PendingBonus) BonusesResponse {
	out := make(map[string]BonusDTO, len(bonuses))
	for orderID, b := range bonuses {
		out[orderID] = BonusDTO{Email: b.Email, Amount: b.Amount.InexactFloat64()}
	}
	return BonusesResponse{Bonuses: out}
}

type InvoiceLineDTO struct {
	Time         string  `json:"time"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	ProcessorFee float64 `json:"processorFee"`
}

type SuccessInvoiceResponse struct {
	SuccessInvoice []InvoiceLineDTO `json:"successInvoice"`
	AuthorName     string           `json:"authorName"`
}

func FromSuccessInvoice(inv entities.SuccessInvoice) SuccessInvoiceResponse {
	lines := make([]InvoiceLineDTO, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineDTO{
			Time:         entities.FormatISOTime(l.Time),
			Name:         l.Name,
			Amount:       l.Amount.InexactFloat64(),
			ProcessorFee: l.ProcessorFee.InexactFloat64(),
		})
	}
	return SuccessInvoiceResponse{SuccessInvoice: lines, AuthorName: inv.AuthorName}
}
