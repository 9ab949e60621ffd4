package response

import (
	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase"
)

type OrderResponse struct {
	ID     string               `json:"id"`
	Status string               `json:"status"`
	Links  []entities.OrderLink `json:"links"`
}

func FromOrder(o entities.Order) OrderResponse {
	links := o.Links
	if links == nil {
		links = []entities.OrderLink{}
	}
	return OrderResponse{ID: o.ID, Status: o.Status, Links: links}
}

// CaptureResponse is the capture summary returned to the pledger; the payer
// email stays server side.
type CaptureResponse struct {
	OrderID      string  `json:"orderId"`
	CaptureID    string  `json:"captureId"`
	Status       string  `json:"status"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	ProcessorFee float64 `json:"processorFee"`
	Time         string  `json:"time,omitempty"`
}

func FromCapture(c entities.Capture) CaptureResponse {
	out := CaptureResponse{
		OrderID:      c.OrderID,
		CaptureID:    c.CaptureID,
		Status:       c.Status,
		Name:         entities.AnonymizeName(c.PayerName),
		Amount:       c.Amount.InexactFloat64(),
		ProcessorFee: c.ProcessorFee.InexactFloat64(),
	}
	if !c.CapturedAt.IsZero() {
		out.Time = entities.FormatISOTime(c.CapturedAt)
	}
	return out
}

type RefundSweepResponse struct {
	RefundID   string   `json:"refundId"`
	CaptureIDs []string `json:"captureIds"`
}

func FromRefundSweep(r usecase.RefundSweepResult) RefundSweepResponse {
	return RefundSweepResponse{RefundID: r.RefundID, CaptureIDs: r.CaptureIDs}
}

type BonusSweepResponse struct {
	BatchID  string   `json:"batchId"`
	OrderIDs []string `json:"orderIds"`
}

func FromBonusSweep(r usecase.BonusSweepResult) BonusSweepResponse {
	return BonusSweepResponse{BatchID: r.BatchID, OrderIDs: r.OrderIDs}
}

type GrantsResponse struct {
	Grants map[string][]entities.Permission `json:"grants"`
}
