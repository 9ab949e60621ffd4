package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"
)

const (
	EventPledgeRecorded = "pledge.recorded"
	EventRefundSettled  = "refund.settled"
	EventBonusSettled   = "bonus.settled"
)

// LedgerEvent is the body published after a committed ledger mutation.
type LedgerEvent struct {
	Type       string    `json:"type"`
	ProjectID  string    `json:"projectId"`
	OrderID    string    `json:"orderId,omitempty"`
	CaptureID  string    `json:"captureId,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func publishLedgerEvent(ctx context.Context, publisher interfaces.IEventPublisher, ev LedgerEvent) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[ledger][events] marshal failed type=%s project_id=%s err=%v", ev.Type, ev.ProjectID, err)
		return
	}
	if err := publisher.Publish(ctx, ev.Type, body); err != nil {
		log.Printf("[ledger][events] publish failed type=%s project_id=%s err=%v", ev.Type, ev.ProjectID, err)
	}
}

func pledgeRecordedEvent(projectID string, rec entities.PledgeRecord, at time.Time) LedgerEvent {
	return LedgerEvent{
		Type:       EventPledgeRecorded,
		ProjectID:  projectID,
		OrderID:    rec.OrderID,
		CaptureID:  rec.CaptureID,
		Amount:     rec.Amount.StringFixed(2),
		OccurredAt: at.UTC(),
	}
}
