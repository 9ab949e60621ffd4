package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	MinPledgeAmount = decimal.NewFromInt(5)
	MaxPledgeAmount = decimal.NewFromInt(500)
)

var (
	ErrPledgeTooSmall      = fmt.Errorf("%w: Pledge may be at least $5", ErrValidation)
	ErrPledgeTooLarge      = fmt.Errorf("%w: Pledge may be at most $500", ErrValidation)
	ErrProjectIsDraft      = fmt.Errorf("%w: project is not published", ErrValidation)
	ErrProjectClosed       = fmt.Errorf("%w: funding deadline has passed", ErrValidation)
	ErrCaptureIncomplete   = fmt.Errorf("%w: capture was not completed", ErrUpstream)
	ErrProcessorMissing    = fmt.Errorf("%w: payment processor not configured", ErrConfiguration)
	ErrInvalidOrderPayload = fmt.Errorf("%w: order payload must be a JSON object", ErrValidation)
	ErrCaptureWrongProject = fmt.Errorf("%w: order belongs to another project", ErrValidation)
)

// IContractUseCase drives a pledge through the processor and into the ledger.
//
//	CreateOrder -> payer approves with the processor -> CapturePledge -> ledger RecordPledge
type IContractUseCase interface {
	CreateOrder(ctx context.Context, projectID string, amount decimal.Decimal, payload json.RawMessage) (entities.Order, error)
	CapturePledge(ctx context.Context, projectID, orderID string) (entities.Capture, error)
	RefundEligibleCaptures(ctx context.Context, projectID string) ([]string, error)
	PendingBonuses(ctx context.Context, projectID string) (map[string]entities.PendingBonus, error)
	SuccessInvoice(ctx context.Context, projectID string) (entities.SuccessInvoice, error)
}

type ContractUseCase struct {
	projects  IProjectUseCase
	ledger    ILedgerUseCase
	processor interfaces.IPaymentProcessor
	now       func() time.Time
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(projects IProjectUseCase, ledger ILedgerUseCase, processor interfaces.IPaymentProcessor) *ContractUseCase {
	return &ContractUseCase{projects: projects, ledger: ledger, processor: processor, now: time.Now}
}

func (u *ContractUseCase) WithClock(now func() time.Time) *ContractUseCase {
	u.now = now
	return u
}

// ValidatePledgeAmount rounds to cents and checks the accepted range.
func ValidatePledgeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = amount.Round(2)
	if amount.LessThan(MinPledgeAmount) {
		return amount, ErrPledgeTooSmall
	}
	if amount.GreaterThan(MaxPledgeAmount) {
		return amount, ErrPledgeTooLarge
	}
	return amount, nil
}

func (u *ContractUseCase) CreateOrder(ctx context.Context, projectID string, amount decimal.Decimal, payload json.RawMessage) (entities.Order, error) {
	log.Printf("[contract][usecase] create-order start project_id=%s amount=%s payload_len=%d", projectID, amount.String(), len(payload))
	amount, err := ValidatePledgeAmount(amount)
	if err != nil {
		log.Printf("[contract][usecase] invalid amount project_id=%s amount=%s", projectID, amount.StringFixed(2))
		return entities.Order{}, err
	}
	if len(payload) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(payload, &obj); err != nil {
			return entities.Order{}, ErrInvalidOrderPayload
		}
	}
	if u.processor == nil {
		return entities.Order{}, ErrProcessorMissing
	}

	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return entities.Order{}, err
	}
	if project.IsDraft {
		return entities.Order{}, ErrProjectIsDraft
	}
	if !u.now().Before(project.FundingDeadline) {
		log.Printf("[contract][usecase] project closed project_id=%s deadline=%s", projectID, entities.FormatISOTime(project.FundingDeadline))
		return entities.Order{}, ErrProjectClosed
	}

	description := strings.TrimSpace(project.FormHeading)
	if description == "" {
		description = fmt.Sprintf("Pledge to project %s", project.ID)
	}
	order, err := u.processor.CreateOrder(ctx, entities.OrderRequest{
		ProjectID:   project.ID,
		Amount:      amount,
		Description: description,
		Payload:     payload,
	})
	if err != nil {
		log.Printf("[contract][usecase] processor create-order failed project_id=%s err=%v", projectID, err)
		return entities.Order{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	log.Printf("[contract][usecase] create-order success project_id=%s order_id=%s status=%s", projectID, order.ID, order.Status)
	return order, nil
}

func (u *ContractUseCase) CapturePledge(ctx context.Context, projectID, orderID string) (entities.Capture, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Capture{}, ErrInvalidOrderID
	}
	if u.processor == nil {
		return entities.Capture{}, ErrProcessorMissing
	}
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return entities.Capture{}, err
	}

	capture, err := u.processor.CapturePayment(ctx, orderID)
	if err != nil {
		log.Printf("[contract][usecase] processor capture failed project_id=%s order_id=%s err=%v", projectID, orderID, err)
		return entities.Capture{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if capture.CaptureID == "" || !capture.Amount.IsPositive() || !strings.EqualFold(capture.Status, entities.CaptureStatusCompleted) {
		log.Printf("[contract][usecase] capture incomplete project_id=%s order_id=%s status=%s", projectID, orderID, capture.Status)
		return entities.Capture{}, ErrCaptureIncomplete
	}
	if capture.ProjectID != project.ID {
		log.Printf("[contract][usecase] capture project mismatch project_id=%s order_project_id=%q order_id=%s", projectID, capture.ProjectID, orderID)
		return entities.Capture{}, ErrCaptureWrongProject
	}

	at := capture.CapturedAt
	if at.IsZero() {
		at = u.now()
	}
	err = u.ledger.RecordPledge(ctx, project.ID, orderID, entities.PledgeInput{
		ReturnAddress:      capture.PayerEmail,
		CaptureID:          capture.CaptureID,
		Amount:             capture.Amount,
		ProcessorFee:       capture.ProcessorFee,
		Name:               capture.PayerName,
		RefundBonusPercent: project.RefundBonusPercent,
		Time:               at,
	})
	if err != nil {
		log.Printf("[contract][usecase] record-pledge failed project_id=%s order_id=%s capture_id=%s err=%v", projectID, orderID, capture.CaptureID, err)
		return entities.Capture{}, err
	}
	log.Printf("[contract][usecase] capture success project_id=%s order_id=%s capture_id=%s amount=%s", projectID, orderID, capture.CaptureID, capture.Amount.StringFixed(2))
	return capture, nil
}

func (u *ContractUseCase) RefundEligibleCaptures(ctx context.Context, projectID string) ([]string, error) {
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.ledger.ListRefundEligibleCaptures(ctx, project.ID, project)
}

func (u *ContractUseCase) PendingBonuses(ctx context.Context, projectID string) (map[string]entities.PendingBonus, error) {
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.ledger.ListPendingBonuses(ctx, project.ID, project)
}

func (u *ContractUseCase) SuccessInvoice(ctx context.Context, projectID string) (entities.SuccessInvoice, error) {
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return entities.SuccessInvoice{}, err
	}
	return u.ledger.GetSuccessInvoice(ctx, project.ID, project)
}
