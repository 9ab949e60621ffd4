package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// payoutNamespace scopes deterministic payout batch ids.
var payoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dominant-assurance/payouts"))

type RefundSweepResult struct {
	RefundID   string
	CaptureIDs []string
}

type BonusSweepResult struct {
	BatchID  string
	OrderIDs []string
}

// ISweepUseCase settles a failed project: every capture is refunded and every
// bonus is paid out, each one exactly once.
type ISweepUseCase interface {
	RefundSweep(ctx context.Context, projectID string) (RefundSweepResult, error)
	BonusSweep(ctx context.Context, projectID string) (BonusSweepResult, error)
	RunAll(ctx context.Context, projectIDs []string)
}

type SweepUseCase struct {
	projects     IProjectUseCase
	projectStore interfaces.IProjectRepository
	ledger       ILedgerUseCase
	processor    interfaces.IPaymentProcessor
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(projects IProjectUseCase, projectStore interfaces.IProjectRepository, ledger ILedgerUseCase, processor interfaces.IPaymentProcessor) *SweepUseCase {
	return &SweepUseCase{projects: projects, projectStore: projectStore, ledger: ledger, processor: processor}
}

// BonusBatchID derives the payout batch id from the order ids being paid, so a
// retried sweep of the same set reuses the id and the processor rejects the duplicate.
func BonusBatchID(projectID string, orderIDs []string) string {
	sorted := append([]string(nil), orderIDs...)
	sort.Strings(sorted)
	name := projectID + ":" + strings.Join(sorted, ",")
	return strings.ReplaceAll(uuid.NewSHA1(payoutNamespace, []byte(name)).String(), "-", "")
}

func (u *SweepUseCase) RefundSweep(ctx context.Context, projectID string) (RefundSweepResult, error) {
	if u.processor == nil {
		return RefundSweepResult{}, ErrProcessorMissing
	}
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return RefundSweepResult{}, err
	}
	captureIDs, err := u.ledger.ListRefundEligibleCaptures(ctx, project.ID, project)
	if err != nil {
		return RefundSweepResult{}, err
	}

	res := RefundSweepResult{RefundID: uuid.NewString()}
	log.Printf("[sweep][usecase] refund start project_id=%s refund_id=%s captures=%d", project.ID, res.RefundID, len(captureIDs))
	for _, captureID := range captureIDs {
		refund, err := u.processor.RefundCapture(ctx, captureID)
		if err != nil {
			log.Printf("[sweep][usecase] refund failed project_id=%s capture_id=%s err=%v", project.ID, captureID, err)
			return res, fmt.Errorf("%w: refund capture %s: %w", ErrUpstream, captureID, err)
		}
		if err := u.ledger.SettleRefund(ctx, project.ID, captureID); err != nil {
			return res, err
		}
		res.CaptureIDs = append(res.CaptureIDs, captureID)
		log.Printf("[sweep][usecase] refund settled project_id=%s capture_id=%s provider_refund_id=%s", project.ID, captureID, refund.ID)
	}
	return res, nil
}

func (u *SweepUseCase) BonusSweep(ctx context.Context, projectID string) (BonusSweepResult, error) {
	if u.processor == nil {
		return BonusSweepResult{}, ErrProcessorMissing
	}
	project, err := u.projects.Get(ctx, projectID)
	if err != nil {
		return BonusSweepResult{}, err
	}
	pending, err := u.ledger.ListPendingBonuses(ctx, project.ID, project)
	if err != nil {
		return BonusSweepResult{}, err
	}

	orderIDs := make([]string, 0, len(pending))
	for orderID := range pending {
		orderIDs = append(orderIDs, orderID)
	}
	sort.Strings(orderIDs)

	items := make([]entities.PayoutItem, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		b := pending[orderID]
		items = append(items, entities.PayoutItem{ItemID: orderID, Receiver: b.Email, Amount: b.Amount})
	}

	res := BonusSweepResult{BatchID: BonusBatchID(project.ID, orderIDs)}
	batch, err := u.processor.Payout(ctx, res.BatchID, items)
	if err != nil {
		log.Printf("[sweep][usecase] payout failed project_id=%s batch_id=%s err=%v", project.ID, res.BatchID, err)
		return BonusSweepResult{}, fmt.Errorf("%w: payout %s: %w", ErrUpstream, res.BatchID, err)
	}
	log.Printf("[sweep][usecase] payout accepted project_id=%s batch_id=%s provider_batch_id=%s status=%s", project.ID, res.BatchID, batch.ProviderID, batch.Status)

	for _, orderID := range orderIDs {
		if err := u.ledger.SettleBonus(ctx, project.ID, orderID); err != nil {
			return res, err
		}
		res.OrderIDs = append(res.OrderIDs, orderID)
	}
	return res, nil
}

// RunAll sweeps every listed project, or every stored project when the list
// is empty. Not-found results mean there is nothing to do yet.
func (u *SweepUseCase) RunAll(ctx context.Context, projectIDs []string) {
	if len(projectIDs) == 0 && u.projectStore != nil {
		ids, err := u.projectStore.ListIDs(ctx)
		if err != nil {
			log.Printf("[sweep][usecase] list projects failed err=%v", err)
			return
		}
		projectIDs = ids
	}
	for _, projectID := range projectIDs {
		if _, err := u.RefundSweep(ctx, projectID); err != nil {
			logSweepResult("refund", projectID, err)
		}
		if _, err := u.BonusSweep(ctx, projectID); err != nil {
			logSweepResult("bonus", projectID, err)
		}
	}
}

func logSweepResult(kind, projectID string, err error) {
	if errors.Is(err, ErrNotFound) {
		log.Printf("[sweep][usecase] %s nothing to do project_id=%s reason=%q", kind, projectID, Reason(err))
		return
	}
	log.Printf("[sweep][usecase] %s sweep failed project_id=%s err=%v", kind, projectID, err)
}
