package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/domain/funding"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/sasha-s/go-deadlock"
	"github.com/shopspring/decimal"
)

// CurrentLedgerSchemaVersion is the layout every ledger is migrated to before use.
//
//	v1: bonus and seq on every record
//	v2: processorFee backfilled from the processor
const CurrentLedgerSchemaVersion = 2

var (
	ErrInvalidOrderID      = fmt.Errorf("%w: order id is required", ErrValidation)
	ErrInvalidCaptureID    = fmt.Errorf("%w: capture id is required", ErrValidation)
	ErrPledgeNotFound      = fmt.Errorf("%w: pledge not found or already settled", ErrNotFound)
	ErrRefundsUnavailable  = fmt.Errorf("%w: refunds are not available for this project", ErrNotFound)
	ErrNoPendingRefunds    = fmt.Errorf("%w: no refunds pending", ErrNotFound)
	ErrBonusesUnavailable  = fmt.Errorf("%w: bonuses are not available for this project", ErrNotFound)
	ErrNoPendingBonuses    = fmt.Errorf("%w: no bonuses pending", ErrNotFound)
	ErrInvoiceUnavailable  = fmt.Errorf("%w: project has not succeeded", ErrNotFound)
	ErrLedgerMigrationFail = fmt.Errorf("%w: ledger migration failed", ErrUpstream)
)

// ILedgerUseCase is the per-project pledge ledger.
//
// Calls for the same project id are strictly sequential. Calls for different
// project ids run concurrently. The first call for a project migrates its
// stored records to CurrentLedgerSchemaVersion.
type ILedgerUseCase interface {
	RecordPledge(ctx context.Context, projectID, orderID string, in entities.PledgeInput) error
	GetSummary(ctx context.Context, projectID string) (entities.LedgerSummary, error)
	ListRefundEligibleCaptures(ctx context.Context, projectID string, project entities.Project) ([]string, error)
	SettleRefund(ctx context.Context, projectID, captureID string) error
	ListPendingBonuses(ctx context.Context, projectID string, project entities.Project) (map[string]entities.PendingBonus, error)
	SettleBonus(ctx context.Context, projectID, orderID string) error
	GetSuccessInvoice(ctx context.Context, projectID string, project entities.Project) (entities.SuccessInvoice, error)
}

type actorState int

const (
	actorUninitialized actorState = iota
	actorMigrating
	actorReady
)

// ledgerActor owns the in-memory copy of one project's ledger.
// records is kept in seq order.
type ledgerActor struct {
	mu      deadlock.Mutex
	state   actorState
	records []entities.PledgeRecord
	byOrder map[string]int
}

type LedgerUseCase struct {
	pledges   interfaces.IPledgeRepository
	schema    interfaces.ILedgerSchemaRepository
	projects  interfaces.IProjectRepository
	processor interfaces.IPaymentProcessor
	publisher interfaces.IEventPublisher
	now       func() time.Time

	mu     deadlock.Mutex
	actors map[string]*ledgerActor
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	pledges interfaces.IPledgeRepository,
	schema interfaces.ILedgerSchemaRepository,
	projects interfaces.IProjectRepository,
	processor interfaces.IPaymentProcessor,
	publisher interfaces.IEventPublisher,
) *LedgerUseCase {
	return &LedgerUseCase{
		pledges:   pledges,
		schema:    schema,
		projects:  projects,
		processor: processor,
		publisher: publisher,
		now:       time.Now,
		actors:    make(map[string]*ledgerActor),
	}
}

// WithClock replaces the time source used by the eligibility checks.
func (u *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	u.now = now
	return u
}

func (u *LedgerUseCase) actor(projectID string) *ledgerActor {
	u.mu.Lock()
	defer u.mu.Unlock()
	a, ok := u.actors[projectID]
	if !ok {
		a = &ledgerActor{}
		u.actors[projectID] = a
	}
	return a
}

// withActor runs fn while holding the project's actor, migrating first if needed.
func (u *LedgerUseCase) withActor(ctx context.Context, projectID string, fn func(a *ledgerActor) error) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return ErrInvalidProjectID
	}
	a := u.actor(projectID)
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := u.ensureReady(ctx, projectID, a); err != nil {
		return err
	}
	return fn(a)
}

func (u *LedgerUseCase) ensureReady(ctx context.Context, projectID string, a *ledgerActor) error {
	if a.state == actorReady {
		return nil
	}
	a.state = actorMigrating
	recs, err := u.migrate(ctx, projectID)
	if err != nil {
		a.state = actorUninitialized
		log.Printf("[ledger][usecase] migration failed project_id=%s err=%v", projectID, err)
		if errors.Is(err, ErrConfiguration) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrLedgerMigrationFail, err)
	}
	a.load(recs)
	a.state = actorReady
	return nil
}

func (u *LedgerUseCase) migrate(ctx context.Context, projectID string) ([]entities.PledgeRecord, error) {
	version, err := u.schema.GetVersion(ctx, projectID)
	if err != nil {
		return nil, err
	}
	recs, err := u.pledges.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if version >= CurrentLedgerSchemaVersion {
		return recs, nil
	}
	log.Printf("[ledger][usecase] migrating project_id=%s from=%d to=%d records=%d", projectID, version, CurrentLedgerSchemaVersion, len(recs))

	if version < 1 {
		percent := decimal.NewFromInt(entities.DefaultRefundBonusPercent)
		if u.projects != nil && len(recs) > 0 {
			p, err := u.projects.Get(ctx, projectID)
			if err != nil {
				return nil, err
			}
			if p.ID != "" {
				percent = p.RefundBonusPercent
			}
		}
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Time.Before(recs[j].Time) })
		for i := range recs {
			recs[i].Bonus.Amount = entities.ComputeBonus(recs[i].Amount, percent)
			recs[i].Seq = i + 1
		}
	}
	if version < 2 {
		if len(recs) > 0 && u.processor == nil {
			return nil, ErrProcessorMissing
		}
		for i := range recs {
			if recs[i].CaptureID == "" {
				continue
			}
			c, err := u.processor.GetCapture(ctx, recs[i].CaptureID)
			if err != nil {
				return nil, err
			}
			recs[i].ProcessorFee = c.ProcessorFee
		}
	}

	if err := u.pledges.ReplaceAll(ctx, projectID, recs); err != nil {
		return nil, err
	}
	if err := u.schema.SetVersion(ctx, projectID, CurrentLedgerSchemaVersion); err != nil {
		return nil, err
	}
	log.Printf("[ledger][usecase] migration done project_id=%s version=%d", projectID, CurrentLedgerSchemaVersion)
	return recs, nil
}

func (a *ledgerActor) load(recs []entities.PledgeRecord) {
	sorted := append([]entities.PledgeRecord(nil), recs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })
	a.records = sorted
	a.byOrder = make(map[string]int, len(sorted))
	for i, r := range sorted {
		a.byOrder[r.OrderID] = i
	}
}

func (a *ledgerActor) total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range a.records {
		total = total.Add(r.Amount)
	}
	return total
}

func (a *ledgerActor) nextSeq() int {
	if len(a.records) == 0 {
		return 1
	}
	return a.records[len(a.records)-1].Seq + 1
}

func (u *LedgerUseCase) state(a *ledgerActor, project entities.Project) funding.State {
	return funding.Evaluate(a.total(), project.FundingGoal, project.FundingDeadline, u.now())
}

func (u *LedgerUseCase) RecordPledge(ctx context.Context, projectID, orderID string, in entities.PledgeInput) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	var recorded *entities.PledgeRecord
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		if _, ok := a.byOrder[orderID]; ok {
			log.Printf("[ledger][usecase] record-pledge duplicate project_id=%s order_id=%s", projectID, orderID)
			return nil
		}
		at := in.Time
		if at.IsZero() {
			at = u.now()
		}
		rec := entities.PledgeRecord{
			OrderID:       orderID,
			ReturnAddress: in.ReturnAddress,
			CaptureID:     in.CaptureID,
			Amount:        in.Amount,
			ProcessorFee:  in.ProcessorFee,
			Name:          in.Name,
			Time:          at.UTC(),
			Bonus:         entities.PledgeBonus{Amount: entities.ComputeBonus(in.Amount, in.RefundBonusPercent)},
			Seq:           a.nextSeq(),
		}
		inserted, err := u.pledges.Insert(ctx, projectID, rec)
		if err != nil {
			log.Printf("[ledger][usecase] record-pledge persist failed project_id=%s order_id=%s err=%v", projectID, orderID, err)
			return fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		if !inserted {
			// Stored by an earlier actor lifetime; reload on the next call.
			log.Printf("[ledger][usecase] record-pledge already stored project_id=%s order_id=%s", projectID, orderID)
			a.state = actorUninitialized
			return nil
		}
		a.byOrder[orderID] = len(a.records)
		a.records = append(a.records, rec)
		recorded = &rec
		log.Printf("[ledger][usecase] record-pledge success project_id=%s order_id=%s amount=%s seq=%d", projectID, orderID, rec.Amount.StringFixed(2), rec.Seq)
		return nil
	})
	if err != nil {
		return err
	}
	if recorded != nil {
		publishLedgerEvent(ctx, u.publisher, pledgeRecordedEvent(projectID, *recorded, u.now()))
	}
	return nil
}

func (u *LedgerUseCase) GetSummary(ctx context.Context, projectID string) (entities.LedgerSummary, error) {
	var out entities.LedgerSummary
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		out.Amount = a.total()
		out.Orders = make([]entities.PublicOrder, 0, len(a.records))
		for _, r := range a.records {
			out.Orders = append(out.Orders, entities.PublicOrder{
				Time:   r.Time,
				Name:   entities.AnonymizeName(r.Name),
				Amount: r.Amount,
			})
		}
		return nil
	})
	return out, err
}

func (u *LedgerUseCase) ListRefundEligibleCaptures(ctx context.Context, projectID string, project entities.Project) ([]string, error) {
	var ids []string
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		if s := u.state(a, project); s != funding.Failed {
			log.Printf("[ledger][usecase] refunds unavailable project_id=%s state=%s", projectID, s)
			return ErrRefundsUnavailable
		}
		for _, r := range a.records {
			if !r.Refunded && r.CaptureID != "" {
				ids = append(ids, r.CaptureID)
			}
		}
		if len(ids) == 0 {
			return ErrNoPendingRefunds
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (u *LedgerUseCase) SettleRefund(ctx context.Context, projectID, captureID string) error {
	captureID = strings.TrimSpace(captureID)
	if captureID == "" {
		return ErrInvalidCaptureID
	}
	var settled *entities.PledgeRecord
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		idx := -1
		for i, r := range a.records {
			if r.CaptureID == captureID && !r.Refunded {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrPledgeNotFound
		}
		rec := a.records[idx]
		rec.Refunded = true
		if err := u.pledges.UpdateFlags(ctx, projectID, rec); err != nil {
			log.Printf("[ledger][usecase] settle-refund persist failed project_id=%s capture_id=%s err=%v", projectID, captureID, err)
			return fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		a.records[idx] = rec
		settled = &rec
		log.Printf("[ledger][usecase] settle-refund success project_id=%s capture_id=%s", projectID, captureID)
		return nil
	})
	if err != nil {
		return err
	}
	publishLedgerEvent(ctx, u.publisher, LedgerEvent{
		Type:       EventRefundSettled,
		ProjectID:  projectID,
		OrderID:    settled.OrderID,
		CaptureID:  captureID,
		Amount:     settled.Amount.StringFixed(2),
		OccurredAt: u.now().UTC(),
	})
	return nil
}

func (u *LedgerUseCase) ListPendingBonuses(ctx context.Context, projectID string, project entities.Project) (map[string]entities.PendingBonus, error) {
	out := map[string]entities.PendingBonus{}
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		if s := u.state(a, project); s != funding.Failed {
			log.Printf("[ledger][usecase] bonuses unavailable project_id=%s state=%s", projectID, s)
			return ErrBonusesUnavailable
		}
		for _, r := range a.records {
			if r.Bonus.Refunded || !r.Bonus.Amount.IsPositive() {
				continue
			}
			out[r.OrderID] = entities.PendingBonus{Email: r.ReturnAddress, Amount: r.Bonus.Amount}
		}
		if len(out) == 0 {
			return ErrNoPendingBonuses
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *LedgerUseCase) SettleBonus(ctx context.Context, projectID, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	var settled *entities.PledgeRecord
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		idx, ok := a.byOrder[orderID]
		if !ok || a.records[idx].Bonus.Refunded {
			return ErrPledgeNotFound
		}
		rec := a.records[idx]
		rec.Bonus.Refunded = true
		if err := u.pledges.UpdateFlags(ctx, projectID, rec); err != nil {
			log.Printf("[ledger][usecase] settle-bonus persist failed project_id=%s order_id=%s err=%v", projectID, orderID, err)
			return fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		a.records[idx] = rec
		settled = &rec
		log.Printf("[ledger][usecase] settle-bonus success project_id=%s order_id=%s", projectID, orderID)
		return nil
	})
	if err != nil {
		return err
	}
	publishLedgerEvent(ctx, u.publisher, LedgerEvent{
		Type:       EventBonusSettled,
		ProjectID:  projectID,
		OrderID:    orderID,
		Amount:     settled.Bonus.Amount.StringFixed(2),
		OccurredAt: u.now().UTC(),
	})
	return nil
}

func (u *LedgerUseCase) GetSuccessInvoice(ctx context.Context, projectID string, project entities.Project) (entities.SuccessInvoice, error) {
	var out entities.SuccessInvoice
	err := u.withActor(ctx, projectID, func(a *ledgerActor) error {
		if u.state(a, project) != funding.Succeeded {
			return ErrInvoiceUnavailable
		}
		out.AuthorName = project.AuthorName
		out.Lines = make([]entities.InvoiceLine, 0, len(a.records))
		for _, r := range a.records {
			out.Lines = append(out.Lines, entities.InvoiceLine{
				Time:         r.Time,
				Name:         r.Name,
				Amount:       r.Amount,
				ProcessorFee: r.ProcessorFee,
			})
		}
		return nil
	})
	return out, err
}
