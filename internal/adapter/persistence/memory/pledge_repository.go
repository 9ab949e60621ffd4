// Package memory holds process-local repositories used with STORAGE_DRIVER=memory
// and by use case tests.
package memory

import (
	"context"
	"sort"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/sasha-s/go-deadlock"
)

type PledgeRepository struct {
	mu       deadlock.RWMutex
	projects map[string]map[string]entities.PledgeRecord
}

var _ interfaces.IPledgeRepository = (*PledgeRepository)(nil)

func NewPledgeRepository() *PledgeRepository {
	return &PledgeRepository{projects: map[string]map[string]entities.PledgeRecord{}}
}

func (r *PledgeRepository) Insert(_ context.Context, projectID string, rec entities.PledgeRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ledger, ok := r.projects[projectID]
	if !ok {
		ledger = map[string]entities.PledgeRecord{}
		r.projects[projectID] = ledger
	}
	if _, exists := ledger[rec.OrderID]; exists {
		return false, nil
	}
	ledger[rec.OrderID] = rec
	return true, nil
}

// ListByProject returns records ordered by seq, then time.
func (r *PledgeRepository) ListByProject(_ context.Context, projectID string) ([]entities.PledgeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.PledgeRecord, 0, len(r.projects[projectID]))
	for _, rec := range r.projects[projectID] {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].Time.Before(out[j].Time)
	})
	return out, nil
}

func (r *PledgeRepository) UpdateFlags(_ context.Context, projectID string, rec entities.PledgeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.projects[projectID][rec.OrderID]
	if !ok {
		return ErrRecordNotFound
	}
	cur.Refunded = rec.Refunded
	cur.Bonus.Refunded = rec.Bonus.Refunded
	r.projects[projectID][rec.OrderID] = cur
	return nil
}

func (r *PledgeRepository) ReplaceAll(_ context.Context, projectID string, recs []entities.PledgeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ledger := make(map[string]entities.PledgeRecord, len(recs))
	for _, rec := range recs {
		ledger[rec.OrderID] = rec
	}
	r.projects[projectID] = ledger
	return nil
}

type LedgerSchemaRepository struct {
	mu       deadlock.RWMutex
	versions map[string]int
}

var _ interfaces.ILedgerSchemaRepository = (*LedgerSchemaRepository)(nil)

func NewLedgerSchemaRepository() *LedgerSchemaRepository {
	return &LedgerSchemaRepository{versions: map[string]int{}}
}

func (r *LedgerSchemaRepository) GetVersion(_ context.Context, projectID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versions[projectID], nil
}

func (r *LedgerSchemaRepository) SetVersion(_ context.Context, projectID string, version int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[projectID] = version
	return nil
}
