package interfaces

import (
	"context"

	"dominant_assurance/internal/domain/entities"
)

// IPledgeRepository persists the ledger of one project.
//
// The ledger actor is the only writer for a project id, so implementations do
// not need to serialise writes for the same project themselves.
//
//   - Insert is insert-if-absent on (projectID, orderID) and reports whether it wrote.
//   - UpdateFlags rewrites the two settlement flags of an existing record.
//   - ReplaceAll rewrites every record (schema migration).
type IPledgeRepository interface {
	Insert(ctx context.Context, projectID string, rec entities.PledgeRecord) (bool, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.PledgeRecord, error)
	UpdateFlags(ctx context.Context, projectID string, rec entities.PledgeRecord) error
	ReplaceAll(ctx context.Context, projectID string, recs []entities.PledgeRecord) error
}

// ILedgerSchemaRepository stores the schema version marker per project.
// A project with no marker is at version 0.
type ILedgerSchemaRepository interface {
	GetVersion(ctx context.Context, projectID string) (int, error)
	SetVersion(ctx context.Context, projectID string, version int) error
}
