package interfaces

import (
	"context"

	"dominant_assurance/internal/domain/entities"
)

// IProjectRepository is the project-metadata key/value store.
//
// Get returns a zero Project (ID == "") when the id is unknown.
type IProjectRepository interface {
	Get(ctx context.Context, id string) (entities.Project, error)
	Put(ctx context.Context, p entities.Project) error
	ListIDs(ctx context.Context) ([]string, error)
}
