package memory

import (
	"context"
	"errors"
	"sort"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/sasha-s/go-deadlock"
)

var ErrRecordNotFound = errors.New("record not found")

type ProjectRepository struct {
	mu       deadlock.RWMutex
	projects map[string]entities.Project
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: map[string]entities.Project{}}
}

func (r *ProjectRepository) Get(_ context.Context, id string) (entities.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.projects[id], nil
}

func (r *ProjectRepository) Put(_ context.Context, p entities.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = p
	return nil
}

func (r *ProjectRepository) ListIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.projects))
	for id := range r.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
