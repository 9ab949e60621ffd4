package memory

import (
	"context"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"

	"github.com/sasha-s/go-deadlock"
)

type AclRepository struct {
	mu   deadlock.Mutex
	acls map[string]entities.Acl
}

var _ interfaces.IAclRepository = (*AclRepository)(nil)

func NewAclRepository() *AclRepository {
	return &AclRepository{acls: map[string]entities.Acl{}}
}

func (r *AclRepository) Get(_ context.Context, resource string) (entities.Acl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acl, ok := r.acls[resource]
	if !ok {
		return entities.Acl{Resource: resource, Grants: map[string][]entities.Permission{}}, nil
	}
	return copyAcl(acl), nil
}

func (r *AclRepository) CompareAndSwap(_ context.Context, acl entities.Acl, expected int64) (entities.Acl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.acls[acl.Resource].Version != expected {
		return entities.Acl{}, interfaces.ErrAclVersionConflict
	}
	stored := copyAcl(acl)
	stored.Version = expected + 1
	r.acls[acl.Resource] = stored
	return copyAcl(stored), nil
}

func copyAcl(acl entities.Acl) entities.Acl {
	grants := make(map[string][]entities.Permission, len(acl.Grants))
	for user, perms := range acl.Grants {
		grants[user] = append([]entities.Permission(nil), perms...)
	}
	return entities.Acl{Resource: acl.Resource, Grants: grants, Version: acl.Version}
}
