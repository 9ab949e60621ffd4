package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"
)

const aclCASAttempts = 3

var (
	ErrUnknownResource   = fmt.Errorf("%w: unknown resource", ErrValidation)
	ErrInvalidPermission = fmt.Errorf("%w: invalid permission", ErrValidation)
	ErrInvalidGrantee    = fmt.Errorf("%w: user is required", ErrValidation)
	ErrGrantForbidden    = fmt.Errorf("%w: granting user does not hold every permission", ErrForbidden)
	ErrAclForbidden      = fmt.Errorf("%w: no permission on resource", ErrForbidden)
	ErrAclContention     = errors.New("acl update contention")
)

// IAclUseCase resolves and grants permissions on resources.
//
// Grants only accumulate. The admin user holds every permission of every kind.
type IAclUseCase interface {
	PermissionsFor(ctx context.Context, resource, user string) ([]entities.Permission, error)
	Grant(ctx context.Context, resource, grantingUser, targetUser string, permissions []entities.Permission) (map[string][]entities.Permission, error)
	Grants(ctx context.Context, resource, user string) (map[string][]entities.Permission, error)
}

type AclUseCase struct {
	repo interfaces.IAclRepository
}

var _ IAclUseCase = (*AclUseCase)(nil)

func NewAclUseCase(repo interfaces.IAclRepository) *AclUseCase {
	return &AclUseCase{repo: repo}
}

func (u *AclUseCase) PermissionsFor(ctx context.Context, resource, user string) ([]entities.Permission, error) {
	kind, ok := entities.AclKindForResource(resource)
	if !ok {
		return nil, ErrUnknownResource
	}
	return u.permissionsFor(ctx, kind, resource, user)
}

func (u *AclUseCase) permissionsFor(ctx context.Context, kind entities.AclKind, resource, user string) ([]entities.Permission, error) {
	if user == entities.AdminUser {
		return append([]entities.Permission(nil), kind.AllPermissions...), nil
	}
	if user == "" {
		return []entities.Permission{}, nil
	}
	acl, err := u.repo.Get(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	perms := acl.Grants[user]
	if perms == nil {
		perms = []entities.Permission{}
	}
	return perms, nil
}

func (u *AclUseCase) Grant(ctx context.Context, resource, grantingUser, targetUser string, permissions []entities.Permission) (map[string][]entities.Permission, error) {
	kind, ok := entities.AclKindForResource(resource)
	if !ok {
		log.Printf("[acl][usecase] grant unknown resource resource=%q", resource)
		return nil, ErrUnknownResource
	}
	if len(permissions) == 0 {
		log.Printf("[acl][usecase] grant without permissions resource=%s granting_user=%s", resource, grantingUser)
		return nil, fmt.Errorf("%w: at least one permission is required", ErrInvalidPermission)
	}
	for _, p := range permissions {
		if !kind.Allows(p) {
			log.Printf("[acl][usecase] grant invalid permission resource=%s permission=%q", resource, p)
			return nil, fmt.Errorf("%w: %q", ErrInvalidPermission, p)
		}
	}
	targetUser = strings.TrimSpace(targetUser)
	if targetUser == "" {
		return nil, ErrInvalidGrantee
	}

	held, err := u.permissionsFor(ctx, kind, resource, grantingUser)
	if err != nil {
		return nil, err
	}
	for _, p := range permissions {
		if !entities.HasPermission(held, p) {
			log.Printf("[acl][usecase] grant forbidden resource=%s granting_user=%s permission=%s", resource, grantingUser, p)
			return nil, ErrGrantForbidden
		}
	}

	for attempt := 1; attempt <= aclCASAttempts; attempt++ {
		acl, err := u.repo.Get(ctx, resource)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		if acl.Grants == nil {
			acl.Grants = map[string][]entities.Permission{}
		}
		acl.Resource = resource
		acl.Grants[targetUser] = entities.MergePermissions(acl.Grants[targetUser], permissions)

		stored, err := u.repo.CompareAndSwap(ctx, acl, acl.Version)
		if errors.Is(err, interfaces.ErrAclVersionConflict) {
			log.Printf("[acl][usecase] grant version conflict resource=%s attempt=%d", resource, attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		log.Printf("[acl][usecase] grant success resource=%s target_user=%s version=%d", resource, targetUser, stored.Version)
		return stored.Grants, nil
	}
	return nil, ErrAclContention
}

func (u *AclUseCase) Grants(ctx context.Context, resource, user string) (map[string][]entities.Permission, error) {
	kind, ok := entities.AclKindForResource(resource)
	if !ok {
		return nil, ErrUnknownResource
	}
	held, err := u.permissionsFor(ctx, kind, resource, user)
	if err != nil {
		return nil, err
	}
	if len(held) == 0 {
		return nil, ErrAclForbidden
	}
	acl, err := u.repo.Get(ctx, resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if acl.Grants == nil {
		return map[string][]entities.Permission{}, nil
	}
	return acl.Grants, nil
}
