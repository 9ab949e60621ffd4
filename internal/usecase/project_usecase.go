package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"
)

var (
	ErrInvalidProjectID     = fmt.Errorf("%w: project id is required", ErrValidation)
	ErrProjectNotFound      = fmt.Errorf("%w: project not found", ErrNotFound)
	ErrProjectTermsFrozen   = fmt.Errorf("%w: funding terms of a published project cannot change", ErrValidation)
	ErrProjectUnpublish     = fmt.Errorf("%w: a published project cannot return to draft", ErrValidation)
	ErrInvalidProjectTerms  = fmt.Errorf("%w: invalid funding terms", ErrValidation)
	ErrProjectEditForbidden = fmt.Errorf("%w: edit permission required", ErrForbidden)
	ErrPublishForbidden     = fmt.Errorf("%w: publish permission required", ErrForbidden)
	ErrPrincipalRequired    = fmt.Errorf("%w: authentication required", ErrUnauthenticated)
)

// IProjectUseCase reads and writes project metadata.
//
// Put enforces:
//   - edit is required for any write
//   - publish is required to change isDraft
//   - once published, the funding terms are frozen and isDraft cannot return to true
type IProjectUseCase interface {
	Get(ctx context.Context, id string) (entities.Project, error)
	Put(ctx context.Context, principal *interfaces.Principal, p entities.Project) (entities.Project, error)
	RequirePermission(ctx context.Context, principal *interfaces.Principal, projectID string, perm entities.Permission) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
	acl  IAclUseCase
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, acl IAclUseCase) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, acl: acl}
}

func (u *ProjectUseCase) Get(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.Get(ctx, id)
	if err != nil {
		log.Printf("[project][usecase] get failed project_id=%s err=%v", id, err)
		return entities.Project{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) RequirePermission(ctx context.Context, principal *interfaces.Principal, projectID string, perm entities.Permission) error {
	if principal == nil {
		return ErrPrincipalRequired
	}
	perms, err := u.acl.PermissionsFor(ctx, entities.ProjectResource(projectID), principal.UserID)
	if err != nil {
		return err
	}
	if !entities.HasPermission(perms, perm) {
		log.Printf("[project][usecase] permission denied project_id=%s user=%s permission=%s", projectID, principal.UserID, perm)
		if perm == entities.PermissionPublish {
			return ErrPublishForbidden
		}
		return ErrProjectEditForbidden
	}
	return nil
}

func (u *ProjectUseCase) Put(ctx context.Context, principal *interfaces.Principal, p entities.Project) (entities.Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if err := u.RequirePermission(ctx, principal, p.ID, entities.PermissionEdit); err != nil {
		return entities.Project{}, err
	}

	existing, err := u.repo.Get(ctx, p.ID)
	if err != nil {
		return entities.Project{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	wasDraft := existing.ID == "" || existing.IsDraft

	if p.IsDraft != wasDraft {
		if err := u.RequirePermission(ctx, principal, p.ID, entities.PermissionPublish); err != nil {
			return entities.Project{}, err
		}
	}
	if !wasDraft {
		if p.IsDraft {
			return entities.Project{}, ErrProjectUnpublish
		}
		if !p.SameTerms(existing) {
			log.Printf("[project][usecase] put rejected frozen terms project_id=%s", p.ID)
			return entities.Project{}, ErrProjectTermsFrozen
		}
	}
	if err := validateTerms(p); err != nil {
		return entities.Project{}, err
	}

	if err := u.repo.Put(ctx, p); err != nil {
		log.Printf("[project][usecase] put failed project_id=%s err=%v", p.ID, err)
		return entities.Project{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	log.Printf("[project][usecase] put success project_id=%s is_draft=%t user=%s", p.ID, p.IsDraft, principal.UserID)
	return p, nil
}

// validateTerms only applies to published projects; drafts may be incomplete.
func validateTerms(p entities.Project) error {
	if p.RefundBonusPercent.IsNegative() || p.FundingGoal.IsNegative() || p.DefaultPaymentAmount.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidProjectTerms)
	}
	if p.IsDraft {
		return nil
	}
	if !p.FundingGoal.IsPositive() {
		return fmt.Errorf("%w: funding goal must be positive", ErrInvalidProjectTerms)
	}
	if p.FundingDeadline.IsZero() {
		return fmt.Errorf("%w: funding deadline is required", ErrInvalidProjectTerms)
	}
	return nil
}
