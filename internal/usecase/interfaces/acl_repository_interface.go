package interfaces

import (
	"context"
	"errors"

	"dominant_assurance/internal/domain/entities"
)

// ErrAclVersionConflict is returned by CompareAndSwap when the stored version
// moved since the caller read it.
var ErrAclVersionConflict = errors.New("acl version conflict")

// IAclRepository stores one grant map per resource.
//
// Get returns an Acl with Version 0 and no grants when nothing is stored.
// CompareAndSwap writes acl with Version expected+1 only if the stored version
// still equals expected (0 meaning absent).
type IAclRepository interface {
	Get(ctx context.Context, resource string) (entities.Acl, error)
	CompareAndSwap(ctx context.Context, acl entities.Acl, expected int64) (entities.Acl, error)
}
