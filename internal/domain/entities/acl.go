package entities

import "strings"

type Permission string

const (
	PermissionEdit    Permission = "edit"
	PermissionPublish Permission = "publish"

	AdminUser = "admin"
)

// AclKind is the static vocabulary of one resource family.
type AclKind struct {
	Name           string
	Prefix         string
	AllPermissions []Permission
}

var aclKinds = []AclKind{
	{Name: "project", Prefix: ProjectResourcePrefix, AllPermissions: []Permission{PermissionEdit, PermissionPublish}},
}

// AclKindForResource resolves "/projects/<id>" style resources. ok is false for
// anything outside the table.
func AclKindForResource(resource string) (AclKind, bool) {
	for _, k := range aclKinds {
		if !strings.HasPrefix(resource, k.Prefix) {
			continue
		}
		rest := strings.TrimPrefix(resource, k.Prefix)
		if rest == "" || strings.Contains(rest, "/") {
			return AclKind{}, false
		}
		return k, true
	}
	return AclKind{}, false
}

func (k AclKind) Allows(p Permission) bool {
	for _, candidate := range k.AllPermissions {
		if candidate == p {
			return true
		}
	}
	return false
}

// Acl is the grant map of a single resource.
//
// Storage model (DynamoDB):
//   - PK: resource
//   - version: incremented on every write, used for compare-and-swap.
type Acl struct {
	Resource string
	Grants   map[string][]Permission
	Version  int64
}

func HasPermission(perms []Permission, p Permission) bool {
	for _, candidate := range perms {
		if candidate == p {
			return true
		}
	}
	return false
}

// MergePermissions unions add into base keeping base's order first.
func MergePermissions(base, add []Permission) []Permission {
	out := append([]Permission{}, base...)
	for _, p := range add {
		if !HasPermission(out, p) {
			out = append(out, p)
		}
	}
	return out
}
