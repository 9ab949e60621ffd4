package request

import (
	"strings"

	"dominant_assurance/internal/domain/entities"
)

type GrantRequest struct {
	Grant struct {
		User        string   `json:"user"`
		Resource    string   `json:"resource"`
		Permissions []string `json:"permissions"`
	} `json:"grant"`
}

func (r GrantRequest) ResolvePermissions() []entities.Permission {
	perms := make([]entities.Permission, 0, len(r.Grant.Permissions))
	for _, p := range r.Grant.Permissions {
		perms = append(perms, entities.Permission(strings.TrimSpace(p)))
	}
	return perms
}
