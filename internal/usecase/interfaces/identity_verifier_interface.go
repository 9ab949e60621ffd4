package interfaces

import "context"

// Principal is an authenticated caller. Admin is set for the admin basic-auth
// user; UserID is then entities.AdminUser.
type Principal struct {
	UserID string
	Admin  bool
}

// IIdentityVerifier validates bearer tokens issued by the identity provider.
// ok is false when the token is not acceptable; err is reserved for failures
// reaching the provider (e.g. fetching signing keys).
type IIdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (principal Principal, ok bool, err error)
}
