// Package middleware holds the gin middleware shared by the API routes.
package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"dominant_assurance/internal/domain/entities"
	"dominant_assurance/internal/usecase/interfaces"
	"dominant_assurance/pkg"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

var (
	errAdminRequired   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Admin authentication required", http.StatusUnauthorized)
	errIdentityOffline = pkg.NewDomainErrorSimple("UPSTREAM_ERROR", "Identity provider unavailable", http.StatusBadGateway)
)

// isAdmin checks HTTP Basic credentials. An empty configured password never
// matches.
func isAdmin(c *gin.Context, password string) bool {
	if password == "" {
		return false
	}
	user, pass, ok := c.Request.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(entities.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
	return userOK && passOK
}

// AdminAuth rejects requests without the admin basic-auth credentials.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c, password) {
			log.Printf("[http][middleware] admin auth rejected path=%s", c.FullPath())
			c.Header("WWW-Authenticate", `Basic realm="admin", charset="UTF-8"`)
			c.AbortWithStatusJSON(errAdminRequired.HTTPStatus, errAdminRequired.ToHTTPError())
			return
		}
		c.Set(principalKey, &interfaces.Principal{UserID: entities.AdminUser, Admin: true})
		c.Next()
	}
}

// ResolvePrincipal attaches the caller identity when one is presented: admin
// basic auth or an identity-provider bearer token. Anonymous requests pass
// through; handlers that need a principal return 401 themselves.
func ResolvePrincipal(password string, verifier interfaces.IIdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin(c, password) {
			c.Set(principalKey, &interfaces.Principal{UserID: entities.AdminUser, Admin: true})
			c.Next()
			return
		}
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if verifier != nil && strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			principal, ok, err := verifier.VerifyToken(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(errIdentityOffline.HTTPStatus, errIdentityOffline.ToHTTPError())
				return
			}
			// admin is reserved for basic auth
			if ok && principal.UserID != "" && principal.UserID != entities.AdminUser {
				principal.Admin = false
				c.Set(principalKey, &principal)
			}
		}
		c.Next()
	}
}

// PrincipalFrom returns the resolved caller or nil.
func PrincipalFrom(c *gin.Context) *interfaces.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*interfaces.Principal)
	return p
}
