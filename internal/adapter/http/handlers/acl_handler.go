package handlers

import (
	"log"
	"net/http"
	"strings"

	"dominant_assurance/internal/adapter/http/dto/request"
	"dominant_assurance/internal/adapter/http/dto/response"
	"dominant_assurance/internal/adapter/http/middleware"
	"dominant_assurance/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AclHandler struct {
	acl usecase.IAclUseCase
}

func NewAclHandler(acl usecase.IAclUseCase) *AclHandler {
	return &AclHandler{acl: acl}
}

// GetGrants godoc
// @Summary Grants on a resource
// @Tags acls
// @Produce json
// @Param resource query string true "Resource, e.g. /projects/abc"
// @Success 200 {object} response.GrantsResponse
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Router /acls/grants [get]
func (h *AclHandler) GetGrants(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		abortWithError(c, usecase.ErrPrincipalRequired)
		return
	}
	grants, err := h.acl.Grants(c.Request.Context(), strings.TrimSpace(c.Query("resource")), principal.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.GrantsResponse{Grants: grants})
}

// PostGrant godoc
// @Summary Grant permissions the caller holds to another user
// @Tags acls
// @Accept json
// @Produce json
// @Param body body request.GrantRequest true "Grant"
// @Success 200 {object} response.GrantsResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Router /acls/grants [post]
func (h *AclHandler) PostGrant(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		abortWithError(c, usecase.ErrPrincipalRequired)
		return
	}
	var body request.GrantRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	resource := strings.TrimSpace(body.Grant.Resource)
	grants, err := h.acl.Grant(c.Request.Context(), resource, principal.UserID, strings.TrimSpace(body.Grant.User), body.ResolvePermissions())
	if err != nil {
		log.Printf("[acl][handler] grant failed resource=%s user=%s err=%v", resource, principal.UserID, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.GrantsResponse{Grants: grants})
}
