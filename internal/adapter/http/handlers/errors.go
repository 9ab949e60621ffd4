package handlers

import (
	"errors"
	"net/http"

	"dominant_assurance/internal/usecase"
	"dominant_assurance/pkg"

	"github.com/gin-gonic/gin"
)

// mapError renders a usecase error class as an AppError. The message is the
// error text without its class prefix.
func mapError(err error) *pkg.AppError {
	reason := usecase.Reason(err)
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainError("UNAUTHENTICATED", reason, err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", reason, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", reason, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", reason, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrConfiguration):
		return pkg.NewDomainError("CONFIGURATION_ERROR", reason, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUpstream):
		return pkg.NewDomainError("UPSTREAM_ERROR", reason, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badRequest(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
