package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgsuite/admin-console/internal/core/domain"
)

// ctxActor extracts the identity claims injected by the Auth middleware
// and performs a fast-fail check before any service call:
//   - role must be a known role (presence proves the middleware ran).
//   - tenant roles require a non-empty organization id; without it the
//     token is structurally valid but operationally unusable.
func ctxActor(c echo.Context) (domain.Actor, error) {
	role, _ := c.Get("role").(string)
	r := domain.Role(role)
	if !r.Valid() {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	orgID, _ := c.Get("organization_id").(string)
	if r.RequiresOrganization() && orgID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing organization identity")
	}

	return domain.Actor{UserID: userID, OrganizationID: orgID, Role: r}, nil
}
