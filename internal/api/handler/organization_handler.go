package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgsuite/admin-console/internal/core/ports"
)

// OrganizationHandler handles HTTP requests for tenant management.
// Routes are additionally gated to super_admin by the RBAC middleware.
type OrganizationHandler struct {
	service ports.OrganizationService
}

func NewOrganizationHandler(service ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

type createOrganizationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateOrganizationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// List handles GET /v1/organizations.
//
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Organization
// @Router       /v1/organizations [get]
func (h *OrganizationHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	orgs, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orgs)
}

// Get handles GET /v1/organizations/:id.
//
// @Summary      Get an organization by id
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Organization id"
// @Success      200  {object}  domain.Organization
// @Failure      404  {object}  map[string]string
// @Router       /v1/organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	org, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Create handles POST /v1/organizations.
//
// @Summary      Create an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrganizationRequest  true  "Organization details"
// @Success      201   {object}  domain.Organization
// @Failure      400   {object}  map[string]string
// @Router       /v1/organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	org, err := h.service.Create(c.Request().Context(), actor, ports.CreateOrganizationInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, org)
}

// Update handles PUT /v1/organizations/:id.
//
// @Summary      Update an organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Organization id"
// @Param        body  body      updateOrganizationRequest  true  "Fields to change"
// @Success      200   {object}  domain.Organization
// @Failure      404   {object}  map[string]string
// @Router       /v1/organizations/{id} [put]
func (h *OrganizationHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	org, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.OrganizationPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, org)
}

// Delete handles DELETE /v1/organizations/:id. Fails with 409 while any
// user or order still references the organization.
//
// @Summary      Delete an organization
// @Tags         organizations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Organization id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
