package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// OrganizationService manages tenants. Only super_admin sees the
// organization list; other roles only encounter their organization
// indirectly through user and order records.
type OrganizationService struct {
	store ports.EntityStore
	log   zerolog.Logger
}

func NewOrganizationService(store ports.EntityStore, log zerolog.Logger) *OrganizationService {
	return &OrganizationService{store: store, log: log}
}

func (s *OrganizationService) List(ctx context.Context, actor domain.Actor) ([]domain.Organization, error) {
	return actor.VisibleOrganizations(s.store.ListOrganizations()), nil
}

func (s *OrganizationService) Get(ctx context.Context, actor domain.Actor, id string) (domain.Organization, error) {
	o, err := s.store.GetOrganization(id)
	if err != nil {
		return domain.Organization{}, err
	}
	if !actor.CanViewOrganization(o) {
		return domain.Organization{}, domain.ErrOrganizationNotFound
	}
	return o, nil
}

func (s *OrganizationService) Create(ctx context.Context, actor domain.Actor, in ports.CreateOrganizationInput) (domain.Organization, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return domain.Organization{}, domain.ErrForbidden
	}
	if in.Name == "" {
		return domain.Organization{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	created := s.store.CreateOrganization(domain.Organization{
		Name:        in.Name,
		Description: in.Description,
	})
	s.log.Info().Str("organization_id", created.ID).Msg("organization created")
	return created, nil
}

func (s *OrganizationService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.OrganizationPatch) (domain.Organization, error) {
	existing, err := s.store.GetOrganization(id)
	if err != nil {
		return domain.Organization{}, err
	}
	if !actor.CanManageOrganization(existing) {
		return domain.Organization{}, domain.ErrOrganizationNotFound
	}
	if patch.Name != nil && *patch.Name == "" {
		return domain.Organization{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return s.store.UpdateOrganization(id, patch)
}

// Delete removes an organization that no user or order references. There
// is no cascade: callers must empty the tenant first.
func (s *OrganizationService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	existing, err := s.store.GetOrganization(id)
	if err != nil {
		return err
	}
	if !actor.CanManageOrganization(existing) {
		return domain.ErrOrganizationNotFound
	}

	for _, u := range s.store.ListUsers() {
		if u.OrganizationID == id {
			return domain.ErrOrganizationInUse
		}
	}
	for _, o := range s.store.ListOrders() {
		if o.OrganizationID == id {
			return domain.ErrOrganizationInUse
		}
	}

	if !s.store.DeleteOrganization(id) {
		return domain.ErrOrganizationNotFound
	}
	s.log.Info().Str("organization_id", id).Msg("organization deleted")
	return nil
}
