package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// UserService applies role scoping and validation on top of the entity
// store. Records outside the actor's scope are reported as not found so
// cross-tenant probing cannot confirm their existence.
type UserService struct {
	store ports.EntityStore
	log   zerolog.Logger
}

func NewUserService(store ports.EntityStore, log zerolog.Logger) *UserService {
	return &UserService{store: store, log: log}
}

func (s *UserService) List(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	return actor.VisibleUsers(s.store.ListUsers()), nil
}

func (s *UserService) Get(ctx context.Context, actor domain.Actor, id string) (domain.User, error) {
	u, err := s.store.GetUser(id)
	if err != nil {
		return domain.User{}, err
	}
	if !actor.CanViewUser(u) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, actor domain.Actor, in ports.CreateUserInput) (domain.User, error) {
	if !actor.CanAssignRole(in.Role) {
		return domain.User{}, domain.ErrForbidden
	}

	// Org admins create users inside their own tenant only; an omitted
	// organization defaults to theirs.
	if actor.Role == domain.RoleOrgAdmin {
		if in.OrganizationID == "" {
			in.OrganizationID = actor.OrganizationID
		}
		if in.OrganizationID != actor.OrganizationID {
			return domain.User{}, domain.ErrForbidden
		}
	}

	if err := s.validateNewUser(in); err != nil {
		return domain.User{}, err
	}

	created := s.store.CreateUser(domain.User{
		Email:          in.Email,
		Name:           in.Name,
		Role:           in.Role,
		OrganizationID: in.OrganizationID,
	})
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UserPatch) (domain.User, error) {
	existing, err := s.store.GetUser(id)
	if err != nil {
		return domain.User{}, err
	}
	if !actor.CanViewUser(existing) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if !actor.CanManageUser(existing) {
		return domain.User{}, domain.ErrForbidden
	}

	// Profile fields are self-serve; role and tenant moves are admin
	// operations.
	if actor.Role == domain.RoleOrgUser && (patch.Role != nil || patch.OrganizationID != nil) {
		return domain.User{}, domain.ErrForbidden
	}
	if patch.Role != nil && !actor.CanAssignRole(*patch.Role) {
		return domain.User{}, domain.ErrForbidden
	}
	if patch.OrganizationID != nil && actor.Role == domain.RoleOrgAdmin && *patch.OrganizationID != actor.OrganizationID {
		return domain.User{}, domain.ErrForbidden
	}

	merged := existing
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.OrganizationID != nil {
		merged.OrganizationID = *patch.OrganizationID
	}
	if err := s.validateUser(merged, existing.ID); err != nil {
		return domain.User{}, err
	}

	return s.store.UpdateUser(id, patch)
}

func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	existing, err := s.store.GetUser(id)
	if err != nil {
		return err
	}
	if !actor.CanViewUser(existing) {
		return domain.ErrUserNotFound
	}
	if !actor.CanManageUser(existing) {
		return domain.ErrForbidden
	}
	if !s.store.DeleteUser(id) {
		return domain.ErrUserNotFound
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) validateNewUser(in ports.CreateUserInput) error {
	return s.validateUser(domain.User{
		Email:          in.Email,
		Name:           in.Name,
		Role:           in.Role,
		OrganizationID: in.OrganizationID,
	}, "")
}

// validateUser checks field presence, role/organization coherence, email
// uniqueness and that a referenced organization exists. selfID excludes
// the record itself from the uniqueness check on update.
func (s *UserService) validateUser(u domain.User, selfID string) error {
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, u.Role)
	}
	if u.Role.RequiresOrganization() && u.OrganizationID == "" {
		return fmt.Errorf("%w: role %s requires an organization", domain.ErrValidation, u.Role)
	}
	if u.Role == domain.RoleSuperAdmin && u.OrganizationID != "" {
		return fmt.Errorf("%w: super_admin must not belong to an organization", domain.ErrValidation)
	}

	if u.OrganizationID != "" {
		if _, err := s.store.GetOrganization(u.OrganizationID); err != nil {
			if errors.Is(err, domain.ErrOrganizationNotFound) {
				return fmt.Errorf("%w: organization %s does not exist", domain.ErrValidation, u.OrganizationID)
			}
			return err
		}
	}

	if other, err := s.store.GetUserByEmail(u.Email); err == nil && other.ID != selfID {
		return fmt.Errorf("%w: email %s is already registered", domain.ErrValidation, u.Email)
	}
	return nil
}
