package domain

// Actor is the identity an operation runs as: the acting user's role plus
// the ownership attributes access decisions are made against. It is
// extracted from the session (or token claims) by the caller.
type Actor struct {
	UserID         string
	OrganizationID string
	Role           Role
}

// ActorFor builds an Actor from a user record.
func ActorFor(u User) Actor {
	return Actor{UserID: u.ID, OrganizationID: u.OrganizationID, Role: u.Role}
}

// CanViewOrganization reports whether the actor may read the organization
// as a record. Tenants never see the organization list, only their own
// organization's name indirectly through user and order records.
func (a Actor) CanViewOrganization(Organization) bool {
	return a.Role == RoleSuperAdmin
}

// CanManageOrganization reports whether the actor may create, update or
// delete the organization. Mirrors visibility.
func (a Actor) CanManageOrganization(o Organization) bool {
	return a.CanViewOrganization(o)
}

// CanViewUser reports whether the actor may read the user record.
func (a Actor) CanViewUser(u User) bool {
	switch a.Role {
	case RoleSuperAdmin:
		return true
	case RoleOrgAdmin:
		return u.OrganizationID != "" && u.OrganizationID == a.OrganizationID
	case RoleOrgUser:
		return u.ID == a.UserID
	}
	return false
}

// CanManageUser reports whether the actor may mutate the user record.
// Mirrors visibility, except that an org_user may only touch their own
// record (and field-level restrictions apply at the service layer).
func (a Actor) CanManageUser(u User) bool {
	return a.CanViewUser(u)
}

// CanAssignRole reports whether the actor may create a user with, or
// change a user to, the given role. An org_admin stays within tenant
// roles; an org_user may not change roles at all.
func (a Actor) CanAssignRole(r Role) bool {
	switch a.Role {
	case RoleSuperAdmin:
		return true
	case RoleOrgAdmin:
		return r == RoleOrgAdmin || r == RoleOrgUser
	}
	return false
}

// CanViewOrder reports whether the actor may read the order record.
func (a Actor) CanViewOrder(o Order) bool {
	switch a.Role {
	case RoleSuperAdmin:
		return true
	case RoleOrgAdmin:
		return o.OrganizationID == a.OrganizationID
	case RoleOrgUser:
		return o.UserID == a.UserID
	}
	return false
}

// CanManageOrder reports whether the actor may mutate the order record.
func (a Actor) CanManageOrder(o Order) bool {
	return a.CanViewOrder(o)
}

// VisibleOrganizations narrows a full organization list to what the actor
// may see.
func (a Actor) VisibleOrganizations(orgs []Organization) []Organization {
	out := make([]Organization, 0, len(orgs))
	for _, o := range orgs {
		if a.CanViewOrganization(o) {
			out = append(out, o)
		}
	}
	return out
}

// VisibleUsers narrows a full user list to what the actor may see.
func (a Actor) VisibleUsers(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if a.CanViewUser(u) {
			out = append(out, u)
		}
	}
	return out
}

// VisibleOrders narrows a full order list to what the actor may see.
func (a Actor) VisibleOrders(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if a.CanViewOrder(o) {
			out = append(out, o)
		}
	}
	return out
}
