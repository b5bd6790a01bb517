package domain

import "time"

// The seed dataset bootstraps an empty installation: one super admin, one
// tenant with an admin and a regular user, and two orders. Values are
// fixed so that a fresh deployment is reproducible.

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedUsers returns the default user collection.
func SeedUsers() []User {
	return []User{
		{
			ID:        "user-1",
			Email:     "superadmin@example.com",
			Name:      "Super Admin",
			Role:      RoleSuperAdmin,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:             "user-2",
			Email:          "admin@techcorp.com",
			Name:           "Tech Corp Admin",
			Role:           RoleOrgAdmin,
			OrganizationID: "org-1",
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime,
		},
		{
			ID:             "user-3",
			Email:          "user@techcorp.com",
			Name:           "Tech Corp User",
			Role:           RoleOrgUser,
			OrganizationID: "org-1",
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime,
		},
	}
}

// SeedOrganizations returns the default organization collection.
func SeedOrganizations() []Organization {
	return []Organization{
		{
			ID:          "org-1",
			Name:        "Tech Corp",
			Description: "Technology company",
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
		{
			ID:          "org-2",
			Name:        "Marketing Inc",
			Description: "Marketing agency",
			CreatedAt:   seedTime.AddDate(0, 0, 1),
			UpdatedAt:   seedTime.AddDate(0, 0, 1),
		},
	}
}

// SeedOrders returns the default order collection.
func SeedOrders() []Order {
	return []Order{
		{
			ID:             "order-1",
			Title:          "Website Development",
			Description:    "Create a new company website",
			Status:         StatusInProgress,
			UserID:         "user-3",
			OrganizationID: "org-1",
			CreatedAt:      seedTime,
			UpdatedAt:      seedTime,
		},
		{
			ID:             "order-2",
			Title:          "Marketing Campaign",
			Description:    "Launch social media campaign",
			Status:         StatusPending,
			UserID:         "user-3",
			OrganizationID: "org-1",
			CreatedAt:      seedTime.AddDate(0, 0, 1),
			UpdatedAt:      seedTime.AddDate(0, 0, 1),
		},
	}
}
