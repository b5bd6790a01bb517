package domain

import "time"

// Organization is a tenant: a grouping of users and orders isolated from
// other tenants except for the super_admin role.
type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
