package ports

import (
	"context"
	"time"

	"github.com/orgsuite/admin-console/internal/core/domain"
)

// Session is the durable session blob: the authenticated identity plus
// login metadata, serialized into the session store as JSON.
type Session struct {
	User          domain.User `json:"user"`
	Authenticated bool        `json:"authenticated"`
	LoginTime     time.Time   `json:"login_time"`
}

// AuthService is the session holder: it establishes and tears down the
// process-wide session and answers role queries over it.
type AuthService interface {
	// Login looks the user up by email and establishes a session. The
	// password is accepted unconditionally; see the service doc.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (domain.User, bool)
	IsAuthenticated() bool
	HasRole(role domain.Role) bool
	HasAnyRole(roles ...domain.Role) bool
}
