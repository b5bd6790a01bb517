package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// AuthService holds the process-wide session. Login resolves the user by
// email and accepts any password: credential verification is an explicit
// placeholder in this system, not an omission, so the session and token
// plumbing stay real while the check itself is absent.
type AuthService struct {
	store     ports.EntityStore
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu      sync.RWMutex
	current *ports.Session
}

// NewAuthService constructs the session holder and rehydrates any session
// previously saved to the durable session store.
func NewAuthService(store ports.EntityStore, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &AuthService{
		store:     store,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
	s.rehydrate(context.Background())
	return s
}

// rehydrate loads the stored session blob. A corrupt blob is cleared
// rather than crashing the process.
func (s *AuthService) rehydrate(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	payload, err := s.sessions.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session load failed, starting unauthenticated")
		return
	}
	if len(payload) == 0 {
		return
	}
	var sess ports.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		s.log.Warn().Err(err).Msg("stored session malformed, clearing")
		_ = s.sessions.Clear(ctx)
		return
	}
	if sess.Authenticated {
		s.current = &sess
	}
}

// Login establishes a session for the user registered under email. The
// password parameter is accepted unconditionally.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	sess := ports.Session{
		User:          user,
		Authenticated: true,
		LoginTime:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.saveSession(ctx, sess)

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout clears the session and its durable storage entry.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if s.sessions != nil {
		if err := s.sessions.Clear(ctx); err != nil {
			s.log.Warn().Err(err).Msg("session clear failed")
		}
	}
	return nil
}

// CurrentUser returns the authenticated identity, if any.
func (s *AuthService) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.User{}, false
	}
	return s.current.User, true
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Authenticated
}

func (s *AuthService) HasRole(role domain.Role) bool {
	u, ok := s.CurrentUser()
	return ok && u.Role == role
}

func (s *AuthService) HasAnyRole(roles ...domain.Role) bool {
	u, ok := s.CurrentUser()
	if !ok {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// saveSession writes the session blob. Storage faults are logged and
// swallowed: the in-memory session stays valid either way.
func (s *AuthService) saveSession(ctx context.Context, sess ports.Session) {
	if s.sessions == nil {
		return
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		s.log.Error().Err(err).Msg("session marshal failed")
		return
	}
	if err := s.sessions.Save(ctx, payload); err != nil {
		s.log.Warn().Err(err).Msg("session save failed")
	}
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":             user.ID,
		"email":           user.Email,
		"role":            string(user.Role),
		"organization_id": user.OrganizationID,
		"exp":             time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
