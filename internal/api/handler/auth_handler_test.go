package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orgsuite/admin-console/internal/api"
	"github.com/orgsuite/admin-console/internal/api/handler"
	"github.com/orgsuite/admin-console/internal/core/domain"
)

type stubAuthService struct {
	user      *domain.User
	err       error
	loggedOut bool
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return "token-123", s.user, nil
}

func (s *stubAuthService) Logout(context.Context) error {
	s.loggedOut = true
	return nil
}

func (s *stubAuthService) CurrentUser() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *stubAuthService) IsAuthenticated() bool          { return s.user != nil }
func (s *stubAuthService) HasRole(domain.Role) bool       { return false }
func (s *stubAuthService) HasAnyRole(...domain.Role) bool { return false }

func newAuthTestServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(stub)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	return e
}

func TestAuthHandler_LoginOK(t *testing.T) {
	stub := &stubAuthService{user: &domain.User{ID: "user-2", Email: "admin@techcorp.com", Role: domain.RoleOrgAdmin, OrganizationID: "org-1"}}
	e := newAuthTestServer(stub)

	body := `{"email":"admin@techcorp.com","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "token-123" || resp.User.ID != "user-2" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	stub := &stubAuthService{err: domain.ErrInvalidCredentials}
	e := newAuthTestServer(stub)

	body := `{"email":"nobody@example.com","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_LoginBadPayload(t *testing.T) {
	e := newAuthTestServer(&stubAuthService{})

	cases := []string{
		`{"password":"x"}`,
		`{"email":"not-an-email"}`,
		`{broken`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	stub := &stubAuthService{}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !stub.loggedOut {
		t.Fatalf("logout not delegated to the service")
	}
}
