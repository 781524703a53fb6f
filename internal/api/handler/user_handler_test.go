package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/domain"
)

func newClaimsContext(e *echo.Echo, target, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c, rec
}

func TestUserHandler_Profile(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, claims domain.Claims) (*domain.User, error) {
			if claims.UserID != "u1" || claims.Role != domain.RoleUser {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			return &domain.User{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "hash", Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newClaimsContext(e, "/profile", "u1", domain.RoleUser)
	if err := handler.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 3 || resp["name"] != "A" || resp["email"] != "a@x.com" || resp["role"] != "user" {
		t.Fatalf("unexpected profile payload: %+v", resp)
	}
}

func TestUserHandler_Profile_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, claims domain.Claims) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newClaimsContext(e, "/profile", "gone", domain.RoleUser)
	if err := handler.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Profile_WithoutClaims(t *testing.T) {
	e := newEcho()
	handler := NewUserHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.Profile(c); !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		listUsersFn: func(ctx context.Context, claims domain.Claims) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "h1", Role: domain.RoleUser},
				{ID: "u2", Name: "B", Email: "b@x.com", PasswordHash: "h2", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newClaimsContext(e, "/users", "u2", domain.RoleAdmin)
	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []userRecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "u1" || resp[1].Role != domain.RoleAdmin {
		t.Fatalf("unexpected users payload: %+v", resp)
	}
}

func TestUserHandler_ListUsers_Empty(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		listUsersFn: func(ctx context.Context, claims domain.Claims) ([]*domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newClaimsContext(e, "/users", "u2", domain.RoleAdmin)
	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestUserHandler_ListUsers_AdminOnly(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		listUsersFn: func(ctx context.Context, claims domain.Claims) ([]*domain.User, error) {
			return nil, domain.ErrAdminOnly
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newClaimsContext(e, "/users", "u1", domain.RoleUser)
	if err := handler.ListUsers(c); !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}

func TestUserHandler_Profile_EmptyClaimsReachService(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		profileFn: func(ctx context.Context, claims domain.Claims) (*domain.User, error) {
			if claims != (domain.Claims{}) {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, _ := newClaimsContext(e, "/profile", "", "")
	if err := handler.Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
