package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/auth"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/jwt"
	pkgvalidator "github.com/kamplisrinivas/mom-meeting-system/pkg/validator"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) FindActiveByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := r.users[email]; ok && u.IsActive {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error { return nil }

func newLoginTestServer(t *testing.T) (*echo.Echo, *Auth) {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*entities.User{
		"alice@example.com": {
			ID:           uuid.New(),
			Email:        "alice@example.com",
			Name:         "Alice",
			PasswordHash: hash,
			Role:         entities.RoleManager,
			IsActive:     true,
		},
	}}

	svc := auth.NewService(repo, jwt.NewManager("test-secret", time.Hour))
	h := NewAuthHandler(svc, time.Hour, zap.NewNop())

	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e, h
}

func doLogin(t *testing.T, e *echo.Echo, h *Auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestLoginHandlerSuccess(t *testing.T) {
	e, h := newLoginTestServer(t)

	rec := doLogin(t, e, h, `{"email":"alice@example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			User        struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Data.AccessToken == "" {
		t.Fatalf("expected a token in response")
	}
	if body.Data.TokenType != "Bearer" {
		t.Fatalf("expected Bearer token type, got %q", body.Data.TokenType)
	}
	if body.Data.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user in response")
	}
}

func TestLoginHandlerRejectsBadCredentialsUniformly(t *testing.T) {
	e, h := newLoginTestServer(t)

	wrongPw := doLogin(t, e, h, `{"email":"alice@example.com","password":"wrong"}`)
	unknown := doLogin(t, e, h, `{"email":"nobody@example.com","password":"secret123"}`)

	for _, rec := range []*httptest.ResponseRecorder{wrongPw, unknown} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
		}
	}
	// Identical bodies so callers cannot probe which emails exist.
	if wrongPw.Body.String() != unknown.Body.String() {
		t.Fatalf("credential failures are distinguishable:\n%s\n%s", wrongPw.Body.String(), unknown.Body.String())
	}
	if strings.Contains(unknown.Body.String(), "not found") {
		t.Fatalf("response leaks lookup detail: %s", unknown.Body.String())
	}
}

func TestLoginHandlerMissingFields(t *testing.T) {
	e, h := newLoginTestServer(t)

	rec := doLogin(t, e, h, `{"email":"alice@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
