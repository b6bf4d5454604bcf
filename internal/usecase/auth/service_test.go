package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/jwt"
)

type fakeUserRepo struct {
	usersByEmail map[string]*entities.User
	usersByID    map[uuid.UUID]*entities.User
	lastLogins   int
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	r := &fakeUserRepo{
		usersByEmail: make(map[string]*entities.User),
		usersByID:    make(map[uuid.UUID]*entities.User),
	}
	for _, u := range users {
		r.usersByEmail[u.Email] = u
		r.usersByID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.usersByEmail[user.Email] = user
	r.usersByID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if u, ok := r.usersByID[id]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) FindActiveByEmail(ctx context.Context, email string) (*entities.User, error) {
	if u, ok := r.usersByEmail[email]; ok && u.IsActive {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	r.lastLogins++
	return nil
}

func testUser(t *testing.T, email, password string) *entities.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &entities.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		Role:         entities.RoleEmployee,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "alice@example.com", "secret123")
	repo := newFakeUserRepo(user)
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	out, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if out.Token == "" {
		t.Fatalf("expected a token")
	}
	if out.User.ID != user.ID {
		t.Fatalf("unexpected user")
	}
	if repo.lastLogins != 1 {
		t.Fatalf("expected last login to be recorded")
	}
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	user := testUser(t, "alice@example.com", "secret123")
	repo := newFakeUserRepo(user)
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	_, errUnknown := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret123"})
	_, errWrongPw := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong"})

	if !errors.Is(errUnknown, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	// Both failure modes must be the same error so callers cannot
	// probe which emails exist.
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	user := testUser(t, "alice@example.com", "secret123")
	user.IsActive = false
	repo := newFakeUserRepo(user)
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	_, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret123"})
	if !errors.Is(err, usecaseErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	user := testUser(t, "alice@example.com", "secret123")
	repo := newFakeUserRepo(user)
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	out, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := svc.ValidateToken(context.Background(), out.Token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, got.ID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	_, err := svc.ValidateToken(context.Background(), "garbage")
	if !errors.Is(err, usecaseErrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateTokenDeactivatedUser(t *testing.T) {
	user := testUser(t, "alice@example.com", "secret123")
	repo := newFakeUserRepo(user)
	svc := NewService(repo, jwt.NewManager("test-secret", time.Hour))

	out, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user.IsActive = false
	if _, err := svc.ValidateToken(context.Background(), out.Token); !errors.Is(err, usecaseErrors.ErrUserNotActive) {
		t.Fatalf("expected ErrUserNotActive, got %v", err)
	}
}
