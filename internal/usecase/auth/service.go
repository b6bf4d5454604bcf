package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/jwt"
)

// Service handles authentication business logic
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents a successful login
type LoginOutput struct {
	Token string
	User  *entities.User
}

// Login verifies the credential pair and issues a signed token. An
// unknown email and a wrong password both map to
// usecaseErrors.ErrInvalidCredentials so the caller cannot tell them
// apart.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.FindActiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, string(user.Role), user.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// The timestamp is informational; login succeeds regardless.
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	return &LoginOutput{Token: token, User: user}, nil
}

// ValidateToken parses and validates a bearer token, returning the
// authenticated user.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateToken(tokenString)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserNotActive
	}

	return user, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
