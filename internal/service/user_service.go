// internal/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"realestate-api/internal/auth"
	"realestate-api/internal/domain"
	"realestate-api/internal/repository"
	"realestate-api/internal/util"

	"github.com/google/uuid"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uuid.UUID, role string) (string, time.Time, error)
}

// RegisterInput carries a self-registration request. Accounts created this way
// always get domain.DefaultRole.
type RegisterInput struct {
	Username string
	Password string
	FullName string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.AppUser
}

// UserService defines the interface for user accounts and authentication.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.AppUser, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.AppUser, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error)
}

// userService implements the UserService interface.
type userService struct {
	uowFactory repository.UnitOfWorkFactory
	tokens     TokenIssuer
}

// NewUserService creates a new instance of UserService.
func NewUserService(uowFactory repository.UnitOfWorkFactory, tokens TokenIssuer) UserService {
	return &userService{uowFactory: uowFactory, tokens: tokens}
}

// Register creates a user with a hashed password. A taken username fails with
// util.ErrDuplicateEntry.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.AppUser, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", util.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}
	user := domain.NewAppUser(username, hash, in.FullName, domain.DefaultRole)

	uow := s.uowFactory.New()
	defer uow.Close()

	err = repository.WithTransaction(ctx, uow, func() error {
		existing, err := uow.Users().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("username %q already exists: %w", username, util.ErrDuplicateEntry)
		}
		_, err = uow.Users().Add(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", storeError(err, util.ErrInvalidInput))
	}
	return user, nil
}

// Login checks the credentials and issues an access token. Unknown users,
// inactive users and wrong passwords all fail with util.ErrUnauthorized.
func (s *userService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("login: invalid credentials: %w", util.ErrUnauthorized)
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, fmt.Errorf("login: invalid credentials: %w", util.ErrUnauthorized)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	token, expiresAt, err := s.tokens.Generate(user.IdUser, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: failed to issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*domain.AppUser, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	user, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, util.ErrNotFound)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.AppUser, error) {
	uow := s.uowFactory.New()
	defer uow.Close()

	users, err := uow.Users().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
