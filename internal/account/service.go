package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateRole(ctx context.Context, r *Role) error
	ListRoles(ctx context.Context) ([]*Role, error)

	// DeleteRole fails with ErrRoleInUse while users are assigned to it.
	DeleteRole(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	RoleID   uuid.UUID
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
		RoleID:       params.RoleID,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate checks the credentials and returns the matching user.
// A missing user and a wrong password both collapse to ErrInvalidCredentials
// so callers cannot probe which emails exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, u *User) error {
	return s.repo.UpdateUser(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) CreateRole(ctx context.Context, name string) (*Role, error) {
	r := &Role{Name: name}
	if err := s.repo.CreateRole(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) ListRoles(ctx context.Context) ([]*Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *Service) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRole(ctx, id)
}
