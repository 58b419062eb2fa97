package bank

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/bank-client/internal/operator/actions"
	"github.com/carson-networks/bank-client/internal/storage"
	"github.com/carson-networks/bank-client/internal/storage/user"
)

// Registration is a sign-up request.
type Registration struct {
	FullName    string
	Email       string
	PhoneNumber string
	DateOfBirth string
	Password    string
	Address     string
}

// UserService handles registration, sign-in and token checks.
type UserService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewUserService(store *storage.Storage, operator actionProcessor) *UserService {
	return &UserService{storage: store, operator: operator}
}

// Register creates a user and returns its id.
func (s *UserService) Register(ctx context.Context, reg Registration) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	action := &actions.RegisterUser{Create: user.UserCreate{
		FullName:     reg.FullName,
		Email:        reg.Email,
		PhoneNumber:  reg.PhoneNumber,
		DateOfBirth:  reg.DateOfBirth,
		Address:      reg.Address,
		PasswordHash: hash,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.UserID, nil
}

// SignIn checks credentials and issues a new bearer token.
func (s *UserService) SignIn(ctx context.Context, email, password string) (string, uuid.UUID, error) {
	u, err := s.storage.Read(ctx).Users.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return "", uuid.Nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", uuid.Nil, err
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return "", uuid.Nil, ErrInvalidCredentials
	}

	action := &actions.IssueToken{UserID: u.ID}
	if err := s.operator.Process(ctx, action); err != nil {
		return "", uuid.Nil, err
	}
	return action.Token, u.ID, nil
}

// Authenticate resolves a bearer token to its user.
func (s *UserService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := s.storage.Read(ctx).Users.FindByToken(ctx, token)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

// GetUser returns the caller's own profile.
func (s *UserService) GetUser(ctx context.Context, caller, id uuid.UUID) (*user.User, error) {
	if caller != id {
		return nil, ErrForbidden
	}
	return s.storage.Read(ctx).Users.FindByID(ctx, id)
}
