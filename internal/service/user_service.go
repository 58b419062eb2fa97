package service

import (
	"context"
	"net/http"

	"github.com/carson-networks/bank-client/internal/httpclient"
)

// UserService calls the user service.
type UserService struct {
	client *httpclient.Client
	base   string
}

func NewUserService(client *httpclient.Client, base string) *UserService {
	return &UserService{client: client, base: base}
}

// SignIn exchanges credentials for a token and user id.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result SignInResult
	if err := s.client.Do(ctx, http.MethodPost, endpoint(s.base, "users", "signin"), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignUp registers a new user.
func (s *UserService) SignUp(ctx context.Context, req SignUpRequest) error {
	return s.client.Do(ctx, http.MethodPost, endpoint(s.base, "users", "signup"), req, nil)
}

// GetUser fetches the profile for userID with the session's bearer token.
func (s *UserService) GetUser(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	if err := s.client.Do(ctx, http.MethodGet, endpoint(s.base, "users", "user", userID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
