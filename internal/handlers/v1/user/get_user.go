package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

// GetUserInput is the Huma input for reading a profile.
type GetUserInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	UserID        string `path:"userId" doc:"User id"`
}

// ProfileResponse is the profile body.
type ProfileResponse struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
}

// GetUserOutput is the response for reading a profile.
type GetUserOutput struct {
	Body ProfileResponse
}

// GetUserHandler handles GET /users/user/{userId}.
type GetUserHandler struct {
	Users profileService
}

func NewGetUserHandler(svc profileService) *GetUserHandler {
	return &GetUserHandler{Users: svc}
}

// Register registers the profile endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        handlers.UserServicePrefix + "/users/user/{userId}",
		Summary:     "Get a user profile",
		Description: "Returns the caller's own profile; other users' profiles are forbidden.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := handlers.Authenticate(ctx, h.Users, input.Authorization)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getUserMs")
	}
	u, err := h.Users.GetUser(ctx, caller, id)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	return &GetUserOutput{Body: ProfileResponse{
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
	}}, nil
}
