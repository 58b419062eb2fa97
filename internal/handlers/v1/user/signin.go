package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

// SignInInput is the Huma input for signing in.
type SignInInput struct {
	Body SignInBody
}

// SignInBody carries the credentials.
type SignInBody struct {
	Email    string `json:"email" minLength:"1" doc:"Account email"`
	Password string `json:"password" minLength:"1" doc:"Account password"`
}

// SignInResponse carries the issued bearer token.
type SignInResponse struct {
	Token  string `json:"token" doc:"Bearer token for subsequent requests"`
	UserID string `json:"userId" doc:"Signed-in user's id"`
}

// SignInOutput is the response for signing in.
type SignInOutput struct {
	Body SignInResponse
}

// SignInHandler handles POST /users/signin.
type SignInHandler struct {
	Users signInService
}

func NewSignInHandler(svc signInService) *SignInHandler {
	return &SignInHandler{Users: svc}
}

// Register registers the sign-in endpoint with the Huma API.
func (h *SignInHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sign-in",
		Method:      http.MethodPost,
		Path:        handlers.UserServicePrefix + "/users/signin",
		Summary:     "Sign in",
		Description: "Exchanges an email and password for a bearer token.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *SignInHandler) handle(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("signInMs")
	}
	token, id, err := h.Users.SignIn(ctx, input.Body.Email, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("userID", id.String())
	}

	return &SignInOutput{Body: SignInResponse{Token: token, UserID: id.String()}}, nil
}
