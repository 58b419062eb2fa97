package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bank-client/internal/bank"
	"github.com/carson-networks/bank-client/internal/handlers"
	"github.com/carson-networks/bank-client/internal/logging"
)

const signUpMessage = "User registered successfully"

// SignUpInput is the Huma input for registering.
type SignUpInput struct {
	Body SignUpBody
}

// SignUpBody is the registration form.
type SignUpBody struct {
	FullName    string `json:"fullName" minLength:"1" doc:"Full name"`
	Email       string `json:"email" format:"email" doc:"Email address, unique per user"`
	PhoneNumber string `json:"phoneNumber" pattern:"^\\+?[0-9]{10,15}$" doc:"Phone number, 10 to 15 digits"`
	DateOfBirth string `json:"dateOfBirth,omitempty" doc:"Date of birth"`
	Password    string `json:"password" minLength:"6" doc:"Password"`
	Address     string `json:"address" minLength:"1" doc:"Postal address"`
}

// SignUpResponse confirms the registration.
type SignUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// SignUpOutput is the response for registering.
type SignUpOutput struct {
	Body SignUpResponse
}

// SignUpHandler handles POST /users/signup.
type SignUpHandler struct {
	Users registrar
}

func NewSignUpHandler(svc registrar) *SignUpHandler {
	return &SignUpHandler{Users: svc}
}

// Register registers the sign-up endpoint with the Huma API.
func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-up",
		Method:        http.MethodPost,
		Path:          handlers.UserServicePrefix + "/users/signup",
		Summary:       "Register a user",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Users"},
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("signUpMs")
	}
	id, err := h.Users.Register(ctx, bank.Registration{
		FullName:    input.Body.FullName,
		Email:       input.Body.Email,
		PhoneNumber: input.Body.PhoneNumber,
		DateOfBirth: input.Body.DateOfBirth,
		Password:    input.Body.Password,
		Address:     input.Body.Address,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.FromDomain(err)
	}

	if logData != nil {
		logData.AddData("userID", id.String())
	}

	return &SignUpOutput{Body: SignUpResponse{Message: signUpMessage, UserID: id.String()}}, nil
}
