package service

import (
	"bytes"
	"encoding/json"
)

// SignInResult carries the credentials issued by the user service.
type SignInResult struct {
	Token  string `json:"token"`
	UserID FlexID `json:"userId"`
}

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Password    string `json:"password"`
	Address     string `json:"address"`
}

// Profile is the user record shown on the profile page.
type Profile struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
}

// FlexID is an identifier the backend may encode as a JSON string or number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}
