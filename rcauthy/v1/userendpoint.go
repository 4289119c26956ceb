package v1

import (
	"strings"

	"rcauthy.net/rcauthy/rcauthy/v1/common"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

type RegistrationRequest struct {
	Username       string
	Password       string
	DeviceID       string
	EmployeeNumber string
}

type OtpChallenge struct {
	Username string `json:"username"`
	Otp      string `json:"otp"`
}

// LoginResult is a successful login: the session token arrives in the
// jwt-token response header, the employee number as the response body.
type LoginResult struct {
	Token          string
	EmployeeNumber string
}

type registerPayload struct {
	User     common.UserDTO        `json:"user"`
	Employee common.EmployeeRefDTO `json:"employee"`
}

type UserEndpoint struct {
	transport *Transport
}

func (ep *UserEndpoint) Login(creds Credentials) (*LoginResult, error) {
	resp, err := ep.transport.Post("/user/login", creds)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:          resp.Header.Get("jwt-token"),
		EmployeeNumber: strings.TrimSpace(string(resp.Data)),
	}, nil
}

func (ep *UserEndpoint) Register(req RegistrationRequest) error {
	payload := registerPayload{
		User: common.UserDTO{
			Username: req.Username,
			Password: req.Password,
			DeviceID: req.DeviceID,
		},
		Employee: common.EmployeeRefDTO{EmployeeNumber: req.EmployeeNumber},
	}

	_, err := ep.transport.Post("/user/register", payload)
	return err
}

func (ep *UserEndpoint) VerifyOtp(challenge OtpChallenge) error {
	_, err := ep.transport.Post("/user/verify-otp", challenge)
	return err
}
