// Package authflow orchestrates the login, registration and OTP screens.
// Every operation issues at most one API call and reports where the flow
// goes next; the screen layer renders Outcome.Message and navigates to
// Outcome.Next without ever inspecting raw server text itself.
package authflow

import (
	"errors"

	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/security"
)

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenOtp
	ScreenAuthenticated
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "Welcome"
	case ScreenLogin:
		return "Login"
	case ScreenRegister:
		return "Register"
	case ScreenOtp:
		return "OTP"
	case ScreenAuthenticated:
		return "Authenticated"
	}
	return "Unknown"
}

// Fallback messages shown when the service never responded.
const (
	loginFallback    = "Login failed. Please try again."
	registerFallback = "Registration failed. Please try again."
	otpFallback      = "OTP validation failed. Please try again."
)

// AuthAPI is the slice of the API client the flow needs.
type AuthAPI interface {
	Login(creds v1.Credentials) (*v1.LoginResult, error)
	Register(req v1.RegistrationRequest) error
	VerifyOtp(challenge v1.OtpChallenge) error
}

// SessionStore is the slice of the session store the flow needs.
type SessionStore interface {
	Set(token, employeeNumber string) error
	Clear() error
}

// AuthResult is the outcome of a login attempt. Identity carries the
// claims decoded (unverified) from the session token; nil when the token
// is opaque to the client.
type AuthResult struct {
	Token          string
	EmployeeNumber string
	Identity       *security.Identity
	Reason         v1.ErrorKind // set on failure
}

func (r *AuthResult) Success() bool {
	return r.Token != ""
}

// Outcome tells the screen layer what to do after an operation: which
// screen comes next and what message, if any, to show there.
type Outcome struct {
	Next    Screen
	Message string
	Result  *AuthResult
}

type Controller struct {
	api      AuthAPI
	sessions SessionStore
}

func NewController(api AuthAPI, sessions SessionStore) *Controller {
	return &Controller{api: api, sessions: sessions}
}

// Start is the welcome-splash transition: unconditional, after the fixed
// display delay the screen layer owns.
func (c *Controller) Start() Outcome {
	return Outcome{Next: ScreenLogin}
}

// Login attempts a login. The session store is populated before the
// transition to the authenticated screens fires, so a gated action can
// never observe the new screen with an empty store.
func (c *Controller) Login(username, password, deviceID string) Outcome {
	result, err := c.api.Login(v1.Credentials{
		Username: username,
		Password: password,
		DeviceID: deviceID,
	})
	if err != nil {
		return c.routeLoginError(err)
	}

	if err := c.sessions.Set(result.Token, result.EmployeeNumber); err != nil {
		return Outcome{Next: ScreenLogin, Message: loginFallback}
	}

	// Best effort: only the server verifies signatures, the client just
	// reads the claims back out of the token it was handed.
	identity, _ := security.DecodeIdentity(result.Token)

	return Outcome{
		Next: ScreenAuthenticated,
		Result: &AuthResult{
			Token:          result.Token,
			EmployeeNumber: result.EmployeeNumber,
			Identity:       identity,
		},
	}
}

// routeLoginError implements the one message-driven transition in the
// whole flow: a 2FA rejection moves the user to the OTP screen. Every
// other rejection keeps the user on Login with the text shown verbatim.
func (c *Controller) routeLoginError(err error) Outcome {
	var serverErr *v1.ServerError
	if errors.As(err, &serverErr) {
		next := ScreenLogin
		if serverErr.Kind == v1.KindTwoFactorRequired {
			next = ScreenOtp
		}
		return Outcome{
			Next:    next,
			Message: serverErr.Message,
			Result:  &AuthResult{Reason: serverErr.Kind},
		}
	}
	return Outcome{Next: ScreenLogin, Message: loginFallback}
}

// Register validates client-side, then submits. A password mismatch never
// reaches the network.
func (c *Controller) Register(username, password, confirmPassword, employeeNumber, deviceID string) Outcome {
	if password != confirmPassword {
		return Outcome{Next: ScreenRegister, Message: "Passwords do not match."}
	}

	err := c.api.Register(v1.RegistrationRequest{
		Username:       username,
		Password:       password,
		DeviceID:       deviceID,
		EmployeeNumber: employeeNumber,
	})
	if err != nil {
		var serverErr *v1.ServerError
		if errors.As(err, &serverErr) {
			return Outcome{Next: ScreenRegister, Message: serverErr.Message}
		}
		return Outcome{Next: ScreenRegister, Message: registerFallback}
	}

	return Outcome{Next: ScreenOtp}
}

// VerifyOtp submits a one-time passcode. Success routes back to Login so
// the user signs in with the now-verified account.
func (c *Controller) VerifyOtp(username, code string) Outcome {
	if username == "" || code == "" {
		return Outcome{Next: ScreenOtp, Message: "Please fill in all fields."}
	}

	if err := c.api.VerifyOtp(v1.OtpChallenge{Username: username, Otp: code}); err != nil {
		var serverErr *v1.ServerError
		if errors.As(err, &serverErr) {
			return Outcome{Next: ScreenOtp, Message: serverErr.Message}
		}
		return Outcome{Next: ScreenOtp, Message: otpFallback}
	}

	return Outcome{Next: ScreenLogin}
}

// Logout clears the session when confirmed. Cancelling keeps the user on
// the authenticated tabs; it is a decision point, not a screen.
func (c *Controller) Logout(confirmed bool) (Outcome, error) {
	if !confirmed {
		return Outcome{Next: ScreenAuthenticated}, nil
	}

	if err := c.sessions.Clear(); err != nil {
		return Outcome{Next: ScreenAuthenticated}, err
	}

	return Outcome{Next: ScreenLogin}, nil
}
