package v1

import "fmt"

// ErrorKind is the closed set of rejection conditions the RCAuthy service
// communicates. The service speaks in literal human-readable strings; the
// mapping from text to kind happens once, here, so callers never compare
// against raw message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTwoFactorRequired
	KindUsernameNotFound
	KindIncorrectPassword
	KindAccountLocked
	KindDeviceMismatch
	KindDeviceAlreadyRegistered
	KindDeviceReRegistered
	KindUsernameExists
	KindWeakPassword
	KindEmptyPassword
	KindUserAlreadyRegistered
	KindEmployeeNotFound
)

var kindByMessage = map[string]ErrorKind{
	"2FA is required!":                         KindTwoFactorRequired,
	"Username not found!":                      KindUsernameNotFound,
	"Incorrect Password!":                      KindIncorrectPassword,
	"User account is locked":                   KindAccountLocked,
	"Device ID mismatch. Access denied.":       KindDeviceMismatch,
	"Device already registered to an account.": KindDeviceAlreadyRegistered,
	"User Successfully Re-registered!":         KindDeviceReRegistered,
	"Username already exists.":                 KindUsernameExists,
	"Please create a stronger password. Password should contain special characters.": KindWeakPassword,
	"Password cannot be null or empty": KindEmptyPassword,
	"This user is already registered!": KindUserAlreadyRegistered,
	"Employee Number does not exist!":  KindEmployeeNotFound,
}

// KindOf resolves a raw server message to its kind. Unlisted messages map
// to KindUnknown; the message itself is still surfaced verbatim.
func KindOf(message string) ErrorKind {
	if kind, ok := kindByMessage[message]; ok {
		return kind
	}
	return KindUnknown
}

// ServerError is a rejection from the service. Message is the raw response
// body, unmodified; it is the display text shown to the user.
type ServerError struct {
	StatusCode int
	Message    string
	Kind       ErrorKind
}

func (e *ServerError) Error() string {
	return e.Message
}

// NetworkError is a transport failure: no response arrived at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
