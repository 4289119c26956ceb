// Package timeclock holds the session-gated actions of the authenticated
// tabs: time in, time out, log retrieval and the authenticator code.
package timeclock

import (
	"errors"

	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/session"
)

// ErrNotAuthenticated is returned before any network call when the
// session store does not hold both token and employee number.
var ErrNotAuthenticated = errors.New("not authenticated")

// Success messages surfaced on the time in/out buttons.
const (
	TimedInMessage  = "Timed In Successfully!"
	TimedOutMessage = "Timed Out Successfully!"
)

type TimeRecordAPI interface {
	AddTimeIn(employeeNumber string) error
	AddTimeOut(employeeNumber string) error
	UserLogs(employeeNumber string) ([]v1.LogEntry, error)
}

type AuthenticatorAPI interface {
	Code(employeeNumber string) (string, error)
}

type SessionReader interface {
	Get() (session.Session, error)
}

type Actions struct {
	records       TimeRecordAPI
	authenticator AuthenticatorAPI
	sessions      SessionReader
}

func NewActions(records TimeRecordAPI, authenticator AuthenticatorAPI, sessions SessionReader) *Actions {
	return &Actions{
		records:       records,
		authenticator: authenticator,
		sessions:      sessions,
	}
}

// gate enforces the precondition shared by every action: both session
// fields must be present, else fail fast without touching the network.
func (a *Actions) gate() (session.Session, error) {
	s, err := a.sessions.Get()
	if err != nil {
		return session.Session{}, err
	}
	if !s.Active() {
		return session.Session{}, ErrNotAuthenticated
	}
	return s, nil
}

// TimeIn records a check-in. Single attempt; the returned message is
// terminal either way.
func (a *Actions) TimeIn() (string, error) {
	s, err := a.gate()
	if err != nil {
		return "", err
	}
	if err := a.records.AddTimeIn(s.EmployeeNumber); err != nil {
		return "", err
	}
	return TimedInMessage, nil
}

// TimeOut records a check-out.
func (a *Actions) TimeOut() (string, error) {
	s, err := a.gate()
	if err != nil {
		return "", err
	}
	if err := a.records.AddTimeOut(s.EmployeeNumber); err != nil {
		return "", err
	}
	return TimedOutMessage, nil
}

// Logs fetches the full log collection for the signed-in employee.
func (a *Actions) Logs() ([]v1.LogEntry, error) {
	s, err := a.gate()
	if err != nil {
		return nil, err
	}
	return a.records.UserLogs(s.EmployeeNumber)
}

// AuthenticatorCode fetches the current authenticator code.
func (a *Actions) AuthenticatorCode() (string, error) {
	s, err := a.gate()
	if err != nil {
		return "", err
	}
	return a.authenticator.Code(s.EmployeeNumber)
}
