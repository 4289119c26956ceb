// Package session persists the authenticated user context between runs:
// the session token and the employee number, always together. A token
// without an employee number (or the reverse) is never a valid state, so
// the store only ever writes or removes the pair as a unit.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Session struct {
	Token          string `yaml:"token"`
	EmployeeNumber string `yaml:"employeeNumber"`
}

// Active reports whether both fields are present.
func (s Session) Active() bool {
	return s.Token != "" && s.EmployeeNumber != ""
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set records both fields atomically: the file is written aside and
// renamed into place, so a reader never observes a partial session.
func (st *Store) Set(token, employeeNumber string) error {
	if token == "" || employeeNumber == "" {
		return fmt.Errorf("refusing to store a partial session")
	}

	data, err := yaml.Marshal(Session{Token: token, EmployeeNumber: employeeNumber})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp := st.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return os.Rename(tmp, st.path)
}

// Get returns the current session, or a zero Session when none is stored.
func (st *Store) Get() (Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session: %w", err)
	}

	return s, nil
}

// Clear removes both fields together. Clearing an absent session is not
// an error.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
