package session

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	s, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Active() {
		t.Fatalf("fresh store should be empty, got %+v", s)
	}

	if err := store.Set("token-abc", "EMP-1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err = store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "token-abc" || s.EmployeeNumber != "EMP-1001" {
		t.Errorf("unexpected session: %+v", s)
	}
	if !s.Active() {
		t.Errorf("session with both fields should be active")
	}
}

func TestStoreRejectsPartialSession(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	if err := store.Set("token-abc", ""); err == nil {
		t.Fatalf("expected error storing token without employee number")
	}
	if err := store.Set("", "EMP-1001"); err == nil {
		t.Fatalf("expected error storing employee number without token")
	}

	s, _ := store.Get()
	if s.Token != "" || s.EmployeeNumber != "" {
		t.Errorf("store should remain empty after rejected writes, got %+v", s)
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.yaml"))

	if err := store.Set("token-abc", "EMP-1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token != "" || s.EmployeeNumber != "" {
		t.Errorf("both fields should be cleared together, got %+v", s)
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
