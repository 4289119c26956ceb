package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndDecodeSessionToken(t *testing.T) {
	identity := &Identity{
		Username:       "maria",
		EmployeeNumber: "EMP-1001",
		DeviceID:       "device-1",
		Authorities:    []string{"ROLE_EMPLOYEE"},
	}

	token, err := CreateSessionToken(identity, "IxrAjDoa2FqElO7IhrSrUJELhUckePEPVpaePlS/Xaw=", time.Hour)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	decoded, err := DecodeIdentity(token)
	if err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}

	assert.Equal(t, identity.Username, decoded.Username)
	assert.Equal(t, identity.EmployeeNumber, decoded.EmployeeNumber)
	assert.Equal(t, identity.Authorities, decoded.Authorities)
}

func TestCreateSessionTokenRejectsBadSecret(t *testing.T) {
	_, err := CreateSessionToken(&Identity{Username: "x"}, "not base64!!!", time.Hour)
	if err == nil {
		t.Fatal("expected error for invalid base64 secret")
	}
}
