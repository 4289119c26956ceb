package v1

import (
	"strings"

	"rcauthy.net/rcauthy/rcauthy/v1/common"
)

type AuthenticatorEndpoint struct {
	transport *Transport
}

// Code fetches the current authenticator code for the employee.
func (ep *AuthenticatorEndpoint) Code(employeeNumber string) (string, error) {
	resp, err := ep.transport.Post("/authenticator/getAuthenticatorCode", common.NewEmployeePayload(employeeNumber))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Data)), nil
}
