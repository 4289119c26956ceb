package v1

type RCAuthyClient struct {
	Transport     *Transport
	Users         *UserEndpoint
	Authenticator *AuthenticatorEndpoint
	TimeRecords   *TimeRecordEndpoint
}

// NewRCAuthyClient initializes the API client. token may be empty for the
// unauthenticated endpoints; SetToken installs one after login.
func NewRCAuthyClient(baseURL string, token string) *RCAuthyClient {
	t := NewTransport(baseURL, token)
	return &RCAuthyClient{
		Transport:     t,
		Users:         &UserEndpoint{transport: t},
		Authenticator: &AuthenticatorEndpoint{transport: t},
		TimeRecords:   &TimeRecordEndpoint{transport: t},
	}
}

func (c *RCAuthyClient) SetToken(token string) {
	c.Transport.AuthToken = token
}
