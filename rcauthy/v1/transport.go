package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every request; the service configures none of its
// own, so an unreachable host would otherwise hang the calling flow.
const DefaultTimeout = 30 * time.Second

type Response struct {
	Data   []byte
	Header http.Header
}

// Transport handles low-level HTTP and authentication
type Transport struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and auth
func NewTransport(baseURL, token string) *Transport {
	return &Transport{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AuthToken:  token,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (t *Transport) buildURL(path string) string {
	u, _ := url.Parse(t.BaseURL + path)
	return u.String()
}

// Post sends a POST request with JSON body. A transport failure comes back
// as *NetworkError; a non-2xx response comes back as *ServerError carrying
// the response body verbatim.
func (t *Transport) Post(path string, data any) (*Response, error) {
	fullURL := t.buildURL(path)

	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, fullURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.AuthToken)
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "POST " + path, Err: err}
	}
	defer resp.Body.Close()

	resdata, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "POST " + path, Err: err}
	}

	if resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(resdata))
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Kind:       KindOf(message),
		}
	}

	return &Response{
		Data:   resdata,
		Header: resp.Header,
	}, nil
}
