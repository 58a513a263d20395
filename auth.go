package ytdata

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Credentials attaches whatever the configured credential style requires to
// an outgoing request: an API key as a URL parameter, or a bearer token with
// transparent refresh. Implementations must be safe for reuse across many
// sequential or interleaved queries.
type Credentials interface {
	authorize(req *http.Request) error
}

// APIKey authenticates requests by appending the key as the "key" URL
// parameter. This grants read-only access to public data.
func APIKey(key string) Credentials {
	return apiKeyCredentials(key)
}

type apiKeyCredentials string

func (k apiKeyCredentials) authorize(req *http.Request) error {
	q := req.URL.Query()
	q.Set("key", string(k))
	req.URL.RawQuery = q.Encode()
	return nil
}

// TokenSource authenticates requests with a bearer token drawn from ts.
// Token refresh is the source's concern; sources built with the oauth2
// package refresh transparently.
func TokenSource(ts oauth2.TokenSource) Credentials {
	return &tokenCredentials{ts: ts}
}

type tokenCredentials struct {
	ts oauth2.TokenSource
}

func (c *tokenCredentials) authorize(req *http.Request) error {
	tok, err := c.ts.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	tok.SetAuthHeader(req)
	return nil
}
