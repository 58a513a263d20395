package ytdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/googleapi"
)

// BaseURL is the versioned REST root of the YouTube Data API.
const BaseURL = "https://www.googleapis.com/youtube/v3"

// Transport performs one authenticated GET against the API and returns the
// raw response body. Non-success statuses surface as errors; this layer
// performs no retries of its own. A Transport must be safe for reuse across
// many sequential or interleaved iterators.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// httpTransport is the default Transport: net/http against BaseURL with
// credentials attached per request.
type httpTransport struct {
	base  string
	http  *http.Client
	creds Credentials
	log   zerolog.Logger
}

func newHTTPTransport(base string, client *http.Client, creds Credentials, log zerolog.Logger) *httpTransport {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpTransport{base: base, http: client, creds: creds, log: log}
}

func (t *httpTransport) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := t.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	if t.creds != nil {
		if err := t.creds.authorize(req); err != nil {
			return nil, fmt.Errorf("failed to authorize request for %s: %w", path, err)
		}
	}

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		t.log.Error().Err(err).Str("path", path).Msg("API request failed")
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		t.log.Error().Err(err).Str("path", path).Int("status", resp.StatusCode).Msg("API returned error status")
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	t.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("API request completed")

	return body, nil
}
