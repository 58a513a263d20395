package ytdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCall records one transport round trip.
type fakeCall struct {
	path  string
	query url.Values
}

// fakeTransport is a scripted Transport that records every request it sees.
type fakeTransport struct {
	calls   []fakeCall
	handler func(call int, path string, query url.Values) ([]byte, error)
}

func (f *fakeTransport) Get(_ context.Context, path string, query url.Values) ([]byte, error) {
	n := len(f.calls)
	f.calls = append(f.calls, fakeCall{path: path, query: query})
	return f.handler(n, path, query)
}

func newFakeClient(f *fakeTransport) *Client {
	return New(nil, WithTransport(f))
}

// pageBody builds a list-endpoint response carrying bare-string video IDs.
func pageBody(t *testing.T, nextToken string, ids ...string) []byte {
	t.Helper()
	items := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		items = append(items, json.RawMessage(fmt.Sprintf(`{"id":%q}`, id)))
	}
	body, err := json.Marshal(map[string]interface{}{
		"items":         items,
		"nextPageToken": nextToken,
	})
	require.NoError(t, err)
	return body
}

func TestPaginatorIsLazy(t *testing.T) {
	ft := &fakeTransport{handler: func(int, string, url.Values) ([]byte, error) {
		return pageBody(t, "", "a"), nil
	}}
	c := newFakeClient(ft)

	it := c.Videos([]string{"a"})
	assert.Empty(t, ft.calls, "constructing an iterator must not issue requests")

	_, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Len(t, ft.calls, 1)
}

func TestPaginatorFollowsContinuationCursor(t *testing.T) {
	ft := &fakeTransport{handler: func(call int, _ string, query url.Values) ([]byte, error) {
		switch call {
		case 0:
			return pageBody(t, "token-1", "a", "b"), nil
		case 1:
			return pageBody(t, "", "c"), nil
		default:
			return nil, fmt.Errorf("unexpected call %d", call)
		}
	}}
	c := newFakeClient(ft)

	videos, err := c.SearchVideos(&SearchOptions{Query: "cats"}).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, videos, 3)
	assert.Equal(t, "a", videos[0].ID)
	assert.Equal(t, "c", videos[2].ID)

	require.Len(t, ft.calls, 2)
	assert.Empty(t, ft.calls[0].query.Get("pageToken"))
	assert.Equal(t, "token-1", ft.calls[1].query.Get("pageToken"))
}

func TestPaginatorStopsWithoutCursor(t *testing.T) {
	ft := &fakeTransport{handler: func(call int, _ string, _ url.Values) ([]byte, error) {
		if call > 0 {
			return nil, errors.New("must not fetch past the last page")
		}
		return pageBody(t, "", "a"), nil
	}}
	c := newFakeClient(ft)

	videos, err := c.SearchVideos(&SearchOptions{Query: "cats"}).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Len(t, ft.calls, 1)
}

func TestPaginatorLimitNeverExceeded(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		available int
		want      int
	}{
		{name: "limit below total", limit: 3, available: 10, want: 3},
		{name: "limit above total", limit: 10, available: 4, want: 4},
		{name: "limit equals total", limit: 4, available: 4, want: 4},
		{name: "no limit", limit: 0, available: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Serve two items per page until the pool runs dry.
			remaining := tt.available
			next := 0
			ft := &fakeTransport{handler: func(_ int, _ string, _ url.Values) ([]byte, error) {
				var ids []string
				for len(ids) < 2 && remaining > 0 {
					ids = append(ids, fmt.Sprintf("v%d", next))
					next++
					remaining--
				}
				token := "more"
				if remaining == 0 {
					token = ""
				}
				return pageBody(t, token, ids...), nil
			}}
			c := newFakeClient(ft)

			videos, err := c.SearchVideos(&SearchOptions{Query: "q", Limit: tt.limit}).Collect(context.Background())
			require.NoError(t, err)
			assert.Len(t, videos, tt.want)
		})
	}
}

func TestPaginatorCapsPageSizeToRemainingBudget(t *testing.T) {
	ft := &fakeTransport{handler: func(call int, _ string, _ url.Values) ([]byte, error) {
		switch call {
		case 0:
			return pageBody(t, "more", "a", "b"), nil
		default:
			return pageBody(t, "", "c"), nil
		}
	}}
	c := newFakeClient(ft)

	_, err := c.SearchVideos(&SearchOptions{Query: "q", Limit: 3}).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, ft.calls, 2)
	assert.Equal(t, "3", ft.calls[0].query.Get("maxResults"))
	assert.Equal(t, "1", ft.calls[1].query.Get("maxResults"), "second page must only request the remaining budget")
}

func TestPaginatorDoesNotOveryieldOverfullPage(t *testing.T) {
	// The API returning more items than maxResults must still respect the
	// caller's limit exactly.
	ft := &fakeTransport{handler: func(int, string, url.Values) ([]byte, error) {
		return pageBody(t, "more", "a", "b", "c", "d"), nil
	}}
	c := newFakeClient(ft)

	videos, err := c.SearchVideos(&SearchOptions{Query: "q", Limit: 2}).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 2)
	assert.Len(t, ft.calls, 1)
}

func TestPaginatorPageCapPerEndpoint(t *testing.T) {
	ft := &fakeTransport{handler: func(_ int, path string, _ url.Values) ([]byte, error) {
		if path == "/commentThreads" {
			return pageBody(t, "", "c1"), nil
		}
		return pageBody(t, "", "v1"), nil
	}}
	c := newFakeClient(ft)

	_, err := c.SearchVideos(&SearchOptions{Query: "q"}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "50", ft.calls[0].query.Get("maxResults"))

	ft.calls = nil
	threads := c.Comments("vid", nil)
	_, err = threads.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "100", ft.calls[0].query.Get("maxResults"))
}

func TestPaginatorPropagatesTransportFailure(t *testing.T) {
	boom := errors.New("credential rejected")
	ft := &fakeTransport{handler: func(call int, _ string, _ url.Values) ([]byte, error) {
		if call == 0 {
			return pageBody(t, "more", "a"), nil
		}
		return nil, boom
	}}
	c := newFakeClient(ft)

	it := c.SearchVideos(&SearchOptions{Query: "q"})
	v, err := it.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", v.ID)

	_, err = it.Next(context.Background())
	require.ErrorIs(t, err, boom)

	// The failure is sticky and no further requests are attempted.
	_, err = it.Next(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Len(t, ft.calls, 2)
}

func TestIteratorExhaustionIsErrDone(t *testing.T) {
	ft := &fakeTransport{handler: func(int, string, url.Values) ([]byte, error) {
		return pageBody(t, "", "a"), nil
	}}
	c := newFakeClient(ft)

	it := c.SearchVideos(&SearchOptions{Query: "q"})
	_, err := it.Next(context.Background())
	require.NoError(t, err)

	_, err = it.Next(context.Background())
	assert.ErrorIs(t, err, ErrDone)
	_, err = it.Next(context.Background())
	assert.ErrorIs(t, err, ErrDone)
}

func TestIteratorMappingFailureKeepsEarlierItems(t *testing.T) {
	ft := &fakeTransport{handler: func(int, string, url.Values) ([]byte, error) {
		body := `{"items":[{"id":"good"},{"id":"bad","snippet":{"title":"t"}}]}`
		return []byte(body), nil
	}}
	c := newFakeClient(ft)

	videos, err := c.SearchVideos(&SearchOptions{Query: "q"}).Collect(context.Background())
	require.ErrorIs(t, err, ErrMalformedResponse)
	require.Len(t, videos, 1, "items yielded before the malformed one must stand")
	assert.Equal(t, "good", videos[0].ID)
}
