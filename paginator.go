package ytdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Per-endpoint page size ceilings and the ID-count ceiling for batch
// lookups, all dictated by the remote API.
const (
	defaultPageCap       = 50
	commentThreadPageCap = 100
	batchLookupChunkSize = 50
)

// listResponse is the envelope every list endpoint returns.
type listResponse struct {
	Items         []json.RawMessage `json:"items"`
	NextPageToken string            `json:"nextPageToken"`
}

// pageIterator walks one logical query lazily: the first request happens on
// the first Next call, and each following page is fetched only once the
// previous page's items are exhausted and a continuation cursor is present.
// Batch ID lookups supply one query per ID chunk; chunks are drained in
// order into a single sequence. A pageIterator owns its fetch state
// exclusively and must not be driven from two goroutines.
type pageIterator struct {
	client  *Client
	path    string
	queries []queryValues
	pageCap int
	limit   int // 0 means uncapped
	queryID string

	qi        int
	pageToken string
	buf       []json.RawMessage
	yielded   int
	err       error
}

func (c *Client) paginate(path string, queries []queryValues, pageCap, limit int) *pageIterator {
	return &pageIterator{
		client:  c,
		path:    path,
		queries: queries,
		pageCap: pageCap,
		limit:   limit,
		queryID: uuid.NewString(),
	}
}

// Next returns the next raw page item, fetching pages as needed. It returns
// ErrDone on exhaustion. Any failure is sticky: once an error is returned,
// every later call returns the same error and no further requests are made.
func (it *pageIterator) Next(ctx context.Context) (json.RawMessage, error) {
	if it.err != nil {
		return nil, it.err
	}
	if it.limit > 0 && it.yielded >= it.limit {
		it.err = ErrDone
		return nil, it.err
	}
	for len(it.buf) == 0 {
		if err := it.fetchPage(ctx); err != nil {
			it.err = err
			return nil, err
		}
	}
	item := it.buf[0]
	it.buf = it.buf[1:]
	it.yielded++
	return item, nil
}

func (it *pageIterator) fetchPage(ctx context.Context) error {
	if it.qi >= len(it.queries) {
		return ErrDone
	}

	q := it.queries[it.qi].clone()
	perPage := it.pageCap
	if it.limit > 0 && it.limit-it.yielded < perPage {
		perPage = it.limit - it.yielded
	}
	q.Set("maxResults", strconv.Itoa(perPage))
	if it.pageToken != "" {
		q.Set("pageToken", it.pageToken)
	}

	body, err := it.client.transport.Get(ctx, it.path, url.Values(q))
	if err != nil {
		return err
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return fmt.Errorf("%w: decoding %s page: %v", ErrMalformedResponse, it.path, err)
	}

	it.client.log.Debug().
		Str("query_id", it.queryID).
		Str("path", it.path).
		Int("items", len(page.Items)).
		Bool("has_next_page", page.NextPageToken != "").
		Msg("Fetched result page")

	it.buf = page.Items
	if page.NextPageToken != "" {
		it.pageToken = page.NextPageToken
	} else {
		// End of this query's result set; move on to the next ID chunk
		// if one remains.
		it.pageToken = ""
		it.qi++
	}
	return nil
}

// Iterator is a lazy, finite sequence of typed entities backed by a
// paginated query. Construction is side-effect-free; the first request is
// issued by the first Next call. An Iterator is not restartable and not
// safe for concurrent use. Abandoning it before exhaustion simply stops
// further page fetches.
type Iterator[T any] struct {
	client *Client
	pages  *pageIterator
	fn     func(json.RawMessage, *Client) (T, error)
	err    error
}

// Named aliases for the iterator shapes the client methods return.
type (
	VideoIterator   = Iterator[*Video]
	ChannelIterator = Iterator[*Channel]
	CommentIterator = Iterator[*Comment]
)

func mapIterator[T any](c *Client, pages *pageIterator, fn func(json.RawMessage, *Client) (T, error)) *Iterator[T] {
	return &Iterator[T]{client: c, pages: pages, fn: fn}
}

// Next returns the next entity, or ErrDone once the sequence is exhausted.
// A mapping failure ends the sequence: items yielded earlier stand, and
// every later call returns the same error.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if it.err != nil {
		return zero, it.err
	}
	raw, err := it.pages.Next(ctx)
	if err != nil {
		return zero, err
	}
	v, err := it.fn(raw, it.client)
	if err != nil {
		it.err = err
		return zero, err
	}
	return v, nil
}

// Collect drains the iterator into a slice. On failure it returns the
// items yielded so far alongside the error.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for {
		v, err := it.Next(ctx)
		if err == ErrDone {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
