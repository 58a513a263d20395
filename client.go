// Package ytdata is a client library for the YouTube Data API v3. It issues
// authenticated GET requests, walks paginated result sets lazily, and maps
// raw response items into typed entities (videos, channels, playlists,
// comments).
package ytdata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client dispatches queries against the YouTube Data API. A single Client is
// safe to share across queries; each iterator it hands out owns its own
// page-fetch state exclusively.
type Client struct {
	transport Transport
	log       zerolog.Logger
}

// Option customizes a Client at construction time.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	transport  Transport
	log        zerolog.Logger
}

// WithBaseURL points the client at a different REST root. Mostly useful for
// tests against a local server.
func WithBaseURL(base string) Option {
	return func(o *options) { o.baseURL = base }
}

// WithHTTPClient supplies the http.Client used for API round trips.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTransport replaces the whole HTTP layer. The supplied transport is
// responsible for authentication.
func WithTransport(t Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithLogger attaches a zerolog logger. Without one the client is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// New creates a Client authenticating with the given credentials.
func New(creds Credentials, opts ...Option) *Client {
	o := &options{
		baseURL: BaseURL,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	transport := o.transport
	if transport == nil {
		transport = newHTTPTransport(o.baseURL, o.httpClient, creds, o.log)
	}

	return &Client{transport: transport, log: o.log}
}

// Videos looks up videos by explicit ID list. Duplicate IDs are collapsed
// before any request is made, and the remaining set is fetched in chunks of
// at most 50 IDs per request. With no parts given, id and snippet are
// requested.
func (c *Client) Videos(ids []string, parts ...Part) *Iterator[*Video] {
	if len(parts) == 0 {
		parts = []Part{PartID, PartSnippet}
	}
	chunks := chunkIDs(dedupeIDs(ids), batchLookupChunkSize)
	queries := make([]queryValues, 0, len(chunks))
	for _, chunk := range chunks {
		queries = append(queries, encodeQuery(idLookupQuery{Parts: parts, IDs: chunk}))
	}
	return mapIterator(c, c.paginate("/videos", queries, defaultPageCap, 0), newVideo)
}

// Video looks up a single video by ID.
func (c *Client) Video(ctx context.Context, id string, parts ...Part) (*Video, error) {
	return first(ctx, c.Videos([]string{id}, parts...), "video", id)
}

// ChannelListOptions scopes a channel lookup. Exactly one of IDs or Mine
// must be set.
type ChannelListOptions struct {
	// IDs is an explicit channel ID list. Duplicates are collapsed and the
	// set is fetched in chunks of at most 50 IDs per request.
	IDs []string
	// Mine selects the authenticated caller's own channel instead of an
	// explicit ID list. Requires token credentials.
	Mine bool
	// Parts defaults to snippet.
	Parts []Part
	// Limit caps the total number of channels yielded. Zero means no cap.
	Limit int
}

// Channels lists channels either by explicit ID list or for the
// authenticated caller. Specifying both scopes, or neither, is a usage
// error reported before any request is issued.
func (c *Client) Channels(opts *ChannelListOptions) (*Iterator[*Channel], error) {
	if opts == nil {
		opts = &ChannelListOptions{}
	}
	if opts.Mine == (len(opts.IDs) > 0) {
		return nil, fmt.Errorf("%w: must specify exactly one of channel IDs or mine in channel list query", ErrUsage)
	}

	parts := opts.Parts
	if len(parts) == 0 {
		parts = []Part{PartSnippet}
	}

	var queries []queryValues
	if opts.Mine {
		queries = []queryValues{encodeQuery(mineLookupQuery{Parts: parts, Mine: true})}
	} else {
		for _, chunk := range chunkIDs(dedupeIDs(opts.IDs), batchLookupChunkSize) {
			queries = append(queries, encodeQuery(idLookupQuery{Parts: parts, IDs: chunk}))
		}
	}
	return mapIterator(c, c.paginate("/channels", queries, defaultPageCap, opts.Limit), newChannel), nil
}

// Channel looks up a single channel by ID.
func (c *Client) Channel(ctx context.Context, id string, parts ...Part) (*Channel, error) {
	it, err := c.Channels(&ChannelListOptions{IDs: []string{id}, Parts: parts, Limit: 1})
	if err != nil {
		return nil, err
	}
	return first(ctx, it, "channel", id)
}

// MyChannel looks up the authenticated caller's own channel.
func (c *Client) MyChannel(ctx context.Context, parts ...Part) (*Channel, error) {
	it, err := c.Channels(&ChannelListOptions{Mine: true, Parts: parts, Limit: 1})
	if err != nil {
		return nil, err
	}
	return first(ctx, it, "channel", "mine")
}

// PlaylistVideosOptions configures a playlist items listing.
type PlaylistVideosOptions struct {
	// Parts defaults to snippet.
	Parts []Part
	// Limit caps the total number of videos yielded. Zero means no cap.
	Limit int
}

// PlaylistVideos lists the videos of a playlist in playlist order.
func (c *Client) PlaylistVideos(playlistID string, opts *PlaylistVideosOptions) *Iterator[*Video] {
	if opts == nil {
		opts = &PlaylistVideosOptions{}
	}
	parts := opts.Parts
	if len(parts) == 0 {
		parts = []Part{PartSnippet}
	}
	q := encodeQuery(playlistItemsQuery{Parts: parts, PlaylistID: playlistID})
	return mapIterator(c, c.paginate("/playlistItems", []queryValues{q}, defaultPageCap, opts.Limit), newVideo)
}

// SearchOptions filters a video search. Zero-valued filters are omitted
// from the outgoing query entirely.
type SearchOptions struct {
	// Query is the free-text search term.
	Query string
	// ChannelID restricts results to one channel.
	ChannelID string
	// Mine restricts results to the authenticated caller's videos. The API
	// tolerates combining this with ChannelID, so no precondition is
	// enforced here.
	Mine bool
	// After / Before bound the publish timestamp. Any timezone is
	// accepted; values are normalized to UTC on the wire.
	After  time.Time
	Before time.Time
	// Order defaults to relevance.
	Order Order
	// SafeSearch defaults to moderate.
	SafeSearch SafeSearch
	// Parts defaults to snippet.
	Parts []Part
	// Limit caps the total number of videos yielded. Zero means no cap.
	Limit int
}

// SearchVideos searches for videos matching the given filters.
func (c *Client) SearchVideos(opts *SearchOptions) *Iterator[*Video] {
	if opts == nil {
		opts = &SearchOptions{}
	}
	order := opts.Order
	if order == "" {
		order = OrderRelevance
	}
	safe := opts.SafeSearch
	if safe == "" {
		safe = SafeSearchModerate
	}
	parts := opts.Parts
	if len(parts) == 0 {
		parts = []Part{PartSnippet}
	}

	q := searchQuery{
		Parts:      parts,
		Type:       "video",
		Query:      opts.Query,
		ChannelID:  opts.ChannelID,
		ForMine:    opts.Mine,
		Order:      order,
		SafeSearch: safe,
	}
	if !opts.After.IsZero() {
		q.PublishedAfter = formatQueryTime(opts.After)
	}
	if !opts.Before.IsZero() {
		q.PublishedBefore = formatQueryTime(opts.Before)
	}
	return mapIterator(c, c.paginate("/search", []queryValues{encodeQuery(q)}, defaultPageCap, opts.Limit), newVideo)
}

// CommentOptions configures a comment thread listing.
type CommentOptions struct {
	// SearchTerms filters threads to those containing the given text.
	SearchTerms string
	// Order defaults to time.
	Order CommentOrder
	// Parts defaults to snippet and replies.
	Parts []Part
	// Limit caps the total number of threads yielded. Zero means no cap.
	Limit int
}

// Comments lists the comment threads of a video, replies included when the
// replies part is requested.
func (c *Client) Comments(videoID string, opts *CommentOptions) *Iterator[*Comment] {
	if opts == nil {
		opts = &CommentOptions{}
	}
	order := opts.Order
	if order == "" {
		order = CommentOrderTime
	}
	parts := opts.Parts
	if len(parts) == 0 {
		parts = []Part{PartSnippet, PartReplies}
	}
	q := encodeQuery(commentThreadsQuery{
		Parts:       parts,
		VideoID:     videoID,
		Order:       order,
		SearchTerms: opts.SearchTerms,
	})
	return mapIterator(c, c.paginate("/commentThreads", []queryValues{q}, commentThreadPageCap, opts.Limit), newCommentWith)
}

// first drains a single item from an iterator, translating exhaustion into
// ErrNotFound.
func first[T any](ctx context.Context, it *Iterator[T], kind, id string) (T, error) {
	v, err := it.Next(ctx)
	if err == ErrDone {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// dedupeIDs collapses repeated IDs, keeping first-seen order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// chunkIDs partitions ids into ordered chunks of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
