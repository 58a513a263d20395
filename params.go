package ytdata

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// queryValues is one outgoing parameter set. The paginator clones it per
// request before stamping on maxResults and the continuation cursor.
type queryValues url.Values

func (q queryValues) clone() queryValues {
	out := make(queryValues, len(q)+2)
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (q queryValues) Set(key, value string) {
	url.Values(q).Set(key, value)
}

// encodeQuery renders a typed parameter struct into wire form. Zero-valued
// omitempty fields are left out of the parameter set entirely rather than
// sent empty.
func encodeQuery(v interface{}) queryValues {
	vals, err := query.Values(v)
	if err != nil {
		// Only reachable with a non-struct argument, which is a
		// programming error in this package.
		panic("ytdata: cannot encode query parameters: " + err.Error())
	}
	return queryValues(vals)
}

// idLookupQuery fetches resources by explicit ID chunk.
type idLookupQuery struct {
	Parts []Part   `url:"part,comma"`
	IDs   []string `url:"id,comma"`
}

// mineLookupQuery fetches the authenticated caller's own channel.
type mineLookupQuery struct {
	Parts []Part `url:"part,comma"`
	Mine  bool   `url:"mine"`
}

type playlistItemsQuery struct {
	Parts      []Part `url:"part,comma"`
	PlaylistID string `url:"playlistId"`
}

type searchQuery struct {
	Parts           []Part     `url:"part,comma"`
	Type            string     `url:"type"`
	Query           string     `url:"q,omitempty"`
	ChannelID       string     `url:"channelId,omitempty"`
	ForMine         bool       `url:"forMine,omitempty"`
	PublishedAfter  string     `url:"publishedAfter,omitempty"`
	PublishedBefore string     `url:"publishedBefore,omitempty"`
	Order           Order      `url:"order"`
	SafeSearch      SafeSearch `url:"safeSearch"`
}

type commentThreadsQuery struct {
	Parts       []Part       `url:"part,comma"`
	VideoID     string       `url:"videoId"`
	Order       CommentOrder `url:"order"`
	SearchTerms string       `url:"searchTerms,omitempty"`
}
