package ytdata

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullChannelJSON = `{
	"id": "UCuAXFkgsw1L7xaCfnd5JJOw",
	"snippet": {
		"title": "Rick Astley",
		"description": "Official channel",
		"publishedAt": "2015-02-01T10:00:00.5Z",
		"customUrl": "@rickastley",
		"thumbnails": {"default": {"url": "https://yt3.ggpht.com/abc"}}
	},
	"contentDetails": {"relatedPlaylists": {"uploads": "UUuAXFkgsw1L7xaCfnd5JJOw"}},
	"statistics": {
		"viewCount": "2000000000",
		"subscriberCount": "4000000",
		"videoCount": "120"
	}
}`

func TestNewChannelAllParts(t *testing.T) {
	ch, err := newChannel(json.RawMessage(fullChannelJSON), nil)
	require.NoError(t, err)

	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", ch.ID)
	assert.Equal(t, "Rick Astley", ch.DisplayName)
	assert.Equal(t, "Official channel", ch.Description)
	assert.Equal(t, 2015, ch.CreatedAt.Year())
	assert.Equal(t, "@rickastley", ch.Handle)
	assert.Equal(t, "https://yt3.ggpht.com/abc", ch.ProfileImageURL)

	require.NotNil(t, ch.Uploads)
	assert.Equal(t, "UUuAXFkgsw1L7xaCfnd5JJOw", ch.Uploads.ID)

	require.NotNil(t, ch.SubscriberCount)
	assert.Equal(t, int64(4000000), *ch.SubscriberCount)
	require.NotNil(t, ch.VideoCount)
	assert.Equal(t, int64(120), *ch.VideoCount)
}

func TestNewChannelAbsentSectionsStayUnset(t *testing.T) {
	ch, err := newChannel(json.RawMessage(`{"id":"UC1"}`), nil)
	require.NoError(t, err)

	assert.Equal(t, "UC1", ch.ID)
	assert.Empty(t, ch.DisplayName)
	assert.Nil(t, ch.Uploads)
	assert.Nil(t, ch.SubscriberCount)
}

func TestNewChannelMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no id", raw: `{"snippet":{"title":"t"}}`},
		{
			name: "snippet missing publishedAt",
			raw:  `{"id":"UC1","snippet":{"title":"t","description":"d"}}`,
		},
		{
			name: "contentDetails without uploads playlist",
			raw:  `{"id":"UC1","contentDetails":{"relatedPlaylists":{}}}`,
		},
		{
			name: "statistics missing subscriberCount",
			raw:  `{"id":"UC1","statistics":{"viewCount":"1","videoCount":"2"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newChannel(json.RawMessage(tt.raw), nil)
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestChannelLink(t *testing.T) {
	withHandle := &Channel{ID: "UC1", Handle: "@rick"}
	assert.Equal(t, "https://www.youtube.com/c/@rick", withHandle.Link())

	without := &Channel{ID: "UC1"}
	assert.Equal(t, "https://www.youtube.com/channels/UC1", without.Link())
}

func TestChannelRefreshOverwritesFields(t *testing.T) {
	stale := `{"items":[{"id":"UC1","snippet":{"title":"Old Name","description":"old",
		"publishedAt":"2020-01-01T00:00:00Z"}}]}`
	fresh := `{"items":[{"id":"UC1","snippet":{"title":"New Name","description":"new",
		"publishedAt":"2020-01-01T00:00:00Z"}}]}`

	ft := &fakeTransport{handler: func(call int, _ string, _ url.Values) ([]byte, error) {
		if call == 0 {
			return []byte(stale), nil
		}
		return []byte(fresh), nil
	}}
	c := newFakeClient(ft)

	ch, err := c.Channel(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, "Old Name", ch.DisplayName)

	require.NoError(t, ch.Refresh(context.Background()))
	assert.Equal(t, "UC1", ch.ID)
	assert.Equal(t, "New Name", ch.DisplayName)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ch.CreatedAt)

	// The refreshed value still dispatches follow-up queries.
	require.Len(t, ft.calls, 2)
	_ = ch.Videos(nil)
}

func TestChannelVideosScopesSearch(t *testing.T) {
	ft := &fakeTransport{handler: func(int, string, url.Values) ([]byte, error) {
		return pageBody(t, ""), nil
	}}
	c := newFakeClient(ft)

	ch := &Channel{yt: c, ID: "UC7"}
	_, err := ch.Videos(&SearchOptions{Order: OrderDate}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/search", ft.calls[0].path)
	assert.Equal(t, "UC7", ft.calls[0].query.Get("channelId"))
	assert.Equal(t, "date", ft.calls[0].query.Get("order"))
}
