package ytdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Channel is one channel resource. Fields beyond ID are populated only when
// the corresponding part was requested. Like Video, it keeps a non-owning
// reference to the client for follow-up queries.
type Channel struct {
	yt *Client

	ID string `json:"id"`

	// part: snippet
	DisplayName     string    `json:"display_name,omitempty"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
	Handle          string    `json:"handle,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`

	// part: contentDetails
	Uploads *Playlist `json:"uploads,omitempty"`

	// part: statistics
	ViewCount       *int64 `json:"view_count,omitempty"`
	SubscriberCount *int64 `json:"subscriber_count,omitempty"`
	VideoCount      *int64 `json:"video_count,omitempty"`
}

type channelSnippet struct {
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	PublishedAt *string                  `json:"publishedAt"`
	CustomURL   string                   `json:"customUrl"`
	Thumbnails  map[string]thumbnailInfo `json:"thumbnails"`
}

type channelResource struct {
	ID             resourceID      `json:"id"`
	Snippet        *channelSnippet `json:"snippet"`
	ContentDetails *struct {
		RelatedPlaylists *struct {
			Uploads *string `json:"uploads"`
		} `json:"relatedPlaylists"`
	} `json:"contentDetails"`
	Statistics *struct {
		ViewCount       *string `json:"viewCount"`
		SubscriberCount *string `json:"subscriberCount"`
		VideoCount      *string `json:"videoCount"`
	} `json:"statistics"`
}

// newChannel maps one raw page item into a Channel.
func newChannel(raw json.RawMessage, yt *Client) (*Channel, error) {
	var src channelResource
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("%w: decoding channel: %v", ErrMalformedResponse, err)
	}
	if src.ID == "" {
		return nil, fmt.Errorf("%w: channel item has no id", ErrMalformedResponse)
	}

	c := &Channel{yt: yt, ID: string(src.ID)}

	if sn := src.Snippet; sn != nil {
		if sn.Title == nil || sn.Description == nil || sn.PublishedAt == nil {
			return nil, fmt.Errorf("%w: channel %s snippet is missing required fields", ErrMalformedResponse, c.ID)
		}
		created, err := parseTimestamp(*sn.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", c.ID, err)
		}
		c.DisplayName = *sn.Title
		c.Description = *sn.Description
		c.CreatedAt = created
		c.Handle = sn.CustomURL
		c.ProfileImageURL = sn.Thumbnails["default"].URL
	}

	if cd := src.ContentDetails; cd != nil {
		if cd.RelatedPlaylists == nil || cd.RelatedPlaylists.Uploads == nil {
			return nil, fmt.Errorf("%w: channel %s contentDetails has no uploads playlist", ErrMalformedResponse, c.ID)
		}
		c.Uploads = &Playlist{yt: yt, ID: *cd.RelatedPlaylists.Uploads}
	}

	if stats := src.Statistics; stats != nil {
		for _, cnt := range []struct {
			name string
			src  *string
			dst  **int64
		}{
			{"viewCount", stats.ViewCount, &c.ViewCount},
			{"subscriberCount", stats.SubscriberCount, &c.SubscriberCount},
			{"videoCount", stats.VideoCount, &c.VideoCount},
		} {
			n, err := parseCount(cnt.src, cnt.name, c.ID)
			if err != nil {
				return nil, err
			}
			*cnt.dst = &n
		}
	}

	return c, nil
}

// Link returns the channel's permalink, preferring the handle form when the
// snippet carried a custom URL.
func (c *Channel) Link() string {
	if c.Handle != "" {
		return "https://www.youtube.com/c/" + c.Handle
	}
	return "https://www.youtube.com/channels/" + c.ID
}

// Videos searches this channel's videos through the owning client.
func (c *Channel) Videos(opts *SearchOptions) *Iterator[*Video] {
	if opts == nil {
		opts = &SearchOptions{}
	}
	scoped := *opts
	scoped.ChannelID = c.ID
	return c.yt.SearchVideos(&scoped)
}

// Refresh re-fetches this channel and overwrites its fields in place. With
// no parts given, snippet is requested; fields of parts not requested are
// reset to unset. The identifying ID never changes.
func (c *Channel) Refresh(ctx context.Context, parts ...Part) error {
	fresh, err := c.yt.Channel(ctx, c.ID, parts...)
	if err != nil {
		return fmt.Errorf("failed to refresh channel %s: %w", c.ID, err)
	}
	*c = *fresh
	return nil
}
