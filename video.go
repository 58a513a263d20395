package ytdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Localization is a translated title/description pair.
type Localization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Video is one video resource. Fields beyond ID are populated only when the
// corresponding part was requested; absent sections leave their fields at
// nil/zero. A Video holds a non-owning reference to the client it came from
// so follow-up queries (comments, owning channel) can be dispatched.
type Video struct {
	yt *Client

	ID string `json:"id"`

	// part: snippet
	Title                string            `json:"title,omitempty"`
	Description          string            `json:"description,omitempty"`
	PublishedAt          time.Time         `json:"published_at,omitzero"`
	ChannelID            string            `json:"channel_id,omitempty"`
	ChannelName          string            `json:"channel_name,omitempty"`
	Tags                 []string          `json:"tags,omitempty"`
	IsLivestream         bool              `json:"is_livestream,omitempty"`
	DefaultAudioLanguage string            `json:"default_audio_language,omitempty"`
	Thumbnails           map[string]string `json:"thumbnails,omitempty"`
	LocalizedTitle       string            `json:"localized_title,omitempty"`
	LocalizedDescription string            `json:"localized_description,omitempty"`

	// part: contentDetails
	Duration   *time.Duration `json:"duration,omitempty"`
	IsLicensed *bool          `json:"is_licensed,omitempty"`
	BlockedIn  []string       `json:"blocked_in,omitempty"`
	AllowedIn  []string       `json:"allowed_in,omitempty"`
	Dimension  string         `json:"dimension,omitempty"`
	Definition string         `json:"definition,omitempty"`
	Caption    string         `json:"caption,omitempty"`
	Projection string         `json:"projection,omitempty"`

	// part: status
	Privacy                 PrivacyStatus `json:"privacy,omitempty"`
	UploadStatus            string        `json:"upload_status,omitempty"`
	FailureReason           string        `json:"failure_reason,omitempty"`
	RejectionReason         string        `json:"rejection_reason,omitempty"`
	License                 string        `json:"license,omitempty"`
	IsEmbeddable            *bool         `json:"is_embeddable,omitempty"`
	HasViewableStats        *bool         `json:"has_viewable_stats,omitempty"`
	IsMadeForKids           *bool         `json:"is_made_for_kids,omitempty"`
	SelfDeclaredMadeForKids *bool         `json:"self_declared_made_for_kids,omitempty"`

	// part: statistics
	ViewCount     *int64 `json:"view_count,omitempty"`
	LikeCount     *int64 `json:"like_count,omitempty"`
	FavoriteCount *int64 `json:"favorite_count,omitempty"`
	CommentCount  *int64 `json:"comment_count,omitempty"`

	// part: liveStreamingDetails
	LivestreamDetails map[string]interface{} `json:"livestream_details,omitempty"`

	// part: topicDetails
	TopicCategories []string `json:"topic_categories,omitempty"`

	// part: recordingDetails
	RecordingDate *time.Time `json:"recording_date,omitempty"`

	// part: localizations
	Localizations map[string]Localization `json:"localizations,omitempty"`
}

// resourceID accepts the two shapes the API uses for an item's identifying
// field: a bare string, or the search-result object nesting the real ID
// under a resource-specific key.
type resourceID string

func (id *resourceID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = resourceID(s)
		return nil
	}
	var nested struct {
		VideoID    string `json:"videoId"`
		ChannelID  string `json:"channelId"`
		PlaylistID string `json:"playlistId"`
	}
	if err := json.Unmarshal(b, &nested); err != nil {
		return fmt.Errorf("%w: id is neither a string nor a search result object", ErrMalformedResponse)
	}
	switch {
	case nested.VideoID != "":
		*id = resourceID(nested.VideoID)
	case nested.ChannelID != "":
		*id = resourceID(nested.ChannelID)
	case nested.PlaylistID != "":
		*id = resourceID(nested.PlaylistID)
	default:
		return fmt.Errorf("%w: search result id object carries no resource id", ErrMalformedResponse)
	}
	return nil
}

type thumbnailInfo struct {
	URL string `json:"url"`
}

type videoSnippet struct {
	Title                *string                  `json:"title"`
	Description          *string                  `json:"description"`
	PublishedAt          *string                  `json:"publishedAt"`
	ChannelID            *string                  `json:"channelId"`
	ChannelTitle         *string                  `json:"channelTitle"`
	Tags                 []string                 `json:"tags"`
	LiveBroadcastContent string                   `json:"liveBroadcastContent"`
	DefaultAudioLanguage string                   `json:"defaultAudioLanguage"`
	Thumbnails           map[string]thumbnailInfo `json:"thumbnails"`
	Localized            *Localization            `json:"localized"`
}

type videoContentDetails struct {
	Duration          *string `json:"duration"`
	LicensedContent   *bool   `json:"licensedContent"`
	RegionRestriction *struct {
		Blocked []string `json:"blocked"`
		Allowed []string `json:"allowed"`
	} `json:"regionRestriction"`
	Dimension  string `json:"dimension"`
	Definition string `json:"definition"`
	Caption    string `json:"caption"`
	Projection string `json:"projection"`
}

type videoStatus struct {
	PrivacyStatus           PrivacyStatus `json:"privacyStatus"`
	UploadStatus            string        `json:"uploadStatus"`
	FailureReason           string        `json:"failureReason"`
	RejectionReason         string        `json:"rejectionReason"`
	License                 string        `json:"license"`
	Embeddable              *bool         `json:"embeddable"`
	PublicStatsViewable     *bool         `json:"publicStatsViewable"`
	MadeForKids             *bool         `json:"madeForKids"`
	SelfDeclaredMadeForKids *bool         `json:"selfDeclaredMadeForKids"`
}

type videoStatistics struct {
	ViewCount     *string `json:"viewCount"`
	LikeCount     *string `json:"likeCount"`
	FavoriteCount *string `json:"favoriteCount"`
	CommentCount  *string `json:"commentCount"`
}

type videoResource struct {
	ID                   resourceID              `json:"id"`
	Snippet              *videoSnippet           `json:"snippet"`
	ContentDetails       *videoContentDetails    `json:"contentDetails"`
	Status               *videoStatus            `json:"status"`
	Statistics           *videoStatistics        `json:"statistics"`
	LiveStreamingDetails map[string]interface{}  `json:"liveStreamingDetails"`
	TopicDetails         *struct {
		TopicCategories []string `json:"topicCategories"`
	} `json:"topicDetails"`
	RecordingDetails *struct {
		RecordingDate *string `json:"recordingDate"`
	} `json:"recordingDetails"`
	Localizations map[string]Localization `json:"localizations"`
}

// newVideo maps one raw page item into a Video. Sections not requested are
// simply absent and leave their fields unset; a required field missing
// inside a present section is a malformed-response error.
func newVideo(raw json.RawMessage, yt *Client) (*Video, error) {
	var src videoResource
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("%w: decoding video: %v", ErrMalformedResponse, err)
	}
	if src.ID == "" {
		return nil, fmt.Errorf("%w: video item has no id", ErrMalformedResponse)
	}

	v := &Video{yt: yt, ID: string(src.ID)}

	if sn := src.Snippet; sn != nil {
		if sn.Title == nil || sn.Description == nil || sn.PublishedAt == nil ||
			sn.ChannelID == nil || sn.ChannelTitle == nil {
			return nil, fmt.Errorf("%w: video %s snippet is missing required fields", ErrMalformedResponse, v.ID)
		}
		published, err := parseTimestamp(*sn.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", v.ID, err)
		}
		v.Title = *sn.Title
		v.Description = *sn.Description
		v.PublishedAt = published
		v.ChannelID = *sn.ChannelID
		v.ChannelName = *sn.ChannelTitle
		v.Tags = sn.Tags
		v.IsLivestream = sn.LiveBroadcastContent == "live"
		v.DefaultAudioLanguage = sn.DefaultAudioLanguage
		if len(sn.Thumbnails) > 0 {
			v.Thumbnails = make(map[string]string, len(sn.Thumbnails))
			for size, t := range sn.Thumbnails {
				v.Thumbnails[size] = t.URL
			}
		}
		if sn.Localized != nil {
			v.LocalizedTitle = sn.Localized.Title
			v.LocalizedDescription = sn.Localized.Description
		}
	}

	if cd := src.ContentDetails; cd != nil {
		if cd.Duration == nil {
			return nil, fmt.Errorf("%w: video %s contentDetails has no duration", ErrMalformedResponse, v.ID)
		}
		d, err := ParseDuration(*cd.Duration)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", v.ID, err)
		}
		v.Duration = &d
		v.IsLicensed = cd.LicensedContent
		if rr := cd.RegionRestriction; rr != nil {
			v.BlockedIn = rr.Blocked
			v.AllowedIn = rr.Allowed
		}
		v.Dimension = cd.Dimension
		v.Definition = cd.Definition
		v.Caption = cd.Caption
		v.Projection = cd.Projection
	}

	if st := src.Status; st != nil {
		v.Privacy = st.PrivacyStatus
		v.UploadStatus = st.UploadStatus
		v.FailureReason = st.FailureReason
		v.RejectionReason = st.RejectionReason
		v.License = st.License
		v.IsEmbeddable = st.Embeddable
		v.HasViewableStats = st.PublicStatsViewable
		v.IsMadeForKids = st.MadeForKids
		v.SelfDeclaredMadeForKids = st.SelfDeclaredMadeForKids
	}

	if stats := src.Statistics; stats != nil {
		for _, c := range []struct {
			name string
			src  *string
			dst  **int64
		}{
			{"viewCount", stats.ViewCount, &v.ViewCount},
			{"likeCount", stats.LikeCount, &v.LikeCount},
			{"favoriteCount", stats.FavoriteCount, &v.FavoriteCount},
			{"commentCount", stats.CommentCount, &v.CommentCount},
		} {
			n, err := parseCount(c.src, c.name, v.ID)
			if err != nil {
				return nil, err
			}
			*c.dst = &n
		}
	}

	if src.LiveStreamingDetails != nil {
		v.LivestreamDetails = src.LiveStreamingDetails
	}
	if td := src.TopicDetails; td != nil {
		v.TopicCategories = td.TopicCategories
	}
	if rd := src.RecordingDetails; rd != nil && rd.RecordingDate != nil {
		recorded, err := parseTimestamp(*rd.RecordingDate)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", v.ID, err)
		}
		v.RecordingDate = &recorded
	}
	if src.Localizations != nil {
		v.Localizations = src.Localizations
	}

	return v, nil
}

// Link returns the video's permalink; short selects the youtu.be form.
func (v *Video) Link(short bool) string {
	if short {
		return "https://youtu.be/" + v.ID
	}
	return "https://www.youtube.com/watch?v=" + v.ID
}

// Comments lists this video's comment threads through the owning client.
func (v *Video) Comments(opts *CommentOptions) *Iterator[*Comment] {
	return v.yt.Comments(v.ID, opts)
}

// Channel fetches the channel this video belongs to. It requires the
// snippet part to have been requested, since that is where the channel ID
// lives.
func (v *Video) Channel(ctx context.Context, parts ...Part) (*Channel, error) {
	if v.ChannelID == "" {
		return nil, fmt.Errorf("%w: video %s has no channel id; request the snippet part", ErrUsage, v.ID)
	}
	return v.yt.Channel(ctx, v.ChannelID, parts...)
}
