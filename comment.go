package ytdata

import (
	"encoding/json"
	"fmt"
	"time"
)

// Comment is one comment, either a top-level thread comment or a reply.
// Replies is populated only on thread items fetched with the replies part.
type Comment struct {
	ID string `json:"id"`

	// part: snippet
	AuthorDisplayName string    `json:"author_display_name,omitempty"`
	AuthorChannelID   string    `json:"author_channel_id,omitempty"`
	Body              string    `json:"body,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitzero"`

	// part: replies
	Replies []*Comment `json:"replies,omitempty"`
}

// commentThreadEnvelope probes for the thread wrapper shape: a thread item
// nests its actual comment under snippet.topLevelComment and carries its
// replies alongside.
type commentThreadEnvelope struct {
	Snippet *struct {
		TopLevelComment json.RawMessage `json:"topLevelComment"`
	} `json:"snippet"`
	Replies *struct {
		Comments []json.RawMessage `json:"comments"`
	} `json:"replies"`
}

type commentResource struct {
	ID      *string `json:"id"`
	Snippet *struct {
		AuthorDisplayName *string `json:"authorDisplayName"`
		AuthorChannelID   *struct {
			Value *string `json:"value"`
		} `json:"authorChannelId"`
		TextDisplay *string `json:"textDisplay"`
		PublishedAt *string `json:"publishedAt"`
	} `json:"snippet"`
}

// newComment maps one raw comment item. A thread wrapper is detected by the
// nested top-level-comment key; its replies are mapped recursively with
// this same function before the wrapper is unwrapped.
func newComment(raw json.RawMessage) (*Comment, error) {
	var env commentThreadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding comment: %v", ErrMalformedResponse, err)
	}

	var replies []*Comment
	if env.Snippet != nil && len(env.Snippet.TopLevelComment) > 0 {
		if env.Replies != nil {
			replies = make([]*Comment, 0, len(env.Replies.Comments))
			for _, r := range env.Replies.Comments {
				reply, err := newComment(r)
				if err != nil {
					return nil, err
				}
				replies = append(replies, reply)
			}
		}
		raw = env.Snippet.TopLevelComment
	}

	var src commentResource
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("%w: decoding comment: %v", ErrMalformedResponse, err)
	}
	if src.ID == nil || *src.ID == "" {
		return nil, fmt.Errorf("%w: comment item has no id", ErrMalformedResponse)
	}

	c := &Comment{ID: *src.ID, Replies: replies}

	if sn := src.Snippet; sn != nil {
		if sn.AuthorDisplayName == nil || sn.AuthorChannelID == nil || sn.AuthorChannelID.Value == nil ||
			sn.TextDisplay == nil || sn.PublishedAt == nil {
			return nil, fmt.Errorf("%w: comment %s snippet is missing required fields", ErrMalformedResponse, c.ID)
		}
		created, err := parseTimestamp(*sn.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", c.ID, err)
		}
		c.AuthorDisplayName = *sn.AuthorDisplayName
		c.AuthorChannelID = *sn.AuthorChannelID.Value
		c.Body = *sn.TextDisplay
		c.CreatedAt = created
	}

	return c, nil
}

// newCommentWith adapts newComment to the iterator mapper signature;
// comments carry no client back-reference.
func newCommentWith(raw json.RawMessage, _ *Client) (*Comment, error) {
	return newComment(raw)
}
