package ytdata

// OAuth2 scopes accepted by the YouTube Data API.
const (
	ScopeReadonly = "https://www.googleapis.com/auth/youtube.readonly"
	ScopeMembers  = "https://www.googleapis.com/auth/youtube.channel-memberships.creator"
)

// Part names an optional section of an API resource. Which parts a query
// requests controls which sections the response carries and therefore which
// entity fields end up populated. The quota costs below are informational;
// this library does no quota accounting.
type Part string

const (
	PartID                   Part = "id"                   // quota cost: 0
	PartContentDetails       Part = "contentDetails"       // quota cost: 2
	PartSnippet              Part = "snippet"              // quota cost: 2
	PartStatus               Part = "status"               // quota cost: 2
	PartStatistics           Part = "statistics"           // quota cost: 2
	PartReplies              Part = "replies"              // quota cost: 2
	PartLiveStreamingDetails Part = "liveStreamingDetails"
	PartTopicDetails         Part = "topicDetails"
	PartRecordingDetails     Part = "recordingDetails"
	PartLocalizations        Part = "localizations"
)

// PrivacyStatus is the visibility of a video or playlist.
type PrivacyStatus string

const (
	PrivacyPrivate  PrivacyStatus = "private"
	PrivacyUnlisted PrivacyStatus = "unlisted"
	PrivacyPublic   PrivacyStatus = "public"
)

// SafeSearch selects the restricted-content filtering level for searches.
type SafeSearch string

const (
	SafeSearchStrict   SafeSearch = "strict"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchNone     SafeSearch = "none"
)

// Order selects how search results are sorted.
type Order string

const (
	OrderDate         Order = "date"
	OrderRating       Order = "rating"
	OrderRelevance    Order = "relevance"
	OrderAlphabetical Order = "title"
	OrderViews        Order = "viewCount"
)

// CommentOrder selects how comment threads are sorted.
type CommentOrder string

const (
	CommentOrderRelevance CommentOrder = "relevance"
	CommentOrderTime      CommentOrder = "time"
)
