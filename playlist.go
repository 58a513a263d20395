package ytdata

// Playlist is a reference to a playlist. Only the ID is carried; the
// client reference exists so the playlist's videos can be listed.
type Playlist struct {
	yt *Client

	ID string `json:"id"`
}

// Link returns the playlist's permalink.
func (p *Playlist) Link() string {
	return "https://www.youtube.com/playlist?list=" + p.ID
}

// Videos lists the playlist's videos through the owning client.
func (p *Playlist) Videos(opts *PlaylistVideosOptions) *Iterator[*Video] {
	return p.yt.PlaylistVideos(p.ID, opts)
}
