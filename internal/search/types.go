// Package search implements the video search proxy: query validation, the
// upstream call or mock fallback, and reshaping into VideoSummary records.
package search

// PageSize is the fixed number of results requested and returned.
const PageSize = 12

// WatchURLPrefix turns a video id into a playable link.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

// VideoSummary is the normalized per-video record returned to clients.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

// WatchURL is the youtube.com page for the video.
func (v VideoSummary) WatchURL() string {
	return WatchURLPrefix + v.ID
}

// Response is the JSON body of a successful search.
type Response struct {
	Items []VideoSummary `json:"items"`
}
