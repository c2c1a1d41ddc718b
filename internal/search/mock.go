package search

import (
	"fmt"
	"time"
)

const (
	mockThumbnail = "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg"
	day           = 24 * time.Hour

	// publishedLayout is UTC ISO-8601 with millisecond precision.
	publishedLayout = "2006-01-02T15:04:05.000Z"
)

// mockResults synthesizes PageSize entries for query. Entry i is published
// i days before now, so timestamps strictly decrease with the index.
func mockResults(query string, now time.Time) []VideoSummary {
	now = now.UTC()
	description := fmt.Sprintf("This is a mock video result for \"%s\". In production, configure YOUTUBE_API_KEY environment variable to fetch real YouTube data.", query)

	out := make([]VideoSummary, PageSize)
	for i := range out {
		out[i] = VideoSummary{
			ID:           fmt.Sprintf("mock-video-%d", i),
			Title:        fmt.Sprintf("%s - Sample Video %d", query, i+1),
			Description:  description,
			Thumbnail:    mockThumbnail,
			ChannelTitle: fmt.Sprintf("Demo Channel %d", i+1),
			PublishedAt:  now.Add(-time.Duration(i) * day).Format(publishedLayout),
		}
	}
	return out
}
