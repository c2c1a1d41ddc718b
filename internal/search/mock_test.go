package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meet1785/youtube-next/internal/config"
)

func newMockService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), config.YouTubeConfig{}, opts...)
	require.NoError(t, err)
	return svc
}

func TestSearch_MockModeShape(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 30, 0, 123456789, time.UTC)
	svc := newMockService(t, WithClock(func() time.Time { return now }))
	assert.Equal(t, "mock", svc.Mode())

	items, err := svc.Search(context.Background(), "cats")
	require.NoError(t, err)
	require.Len(t, items, PageSize)

	for i, v := range items {
		assert.Equal(t, fmt.Sprintf("mock-video-%d", i), v.ID)
		assert.Equal(t, fmt.Sprintf("cats - Sample Video %d", i+1), v.Title)
		assert.Equal(t, fmt.Sprintf("Demo Channel %d", i+1), v.ChannelTitle)
		assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/mqdefault.jpg", v.Thumbnail)
		assert.Equal(t, `This is a mock video result for "cats". In production, configure YOUTUBE_API_KEY environment variable to fetch real YouTube data.`, v.Description)
	}

	assert.Equal(t, "2024-05-10T08:30:00.123Z", items[0].PublishedAt)
	assert.Equal(t, "2024-05-09T08:30:00.123Z", items[1].PublishedAt)
	assert.Equal(t, "2024-04-29T08:30:00.123Z", items[11].PublishedAt)
}

func TestSearch_MockPublishedAtStrictlyDecreasing(t *testing.T) {
	items, err := newMockService(t).Search(context.Background(), "anything")
	require.NoError(t, err)

	prev := time.Time{}
	for i, v := range items {
		ts, err := time.Parse(publishedLayout, v.PublishedAt)
		require.NoError(t, err, "item %d", i)
		if i > 0 {
			assert.True(t, ts.Before(prev), "item %d must be older than item %d", i, i-1)
			assert.Equal(t, 24*time.Hour, prev.Sub(ts))
		}
		prev = ts
	}
}

func TestSearch_MockIdempotentExceptTimestamps(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.Date(2024, 1, 1, 0, 0, calls, 0, time.UTC)
	}
	svc := newMockService(t, WithClock(clock))

	first, err := svc.Search(context.Background(), "go tutorials")
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), "go tutorials")
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "clock is sampled once per call")
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(VideoSummary{}, "PublishedAt")); diff != "" {
		t.Errorf("mock results differ (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, first[0].PublishedAt, second[0].PublishedAt)
}

func TestSearch_MockKeepsQueryVerbatim(t *testing.T) {
	items, err := newMockService(t).Search(context.Background(), `say "hi" & <go>`)
	require.NoError(t, err)
	assert.Equal(t, `say "hi" & <go> - Sample Video 1`, items[0].Title)
	assert.Contains(t, items[0].Description, `for "say "hi" & <go>".`)
}

func TestSearch_MockUniqueIDs(t *testing.T) {
	items, err := newMockService(t).Search(context.Background(), "x")
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, v := range items {
		assert.False(t, seen[v.ID], "duplicate id %s", v.ID)
		seen[v.ID] = true
	}
}

func TestVideoSummary_WatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", VideoSummary{ID: "abc123"}.WatchURL())
}
