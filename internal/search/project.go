package search

import (
	"errors"
	"fmt"

	ytapi "google.golang.org/api/youtube/v3"
)

// errShape marks an upstream item that lacks a required field.
var errShape = errors.New("unexpected upstream item shape")

// project reshapes upstream items in order. Any structural defect rejects
// the whole page; partial results are never returned.
func project(items []*ytapi.SearchResult) ([]VideoSummary, error) {
	out := make([]VideoSummary, 0, len(items))
	for i, item := range items {
		v, err := projectItem(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func projectItem(item *ytapi.SearchResult) (VideoSummary, error) {
	switch {
	case item == nil:
		return VideoSummary{}, fmt.Errorf("%w: null item", errShape)
	case item.Id == nil:
		return VideoSummary{}, fmt.Errorf("%w: missing id", errShape)
	case item.Id.VideoId == "":
		return VideoSummary{}, fmt.Errorf("%w: empty id.videoId", errShape)
	case item.Snippet == nil:
		return VideoSummary{}, fmt.Errorf("%w: missing snippet", errShape)
	case item.Snippet.Thumbnails == nil:
		return VideoSummary{}, fmt.Errorf("%w: missing snippet.thumbnails", errShape)
	case item.Snippet.Thumbnails.Medium == nil:
		return VideoSummary{}, fmt.Errorf("%w: missing snippet.thumbnails.medium", errShape)
	case item.Snippet.Thumbnails.Medium.Url == "":
		return VideoSummary{}, fmt.Errorf("%w: empty thumbnail url", errShape)
	case item.Snippet.PublishedAt == "":
		return VideoSummary{}, fmt.Errorf("%w: empty snippet.publishedAt", errShape)
	}

	s := item.Snippet
	return VideoSummary{
		ID:           item.Id.VideoId,
		Title:        s.Title,
		Description:  s.Description,
		Thumbnail:    s.Thumbnails.Medium.Url,
		ChannelTitle: s.ChannelTitle,
		PublishedAt:  s.PublishedAt,
	}, nil
}
