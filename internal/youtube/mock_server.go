package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	ytapi "google.golang.org/api/youtube/v3"
)

// SearchPath is the path the client requests relative to its base URL.
const SearchPath = "/youtube/v3/search"

// MockServer is a configurable stand-in for the Data API search endpoint.
type MockServer struct {
	*httptest.Server
	mu       sync.RWMutex
	items    []*ytapi.SearchResult
	status   int
	rawBody  string
	delay    time.Duration
	requests []url.Values
	apiKeys  []string
}

// NewMockServer starts a server that answers search.list with
// SampleResults(3).
func NewMockServer() *MockServer {
	m := &MockServer{items: SampleResults(3)}
	mux := http.NewServeMux()
	mux.HandleFunc(SearchPath, m.handleSearch)
	m.Server = httptest.NewServer(mux)
	return m
}

// BaseURL is the value to configure as the client base URL.
func (m *MockServer) BaseURL() string { return m.URL + "/" }

// SetItems replaces the items returned on success.
func (m *MockServer) SetItems(items []*ytapi.SearchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
}

// SetStatus makes every call fail with the given HTTP status.
// Zero restores normal behaviour.
func (m *MockServer) SetStatus(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = code
}

// SetRawBody makes every call answer 200 with body verbatim.
func (m *MockServer) SetRawBody(body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rawBody = body
}

// SetDelay delays each response, honouring client cancellation.
func (m *MockServer) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// Requests returns the query parameters of every request received.
func (m *MockServer) Requests() []url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]url.Values, len(m.requests))
	copy(out, m.requests)
	return out
}

// APIKeys returns the credential header of every request received.
func (m *MockServer) APIKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.apiKeys))
	copy(out, m.apiKeys)
	return out
}

// RequestCount is the number of search calls received.
func (m *MockServer) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

func (m *MockServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requests = append(m.requests, r.URL.Query())
	m.apiKeys = append(m.apiKeys, r.Header.Get(HeaderAPIKey))
	items, status, raw, delay := m.items, m.status, m.rawBody, m.delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case status != 0:
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    status,
				"message": fmt.Sprintf("mock failure %d", status),
			},
		})
	case raw != "":
		_, _ = w.Write([]byte(raw))
	default:
		_ = json.NewEncoder(w).Encode(&ytapi.SearchListResponse{
			Kind:  "youtube#searchListResponse",
			Items: items,
		})
	}
}

// SampleResults returns n well-formed search results with ids vid-0..vid-(n-1).
func SampleResults(n int) []*ytapi.SearchResult {
	out := make([]*ytapi.SearchResult, 0, n)
	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range n {
		id := fmt.Sprintf("vid-%d", i)
		out = append(out, &ytapi.SearchResult{
			Kind: "youtube#searchResult",
			Id:   &ytapi.ResourceId{Kind: "youtube#video", VideoId: id},
			Snippet: &ytapi.SearchResultSnippet{
				Title:        fmt.Sprintf("Result %d", i+1),
				Description:  fmt.Sprintf("Description %d", i+1),
				ChannelTitle: fmt.Sprintf("Channel %d", i+1),
				PublishedAt:  published.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
				Thumbnails: &ytapi.ThumbnailDetails{
					Medium: &ytapi.Thumbnail{
						Url:    fmt.Sprintf("https://i.ytimg.com/vi/%s/mqdefault.jpg", id),
						Width:  320,
						Height: 180,
					},
				},
			},
		})
	}
	return out
}
