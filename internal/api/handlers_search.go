package api

import (
	"errors"
	"net/http"

	"github.com/meet1785/youtube-next/internal/log"
	"github.com/meet1785/youtube-next/internal/search"
)

// handleSearch serves GET /api/search?q=<query>.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	query := r.URL.Query().Get("q")

	items, err := s.searcher.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, search.ErrInvalidRequest) {
			writeError(w, http.StatusBadRequest, msgQueryRequired)
			return
		}

		ev := logger.Error().Err(err).
			Str(log.FieldEvent, "search.failed").
			Str(log.FieldMode, s.searcher.Mode()).
			Int("query_len", len(query))
		var se *search.Error
		if errors.As(err, &se) && se.Status != 0 {
			ev = ev.Int(log.FieldStatus, se.Status).Str(log.FieldStatusText, se.StatusText)
		}
		ev.Msg("error fetching videos")

		writeError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	if items == nil {
		items = []search.VideoSummary{}
	}
	writeJSON(w, http.StatusOK, search.Response{Items: items})
}
