package api

import (
	"net/http"

	"github.com/meet1785/youtube-next/internal/version"
)

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	Mode      string `json:"mode"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.healthManager.ServeHealth(w, r)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.healthManager.ServeReady(w, r)
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	v := s.cfg.Version
	if v == "" {
		v = version.Version
	}
	writeJSON(w, http.StatusOK, VersionResponse{
		Version:   v,
		Commit:    version.Commit,
		BuildDate: version.Date,
		Mode:      s.searcher.Mode(),
	})
}
