// Package manage serves a built portfolio over HTTP and exposes a rebuild
// hook for local curation.
package manage

import (
	"net/http"
	"sync"

	"k8s.io/klog/v2"

	"github.com/lensmark/lensmark/pkg/gallery"
)

// Builder rebuilds the site; it is injected so the server stays testable.
type Builder func() error

// Server serves the generated site during local curation.
type Server struct {
	c     *gallery.Config
	build Builder

	mu sync.Mutex
}

// New creates a new server.
func New(c *gallery.Config, build Builder) *Server {
	return &Server{c: c, build: build}
}

// Handler returns the full route mux: static site plus /rebuild.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.c.OutDir)))
	mux.HandleFunc("/rebuild", s.RebuildHandler())
	return mux
}

// RebuildHandler re-collects and re-renders the site. Rebuilds are
// serialized; concurrent requests queue rather than interleave.
func (s *Server) RebuildHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		klog.Infof("rebuild requested by %s", r.RemoteAddr)
		if err := s.build(); err != nil {
			klog.Errorf("rebuild failed: %v", err)
			http.Error(w, "rebuild failed", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("rebuilt\n")); err != nil {
			klog.Errorf("write response: %v", err)
		}
	}
}

// ListenAndServe blocks serving the site on addr.
func (s *Server) ListenAndServe(addr string) error {
	klog.Infof("Listening on %s...", addr)
	return http.ListenAndServe(addr, s.Handler())
}
