package server

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
)

// Options controls optional server behavior.
type Options struct {
	// RenderMarkdown serves *.md files as HTML unless ?raw is present.
	RenderMarkdown bool
}

// Server serves a directory of static files.
type Server struct {
	router chi.Router
	dir    http.Dir
	files  http.Handler
	md     goldmark.Markdown
	opts   Options
	log    *slog.Logger
}

// NewServer creates a server for the files under root.
func NewServer(root string, opts Options, log *slog.Logger) *Server {
	dir := http.Dir(root)
	s := &Server{
		dir:   dir,
		files: http.FileServer(dir),
		md:    goldmark.New(),
		opts:  opts,
		log:   log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/healthz", s.handleHealth)
	r.Handle("/*", http.HandlerFunc(s.handleFiles))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	if s.opts.RenderMarkdown && isMarkdown(r) {
		if s.serveMarkdown(w, r) {
			return
		}
	}
	s.files.ServeHTTP(w, r)
}

func isMarkdown(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	if r.URL.Query().Has("raw") {
		return false
	}
	ext := strings.ToLower(path.Ext(r.URL.Path))
	return ext == ".md" || ext == ".markdown"
}
