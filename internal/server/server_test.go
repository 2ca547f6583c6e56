package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, opts Options) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"index.html":          "<h1>home</h1>",
		"patterns/stack.html": "<h1>stack</h1>",
		"notes/README.md":     "# Notes\n\nSome *text*.",
		"notes/script.md":     "<script>alert(1)</script>\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewServer(root, opts, slog.New(slog.NewTextHandler(io.Discard, nil))), root
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestServer_StaticFiles(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := get(t, s, "/patterns/stack.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "<h1>stack</h1>" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}

	rec = get(t, s, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "home") {
		t.Errorf("expected index page at /, got %d %q", rec.Code, rec.Body.String())
	}

	if rec := get(t, s, "/missing.html"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServer_MarkdownRendered(t *testing.T) {
	s, _ := newTestServer(t, Options{RenderMarkdown: true})

	rec := get(t, s, "/notes/README.md")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h1>Notes</h1>") || !strings.Contains(body, "<em>text</em>") {
		t.Errorf("expected rendered markdown, got %q", body)
	}
	if !strings.Contains(body, "<title>README.md</title>") {
		t.Error("expected file name as title")
	}
}

func TestServer_MarkdownRawHTMLOmitted(t *testing.T) {
	s, _ := newTestServer(t, Options{RenderMarkdown: true})
	rec := get(t, s, "/notes/script.md")
	if strings.Contains(rec.Body.String(), "<script>alert") {
		t.Error("expected raw html in markdown to be omitted")
	}
}

func TestServer_MarkdownRawQuery(t *testing.T) {
	s, _ := newTestServer(t, Options{RenderMarkdown: true})
	rec := get(t, s, "/notes/README.md?raw")
	if rec.Body.String() != "# Notes\n\nSome *text*." {
		t.Errorf("expected raw markdown, got %q", rec.Body.String())
	}
}

func TestServer_MarkdownDisabled(t *testing.T) {
	s, _ := newTestServer(t, Options{})
	rec := get(t, s, "/notes/README.md")
	if rec.Body.String() != "# Notes\n\nSome *text*." {
		t.Errorf("expected raw markdown, got %q", rec.Body.String())
	}
}

func TestServer_MarkdownMissing(t *testing.T) {
	s, _ := newTestServer(t, Options{RenderMarkdown: true})
	if rec := get(t, s, "/nope.md"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short and stout")
	}))
	get(t, h, "/pot")

	line := buf.String()
	for _, want := range []string{`"path":"/pot"`, `"status":418`, `"bytes":15`} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %s in log line %s", want, line)
		}
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, BannerInfo{Dir: "/srv/site", Port: 8001, LANIP: "192.168.1.20"})
	out := buf.String()
	for _, want := range []string{
		"Serving: /srv/site",
		"http://localhost:8001",
		"http://192.168.1.20:8001",
		"Ctrl+C",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in banner:\n%s", want, out)
		}
	}
}
