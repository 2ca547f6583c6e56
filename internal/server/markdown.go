package server

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
	"path"
)

var markdownPage = template.Must(template.New("md").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main class="markdown-body">
{{.Body}}
</main>
</body>
</html>
`))

// serveMarkdown renders a markdown file with goldmark. It reports false
// when the file cannot be opened as a regular file, leaving the request to
// the file server so that errors and redirects stay consistent.
func (s *Server) serveMarkdown(w http.ResponseWriter, r *http.Request) bool {
	name := path.Clean("/" + r.URL.Path)
	f, err := s.dir.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	src, err := io.ReadAll(f)
	if err != nil {
		s.log.Error("read markdown", "path", name, "error", err)
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return true
	}

	var body bytes.Buffer
	if err := s.md.Convert(src, &body); err != nil {
		s.log.Error("render markdown", "path", name, "error", err)
		http.Error(w, "failed to render markdown", http.StatusInternalServerError)
		return true
	}

	var out bytes.Buffer
	err = markdownPage.Execute(&out, map[string]any{
		"Title": path.Base(name),
		"Body":  template.HTML(body.String()),
	})
	if err != nil {
		s.log.Error("render page", "path", name, "error", err)
		http.Error(w, "failed to render markdown", http.StatusInternalServerError)
		return true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, name+".html", info.ModTime(), bytes.NewReader(out.Bytes()))
	return true
}
