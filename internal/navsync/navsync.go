// Package navsync rewrites the sidebar navigation of every page in a
// static site from a single navigation tree.
package navsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/sitekit/internal/navblock"
	"github.com/dgallion1/sitekit/internal/navtree"
)

// ErrNoBlock is returned when a page has no sidebar block.
var ErrNoBlock = errors.New("no sidebar found")

// Status is the outcome for one file.
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusNoBlock   Status = "no_block"
	StatusError     Status = "error"
)

// Result records what happened to one file.
type Result struct {
	Path    string
	Status  Status
	Variant navtree.Variant
	Active  string // key of the link marked active, if any
	Err     error
}

// Summary is the per-status tally of a run.
type Summary struct {
	Updated   int
	Unchanged int
	NoBlock   int
	Errors    int
}

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusUpdated:
			s.Updated++
		case StatusUnchanged:
			s.Unchanged++
		case StatusNoBlock:
			s.NoBlock++
		case StatusError:
			s.Errors++
		}
	}
	return s
}

// Syncer applies a navigation tree to the pages in a FileStore.
type Syncer struct {
	tree  *navtree.Tree
	store FileStore
	log   *slog.Logger
}

// NewSyncer creates a Syncer that rewrites pages in store from tree.
func NewSyncer(tree *navtree.Tree, store FileStore, log *slog.Logger) *Syncer {
	return &Syncer{tree: tree, store: store, log: log}
}

// Run processes every .html file outside the skip set, one at a time.
// Per-file failures are reported in the results and do not stop the run;
// the returned error is only set when the walk itself fails or ctx ends.
func (s *Syncer) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	err := s.store.Walk(func(rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !strings.HasSuffix(rel, ".html") {
			return nil
		}
		if s.tree.Skipped(rel) {
			s.log.Debug("skipped", "path", rel, "reason", "skip list")
			return nil
		}
		r := s.SyncFile(rel)
		s.report(r)
		results = append(results, r)
		return nil
	})
	if err != nil {
		return results, fmt.Errorf("walk site: %w", err)
	}
	return results, nil
}

// SyncFile reads, transforms and, if anything changed, rewrites one file.
func (s *Syncer) SyncFile(rel string) Result {
	r := Result{Path: rel, Variant: s.tree.VariantFor(rel)}

	content, err := s.store.ReadFile(rel)
	if err != nil {
		r.Status, r.Err = StatusError, fmt.Errorf("read: %w", err)
		return r
	}

	out, active, err := s.Transform(rel, content)
	if errors.Is(err, ErrNoBlock) {
		r.Status, r.Err = StatusNoBlock, err
		return r
	}
	if err != nil {
		r.Status, r.Err = StatusError, err
		return r
	}
	r.Active = active

	if string(out) == string(content) {
		r.Status = StatusUnchanged
		return r
	}
	if err := s.store.WriteFile(rel, out); err != nil {
		r.Status, r.Err = StatusError, fmt.Errorf("write: %w", err)
		return r
	}
	r.Status = StatusUpdated
	return r
}

// Transform replaces every sidebar block in content with the rendered tree
// for the page at rel, keeping the page's active link. It returns the new
// content and the key of the link marked active.
func (s *Syncer) Transform(rel string, content []byte) ([]byte, string, error) {
	blocks := navblock.Find(content, navtree.ClassName)
	if len(blocks) == 0 {
		return nil, "", ErrNoBlock
	}

	var active string
	if href, ok := navblock.Active(blocks); ok {
		if _, found := s.tree.Find(href); found {
			active = s.tree.Key(href)
		} else {
			s.log.Debug("active link not in navigation", "path", rel, "href", href)
		}
	}

	v := s.tree.VariantFor(rel)
	out := navblock.Replace(content, blocks, func(b navblock.Block) string {
		out := s.tree.Render(v, active, b.Indent)
		if b.EOL == "\r\n" {
			out = strings.ReplaceAll(out, "\n", "\r\n")
		}
		return out
	})
	return out, active, nil
}

func (s *Syncer) report(r Result) {
	switch r.Status {
	case StatusUpdated:
		s.log.Info("updated", "path", r.Path, "variant", r.Variant.String(), "active", r.Active)
	case StatusUnchanged:
		s.log.Info("unchanged", "path", r.Path, "variant", r.Variant.String())
	case StatusNoBlock:
		s.log.Warn("skipped: no sidebar found", "path", r.Path)
	case StatusError:
		s.log.Error("update failed", "path", r.Path, "error", r.Err)
	}
}
