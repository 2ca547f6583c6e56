package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/sitekit/internal/config"
	"github.com/dgallion1/sitekit/internal/navsync"
	"github.com/dgallion1/sitekit/internal/navtree"
)

func main() {
	watch := flag.Bool("watch", false, "keep running and re-sync when pages change")
	dryRun := flag.Bool("dry-run", false, "report what would change without writing files")
	dumpNav := flag.Bool("dump-nav", false, "print the navigation tree as YAML and exit")
	flag.Parse()

	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *watch && *dryRun {
		log.Error("-watch and -dry-run cannot be combined")
		os.Exit(2)
	}

	tree := navtree.Default()
	if cfg.NavFile != "" {
		t, err := navtree.LoadFile(cfg.NavFile)
		if err != nil {
			log.Error("load navigation", "file", cfg.NavFile, "error", err)
			os.Exit(1)
		}
		tree = t
	}

	if *dumpNav {
		data, err := tree.Marshal()
		if err != nil {
			log.Error("encode navigation", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	var store navsync.FileStore = navsync.NewDirStore(cfg.SiteDir)
	var overlay *navsync.MemStore
	if *dryRun {
		overlay = navsync.NewOverlay(store)
		store = overlay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	syncer := navsync.NewSyncer(tree, store, log)
	results, err := syncer.Run(ctx)
	if err != nil {
		log.Error("sync failed", "error", err)
		os.Exit(1)
	}
	sum := navsync.Summarize(results)
	log.Info("sync complete", "updated", sum.Updated, "unchanged", sum.Unchanged,
		"no_block", sum.NoBlock, "errors", sum.Errors)

	if overlay != nil {
		log.Info("dry run, no files written", "would_update", overlay.Written())
		return
	}

	if *watch {
		w, err := navsync.NewWatcher(cfg.SiteDir, syncer, cfg.WatchDebounce, log)
		if err != nil {
			log.Error("start watcher", "error", err)
			os.Exit(1)
		}
		log.Info("watching for changes", "dir", cfg.SiteDir)
		if err := w.Run(ctx); err != nil {
			log.Error("watch failed", "error", err)
			os.Exit(1)
		}
	}
}
