// Package app implements the application layer for pkgseg.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pkgseg/pkgseg/internal/adapters/toml"    //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"github.com/pkgseg/pkgseg/internal/engine/generator"
	"go.trai.ch/zerr"
)

// debounceWindow is how long watch mode waits for file events to settle
// before regenerating.
const debounceWindow = 250 * time.Millisecond

// App represents the main application logic.
type App struct {
	segments ports.SegmentsLoader
	store    ports.EnvStore
	gen      *generator.Generator
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	segments ports.SegmentsLoader,
	store ports.EnvStore,
	gen *generator.Generator,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		segments: segments,
		store:    store,
		gen:      gen,
		watcher:  w,
		logger:   log,
	}
}

// Options configures a generation run.
type Options struct {
	// Dir is the environment directory holding Project.toml and Manifest.toml.
	// Segment output is written beneath it.
	Dir string

	// ConfigPath is the path to the segments config file.
	ConfigPath string
}

// Generate builds the named segments, or every configured segment when names
// is empty.
func (a *App) Generate(ctx context.Context, names []string, opts Options) error {
	segments, err := a.loadSegments(names, opts)
	if err != nil {
		return err
	}

	project, manifest, err := a.store.LoadEnvironment(opts.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load environment")
	}

	return a.gen.Run(ctx, opts.Dir, project, manifest, segments)
}

// Watch regenerates the named segments whenever the environment or segments
// config changes. It blocks until ctx is canceled. Generation failures are
// logged but do not stop the watch loop.
func (a *App) Watch(ctx context.Context, names []string, opts Options) error {
	if err := a.Generate(ctx, names, opts); err != nil {
		a.logger.Error(err)
	}

	paths := []string{
		filepath.Join(opts.Dir, toml.ProjectFileName),
		filepath.Join(opts.Dir, toml.ManifestFileName),
		opts.ConfigPath,
	}
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching for changes", "dir", opts.Dir)

	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		a.logger.Info("environment changed, regenerating", "files", len(paths))
		if err := a.Generate(ctx, names, opts); err != nil {
			a.logger.Error(err)
		}
	})
	defer debouncer.Flush()

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

// List writes a human-readable table of the configured segments to w.
// Output is deterministic: segments sorted by name, roots rendered sorted.
func (a *App) List(w io.Writer, opts Options) error {
	segments, err := a.segments.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEGMENT\tSUBDIR\tDEPS")
	for _, segment := range segments {
		deps := make([]string, 0, segment.Roots.Len())
		for key := range segment.Roots.Keys() {
			deps = append(deps, key.String())
		}
		sort.Strings(deps)

		fmt.Fprintf(tw, "%s\t%s\t", segment.Name, segment.Subdir)
		for i, dep := range deps {
			if i > 0 {
				fmt.Fprint(tw, ", ")
			}
			fmt.Fprint(tw, dep)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func (a *App) loadSegments(names []string, opts Options) ([]domain.SegmentRequest, error) {
	segments, err := a.segments.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load segments config")
	}
	if len(names) == 0 {
		return segments, nil
	}

	byName := make(map[string]domain.SegmentRequest, len(segments))
	for _, segment := range segments {
		byName[segment.Name] = segment
	}

	selected := make([]domain.SegmentRequest, 0, len(names))
	for _, name := range names {
		segment, ok := byName[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSegment, "failed to select segments"), "segment", name)
		}
		selected = append(selected, segment)
	}
	return selected, nil
}
