// Package generator runs segment builds over an immutable environment snapshot.
package generator

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Generator builds and writes segments. Segments are independent of one
// another: each works from the same immutable project/manifest snapshot, so
// they run in parallel, and one failing segment never stops the rest.
type Generator struct {
	store  ports.EnvStore
	logger ports.Logger
	tracer trace.Tracer
}

// New creates a new Generator.
func New(store ports.EnvStore, log ports.Logger, tracer trace.Tracer) *Generator {
	return &Generator{store: store, logger: log, tracer: tracer}
}

// Run builds every requested segment from the given environment and writes
// each result under dir. Failed segments are logged and skipped; if any
// failed, ErrGenerationFailed is returned with the failure count.
func (g *Generator) Run(ctx context.Context, dir string, project *domain.Project, manifest *domain.Manifest, segments []domain.SegmentRequest) error {
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	var failed int

	for _, segment := range segments {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, span := g.tracer.Start(ctx, "segment.generate")
			span.SetAttributes(
				attribute.String("segment", segment.Name),
				attribute.Int("roots", segment.Roots.Len()),
			)
			defer span.End()

			if err := g.generate(dir, project, manifest, segment); err != nil {
				span.RecordError(err)
				g.logger.Error(zerr.With(err, "segment", segment.Name))

				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			g.logger.Info("segment written", "segment", segment.Name, "subdir", segment.Subdir)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		aggErr := zerr.Wrap(domain.ErrGenerationFailed, "some segments were not written")
		aggErr = zerr.With(aggErr, "failed", failed)
		return zerr.With(aggErr, "total", len(segments))
	}
	return nil
}

func (g *Generator) generate(dir string, project *domain.Project, manifest *domain.Manifest, segment domain.SegmentRequest) error {
	prunedManifest, prunedProject, err := domain.BuildSegment(project, manifest, segment.Roots)
	if err != nil {
		return err
	}
	return g.store.WriteSegment(dir, segment.Subdir, prunedProject, prunedManifest)
}
