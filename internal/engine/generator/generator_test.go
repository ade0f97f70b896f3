package generator_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/pkgseg/pkgseg/internal/core/ports/mocks"
	"github.com/pkgseg/pkgseg/internal/engine/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

var (
	idA       = uuid.MustParse("7876af07-990d-54b4-ab0e-23690620f79a")
	idB       = uuid.MustParse("682c06a0-de6a-54ab-a142-c8b1cf79cde6")
	projectID = uuid.MustParse("10745b16-79ce-11e8-11f9-ab908b1c3cb5")
)

func fixture(t *testing.T) (*domain.Project, *domain.Manifest) {
	t.Helper()

	p, err := domain.ParseProject(map[string]any{
		"name": "Env",
		"uuid": projectID.String(),
		"deps": map[string]any{"A": idA.String(), "B": idB.String()},
	})
	require.NoError(t, err)

	m, err := domain.ParseManifest(map[string]any{
		"A": []any{map[string]any{"uuid": idA.String()}},
		"B": []any{map[string]any{"uuid": idB.String()}},
	})
	require.NoError(t, err)
	return p, m
}

func testTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("test")
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func TestGenerator_WritesEverySegment(t *testing.T) {
	ctrl := gomock.NewController(t)
	project, manifest := fixture(t)

	store := mocks.NewMockEnvStore(ctrl)
	store.EXPECT().WriteSegment("out", "only-a", gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().WriteSegment("out", "only-b", gomock.Any(), gomock.Any()).Return(nil)

	gen := generator.New(store, quietLogger(ctrl), testTracer())
	err := gen.Run(context.Background(), "out", project, manifest, []domain.SegmentRequest{
		{Name: "a", Roots: domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)), Subdir: "only-a"},
		{Name: "b", Roots: domain.NewKeySet(domain.NewPackageKey("B", uuid.Nil)), Subdir: "only-b"},
	})
	require.NoError(t, err)
}

func TestGenerator_PrunesBeforeWriting(t *testing.T) {
	ctrl := gomock.NewController(t)
	project, manifest := fixture(t)

	store := mocks.NewMockEnvStore(ctrl)
	store.EXPECT().
		WriteSegment("out", "only-a", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ string, p *domain.Project, m *domain.Manifest) error {
			assert.Contains(t, m.Packages, "A")
			assert.NotContains(t, m.Packages, "B")
			assert.Equal(t, map[string]uuid.UUID{"A": idA}, p.Deps)
			return nil
		})

	gen := generator.New(store, quietLogger(ctrl), testTracer())
	err := gen.Run(context.Background(), "out", project, manifest, []domain.SegmentRequest{
		{Name: "a", Roots: domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)), Subdir: "only-a"},
	})
	require.NoError(t, err)
}

func TestGenerator_FailedSegmentSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	project, _ := fixture(t)

	store := mocks.NewMockEnvStore(ctrl)
	// The good segment is still written even though its sibling fails.
	store.EXPECT().WriteSegment("out", "good", gomock.Any(), gomock.Any()).Return(nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).Times(1)

	bad := domain.SegmentRequest{
		Name: "bad",
		// Unqualified root with two manifest entries is a resolution error.
		Roots:  domain.NewKeySet(domain.NewPackageKey("Dup", uuid.Nil)),
		Subdir: "bad",
	}
	two, err := domain.ParseManifest(map[string]any{
		"A":   []any{map[string]any{"uuid": idA.String()}},
		"Dup": []any{map[string]any{"uuid": idB.String()}, map[string]any{"uuid": projectID.String()}},
	})
	require.NoError(t, err)

	gen := generator.New(store, log, testTracer())
	err = gen.Run(context.Background(), "out", project, two, []domain.SegmentRequest{
		bad,
		{Name: "good", Roots: domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)), Subdir: "good"},
	})

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}
