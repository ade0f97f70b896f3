package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func diamondManifest(t *testing.T) *domain.Manifest {
	t.Helper()
	// A -> B -> C, A -> C, D isolated
	m, err := domain.ParseManifest(map[string]any{
		"A": []any{entry(idA, []any{"B", "C"})},
		"B": []any{entry(idB, []any{"C"})},
		"C": []any{entry(idC, nil)},
		"D": []any{entry(idD, nil)},
	})
	require.NoError(t, err)
	return m
}

func TestClosure_ReachableSet(t *testing.T) {
	m := diamondManifest(t)

	closure, err := domain.Closure(m, domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)))
	require.NoError(t, err)

	assert.Equal(t, 3, closure.Len())
	assert.True(t, closure.Contains(domain.NewPackageKey("A", idA)))
	assert.True(t, closure.Contains(domain.NewPackageKey("B", idB)))
	assert.True(t, closure.Contains(domain.NewPackageKey("C", idC)))
	assert.False(t, closure.Contains(domain.NewPackageKey("D", idD)))

	// Every member comes back fully qualified.
	for key := range closure.Keys() {
		assert.True(t, key.Qualified(), "%s should be qualified", key)
	}
}

func TestClosure_RootsSurvive(t *testing.T) {
	m := diamondManifest(t)
	roots := domain.NewKeySet(
		domain.NewPackageKey("C", uuid.Nil),
		domain.NewPackageKey("D", idD),
	)

	closure, err := domain.Closure(m, roots)
	require.NoError(t, err)

	// closure(m, R) ⊇ R ∩ keys(m)
	for root := range roots.Keys() {
		assert.True(t, closure.Contains(root), "root %s dropped", root)
	}
	assert.Equal(t, 2, closure.Len())
}

func TestClosure_AbsentRootSilentlyDropped(t *testing.T) {
	m := diamondManifest(t)

	closure, err := domain.Closure(m, domain.NewKeySet(
		domain.NewPackageKey("C", uuid.Nil),
		domain.NewPackageKey("NotInstalled", uuid.Nil),
	))
	require.NoError(t, err)
	assert.Equal(t, 1, closure.Len())
}

func TestClosure_AmbiguousRoot(t *testing.T) {
	m, err := domain.ParseManifest(map[string]any{
		"A": []any{entry(idA, nil), entry(idB, nil)},
	})
	require.NoError(t, err)

	_, err = domain.Closure(m, domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)))
	assert.ErrorIs(t, err, domain.ErrAmbiguousReference)
}

func TestClosure_MissingDependency(t *testing.T) {
	m, err := domain.ParseManifest(map[string]any{
		"A": []any{entry(idA, []any{"Gone"})},
	})
	require.NoError(t, err)

	_, err = domain.Closure(m, domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)))
	require.ErrorIs(t, err, domain.ErrMissingEntry)

	// The error names the package that required the missing dependency.
	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "A:"+idA.String(), zErr.Metadata()["required_by"])
}

func TestClosure_AmbiguousDependency(t *testing.T) {
	m, err := domain.ParseManifest(map[string]any{
		"A": []any{entry(idA, []any{"B"})},
		"B": []any{entry(idB, nil), entry(idC, nil)},
	})
	require.NoError(t, err)

	_, err = domain.Closure(m, domain.NewKeySet(domain.NewPackageKey("A", uuid.Nil)))
	assert.ErrorIs(t, err, domain.ErrAmbiguousReference)
}

func TestClosure_QualifiedDepAcrossVersions(t *testing.T) {
	// Two installed versions of B; A depends on one of them explicitly.
	m, err := domain.ParseManifest(map[string]any{
		"A": []any{entry(idA, map[string]any{"B": idC.String()})},
		"B": []any{entry(idB, nil), entry(idC, nil)},
	})
	require.NoError(t, err)

	closure, err := domain.Closure(m, domain.NewKeySet(domain.NewPackageKey("A", idA)))
	require.NoError(t, err)

	assert.True(t, closure.Contains(domain.NewPackageKey("B", idC)))
	assert.False(t, closure.Contains(domain.NewPackageKey("B", idB)))
	assert.Equal(t, 2, closure.Len())
}

func TestClosure_SharedDepVisitedOnce(t *testing.T) {
	m := diamondManifest(t)

	closure, err := domain.Closure(m, domain.NewKeySet(
		domain.NewPackageKey("A", uuid.Nil),
		domain.NewPackageKey("B", uuid.Nil),
	))
	require.NoError(t, err)

	// C is reachable along two paths but appears once.
	assert.Equal(t, 3, closure.Len())
}
