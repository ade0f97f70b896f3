package ports

import "github.com/pkgseg/pkgseg/internal/core/domain"

// EnvStore defines the interface for reading and writing package environments.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EnvStore interface {
	// LoadEnvironment reads Project.toml and Manifest.toml from the given
	// directory and returns fresh, independent values.
	LoadEnvironment(dir string) (*domain.Project, *domain.Manifest, error)

	// WriteSegment serializes a pruned (project, manifest) pair under
	// dir/subdir, creating the subdirectory if needed. Output is
	// deterministic: stable key ordering for reproducible diffs.
	WriteSegment(dir, subdir string, project *domain.Project, manifest *domain.Manifest) error
}
