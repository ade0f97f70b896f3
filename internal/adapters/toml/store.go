// Package toml implements environment storage on TOML files.
package toml

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ProjectFileName is the project descriptor file name.
	ProjectFileName = "Project.toml"
	// ManifestFileName is the resolved manifest file name.
	ManifestFileName = "Manifest.toml"

	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.EnvStore = (*Store)(nil)

// Store implements ports.EnvStore using TOML files on disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// LoadEnvironment reads Project.toml and Manifest.toml from dir.
func (s *Store) LoadEnvironment(dir string) (*domain.Project, *domain.Manifest, error) {
	rawProject, err := readDocument(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, nil, err
	}
	project, err := domain.ParseProject(rawProject)
	if err != nil {
		return nil, nil, zerr.With(err, "file", ProjectFileName)
	}

	rawManifest, err := readDocument(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, nil, err
	}
	manifest, err := domain.ParseManifest(rawManifest)
	if err != nil {
		return nil, nil, zerr.With(err, "file", ManifestFileName)
	}

	return project, manifest, nil
}

// WriteSegment serializes the pruned pair under dir/subdir. go-toml emits map
// keys in sorted order, so repeated runs produce byte-identical files.
func (s *Store) WriteSegment(dir, subdir string, project *domain.Project, manifest *domain.Manifest) error {
	outDir := filepath.Join(dir, subdir)
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSegmentWriteFailed.Error()), "dir", outDir)
	}

	if err := writeDocument(filepath.Join(outDir, ProjectFileName), project.Raw()); err != nil {
		return err
	}
	return writeDocument(filepath.Join(outDir, ManifestFileName), manifest.Raw())
}

func readDocument(path string) (map[string]any, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvReadFailed.Error()), "path", path)
	}

	var raw map[string]any
	if err := gotoml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvParseFailed.Error()), "path", path)
	}
	return raw, nil
}

func writeDocument(path string, raw map[string]any) error {
	data, err := gotoml.Marshal(raw)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSegmentWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Output files are world-readable on purpose
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSegmentWriteFailed.Error()), "path", path)
	}
	return nil
}
