// Package config provides the segments configuration loader.
package config

import (
	"os"
	"sort"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/pkgseg/pkgseg/internal/core/domain"
	"github.com/pkgseg/pkgseg/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFileName is the conventional name of the segments config file.
const DefaultFileName = "PkgSegments.toml"

var _ ports.SegmentsLoader = (*Loader)(nil)

// Loader implements ports.SegmentsLoader using a TOML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the segments config file at path. Dep strings are parsed into
// PackageKeys eagerly so a malformed key surfaces here rather than in the
// middle of a build. Segments come back sorted by name.
func (l *Loader) Load(path string) ([]domain.SegmentRequest, error) {
	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file SegmentsFile
	if err := gotoml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if len(file) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSegmentsConfigured, "failed to load segments config"), "path", path)
	}

	segments := make([]domain.SegmentRequest, 0, len(file))
	for name, dto := range file {
		segment, err := parseSegment(name, dto)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}

	sort.Slice(segments, func(i, j int) bool { return segments[i].Name < segments[j].Name })

	l.logger.Debug("segments config loaded", "path", path, "segments", len(segments))
	return segments, nil
}

func parseSegment(name string, dto SegmentDTO) (domain.SegmentRequest, error) {
	if len(dto.Deps) == 0 {
		return domain.SegmentRequest{}, zerr.With(zerr.Wrap(domain.ErrInvalidSegmentConfig, "segment has no deps"), "segment", name)
	}
	if dto.Subdir == "" {
		return domain.SegmentRequest{}, zerr.With(zerr.Wrap(domain.ErrInvalidSegmentConfig, "segment has no subdir"), "segment", name)
	}

	roots := domain.NewKeySet()
	for _, dep := range dto.Deps {
		key, err := domain.ParseKey(dep)
		if err != nil {
			return domain.SegmentRequest{}, zerr.With(err, "segment", name)
		}
		roots.Add(key)
	}

	return domain.SegmentRequest{Name: name, Roots: roots, Subdir: dto.Subdir}, nil
}
