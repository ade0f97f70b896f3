package config

// SegmentsFile represents the structure of the PkgSegments.toml file.
type SegmentsFile map[string]SegmentDTO

// SegmentDTO represents one segment definition in the configuration.
type SegmentDTO struct {
	// Deps are the requested root packages, as "name" or "name:uuid" strings.
	Deps []string `toml:"deps"`

	// Subdir is the output subdirectory the segment pair is written to.
	Subdir string `toml:"subdir"`
}
