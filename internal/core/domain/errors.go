package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidKeyFormat is returned when a textual package key has more than one ':' separator.
	ErrInvalidKeyFormat = zerr.New("invalid package key format, expected 'name' or 'name:uuid'")

	// ErrInvalidKeyID is returned when the id part of a package key is not a valid UUID.
	ErrInvalidKeyID = zerr.New("invalid package id")

	// ErrAmbiguousReference is returned when an unqualified package reference matches
	// more than one manifest entry for that name.
	ErrAmbiguousReference = zerr.New("ambiguous package reference")

	// ErrMissingEntry is returned when a dependency reference matches no manifest entry.
	ErrMissingEntry = zerr.New("package not found in manifest")

	// ErrMissingField is returned when a consumed input table lacks a required field.
	ErrMissingField = zerr.New("missing required field")

	// ErrInvalidShape is returned when an input table or value does not have the expected shape.
	ErrInvalidShape = zerr.New("malformed table")

	// ErrUnknownSegment is returned when a requested segment name is not configured.
	ErrUnknownSegment = zerr.New("unknown segment")

	// ErrNoSegmentsConfigured is returned when the segments file defines no segments.
	ErrNoSegmentsConfigured = zerr.New("no segments configured")

	// ErrInvalidSegmentConfig is returned when a segment definition is incomplete.
	ErrInvalidSegmentConfig = zerr.New("invalid segment configuration")

	// ErrGenerationFailed is returned when one or more segment builds failed.
	ErrGenerationFailed = zerr.New("segment generation failed")

	// ErrEnvReadFailed is returned when a Project.toml or Manifest.toml cannot be read.
	ErrEnvReadFailed = zerr.New("failed to read environment file")

	// ErrEnvParseFailed is returned when a Project.toml or Manifest.toml cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment file")

	// ErrSegmentWriteFailed is returned when a segment output file cannot be written.
	ErrSegmentWriteFailed = zerr.New("failed to write segment file")

	// ErrConfigReadFailed is returned when the segments config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read segments config")

	// ErrConfigParseFailed is returned when the segments config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse segments config")
)
