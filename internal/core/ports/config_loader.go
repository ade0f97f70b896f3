package ports

import "github.com/pkgseg/pkgseg/internal/core/domain"

// SegmentsLoader defines the interface for loading the segments configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SegmentsLoader interface {
	// Load reads the segments config file and returns the requested segments,
	// sorted by name for deterministic processing.
	Load(path string) ([]domain.SegmentRequest, error)
}
