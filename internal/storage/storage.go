package storage

import (
	"time"

	"scriptest/internal/config"
	"scriptest/internal/domain"
)

// Storage persists and loads test run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration) error
	Load() (*domain.ResultsOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-marking updates).
	SaveOutput(output *domain.ResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
