package feature

import (
	"errors"
	"fmt"
)

// ErrNoGeometry is returned when a mesh has no usable vertex data.
var ErrNoGeometry = errors.New("no geometry")

// AnalysisError describes why a mesh could not be analyzed.
//
// It always matches ErrNoGeometry via errors.Is.
type AnalysisError struct {
	Mesh   string
	Reason string
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyze mesh %q: %v: %s", e.Mesh, ErrNoGeometry, e.Reason)
}

func (e *AnalysisError) Unwrap() error { return ErrNoGeometry }

func noGeometry(name, format string, args ...any) error {
	return &AnalysisError{Mesh: name, Reason: fmt.Sprintf(format, args...)}
}
