package shapesim

import (
	"errors"
	"fmt"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/library"
	"github.com/hupe1980/shapesim/resource"
)

var (
	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must not be negative")

	// ErrNotFound is returned when a shape name is not in the library.
	ErrNotFound = errors.New("shape not found")

	// ErrInvalidName is returned when a shape name is empty.
	ErrInvalidName = errors.New("invalid shape name")

	// ErrResourceExhausted is returned when an extraction can never fit the
	// configured resource limits.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrNoGeometry is returned when a mesh has no usable vertex data.
	// It is the same value as feature.ErrNoGeometry.
	ErrNoGeometry = feature.ErrNoGeometry
)

// ErrAnalysis indicates a mesh was rejected before it reached the library.
//
// The original underlying error can be accessed via errors.Unwrap; it
// matches ErrNoGeometry.
type ErrAnalysis struct {
	Name   string
	Reason string
	cause  error
}

func (e *ErrAnalysis) Error() string {
	return fmt.Sprintf("cannot add shape %q: %s", e.Name, e.Reason)
}

func (e *ErrAnalysis) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ae *feature.AnalysisError
	if errors.As(err, &ae) {
		return &ErrAnalysis{Name: ae.Mesh, Reason: ae.Reason, cause: err}
	}
	if errors.Is(err, library.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
