package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by arena operations. Callers match them
// with errors.Is.
var (
	// ErrNotFound indicates an identifier that is absent or stale.
	ErrNotFound = errors.New("node not found")

	// ErrCycle indicates a children mutation that would make a node
	// its own ancestor.
	ErrCycle = errors.New("children would create a cycle")

	// ErrInvalidConfiguration indicates a style that no layout can
	// satisfy, such as a negative flex factor.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotComputed indicates a layout query on a node that no
	// ComputeLayout call has visited yet.
	ErrNotComputed = errors.New("layout not yet computed")
)

func notFound(node NodeID) error {
	return fmt.Errorf("%w: %v", ErrNotFound, node)
}

func cycleError(parent, child NodeID) error {
	return fmt.Errorf("%w: %v is an ancestor of %v", ErrCycle, child, parent)
}

func invalidConfig(property string, value float64) error {
	return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfiguration, property, value)
}

func invalidConfigf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
