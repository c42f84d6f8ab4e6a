package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/building"
)

// ErrRegistrySealed is returned by registrations after Seal.
var ErrRegistrySealed = errors.New("factory: registry is sealed")

// UnsupportedTypeError is returned for a building type with no engine.
type UnsupportedTypeError struct {
	Type      building.Type
	Supported []building.Type
}

func (e *UnsupportedTypeError) Error() string {
	tags := make([]string, len(e.Supported))
	for i, t := range e.Supported {
		tags[i] = string(t)
	}
	return fmt.Sprintf("unsupported building type %q (supported: %s)", e.Type, strings.Join(tags, ", "))
}

// TemplateNotFoundError is returned for an unknown template name.
type TemplateNotFoundError struct {
	Name      string
	Available []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
