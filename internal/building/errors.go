package building

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when the dimension variant does not
// belong to the configured building type.
var ErrDimensionMismatch = errors.New("dimensions do not match building type")

// InvalidConfigError reports a configuration that cannot be built at all.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	if e.Field == "" {
		return "invalid building config: " + e.Reason
	}
	return fmt.Sprintf("invalid building config: %s %s", e.Field, e.Reason)
}
