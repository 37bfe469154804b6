package mines

import "fmt"

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// ConfigError reports a board configuration that cannot be played.
type ConfigError struct {
	Params Params
	Reason string
}

// [*ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid board %s: %s", e.Params.Seed(), e.Reason)
}
