package scoring

import "fmt"

// ConfigError reports a scorer configuration that violates the weight table
// contract. It marks a caller mistake: scoring itself never fails on sparse
// or malformed resume content.
type ConfigError struct {
	Message string
	Total   float64
}

func (e *ConfigError) Error() string {
	if e.Total != 0 {
		return fmt.Sprintf("scoring config error: %s (got %g)", e.Message, e.Total)
	}
	return fmt.Sprintf("scoring config error: %s", e.Message)
}
