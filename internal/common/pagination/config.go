// Package pagination parses and validates offset/limit windows for list endpoints.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultLimit int // items returned when the request names no limit
	MaxLimit     int // largest accepted limit; 0 means unbounded
}

// DefaultConfig returns limit 20 with no upper bound.
func DefaultConfig() Config {
	return Config{DefaultLimit: 20}
}
