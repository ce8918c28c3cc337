// Package config provides environment-variable loaders with validation and
// fallback. Loaders never fail: an unparsable or invalid value falls back to
// the default and the returned Result carries a warning for the caller to log.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Result is a loaded configuration value plus any warnings produced while
// loading it.
//
// Example:
//
//	r := GetEnvDuration("JWT_EXPIRY", time.Hour, ValidatePositiveDuration)
//	for _, w := range r.Warnings {
//	    logger.Warn("configuration fallback", slog.String("warning", w))
//	}
//	expiry := r.Value
type Result[T any] struct {
	Value    T
	Warnings []string
}

// FallbackApplied reports whether the default replaced an invalid value.
func (r Result[T]) FallbackApplied() bool {
	return len(r.Warnings) > 0
}

// load reads key, parses it and validates it.
// Warning format:
//
//	"Invalid {key}='{value}': {error}, falling back to default '{default}'"
func load[T any](key string, def T, parse func(string) (T, error), validate func(T) error) Result[T] {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return Result[T]{Value: def}
	}

	v, err := parse(raw)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		return Result[T]{
			Value:    def,
			Warnings: []string{fmt.Sprintf("Invalid %s='%s': %v, falling back to default '%v'", key, raw, err, def)},
		}
	}
	return Result[T]{Value: v}
}

// GetEnvString returns the variable or defaultValue when unset. No validation.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvStringWith loads a string and validates it.
func GetEnvStringWith(key, defaultValue string, validate func(string) error) Result[string] {
	return load(key, defaultValue, func(s string) (string, error) { return s, nil }, validate)
}

// GetEnvInt loads a base-10 integer.
func GetEnvInt(key string, defaultValue int, validate func(int) error) Result[int] {
	return load(key, defaultValue, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return n, nil
	}, validate)
}

// GetEnvInt64 loads a base-10 64-bit integer.
func GetEnvInt64(key string, defaultValue int64, validate func(int64) error) Result[int64] {
	return load(key, defaultValue, func(s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return n, nil
	}, validate)
}

// GetEnvFloat loads a float64 such as a sampling ratio.
func GetEnvFloat(key string, defaultValue float64, validate func(float64) error) Result[float64] {
	return load(key, defaultValue, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number format")
		}
		return f, nil
	}, validate)
}

// GetEnvBool accepts the spellings understood by strconv.ParseBool.
func GetEnvBool(key string, defaultValue bool) Result[bool] {
	return load(key, defaultValue, func(s string) (bool, error) {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("invalid boolean format, expected 'true' or 'false'")
		}
		return b, nil
	}, nil)
}

// GetEnvDuration loads a Go duration string such as "30s" or "1h30m".
func GetEnvDuration(key string, defaultValue time.Duration, validate func(time.Duration) error) Result[time.Duration] {
	return load(key, defaultValue, time.ParseDuration, validate)
}

// GetEnvStringList splits a comma separated variable, dropping blank entries.
// An unset or all-blank variable yields defaultValue.
func GetEnvStringList(key string, defaultValue []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
