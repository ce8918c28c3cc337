package pagination

import "fmt"

// Validate rejects a limit below 1, a limit above config.MaxLimit (when set)
// and a negative offset.
func (p Params) Validate(config Config) error {
	if p.Limit < 1 {
		return fmt.Errorf("%w: limit must be a positive integer", ErrInvalidParams)
	}
	if config.MaxLimit > 0 && p.Limit > config.MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParams, config.MaxLimit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset cannot be negative", ErrInvalidParams)
	}
	return nil
}
