package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrInvalidParams is wrapped by every parse and validation failure.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params is an offset/limit window.
type Params struct {
	Limit  int
	Offset int
}

// ParseQueryParams reads limit and offset from the query string.
// Absent values fall back to the config; present values must be integers.
//
// Query parameters:
//   - limit: items per page, between 1 and config.MaxLimit (when set)
//   - offset: items to skip, zero or positive
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{Limit: config.DefaultLimit}
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return params, fmt.Errorf("%w: limit must be an integer", ErrInvalidParams)
		}
		params.Limit = limit
	}
	if s := q.Get("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			return params, fmt.Errorf("%w: offset must be an integer", ErrInvalidParams)
		}
		params.Offset = offset
	}

	if err := params.Validate(config); err != nil {
		return params, err
	}
	return params, nil
}
