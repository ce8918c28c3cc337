package pathutil

import (
	"errors"
	"net/http"
	"strings"
)

// ErrInvalidID is returned when a path parameter is empty or oversized.
var ErrInvalidID = errors.New("invalid id")

// maxKeyLength bounds ids and slugs taken from the path.
const maxKeyLength = 256

// Key returns the named path wildcard of a ServeMux route, trimmed.
//
// Example:
//
//	// route "DELETE /api/articles/{id}"
//	id, err := pathutil.Key(r, "id")
func Key(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.PathValue(name))
	if v == "" || len(v) > maxKeyLength {
		return "", ErrInvalidID
	}
	return v, nil
}
