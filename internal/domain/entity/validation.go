package entity

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateImageURL validates an article image URL.
// The URL is only rendered by clients, never fetched by the server, so only the
// format is checked: absolute, http or https, with a host.
func ValidateImageURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "imageUrl", Message: "cannot be empty"}
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "imageUrl",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "imageUrl", Message: "is not a valid URL"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "imageUrl", Message: "must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "imageUrl", Message: "must have a valid host"}
	}

	return nil
}

// ValidateColor checks that a category color is a #rrggbb hex string.
func ValidateColor(color string) error {
	if !hexColorPattern.MatchString(color) {
		return &ValidationError{Field: "color", Message: "must be a hex color like #1a365d"}
	}
	return nil
}

// RequireText returns a ValidationError when the trimmed value is empty.
func RequireText(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
