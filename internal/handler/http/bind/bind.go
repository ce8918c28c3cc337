// Package bind decodes JSON request bodies into DTOs and validates them with
// go-playground/validator, reporting failures as entity validation errors
// keyed by the DTO's JSON field names.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"newsdesk/internal/domain/entity"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator. Field names in errors are the json tag names.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return hexColor.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		instance = v
	})
	return instance
}

// JSON decodes r.Body into dst and validates it. Unknown fields are ignored.
// The returned error is an entity.ValidationErrors for malformed or invalid
// input.
func JSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	return Struct(dst)
}

// Struct validates an already decoded DTO.
func Struct(dst any) error {
	err := Validator().Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	out := make(entity.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &entity.ValidationError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return entity.ValidationErrors{{Field: "body", Message: "is required"}}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return entity.ValidationErrors{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", jsonKind(typeErr.Type)),
		}}
	default:
		return entity.ValidationErrors{{Field: "body", Message: "must be valid JSON"}}
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "url", "http_url":
		return "is not a valid URL"
	case "rgbhex":
		return "must be a hex color like #1a365d"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
