package validators

import (
	"errors"
	"fmt"
	"strings"

	"staticmaps/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("map_type", validateMapType)
	validate.RegisterValidation("marker_size", validateMarkerSize)
	validate.RegisterValidation("marker_label", validateMarkerLabel)
	validate.RegisterValidation("map_color", validateMapColor)
	validate.RegisterValidation("render_mode", validateRenderMode)
	validate.RegisterValidation("preset_name", validatePresetName)

	validate.RegisterStructValidation(validateLocationRequest, models.LocationRequest{})
}

// Limit errors, reachable from ValidationErrors with errors.Is
var (
	ErrMapTooLarge      = errors.New("map dimensions exceed the configured maximum")
	ErrTooManyMarkers   = errors.New("too many markers")
	ErrTooManyPaths     = errors.New("too many paths")
	ErrTooManyLocations = errors.New("too many locations")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`

	cause error
}

type ValidationErrors []ValidationError

// Unwrap exposes the limit errors behind individual entries.
func (v ValidationErrors) Unwrap() []error {
	var causes []error
	for _, err := range v {
		if err.cause != nil {
			causes = append(causes, err.cause)
		}
	}
	return causes
}

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Map turns the errors into field/message pairs for an API error body.
func (v ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(v))
	for _, err := range v {
		out[err.Field] = err.Message
	}
	return out
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return ValidationErrors{{Field: "request", Tag: "invalid", Message: err.Error()}}
	}

	for _, err := range fieldErrors {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fieldPath(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: getErrorMessage(err),
		})
	}

	return validationErrors
}

// fieldPath drops the top-level struct name from the namespace, so
// "MapRequest.Markers[0].Style.Label" becomes "Markers[0].Style.Label".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "url":
		return "Invalid URL"
	case "map_type":
		return "Map type must be one of: roadmap, satellite, terrain, hybrid"
	case "marker_size":
		return "Marker size must be one of: tiny, mid, small"
	case "marker_label":
		return "Marker label must be a single upper-case letter or digit"
	case "map_color":
		return "Color must be a 0xRRGGBB or 0xRRGGBBAA value or a named color"
	case "render_mode":
		return "Render mode must be image or url"
	case "preset_name":
		return "Preset name may only contain lower-case letters, digits, '-' and '_'"
	case "location":
		return "Location needs either an address or both lat and lng"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}
