package validators

import (
	"fmt"
	"regexp"
	"strings"

	"staticmaps/internal/models"
	"staticmaps/pkg/maps"

	"github.com/go-playground/validator/v10"
)

var (
	markerLabelRegex = regexp.MustCompile(`^[A-Z0-9]$`)
	hexColorRegex    = regexp.MustCompile(`^0x([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	presetNameRegex  = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

var namedColors = map[string]bool{
	"black": true, "brown": true, "green": true, "purple": true, "yellow": true,
	"blue": true, "gray": true, "orange": true, "red": true, "white": true,
}

// MapLimits caps the size of a single request.
type MapLimits struct {
	MaxWidth     int
	MaxHeight    int
	MaxMarkers   int
	MaxPaths     int
	MaxLocations int
}

type PresetCreateRequest struct {
	Name        string            `json:"name" validate:"required,preset_name"`
	Description string            `json:"description" validate:"omitempty,max=500"`
	Request     models.MapRequest `json:"request" validate:"-"`
}

// ValidateMapRequest checks struct tags and then the configured limits. Zero
// limits are not enforced.
func ValidateMapRequest(req *models.MapRequest, limits MapLimits) ValidationErrors {
	errs := ValidateStruct(req)

	if limits.MaxWidth > 0 && req.Width > limits.MaxWidth {
		errs = append(errs, limitError("Width", req.Width, limits.MaxWidth, ErrMapTooLarge))
	}
	if limits.MaxHeight > 0 && req.Height > limits.MaxHeight {
		errs = append(errs, limitError("Height", req.Height, limits.MaxHeight, ErrMapTooLarge))
	}
	if limits.MaxMarkers > 0 && len(req.Markers) > limits.MaxMarkers {
		errs = append(errs, limitError("Markers", len(req.Markers), limits.MaxMarkers, ErrTooManyMarkers))
	}
	if limits.MaxPaths > 0 && len(req.Paths) > limits.MaxPaths {
		errs = append(errs, limitError("Paths", len(req.Paths), limits.MaxPaths, ErrTooManyPaths))
	}
	if n := req.LocationCount(); limits.MaxLocations > 0 && n > limits.MaxLocations {
		errs = append(errs, limitError("Locations", n, limits.MaxLocations, ErrTooManyLocations))
	}

	return errs
}

// ValidatePresetCreate reports map request errors under "Request.".
func ValidatePresetCreate(req *PresetCreateRequest, limits MapLimits) ValidationErrors {
	errs := ValidateStruct(req)

	for _, err := range ValidateMapRequest(&req.Request, limits) {
		err.Field = "Request." + err.Field
		errs = append(errs, err)
	}
	return errs
}

func limitError(field string, got, max int, cause error) ValidationError {
	return ValidationError{
		Field:   field,
		Tag:     "limit",
		Value:   fmt.Sprintf("%d", got),
		Message: fmt.Sprintf("%s must be at most %d", field, max),
		cause:   cause,
	}
}

func validateMapType(fl validator.FieldLevel) bool {
	_, err := maps.ParseMapType(fl.Field().String())
	return err == nil
}

func validateMarkerSize(fl validator.FieldLevel) bool {
	_, err := maps.ParseMarkerSize(fl.Field().String())
	return err == nil
}

func validateRenderMode(fl validator.FieldLevel) bool {
	_, err := maps.ParseRenderMode(fl.Field().String())
	return err == nil
}

func validateMarkerLabel(fl validator.FieldLevel) bool {
	return markerLabelRegex.MatchString(fl.Field().String())
}

func validateMapColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	return hexColorRegex.MatchString(color) || namedColors[strings.ToLower(color)]
}

func validatePresetName(fl validator.FieldLevel) bool {
	return presetNameRegex.MatchString(fl.Field().String())
}

func validateLocationRequest(sl validator.StructLevel) {
	loc := sl.Current().Interface().(models.LocationRequest)
	if _, err := loc.ToLocation(); err != nil {
		sl.ReportError(loc.Address, "Address", "address", "location", "")
	}
}
