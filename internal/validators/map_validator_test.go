package validators

import (
	"errors"
	"testing"

	"staticmaps/internal/models"
)

func f64(v float64) *float64 { return &v }

func validRequest() models.MapRequest {
	return models.MapRequest{
		Width:  320,
		Height: 240,
		Center: &models.LocationRequest{Address: "Berlin"},
		Markers: []models.MarkerRequest{{
			Style:     &models.MarkerStyleRequest{Color: "0xFF0000", Label: "A", Size: "mid"},
			Locations: []models.LocationRequest{{Latitude: f64(52.5), Longitude: f64(13.4)}},
		}},
		Paths: []models.PathRequest{{
			Style:     &models.PathStyleRequest{Color: "blue"},
			Locations: []models.LocationRequest{{Address: "A"}, {Address: "B"}},
		}},
	}
}

func hasField(errs ValidationErrors, field, tag string) bool {
	for _, e := range errs {
		if e.Field == field && e.Tag == tag {
			return true
		}
	}
	return false
}

func TestValidateMapRequestValid(t *testing.T) {
	req := validRequest()
	if errs := ValidateMapRequest(&req, MapLimits{MaxWidth: 640, MaxHeight: 640}); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateMapRequestFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.MapRequest)
		field  string
		tag    string
	}{
		{"missing width", func(r *models.MapRequest) { r.Width = 0 }, "Width", "required"},
		{"bad map type", func(r *models.MapRequest) { r.MapType = "moon" }, "MapType", "map_type"},
		{"bad render mode", func(r *models.MapRequest) { r.Render = "pdf" }, "Render", "render_mode"},
		{"bad scale", func(r *models.MapRequest) { s := 3; r.Scale = &s }, "Scale", "oneof"},
		{"empty center", func(r *models.MapRequest) { r.Center = &models.LocationRequest{} }, "Center.Address", "location"},
		{"latitude range", func(r *models.MapRequest) {
			r.Markers[0].Locations[0].Latitude = f64(91)
		}, "Markers[0].Locations[0].Latitude", "max"},
		{"label", func(r *models.MapRequest) { r.Markers[0].Style.Label = "ab" }, "Markers[0].Style.Label", "marker_label"},
		{"size", func(r *models.MapRequest) { r.Markers[0].Style.Size = "huge" }, "Markers[0].Style.Size", "marker_size"},
		{"color", func(r *models.MapRequest) { r.Paths[0].Style.Color = "#ff0000" }, "Paths[0].Style.Color", "map_color"},
		{"short path", func(r *models.MapRequest) {
			r.Paths[0].Locations = r.Paths[0].Locations[:1]
		}, "Paths[0].Locations", "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			errs := ValidateMapRequest(&req, MapLimits{})
			if !hasField(errs, tt.field, tt.tag) {
				t.Errorf("want %s/%s in %v", tt.field, tt.tag, errs)
			}
		})
	}
}

func TestValidateMapRequestLimits(t *testing.T) {
	req := validRequest()
	req.Width = 4096

	errs := ValidateMapRequest(&req, MapLimits{MaxWidth: 2048, MaxMarkers: 0, MaxLocations: 2})
	if !hasField(errs, "Width", "limit") {
		t.Errorf("missing width limit error: %v", errs)
	}
	if !hasField(errs, "Locations", "limit") {
		t.Errorf("missing location limit error: %v", errs)
	}
	if hasField(errs, "Markers", "limit") {
		t.Errorf("zero marker limit should not be enforced: %v", errs)
	}
}

func TestLimitErrorsUnwrap(t *testing.T) {
	req := validRequest()
	req.Height = 5000
	req.Markers = append(req.Markers, req.Markers[0])

	limits := MapLimits{MaxHeight: 640, MaxMarkers: 1, MaxPaths: 1}
	errs := ValidateMapRequest(&req, limits)

	var err error = errs
	if !errors.Is(err, ErrMapTooLarge) || !errors.Is(err, ErrTooManyMarkers) {
		t.Errorf("errors.Is failed for %v", errs)
	}
	if errors.Is(err, ErrTooManyPaths) || errors.Is(err, ErrTooManyLocations) {
		t.Errorf("unexpected limit error in %v", errs)
	}

	preset := &PresetCreateRequest{Name: "big", Request: req}
	if err := error(ValidatePresetCreate(preset, limits)); !errors.Is(err, ErrTooManyMarkers) {
		t.Errorf("nested limit error lost: %v", err)
	}

	if err := error(ValidateStruct(&preset.Request)); errors.Is(err, ErrMapTooLarge) {
		t.Errorf("tag errors should not match limit errors: %v", err)
	}
}

func TestValidatePresetCreate(t *testing.T) {
	req := &PresetCreateRequest{Name: "Home Page", Request: validRequest()}
	req.Request.MapType = "moon"

	errs := ValidatePresetCreate(req, MapLimits{})
	if !hasField(errs, "Name", "preset_name") {
		t.Errorf("missing name error: %v", errs)
	}
	if !hasField(errs, "Request.MapType", "map_type") {
		t.Errorf("missing nested map type error: %v", errs)
	}

	ok := &PresetCreateRequest{Name: "home_page-2", Request: validRequest()}
	if errs := ValidatePresetCreate(ok, MapLimits{}); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidationErrorsMap(t *testing.T) {
	errs := ValidationErrors{{Field: "Width", Message: "bad"}}
	if got := errs.Map()["Width"]; got != "bad" {
		t.Errorf("Map()[Width] = %q", got)
	}
	if errs.Error() != "Width: bad" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
