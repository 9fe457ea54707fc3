package models

import (
	"errors"
	"fmt"

	"staticmaps/pkg/maps"
)

var ErrInvalidLocation = errors.New("location needs either an address or both lat and lng")

// LocationRequest is a map location as it arrives over the wire: an address,
// or a latitude/longitude pair.
type LocationRequest struct {
	Address   string   `json:"address,omitempty" bson:"address,omitempty"`
	Latitude  *float64 `json:"lat,omitempty" bson:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"lng,omitempty" bson:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// ToLocation prefers coordinates when both forms are present.
func (l LocationRequest) ToLocation() (maps.Location, error) {
	if l.Latitude != nil && l.Longitude != nil {
		return maps.NewCoordinates(*l.Latitude, *l.Longitude), nil
	}
	if l.Address != "" && l.Latitude == nil && l.Longitude == nil {
		return maps.NewAddress(l.Address), nil
	}
	return nil, ErrInvalidLocation
}

type MarkerStyleRequest struct {
	Color  string `json:"color,omitempty" bson:"color,omitempty" validate:"omitempty,map_color"`
	Icon   string `json:"icon,omitempty" bson:"icon,omitempty" validate:"omitempty,url"`
	Label  string `json:"label,omitempty" bson:"label,omitempty" validate:"omitempty,marker_label"`
	Size   string `json:"size,omitempty" bson:"size,omitempty" validate:"omitempty,marker_size"`
	Shadow *bool  `json:"shadow,omitempty" bson:"shadow,omitempty"`
}

func (s *MarkerStyleRequest) ToStyle() (*maps.MarkerStyle, error) {
	if s == nil {
		return nil, nil
	}

	size, err := maps.ParseMarkerSize(s.Size)
	if err != nil {
		return nil, err
	}

	style := maps.NewMarkerStyle()
	style.Color = s.Color
	style.Icon = s.Icon
	style.Label = s.Label
	style.Size = size
	if s.Shadow != nil {
		style.Shadow = *s.Shadow
	}
	return &style, nil
}

type PathStyleRequest struct {
	Weight    *int   `json:"weight,omitempty" bson:"weight,omitempty" validate:"omitempty,min=1"`
	Color     string `json:"color,omitempty" bson:"color,omitempty" validate:"omitempty,map_color"`
	FillColor string `json:"fill_color,omitempty" bson:"fill_color,omitempty" validate:"omitempty,map_color"`
}

func (s *PathStyleRequest) ToStyle() *maps.PathStyle {
	if s == nil {
		return nil
	}
	style := &maps.PathStyle{
		Color:     s.Color,
		FillColor: s.FillColor,
	}
	if s.Weight != nil {
		style.Weight = maps.Weight(*s.Weight)
	}
	return style
}

type MarkerRequest struct {
	Style     *MarkerStyleRequest `json:"style,omitempty" bson:"style,omitempty"`
	Locations []LocationRequest   `json:"locations" bson:"locations" validate:"required,min=1,dive"`
}

type PathRequest struct {
	Style     *PathStyleRequest `json:"style,omitempty" bson:"style,omitempty"`
	Locations []LocationRequest `json:"locations" bson:"locations" validate:"required,min=2,dive"`
}

// MapRequest describes one static map. Nil Sensor and HTTPS fall back to the
// service defaults.
type MapRequest struct {
	Width      int               `json:"width" bson:"width" validate:"required,min=1"`
	Height     int               `json:"height" bson:"height" validate:"required,min=1"`
	MapType    string            `json:"map_type,omitempty" bson:"map_type,omitempty" validate:"omitempty,map_type"`
	Zoom       *int              `json:"zoom,omitempty" bson:"zoom,omitempty" validate:"omitempty,min=0,max=21"`
	Scale      *int              `json:"scale,omitempty" bson:"scale,omitempty" validate:"omitempty,oneof=1 2 4"`
	Sensor     *bool             `json:"sensor,omitempty" bson:"sensor,omitempty"`
	HTTPS      *bool             `json:"https,omitempty" bson:"https,omitempty"`
	Center     *LocationRequest  `json:"center,omitempty" bson:"center,omitempty"`
	Markers    []MarkerRequest   `json:"markers,omitempty" bson:"markers,omitempty" validate:"dive"`
	Paths      []PathRequest     `json:"paths,omitempty" bson:"paths,omitempty" validate:"dive"`
	Render     string            `json:"render,omitempty" bson:"render,omitempty" validate:"omitempty,render_mode"`
	Attributes map[string]string `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

// RenderDefaults fill in what a MapRequest leaves unset.
type RenderDefaults struct {
	APIKey      string
	UseHTTPS    bool
	UsingSensor bool
}

// LocationCount is the number of locations across every marker and path.
func (r *MapRequest) LocationCount() int {
	n := 0
	for _, m := range r.Markers {
		n += len(m.Locations)
	}
	for _, p := range r.Paths {
		n += len(p.Locations)
	}
	return n
}

// ToControl converts the request into a configured maps.Control.
func (r *MapRequest) ToControl(defaults RenderDefaults) (*maps.Control, error) {
	mapType, err := maps.ParseMapType(r.MapType)
	if err != nil {
		return nil, err
	}
	mode, err := maps.ParseRenderMode(r.Render)
	if err != nil {
		return nil, err
	}

	control := maps.NewControl(r.Width, r.Height, mapType).
		UsingSensor(boolOr(r.Sensor, defaults.UsingSensor)).
		UseHTTPS(boolOr(r.HTTPS, defaults.UseHTTPS)).
		WithKey(defaults.APIKey)

	if mode == maps.RenderURL {
		control.AsURL()
	} else {
		control.AsImage(r.Attributes)
	}

	if r.Center != nil {
		center, err := r.Center.ToLocation()
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		control.CenterOn(center)
	}
	if r.Zoom != nil {
		control.Zoom(*r.Zoom)
	}
	if r.Scale != nil {
		control.Scale(*r.Scale)
	}

	for i, m := range r.Markers {
		style, err := m.Style.ToStyle()
		if err != nil {
			return nil, fmt.Errorf("markers[%d]: %w", i, err)
		}
		locations, err := toLocations(m.Locations)
		if err != nil {
			return nil, fmt.Errorf("markers[%d]: %w", i, err)
		}
		control.AddMarker(maps.NewMarker(style, locations...))
	}

	for i, p := range r.Paths {
		locations, err := toLocations(p.Locations)
		if err != nil {
			return nil, fmt.Errorf("paths[%d]: %w", i, err)
		}
		control.AddPath(maps.NewPath(p.Style.ToStyle(), locations...))
	}

	return control, nil
}

func toLocations(reqs []LocationRequest) ([]maps.Location, error) {
	locations := make([]maps.Location, 0, len(reqs))
	for i, req := range reqs {
		loc, err := req.ToLocation()
		if err != nil {
			return nil, fmt.Errorf("locations[%d]: %w", i, err)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
