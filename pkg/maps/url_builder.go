package maps

import (
	"strconv"
	"strings"
)

const (
	baseURLHTTP  = "http://maps.googleapis.com/maps/api/staticmap"
	baseURLHTTPS = "https://maps.googleapis.com/maps/api/staticmap"
)

// URLBuilder holds the settings of one Static Maps API v2 request.
// It is not safe for concurrent use.
type URLBuilder struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int

	MapType MapType

	// Zoom and Scale are left out of the URL when nil.
	Zoom  *int
	Scale *int

	UsingSensor bool
	UseHTTPS    bool

	// Center is left out of the URL when nil.
	Center Location

	// Key is the API key. Left out of the URL when empty.
	Key string

	// Markers and Paths are written in order, one query item per group.
	Markers []Marker
	Paths   []Path
}

// NewURLBuilder returns a builder for a width x height map.
func NewURLBuilder(width, height int, mapType MapType) *URLBuilder {
	return &URLBuilder{
		Width:   width,
		Height:  height,
		MapType: mapType,
	}
}

// AddMarker appends a marker group.
func (b *URLBuilder) AddMarker(marker Marker) {
	b.Markers = append(b.Markers, marker)
}

// AddPath appends a path group.
func (b *URLBuilder) AddPath(path Path) {
	b.Paths = append(b.Paths, path)
}

// BuildURL returns the request URL for the current settings. It does not
// modify the builder.
func (b *URLBuilder) BuildURL() string {
	params := NewParamList("=", "&")

	params.Add("size", strconv.Itoa(b.Width)+"x"+strconv.Itoa(b.Height))
	params.Add("sensor", strconv.FormatBool(b.UsingSensor))
	if b.MapType != MapTypeRoadmap {
		params.Add("maptype", b.MapType.String())
	}
	if b.Zoom != nil {
		params.Add("zoom", strconv.Itoa(*b.Zoom))
	}
	if b.Scale != nil {
		params.Add("scale", strconv.Itoa(*b.Scale))
	}
	if b.Center != nil {
		params.Add("center", b.Center.String())
	}

	for _, marker := range b.Markers {
		params.AddRaw("markers", MarkerParameters(marker))
	}
	for _, path := range b.Paths {
		params.AddRaw("path", PathParameters(path))
	}

	if b.Key != "" {
		params.Add("key", b.Key)
	}

	base := baseURLHTTP
	if b.UseHTTPS {
		base = baseURLHTTPS
	}
	return base + "?" + params.String()
}

func (b *URLBuilder) String() string {
	return b.BuildURL()
}

// MarkerParameters renders the value of one "markers" query item: style fields
// first, then every location, separated by "|".
func MarkerParameters(marker Marker) string {
	params := NewParamList(":", "|")

	if s := marker.Style; s != nil {
		if s.Color != "" {
			params.Add("color", strings.ToLower(s.Color))
		}
		if s.Icon != "" {
			params.Add("icon", s.Icon)
		}
		if s.Label != "" {
			params.Add("label", s.Label)
		}
		if s.Size != MarkerSizeDefault {
			params.Add("size", s.Size.String())
		}
		if !s.Shadow {
			params.Add("shadow", "false")
		}
	}

	for _, location := range marker.Locations {
		params.AddValue(locationString(location))
	}

	return params.String()
}

// PathParameters renders the value of one "path" query item.
func PathParameters(path Path) string {
	params := NewParamList(":", "|")

	if s := path.Style; s != nil {
		if s.Weight != nil {
			params.Add("weight", strconv.Itoa(*s.Weight))
		}
		if s.Color != "" {
			params.Add("color", strings.ToLower(s.Color))
		}
		if s.FillColor != "" {
			params.Add("fillcolor", strings.ToLower(s.FillColor))
		}
	}

	for _, location := range path.Locations {
		params.AddValue(locationString(location))
	}

	return params.String()
}
