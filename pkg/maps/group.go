package maps

// Marker is one "markers" group: an optional style shared by every location.
type Marker struct {
	Style     *MarkerStyle
	Locations []Location
}

// NewMarker returns a marker group. style may be nil.
func NewMarker(style *MarkerStyle, locations ...Location) Marker {
	return Marker{Style: style, Locations: locations}
}

// Path is one "path" group. Locations are connected in order.
type Path struct {
	Style     *PathStyle
	Locations []Location
}

// NewPath returns a path group. style may be nil.
func NewPath(style *PathStyle, locations ...Location) Path {
	return Path{Style: style, Locations: locations}
}
