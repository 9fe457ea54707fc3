package maps

import (
	"fmt"
	"strings"

	gmaps "googlemaps.github.io/maps"
)

// MapType selects the base imagery. MapTypeRoadmap is the API default and is
// left out of the URL.
type MapType int

const (
	MapTypeRoadmap MapType = iota
	MapTypeSatellite
	MapTypeTerrain
	MapTypeHybrid
)

// Only non-default map types have a query value.
var mapTypeValues = map[MapType]gmaps.MapType{
	MapTypeSatellite: gmaps.Satellite,
	MapTypeTerrain:   gmaps.Terrain,
	MapTypeHybrid:    gmaps.Hybrid,
}

// String returns the maptype query value, or "" for MapTypeRoadmap.
func (t MapType) String() string {
	return string(mapTypeValues[t])
}

// ParseMapType accepts the values the Static Maps API documents, in any case.
// An empty string is the default roadmap.
func ParseMapType(s string) (MapType, error) {
	name := gmaps.MapType(strings.ToLower(strings.TrimSpace(s)))
	if name == "" || name == gmaps.RoadMap {
		return MapTypeRoadmap, nil
	}
	for t, v := range mapTypeValues {
		if v == name {
			return t, nil
		}
	}
	return MapTypeRoadmap, fmt.Errorf("maps: unknown map type %q", s)
}

// LatLng converts c to the Google Maps client type.
func (c Coordinates) LatLng() gmaps.LatLng {
	return gmaps.LatLng{Lat: c.Latitude, Lng: c.Longitude}
}

// CoordinatesFromLatLng converts a Google Maps client LatLng.
func CoordinatesFromLatLng(ll gmaps.LatLng) Coordinates {
	return Coordinates{Latitude: ll.Lat, Longitude: ll.Lng}
}

// ParseLocation reads free text as Coordinates when it is exactly one
// "lat,lng" pair and as an Address otherwise.
func ParseLocation(s string) Location {
	// ParseLatLng indexes the second half unchecked and ignores extra parts.
	if strings.Count(s, ",") != 1 {
		return Address(s)
	}
	if ll, err := gmaps.ParseLatLng(s); err == nil {
		return CoordinatesFromLatLng(ll)
	}
	return Address(s)
}
