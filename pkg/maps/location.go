package maps

import "strconv"

// undefinedLocation is what a nil Location renders to inside a group.
const undefinedLocation = "Undefined"

// Location is a point on the map. It is either an Address that the Static Maps
// API geocodes, or a pair of Coordinates. The interface is sealed so no other
// representation can exist.
type Location interface {
	String() string
	isLocation()
}

// Address is a free-text location resolved by the API.
type Address string

// NewAddress returns an address location.
func NewAddress(address string) Address {
	return Address(address)
}

// String returns the address unchanged. Escaping happens in ParamList.
func (a Address) String() string {
	return string(a)
}

func (Address) isLocation() {}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// NewCoordinates returns a coordinate location.
func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{Latitude: latitude, Longitude: longitude}
}

// String formats the pair as "lat,lng" using the shortest decimal form that
// round-trips, independent of locale.
func (c Coordinates) String() string {
	return formatDegrees(c.Latitude) + "," + formatDegrees(c.Longitude)
}

func (Coordinates) isLocation() {}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func locationString(l Location) string {
	if l == nil {
		return undefinedLocation
	}
	return l.String()
}
