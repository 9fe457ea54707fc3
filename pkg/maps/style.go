package maps

import (
	"fmt"
	"strings"
)

// MarkerSize is the size of a marker. MarkerSizeDefault lets the API choose and
// is never written to the URL.
type MarkerSize int

const (
	MarkerSizeDefault MarkerSize = iota
	MarkerSizeTiny
	MarkerSizeMid
	MarkerSizeSmall
)

var markerSizeNames = map[MarkerSize]string{
	MarkerSizeTiny:  "tiny",
	MarkerSizeMid:   "mid",
	MarkerSizeSmall: "small",
}

// String returns the query value for the size, or "" for MarkerSizeDefault.
func (s MarkerSize) String() string {
	return markerSizeNames[s]
}

// ParseMarkerSize accepts "", "default", "tiny", "mid" and "small" in any case.
func ParseMarkerSize(s string) (MarkerSize, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return MarkerSizeDefault, nil
	}
	for size, n := range markerSizeNames {
		if n == name {
			return size, nil
		}
	}
	return MarkerSizeDefault, fmt.Errorf("maps: unknown marker size %q", s)
}

// MarkerStyle describes how a marker group is drawn. Empty strings are unset.
// Shadow defaults to true, so use NewMarkerStyle rather than a literal when the
// shadow should stay on.
type MarkerStyle struct {
	Color  string
	Icon   string
	Label  string
	Size   MarkerSize
	Shadow bool
}

// NewMarkerStyle returns a style with every field unset and the shadow on.
func NewMarkerStyle() MarkerStyle {
	return MarkerStyle{Shadow: true}
}

// PathStyle describes how a path group is drawn. A nil Weight is unset.
type PathStyle struct {
	Weight    *int
	Color     string
	FillColor string
}

// Weight is a helper for PathStyle literals.
func Weight(w int) *int {
	return &w
}
