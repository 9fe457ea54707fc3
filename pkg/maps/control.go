package maps

import (
	"fmt"
	"strings"
)

// RenderMode selects what Control.Output returns.
type RenderMode int

const (
	// RenderImage renders an HTML <img> element.
	RenderImage RenderMode = iota
	// RenderURL renders the bare request URL.
	RenderURL
)

func (m RenderMode) String() string {
	switch m {
	case RenderImage:
		return "image"
	case RenderURL:
		return "url"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode accepts "image" and "url" in any case. An empty string is
// image mode.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "image":
		return RenderImage, nil
	case "url":
		return RenderURL, nil
	default:
		return RenderImage, fmt.Errorf("maps: unknown render mode %q", s)
	}
}

// Control configures a static map with chained calls and renders it either as
// a URL or as an image tag. Every setter returns the same *Control.
//
//	html := maps.NewImageControl(320, 240, maps.MapTypeRoadmap, nil).
//		CenterOnAddress("Berlin").
//		Zoom(10).
//		Output()
type Control struct {
	builder  *URLBuilder
	renderer ImageTagRenderer
	attrs    map[string]string
	mode     RenderMode
}

// NewControl returns a control in image mode.
func NewControl(width, height int, mapType MapType) *Control {
	return &Control{
		builder:  NewURLBuilder(width, height, mapType),
		renderer: HTMLImageTag{},
		mode:     RenderImage,
	}
}

// NewImageControl returns a control that renders an <img> element carrying attrs.
func NewImageControl(width, height int, mapType MapType, attrs map[string]string) *Control {
	return NewControl(width, height, mapType).AsImage(attrs)
}

// NewURLControl returns a control that renders the bare URL.
func NewURLControl(width, height int, mapType MapType) *Control {
	return NewControl(width, height, mapType).AsURL()
}

// Builder exposes the underlying URL builder.
func (c *Control) Builder() *URLBuilder {
	return c.builder
}

// Mode returns the current render mode.
func (c *Control) Mode() RenderMode {
	return c.mode
}

// WithRenderer replaces the image tag renderer.
func (c *Control) WithRenderer(renderer ImageTagRenderer) *Control {
	c.renderer = renderer
	return c
}

// AsImage switches to image mode. attrs are added to the element; nil is fine.
func (c *Control) AsImage(attrs map[string]string) *Control {
	c.mode = RenderImage
	c.attrs = attrs
	return c
}

// AsURL switches to URL mode.
func (c *Control) AsURL() *Control {
	c.mode = RenderURL
	return c
}

func (c *Control) UsingSensor(usingSensor bool) *Control {
	c.builder.UsingSensor = usingSensor
	return c
}

func (c *Control) UseHTTPS(useHTTPS bool) *Control {
	c.builder.UseHTTPS = useHTTPS
	return c
}

// WithKey sets the API key sent with the request.
func (c *Control) WithKey(key string) *Control {
	c.builder.Key = key
	return c
}

func (c *Control) CenterOn(location Location) *Control {
	c.builder.Center = location
	return c
}

func (c *Control) CenterOnAddress(address string) *Control {
	return c.CenterOn(NewAddress(address))
}

func (c *Control) CenterOnCoordinates(latitude, longitude float64) *Control {
	return c.CenterOn(NewCoordinates(latitude, longitude))
}

func (c *Control) Zoom(zoom int) *Control {
	c.builder.Zoom = &zoom
	return c
}

func (c *Control) Scale(scale int) *Control {
	c.builder.Scale = &scale
	return c
}

func (c *Control) AddMarker(marker Marker) *Control {
	c.builder.AddMarker(marker)
	return c
}

func (c *Control) AddMarkers(markers ...Marker) *Control {
	for _, marker := range markers {
		c.builder.AddMarker(marker)
	}
	return c
}

// AddMarkerAt adds an unstyled marker group with a single location.
func (c *Control) AddMarkerAt(location Location) *Control {
	return c.AddMarker(NewMarker(nil, location))
}

func (c *Control) AddMarkerAddress(address string) *Control {
	return c.AddMarkerAt(NewAddress(address))
}

func (c *Control) AddMarkerCoordinates(latitude, longitude float64) *Control {
	return c.AddMarkerAt(NewCoordinates(latitude, longitude))
}

// AddStyledMarker adds one marker group drawing every location with style.
func (c *Control) AddStyledMarker(style MarkerStyle, locations ...Location) *Control {
	return c.AddMarker(NewMarker(&style, locations...))
}

func (c *Control) AddPath(path Path) *Control {
	c.builder.AddPath(path)
	return c
}

func (c *Control) AddPaths(paths ...Path) *Control {
	for _, path := range paths {
		c.builder.AddPath(path)
	}
	return c
}

// AddStyledPath adds one path group through locations.
func (c *Control) AddStyledPath(style PathStyle, locations ...Location) *Control {
	return c.AddPath(NewPath(&style, locations...))
}

// URL returns the request URL regardless of the render mode.
func (c *Control) URL() string {
	return c.builder.BuildURL()
}

// Output renders the map in the current mode.
func (c *Control) Output() string {
	switch c.mode {
	case RenderImage:
		return c.imageTag()
	case RenderURL:
		return c.builder.BuildURL()
	default:
		panic(fmt.Sprintf("maps: render mode is set to an unhandled value: %v", c.mode))
	}
}

func (c *Control) String() string {
	return c.Output()
}

func (c *Control) imageTag() string {
	return c.renderer.RenderImageTag(c.builder.BuildURL(), c.builder.Width, c.builder.Height, c.attrs)
}
