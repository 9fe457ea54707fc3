package maps

import (
	"net/url"
	"strings"
	"testing"
)

func queryOf(t *testing.T, rawURL string) url.Values {
	t.Helper()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", rawURL, err)
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", u.RawQuery, err)
	}
	return q
}

func TestBuildURLDefaults(t *testing.T) {
	b := NewURLBuilder(320, 240, MapTypeRoadmap)

	got := b.BuildURL()
	want := "http://maps.googleapis.com/maps/api/staticmap?size=320x240&sensor=false"
	if got != want {
		t.Fatalf("BuildURL() = %q, want %q", got, want)
	}

	q := queryOf(t, got)
	for _, name := range []string{"maptype", "zoom", "scale", "center", "markers", "path", "key"} {
		if _, ok := q[name]; ok {
			t.Errorf("unexpected %q parameter in %q", name, got)
		}
	}
}

func TestBuildURLAllSettings(t *testing.T) {
	b := NewURLBuilder(640, 480, MapTypeSatellite)
	b.UsingSensor = true
	b.UseHTTPS = true
	zoom, scale := 6, 2
	b.Zoom = &zoom
	b.Scale = &scale
	b.Center = NewAddress("Berlin, Germany")
	b.Key = "k&y"
	b.AddMarker(NewMarker(nil, NewCoordinates(52.52, 13.405)))
	b.AddPath(NewPath(&PathStyle{Color: "0xFF0000FF"}, NewAddress("A"), NewAddress("B")))

	want := "https://maps.googleapis.com/maps/api/staticmap?size=640x480&sensor=true&maptype=satellite" +
		"&zoom=6&scale=2&center=Berlin%2C%20Germany&markers=52.52%2C13.405" +
		"&path=color:0xff0000ff|A|B&key=k%26y"
	if got := b.BuildURL(); got != want {
		t.Errorf("BuildURL() =\n%q\nwant\n%q", got, want)
	}
}

func TestBuildURLMapTypes(t *testing.T) {
	tests := []struct {
		mapType MapType
		want    string
	}{
		{MapTypeRoadmap, ""},
		{MapTypeSatellite, "satellite"},
		{MapTypeTerrain, "terrain"},
		{MapTypeHybrid, "hybrid"},
	}

	for _, tt := range tests {
		q := queryOf(t, NewURLBuilder(100, 50, tt.mapType).BuildURL())
		if got := q.Get("maptype"); got != tt.want {
			t.Errorf("maptype for %d = %q, want %q", tt.mapType, got, tt.want)
		}
		if got := q.Get("size"); got != "100x50" {
			t.Errorf("size = %q, want %q", got, "100x50")
		}
	}
}

func TestBuildURLCenter(t *testing.T) {
	b := NewURLBuilder(320, 240, MapTypeRoadmap)
	b.Center = NewCoordinates(23.45, -42.10)

	got := b.BuildURL()
	if !strings.HasSuffix(got, "&center=23.45%2C-42.1") {
		t.Errorf("BuildURL() = %q, want center=23.45%%2C-42.1", got)
	}
	if c := queryOf(t, got).Get("center"); c != "23.45,-42.1" {
		t.Errorf("decoded center = %q, want %q", c, "23.45,-42.1")
	}
}

func TestMarkerParameters(t *testing.T) {
	shadowless := MarkerStyle{
		Color:  "Red",
		Icon:   "http://test/test1.png",
		Label:  "A",
		Size:   MarkerSizeSmall,
		Shadow: false,
	}
	withShadow := NewMarkerStyle()
	withShadow.Color = "green"
	withShadow.Size = MarkerSizeTiny

	tests := []struct {
		name   string
		marker Marker
		want   string
	}{
		{
			name:   "every field",
			marker: NewMarker(&shadowless, NewAddress("My Location 1"), NewAddress("My Location 2")),
			want:   "color:red|icon:http%3A%2F%2Ftest%2Ftest1.png|label:A|size:small|shadow:false|My%20Location%201|My%20Location%202",
		},
		{
			name:   "default shadow is omitted",
			marker: NewMarker(&withShadow, NewCoordinates(1.5, -2)),
			want:   "color:green|size:tiny|1.5%2C-2",
		},
		{
			name:   "no style",
			marker: NewMarker(nil, NewAddress("B"), NewAddress("A")),
			want:   "B|A",
		},
		{
			name:   "nil location",
			marker: NewMarker(nil, nil),
			want:   "Undefined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkerParameters(tt.marker); got != tt.want {
				t.Errorf("MarkerParameters() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathParameters(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "every field",
			path: NewPath(&PathStyle{Weight: Weight(1), Color: "red", FillColor: "Green"},
				NewAddress("My Location 1"), NewAddress("My Location 2")),
			want: "weight:1|color:red|fillcolor:green|My%20Location%201|My%20Location%202",
		},
		{
			name: "zero weight is still emitted",
			path: NewPath(&PathStyle{Weight: Weight(0)}, NewCoordinates(1, 2)),
			want: "weight:0|1%2C2",
		},
		{
			name: "no weight",
			path: NewPath(&PathStyle{Color: "blue", FillColor: "yellow"}, NewAddress("My Location 3")),
			want: "color:blue|fillcolor:yellow|My%20Location%203",
		},
		{
			name: "no style",
			path: NewPath(nil, NewCoordinates(1, 2), NewCoordinates(3, 4)),
			want: "1%2C2|3%2C4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathParameters(tt.path); got != tt.want {
				t.Errorf("PathParameters() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildURLRepeatsGroupsInOrder(t *testing.T) {
	b := NewURLBuilder(320, 240, MapTypeRoadmap)
	b.AddMarker(NewMarker(nil, NewAddress("second")))
	b.AddMarker(NewMarker(nil, NewAddress("first")))
	b.AddPath(NewPath(nil, NewAddress("p1")))
	b.AddPath(NewPath(nil, NewAddress("p2")))

	q := queryOf(t, b.BuildURL())

	markers := q["markers"]
	if len(markers) != 2 || markers[0] != "second" || markers[1] != "first" {
		t.Errorf("markers = %v, want [second first]", markers)
	}
	paths := q["path"]
	if len(paths) != 2 || paths[0] != "p1" || paths[1] != "p2" {
		t.Errorf("path = %v, want [p1 p2]", paths)
	}
}

func TestBuildURLRoundTripsReservedCharacters(t *testing.T) {
	address := "Main St & 5th, Apt=3 | Floor:2 +x"
	icon := "http://example.com/i.png?a=1&b=2"

	style := NewMarkerStyle()
	style.Icon = icon
	b := NewURLBuilder(320, 240, MapTypeRoadmap)
	b.Center = NewAddress(address)
	b.AddMarker(NewMarker(&style, NewAddress(address)))

	raw := b.BuildURL()
	q := queryOf(t, raw)

	if got := q.Get("center"); got != address {
		t.Errorf("center = %q, want %q", got, address)
	}
	// The group value decodes to its pieces joined by the literal separator.
	if got, want := q.Get("markers"), "icon:"+icon+"|"+address; got != want {
		t.Errorf("markers = %q, want %q", got, want)
	}
	if strings.Count(raw, "&") != 3 {
		t.Errorf("expected exactly 3 top-level separators in %q", raw)
	}
}

func TestBuildURLIsDeterministic(t *testing.T) {
	b := NewURLBuilder(320, 240, MapTypeTerrain)
	b.Center = NewCoordinates(1, 2)
	b.AddMarker(NewMarker(&MarkerStyle{Label: "Z"}, NewAddress("x")))

	first := b.BuildURL()
	if second := b.BuildURL(); first != second {
		t.Errorf("BuildURL() not stable:\n%q\n%q", first, second)
	}
	if b.String() != first {
		t.Errorf("String() = %q, want %q", b.String(), first)
	}
}
