package maps

import "testing"

func TestEscapeDataString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"-_.~", "-_.~"},
		{"My Location", "My%20Location"},
		{"a+b", "a%2Bb"},
		{"|:,&=", "%7C%3A%2C%26%3D"},
		{"http://test/test1.png", "http%3A%2F%2Ftest%2Ftest1.png"},
		{"!*'()", "%21%2A%27%28%29"},
		{"Müller", "M%C3%BCller"},
	}

	for _, tt := range tests {
		if got := EscapeDataString(tt.in); got != tt.want {
			t.Errorf("EscapeDataString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParamList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p := NewParamList("=", "&")
		if got := p.String(); got != "" {
			t.Errorf("String() = %q, want empty", got)
		}
		if p.Len() != 0 {
			t.Errorf("Len() = %d, want 0", p.Len())
		}
	})

	t.Run("keeps append order", func(t *testing.T) {
		p := NewParamList("=", "&")
		p.Add("z", "1")
		p.Add("a", "2")
		p.Add("z", "3")
		if got, want := p.String(), "z=1&a=2&z=3"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("escapes values but not names", func(t *testing.T) {
		p := NewParamList(":", "|")
		p.Add("icon", "http://x/y.png")
		p.AddValue("A B")
		if got, want := p.String(), "icon:http%3A%2F%2Fx%2Fy.png|A%20B"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("raw values are inserted verbatim", func(t *testing.T) {
		inner := NewParamList(":", "|")
		inner.Add("color", "red")
		inner.AddValue("a|b")

		outer := NewParamList("=", "&")
		outer.Add("size", "1x1")
		outer.AddRaw("markers", inner.String())
		if got, want := outer.String(), "size=1x1&markers=color:red|a%7Cb"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}
