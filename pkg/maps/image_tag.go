package maps

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// ImageTagRenderer turns a map URL and its size into an HTML image element.
type ImageTagRenderer interface {
	RenderImageTag(src string, width, height int, attrs map[string]string) string
}

// HTMLImageTag renders a self-closing <img> element with attributes sorted by
// name. Extra attributes cannot replace src, width or height.
type HTMLImageTag struct{}

func (HTMLImageTag) RenderImageTag(src string, width, height int, attrs map[string]string) string {
	merged := map[string]string{
		"src":    src,
		"width":  strconv.Itoa(width),
		"height": strconv.Itoa(height),
	}
	for k, v := range attrs {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}

	names := make([]string, 0, len(merged))
	for k := range merged {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("<img")
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(name))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(merged[name]))
		b.WriteByte('"')
	}
	b.WriteString(" />")

	return b.String()
}
