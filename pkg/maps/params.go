package maps

import (
	"net/url"
	"strings"
)

// ParamList joins name/value items into a delimited list. The same type builds
// the top-level query ("=" and "&") and the marker and path groups (":" and "|").
// Items keep the order in which they were added.
type ParamList struct {
	delimiter string
	separator string
	items     []string
}

// NewParamList returns an empty list. delimiter sits between a name and its
// value, separator between items.
func NewParamList(delimiter, separator string) *ParamList {
	return &ParamList{
		delimiter: delimiter,
		separator: separator,
	}
}

// AddValue appends an escaped value without a name.
func (p *ParamList) AddValue(value string) {
	p.items = append(p.items, EscapeDataString(value))
}

// Add appends name, delimiter and the escaped value.
func (p *ParamList) Add(name, value string) {
	p.items = append(p.items, name+p.delimiter+EscapeDataString(value))
}

// AddRaw appends name, delimiter and value as-is. Use it to nest a list that
// already escaped its own values.
func (p *ParamList) AddRaw(name, value string) {
	p.items = append(p.items, name+p.delimiter+value)
}

// Len returns the number of items.
func (p *ParamList) Len() int {
	return len(p.items)
}

func (p *ParamList) String() string {
	return strings.Join(p.items, p.separator)
}

// EscapeDataString percent-encodes s per RFC 3986: only letters, digits and
// "-_.~" stay literal and a space becomes %20.
func EscapeDataString(s string) string {
	// QueryEscape already escapes a literal '+', so every '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
