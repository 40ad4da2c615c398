// Package schema holds the static resolver tables: simplified property names
// to canonical paths, breakpoint-name translation, and per-element simplified
// schemas. All tables are built at process start and read-only afterwards, so
// they are safely shared across concurrent compilations without locking.
package schema

import (
	"fmt"
	"strings"

	"pagecompiler/domain/css"
)

// Segment is one step of a canonical property path: a field name, optionally
// marked as a repeater. A repeater without a discriminator appends a new
// item; a discriminator (type=<value>) locates an existing item with that
// field value or creates one.
type Segment struct {
	Field     string
	Repeater  bool
	DiscKey   string
	DiscValue string
}

// PathSpec is the resolver's answer for one simplified property name.
type PathSpec struct {
	// Paths usually holds a single canonical path. A fan-out property (gap)
	// carries one path per target location.
	Paths       [][]Segment
	Family      css.Family
	Responsive  bool
	DefaultUnit string
	Min         *float64
	Max         *float64
	Enum        []string
}

// HasRange reports whether the spec declares a numeric range.
func (p PathSpec) HasRange() bool {
	return p.Min != nil || p.Max != nil
}

// InRange checks n against the declared bounds.
func (p PathSpec) InRange(n float64) bool {
	if p.Min != nil && n < *p.Min {
		return false
	}
	if p.Max != nil && n > *p.Max {
		return false
	}
	return true
}

// mustPath parses a dotted path with optional repeater markers:
// "design.effects.transforms[type=rotateX].angle". Only used for the static
// tables, so a malformed path is a programming error and panics at init.
func mustPath(path string) []Segment {
	parts := strings.Split(path, ".")
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			panic(fmt.Sprintf("schema: bad path %q: %v", path, err))
		}
		segments = append(segments, seg)
	}
	return segments
}

func parseSegment(part string) (Segment, error) {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		if part == "" {
			return Segment{}, fmt.Errorf("empty segment")
		}
		return Segment{Field: part}, nil
	}
	if !strings.HasSuffix(part, "]") || open == 0 {
		return Segment{}, fmt.Errorf("malformed repeater in %q", part)
	}

	seg := Segment{Field: part[:open], Repeater: true}
	inner := part[open+1 : len(part)-1]
	if inner == "" {
		return seg, nil
	}
	kv := strings.SplitN(inner, "=", 2)
	if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
		return Segment{}, fmt.Errorf("malformed discriminator in %q", part)
	}
	seg.DiscKey = kv[0]
	seg.DiscValue = kv[1]
	return seg, nil
}

func ptr(n float64) *float64 { return &n }
