package schema

import (
	"sort"
	"strings"
)

// ElementSchema describes one simplified element tag: its canonical
// document-model type, whether it may own children, and the simplified
// properties that must be present for compilation to succeed.
type ElementSchema struct {
	Tag           string
	CanonicalType string
	Container     bool
	Required      []string
}

// elementSchemas maps lowercase simplified tags to their schemas.
var elementSchemas = map[string]ElementSchema{
	"section": {
		Tag:           "Section",
		CanonicalType: "essential/section",
		Container:     true,
	},
	"container": {
		Tag:           "Container",
		CanonicalType: "essential/container",
		Container:     true,
	},
	"heading": {
		Tag:           "Heading",
		CanonicalType: "essential/heading",
		Required:      []string{"text"},
	},
	"text": {
		Tag:           "Text",
		CanonicalType: "essential/text",
		Required:      []string{"text"},
	},
	"button": {
		Tag:           "Button",
		CanonicalType: "essential/button",
		Required:      []string{"text"},
	},
	"image": {
		Tag:           "Image",
		CanonicalType: "essential/image",
		Required:      []string{"src"},
	},
	"icon": {
		Tag:           "Icon",
		CanonicalType: "essential/icon",
		Required:      []string{"icon"},
	},
	"divider": {
		Tag:           "Divider",
		CanonicalType: "essential/divider",
	},
}

// ElementType looks up the schema for a simplified element tag,
// case-insensitively. Unknown tags yield ok=false.
func ElementType(tag string) (ElementSchema, bool) {
	s, ok := elementSchemas[strings.ToLower(strings.TrimSpace(tag))]
	return s, ok
}

// ElementTags returns every known simplified tag, sorted.
func ElementTags() []string {
	tags := make([]string, 0, len(elementSchemas))
	for _, s := range elementSchemas {
		tags = append(tags, s.Tag)
	}
	sort.Strings(tags)
	return tags
}
