package schema

import (
	"sort"

	"pagecompiler/domain/css"
)

// propertyTable maps simplified, author-facing property names to their
// canonical nested paths and validation metadata. Built once at init and
// never mutated.
var propertyTable = map[string]PathSpec{
	// Content region. Never responsive.
	"text": {
		Paths:  paths("content.content.text"),
		Family: css.FamilyCustom,
	},
	"tag": {
		Paths:  paths("content.content.tags"),
		Family: css.FamilyEnum,
		Enum:   []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "span", "div"},
	},
	"url": {
		Paths:  paths("content.content.url"),
		Family: css.FamilyCustom,
	},
	"src": {
		Paths:  paths("content.content.src"),
		Family: css.FamilyCustom,
	},
	"alt": {
		Paths:  paths("content.content.alt"),
		Family: css.FamilyCustom,
	},
	"icon": {
		Paths:  paths("content.content.icon"),
		Family: css.FamilyCustom,
	},

	// Typography.
	"color": {
		Paths:      paths("design.typography.color"),
		Family:     css.FamilyColor,
		Responsive: true,
	},
	"fontSize": {
		Paths:       paths("design.typography.fontSize"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"fontWeight": {
		Paths:      paths("design.typography.fontWeight"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum: []string{"100", "200", "300", "400", "500", "600", "700",
			"800", "900", "normal", "bold"},
	},
	"fontFamily": {
		Paths:      paths("design.typography.fontFamily"),
		Family:     css.FamilyCustom,
		Responsive: true,
	},
	"lineHeight": {
		Paths:      paths("design.typography.lineHeight"),
		Family:     css.FamilyLength,
		Responsive: true,
	},
	"letterSpacing": {
		Paths:       paths("design.typography.letterSpacing"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"textAlign": {
		Paths:      paths("design.typography.textAlign"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum:       []string{"left", "center", "right", "justify"},
	},
	"textTransform": {
		Paths:      paths("design.typography.textTransform"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum:       []string{"none", "uppercase", "lowercase", "capitalize"},
	},

	// Layout: sizing.
	"width": {
		Paths:       paths("design.layout.sizing.width"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"height": {
		Paths:       paths("design.layout.sizing.height"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"minWidth": {
		Paths:       paths("design.layout.sizing.minWidth"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"maxWidth": {
		Paths:       paths("design.layout.sizing.maxWidth"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"minHeight": {
		Paths:       paths("design.layout.sizing.minHeight"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"maxHeight": {
		Paths:       paths("design.layout.sizing.maxHeight"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},

	// Layout: spacing.
	"padding": {
		Paths:       paths("design.layout.spacing.padding"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"paddingTop": {
		Paths:       paths("design.layout.spacing.paddingTop"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"paddingRight": {
		Paths:       paths("design.layout.spacing.paddingRight"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"paddingBottom": {
		Paths:       paths("design.layout.spacing.paddingBottom"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"paddingLeft": {
		Paths:       paths("design.layout.spacing.paddingLeft"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"margin": {
		Paths:       paths("design.layout.spacing.margin"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"marginTop": {
		Paths:       paths("design.layout.spacing.marginTop"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"marginRight": {
		Paths:       paths("design.layout.spacing.marginRight"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"marginLeft": {
		Paths:       paths("design.layout.spacing.marginLeft"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"marginBottom": {
		Paths:       paths("design.layout.spacing.marginBottom"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},

	// gap fans out to both axes. The fan-out is a deliberate ergonomic
	// shortcut and can be narrowed to the first path via configuration.
	"gap": {
		Paths: paths(
			"design.layout.spacing.gapX",
			"design.layout.spacing.gapY",
		),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},

	// Layout: flow.
	"display": {
		Paths:      paths("design.layout.display"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum:       []string{"block", "inline", "inline-block", "flex", "grid", "none"},
	},
	"flexDirection": {
		Paths:      paths("design.layout.flexDirection"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum:       []string{"row", "row-reverse", "column", "column-reverse"},
	},
	"justifyContent": {
		Paths:      paths("design.layout.justifyContent"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum: []string{"flex-start", "flex-end", "center",
			"space-between", "space-around", "space-evenly"},
	},
	"alignItems": {
		Paths:      paths("design.layout.alignItems"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum:       []string{"flex-start", "flex-end", "center", "stretch", "baseline"},
	},
	"zIndex": {
		Paths:      paths("design.layout.zIndex"),
		Family:     css.FamilyNumber,
		Responsive: true,
	},

	// Background.
	"backgroundColor": {
		Paths:      paths("design.background.color"),
		Family:     css.FamilyColor,
		Responsive: true,
	},
	"backgroundImage": {
		Paths:      paths("design.background.image"),
		Family:     css.FamilyCustom,
		Responsive: true,
	},
	"gradient": {
		Paths:      paths("design.background.gradient"),
		Family:     css.FamilyGradient,
		Responsive: true,
	},
	"overlayColor": {
		Paths:      paths("design.background.overlay.color"),
		Family:     css.FamilyColor,
		Responsive: true,
	},
	"overlayOpacity": {
		Paths:      paths("design.background.overlay.opacity"),
		Family:     css.FamilyNumber,
		Responsive: true,
		Min:        ptr(0),
		Max:        ptr(1),
	},

	// Borders.
	"border": {
		Paths:      paths("design.borders.border"),
		Family:     css.FamilyBorder,
		Responsive: true,
	},
	"borderWidth": {
		Paths:       paths("design.borders.width"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
		Min:         ptr(0),
	},
	"borderStyle": {
		Paths:      paths("design.borders.style"),
		Family:     css.FamilyEnum,
		Responsive: true,
		Enum: []string{"none", "hidden", "solid", "dashed", "dotted",
			"double", "groove", "ridge", "inset", "outset"},
	},
	"borderColor": {
		Paths:      paths("design.borders.color"),
		Family:     css.FamilyColor,
		Responsive: true,
	},
	"borderRadius": {
		Paths:       paths("design.borders.radius"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
		Min:         ptr(0),
	},

	// Effects.
	"opacity": {
		Paths:      paths("design.effects.opacity"),
		Family:     css.FamilyNumber,
		Responsive: true,
		Min:        ptr(0),
		Max:        ptr(1),
	},
	"boxShadow": {
		Paths:      paths("design.effects.boxShadow"),
		Family:     css.FamilyShadow,
		Responsive: true,
	},
	"filter": {
		Paths:      paths("design.effects.filters[]"),
		Family:     css.FamilyFilter,
		Responsive: true,
	},
	"transform": {
		Paths:      paths("design.effects.transforms[]"),
		Family:     css.FamilyTransform,
		Responsive: true,
	},

	// Single-function shortcuts addressed into the repeater collections by
	// discriminator: re-setting rotateX replaces the existing rotateX item
	// instead of appending a second one.
	"rotate": {
		Paths:      paths("design.effects.transforms[type=rotate].angle"),
		Family:     css.FamilyAngle,
		Responsive: true,
	},
	"rotateX": {
		Paths:      paths("design.effects.transforms[type=rotateX].angle"),
		Family:     css.FamilyAngle,
		Responsive: true,
	},
	"rotateY": {
		Paths:      paths("design.effects.transforms[type=rotateY].angle"),
		Family:     css.FamilyAngle,
		Responsive: true,
	},
	"rotateZ": {
		Paths:      paths("design.effects.transforms[type=rotateZ].angle"),
		Family:     css.FamilyAngle,
		Responsive: true,
	},
	"scale": {
		Paths:      paths("design.effects.transforms[type=scale].value"),
		Family:     css.FamilyNumber,
		Responsive: true,
	},
	"translateX": {
		Paths:       paths("design.effects.transforms[type=translateX].value"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"translateY": {
		Paths:       paths("design.effects.transforms[type=translateY].value"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
	},
	"blur": {
		Paths:       paths("design.effects.filters[type=blur].amount"),
		Family:      css.FamilyLength,
		Responsive:  true,
		DefaultUnit: "px",
		Min:         ptr(0),
	},
	"brightness": {
		Paths:      paths("design.effects.filters[type=brightness].amount"),
		Family:     css.FamilyNumber,
		Responsive: true,
		Min:        ptr(0),
	},
}

func paths(specs ...string) [][]Segment {
	out := make([][]Segment, 0, len(specs))
	for _, s := range specs {
		out = append(out, mustPath(s))
	}
	return out
}

// Resolve looks up a simplified property name. It never errors; an unknown
// name yields ok=false and the caller decides whether that is fatal.
func Resolve(name string) (PathSpec, bool) {
	spec, ok := propertyTable[name]
	return spec, ok
}

// PropertyNames returns every simplified property name, sorted.
func PropertyNames() []string {
	names := make([]string, 0, len(propertyTable))
	for name := range propertyTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
