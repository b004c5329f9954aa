// Package report implements the extraction core: clustering positioned
// fragments into lines, isolating the course-history rows, parsing each row
// into a course record, and collapsing duplicate observations.
package report

import (
	"fmt"
	"regexp"
	"strings"
)

const defaultYTolerance = 2.5

// Row and repair patterns are shared across layouts; the report format only
// varies in its anchor wording and section boundaries.
var (
	rowExpr     = regexp.MustCompile(`(?i)^(FA|SP|SU)\s*\d{2}\b`)
	termExpr    = regexp.MustCompile(`(?i)^(FA|SP|SU)\s*(\d{2})\b`)
	glueExpr    = regexp.MustCompile(`([A-Z]{2,})(\d{3,4}[A-Z]?)`)
	numberExpr  = regexp.MustCompile(`^\d{3,4}[A-Z]?$`)
	creditsExpr = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// LayoutSpec declares one institution's report layout in configuration terms.
type LayoutSpec struct {
	Name         string
	AnchorPhrase string
	StopPhrases  []string
	YTolerance   float64
}

// DefaultLayoutSpec returns the DARS layout the heuristics were tuned on.
func DefaultLayoutSpec() LayoutSpec {
	return LayoutSpec{
		Name:         "dars",
		AnchorPhrase: "total credits for the degree",
		StopPhrases: []string{
			"degree requirements",
			"general education",
			"major requirements",
			"breadth",
			"communication",
			"ethnic studies",
			"quantitative reasoning",
			"requirements not met",
			"requirements met",
			"summary",
		},
		YTolerance: defaultYTolerance,
	}
}

// Layout is a compiled report layout ready for isolation and parsing.
type Layout struct {
	name        string
	yTolerance  float64
	anchor      *regexp.Regexp
	stopPhrases []string
}

// NewLayout compiles a layout spec. The anchor phrase is matched
// case-insensitively and tolerates arbitrary whitespace between its words.
func NewLayout(spec LayoutSpec) (*Layout, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("layout name is required")
	}

	words := strings.Fields(spec.AnchorPhrase)
	if len(words) == 0 {
		return nil, fmt.Errorf("layout %s: anchor phrase is required", spec.Name)
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	anchor, err := regexp.Compile(`(?i)` + strings.Join(words, `\s+`))
	if err != nil {
		return nil, fmt.Errorf("layout %s: compile anchor: %w", spec.Name, err)
	}

	stops := make([]string, 0, len(spec.StopPhrases))
	for _, phrase := range spec.StopPhrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" {
			stops = append(stops, phrase)
		}
	}

	tolerance := spec.YTolerance
	if tolerance <= 0 {
		tolerance = defaultYTolerance
	}

	return &Layout{
		name:        spec.Name,
		yTolerance:  tolerance,
		anchor:      anchor,
		stopPhrases: stops,
	}, nil
}

// Name identifies the layout inside the registry.
func (l *Layout) Name() string {
	return l.name
}

// YTolerance is the baseline-jitter tolerance used when clustering fragments.
func (l *Layout) YTolerance() float64 {
	return l.yTolerance
}

// Registry keeps a mapping from layout names to compiled layouts.
type Registry struct {
	layouts map[string]*Layout
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{layouts: map[string]*Layout{}}
}

// Register adds or replaces a layout.
func (r *Registry) Register(layout *Layout) {
	if r.layouts == nil {
		r.layouts = map[string]*Layout{}
	}
	r.layouts[layout.Name()] = layout
}

// Resolve returns a layout by name or an error if it is absent.
func (r *Registry) Resolve(name string) (*Layout, error) {
	if layout, ok := r.layouts[name]; ok {
		return layout, nil
	}
	return nil, fmt.Errorf("layout %s is not registered", name)
}
