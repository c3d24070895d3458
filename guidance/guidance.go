// Package guidance generates a recommended project process from fixed
// templates keyed by project type, project scale and preferred standard.
package guidance

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pmcompare"
)

// ProjectType is the kind of project guidance is generated for.
type ProjectType string

// Project types.
const (
	Software       ProjectType = "software"
	Construction   ProjectType = "construction"
	Research       ProjectType = "research"
	Infrastructure ProjectType = "infrastructure"
	Marketing      ProjectType = "marketing"
)

// ProjectTypes returns every project type in display order.
func ProjectTypes() []ProjectType {
	return []ProjectType{Software, Construction, Research, Infrastructure, Marketing}
}

// Label returns the display name of the project type.
func (t ProjectType) Label() string {
	switch t {
	case Software:
		return "Software Development"
	case Construction:
		return "Construction"
	case Research:
		return "Research Project"
	case Infrastructure:
		return "Infrastructure"
	case Marketing:
		return "Marketing Campaign"
	}
	return string(t)
}

// ParseProjectType parses a project type key such as "software".
func ParseProjectType(s string) (ProjectType, error) {
	key := ProjectType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range ProjectTypes() {
		if t == key {
			return t, nil
		}
	}
	return "", pmcompare.Errorf(pmcompare.EINVALID, "unknown project type %q (want one of: %s)", s, joinKeys(ProjectTypes()))
}

// ProjectScale is the expected size and duration of a project.
type ProjectScale string

// Project scales.
const (
	Small  ProjectScale = "small"
	Medium ProjectScale = "medium"
	Large  ProjectScale = "large"
)

// ProjectScales returns every project scale in display order.
func ProjectScales() []ProjectScale {
	return []ProjectScale{Small, Medium, Large}
}

// Label returns the display name of the scale, duration included.
func (s ProjectScale) Label() string {
	switch s {
	case Small:
		return "Small (1-3 months)"
	case Medium:
		return "Medium (3-9 months)"
	case Large:
		return "Large (9+ months)"
	}
	return string(s)
}

// ParseProjectScale parses a project scale key such as "medium".
func ParseProjectScale(s string) (ProjectScale, error) {
	key := ProjectScale(strings.ToLower(strings.TrimSpace(s)))
	for _, sc := range ProjectScales() {
		if sc == key {
			return sc, nil
		}
	}
	return "", pmcompare.Errorf(pmcompare.EINVALID, "unknown project scale %q (want one of: %s)", s, joinKeys(ProjectScales()))
}

const rule = "----------------------------------------"

// Generate assembles the recommended process for a project: header,
// approach, phases, key activities, deliverables and recommendations.
func Generate(typ ProjectType, scale ProjectScale, std pmcompare.CatalogueEntry) string {
	sections := []string{
		header(typ, scale, std),
		section("RECOMMENDED APPROACH", []string{approach(typ, scale, std)}),
		section("PROJECT PHASES", numbered(phases(typ, std.Name))),
		section("KEY ACTIVITIES", bulleted(activities(typ, scale))),
		section("KEY DELIVERABLES", bulleted(deliverables[typ])),
		section("RECOMMENDATIONS", bulleted(recommendations(typ, scale, std.Name))) + "\n\n" +
			fmt.Sprintf("Note: This is a tailored recommendation based on %s.\nFor detailed guidance, consult the full %s documentation.", std.Title, std.Title),
	}
	return strings.Join(sections, "\n\n")
}

func header(typ ProjectType, scale ProjectScale, std pmcompare.CatalogueEntry) string {
	return fmt.Sprintf("RECOMMENDED PROCESS SUMMARY\n%s\n\nProject Type: %s\nProject Scale: %s\nPreferred Standard: %s",
		strings.Repeat("=", len(rule)), typ.Label(), scale.Label(), std.Title)
}

func section(title string, lines []string) string {
	return title + "\n" + rule + "\n" + strings.Join(lines, "\n")
}

func numbered(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return out
}

func bulleted(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}

func joinKeys[T ~string](keys []T) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = string(k)
	}
	return strings.Join(s, ", ")
}
