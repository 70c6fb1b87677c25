package format

import (
	"slices"
	"strings"
)

// Quality grade filter values.
const (
	GradeAny      = "any"
	GradeResearch = "research"
	GradeNeedsID  = "needs_id"
)

// QualityGrade describes observation query options as adjectives.
// It reads the "quality_grade" key, a comma separated list of grades, and
// the "verifiable" key. An explicit verifiable=false wins over everything
// else; verifiable=true, or both research and needs_id, reads as
// verifiable. Otherwise research and needs_id are described separately.
func QualityGrade(options map[string]string) []string {
	var grades []string
	for _, grade := range strings.Split(options["quality_grade"], ",") {
		if grade = strings.TrimSpace(grade); grade != "" {
			grades = append(grades, grade)
		}
	}

	var research, needsID bool
	if !slices.Contains(grades, GradeAny) {
		research = slices.Contains(grades, GradeResearch)
		needsID = slices.Contains(grades, GradeNeedsID)
	}

	switch verifiable := options["verifiable"]; {
	case strings.EqualFold(verifiable, "false"):
		return []string{italic("not Verifiable")}
	case strings.EqualFold(verifiable, "true"):
		research, needsID = true, true
	}

	if research && needsID {
		return []string{italic("Verifiable")}
	}
	var adjectives []string
	if research {
		adjectives = append(adjectives, italic("Research Grade"))
	}
	if needsID {
		adjectives = append(adjectives, italic("Needs ID"))
	}
	return adjectives
}
