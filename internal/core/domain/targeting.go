package domain

import (
	"slices"
	"strings"
)

// TargetAudience describes who a campaign is aimed at. Every field is
// optional and checked independently; an empty audience targets every
// directory visitor.
type TargetAudience struct {
	County          string   `json:"county,omitempty"`
	City            string   `json:"city,omitempty"`
	EducationLevels []string `json:"education_levels,omitempty"`
	Professions     []string `json:"professions,omitempty"`
}

// Normalize returns a copy with surrounding whitespace trimmed, blank
// entries dropped and the set fields sorted and deduplicated. Two audiences
// that differ only in selection order normalize to the same value.
func (t TargetAudience) Normalize() TargetAudience {
	return TargetAudience{
		County:          strings.TrimSpace(t.County),
		City:            strings.TrimSpace(t.City),
		EducationLevels: normalizeSet(t.EducationLevels),
		Professions:     normalizeSet(t.Professions),
	}
}

// IsEmpty reports whether no targeting dimension is set.
func (t TargetAudience) IsEmpty() bool {
	n := t.Normalize()
	return n.County == "" && n.City == "" && len(n.EducationLevels) == 0 && len(n.Professions) == 0
}

func normalizeSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
