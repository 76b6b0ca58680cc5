package linkedin

import "strings"

// OptionalSections is the fixed set of top-level profile keys that the
// include argument can keep or drop. It feeds both the tool's input
// schema enum and the filter; keys outside this list are always kept.
var OptionalSections = []string{
	"experiences",
	"updates",
	"profilePicAllDimensions",
	"skills",
	"educations",
	"licenseAndCertificates",
	"honorsAndAwards",
	"languages",
	"volunteerAndAwards",
	"verifications",
	"promos",
	"highlights",
	"projects",
	"publications",
	"patents",
	"courses",
	"testScores",
	"organizations",
	"volunteerCauses",
	"interests",
	"recommendations",
}

var optionalLookup = func() map[string]struct{} {
	m := make(map[string]struct{}, len(OptionalSections))
	for _, name := range OptionalSections {
		m[strings.ToLower(name)] = struct{}{}
	}
	return m
}()

// IsOptionalSection reports whether key names an optional profile
// section. Matching is case-insensitive to survive upstream casing drift.
func IsOptionalSection(key string) bool {
	_, ok := optionalLookup[strings.ToLower(key)]
	return ok
}

// IncludeSet is a case-insensitive set of optional sections the caller
// asked to keep. A nil set means "no filtering"; an empty non-nil set
// drops every optional section.
type IncludeSet map[string]struct{}

// NewIncludeSet builds an IncludeSet from the raw include argument.
func NewIncludeSet(names []string) IncludeSet {
	set := make(IncludeSet, len(names))
	for _, name := range names {
		set[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	return set
}

// Has reports whether the caller asked to keep the given section key.
func (s IncludeSet) Has(key string) bool {
	_, ok := s[strings.ToLower(key)]
	return ok
}
