package linkedin

import (
	"reflect"
	"testing"
)

func profileFixture() map[string]any {
	return map[string]any{
		"fullName":   "Jane Doe",
		"headline":   "Staff Engineer",
		"followers":  int64(1200),
		"skills":     []any{"Go", "Kafka"},
		"educations": []any{map[string]any{"school": "MIT"}},
		"experiences": []any{
			map[string]any{
				"title":  "Staff Engineer",
				"skills": []any{"Go"},
			},
		},
		"about": map[string]any{
			"languages": []any{"en", "pt"},
			"summary":   "builds things",
		},
	}
}

func TestFilterTreeEmptyIncludeDropsAllOptional(t *testing.T) {
	got := FilterTree(profileFixture(), NewIncludeSet(nil)).(map[string]any)

	for _, key := range []string{"skills", "educations", "experiences"} {
		if _, present := got[key]; present {
			t.Fatalf("optional section %q survived an empty include set", key)
		}
	}
	for _, key := range []string{"fullName", "headline", "followers", "about"} {
		if _, present := got[key]; !present {
			t.Fatalf("core key %q was removed", key)
		}
	}

	about := got["about"].(map[string]any)
	if _, present := about["languages"]; present {
		t.Fatalf("nested optional section survived: %v", about)
	}
	if about["summary"] != "builds things" {
		t.Fatalf("nested core key lost: %v", about)
	}
}

func TestFilterTreeFullIncludeKeepsEverything(t *testing.T) {
	tree := profileFixture()
	got := FilterTree(tree, NewIncludeSet(OptionalSections))

	if !reflect.DeepEqual(got, tree) {
		t.Fatalf("full include set changed the tree: %v", got)
	}
}

func TestFilterTreeNilIncludeIsNoop(t *testing.T) {
	tree := profileFixture()
	got := FilterTree(tree, nil)

	if !reflect.DeepEqual(got, tree) {
		t.Fatalf("nil include set changed the tree: %v", got)
	}
}

func TestFilterTreeSelective(t *testing.T) {
	got := FilterTree(profileFixture(), NewIncludeSet([]string{"skills"})).(map[string]any)

	if _, present := got["skills"]; !present {
		t.Fatalf("included section removed: %v", got)
	}
	if _, present := got["experiences"]; present {
		t.Fatalf("excluded section kept: %v", got)
	}

	// Kept sections still get their children filtered.
	exp := FilterTree(profileFixture(), NewIncludeSet([]string{"experiences"})).(map[string]any)
	first := exp["experiences"].([]any)[0].(map[string]any)
	if _, present := first["skills"]; present {
		t.Fatalf("optional key inside kept section survived: %v", first)
	}
	if first["title"] != "Staff Engineer" {
		t.Fatalf("core key inside kept section lost: %v", first)
	}
}

func TestFilterTreeCaseInsensitiveInclude(t *testing.T) {
	got := FilterTree(profileFixture(), NewIncludeSet([]string{"SKILLS", " Educations "})).(map[string]any)

	if _, present := got["skills"]; !present {
		t.Fatalf("case-insensitive include failed for skills: %v", got)
	}
	if _, present := got["educations"]; !present {
		t.Fatalf("case-insensitive include failed for educations: %v", got)
	}
}

func TestFilterTreeDoesNotMutateInput(t *testing.T) {
	tree := profileFixture()
	want := profileFixture()

	FilterTree(tree, NewIncludeSet(nil))

	if !reflect.DeepEqual(tree, want) {
		t.Fatalf("filter mutated its input: %v", tree)
	}
}

func TestIsOptionalSection(t *testing.T) {
	cases := []struct {
		key      string
		optional bool
	}{
		{"experiences", true},
		{"licenseAndCertificates", true},
		{"licenseandcertificates", true},
		{"PROFILEPICALLDIMENSIONS", true},
		{"fullName", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsOptionalSection(tc.key); got != tc.optional {
			t.Fatalf("IsOptionalSection(%q) expected %v got %v", tc.key, tc.optional, got)
		}
	}
}
