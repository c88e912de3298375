package framework

import (
	"strings"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()

	if cat.Len() != 7 {
		t.Fatalf("expected 7 builtin frameworks, got %d", cat.Len())
	}

	if cat.Default().ID != "coding" {
		t.Errorf("expected default framework coding, got %s", cat.Default().ID)
	}

	// Builtin is built once and shared.
	if Builtin() != cat {
		t.Error("Builtin should return the same catalog instance")
	}
}

func TestBuiltinFrameworksAreComplete(t *testing.T) {
	for _, f := range Builtin().All() {
		if f.Name == "" {
			t.Errorf("framework %s has no name", f.ID)
		}
		if f.Description == "" {
			t.Errorf("framework %s has no description", f.ID)
		}
		if len(f.RolePersonas) == 0 {
			t.Errorf("framework %s has no personas", f.ID)
		}
		if len(f.TriggerKeywords) == 0 {
			t.Errorf("framework %s has no trigger keywords", f.ID)
		}
		if len(f.PhrasePatterns) == 0 {
			t.Errorf("framework %s has no phrase patterns", f.ID)
		}
		if !f.TemplateKind.Valid() {
			t.Errorf("framework %s has invalid template kind %s", f.ID, f.TemplateKind)
		}
		for _, kw := range f.TriggerKeywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("framework %s keyword %q is not lowercase", f.ID, kw)
			}
		}
	}
}

func TestByID(t *testing.T) {
	cat := Builtin()

	f, err := cat.ByID("reasoning")
	if err != nil {
		t.Fatalf("ByID(reasoning) failed: %v", err)
	}
	if f.TemplateKind != KindChainOfThought {
		t.Errorf("expected chain_of_thought kind, got %s", f.TemplateKind)
	}

	if _, err := cat.ByID("nonexistent"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cat := Builtin()

	all := cat.All()
	all[0].ID = "mutated"

	if cat.All()[0].ID == "mutated" {
		t.Error("mutating All result changed catalog state")
	}
}

func TestNewValidation(t *testing.T) {
	valid := Framework{
		ID:           "one",
		Name:         "One",
		RolePersonas: []string{"Specialist"},
		TemplateKind: KindNarrative,
	}

	tests := []struct {
		name       string
		frameworks []Framework
		defaultID  string
	}{
		{"empty catalog", nil, "one"},
		{"missing id", []Framework{{RolePersonas: []string{"p"}, TemplateKind: KindNarrative}}, "one"},
		{"duplicate id", []Framework{valid, valid}, "one"},
		{"no personas", []Framework{{ID: "one", TemplateKind: KindNarrative}}, "one"},
		{"bad template kind", []Framework{{ID: "one", RolePersonas: []string{"p"}, TemplateKind: "bogus"}}, "one"},
		{"default not in catalog", []Framework{valid}, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.frameworks, tt.defaultID); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Error("expected error for malformed yaml")
	}

	badPattern := `
default: x
frameworks:
  - id: x
    name: X
    template: narrative
    personas: [P]
    patterns: ['(unclosed']
`
	if _, err := Parse([]byte(badPattern)); err == nil {
		t.Error("expected error for invalid regex pattern")
	}
}

func TestParseNormalizesKeywords(t *testing.T) {
	doc := `
default: x
frameworks:
  - id: x
    name: X
    template: narrative
    personas: [P]
    keywords: ["  Write ", "write", "DRAFT", ""]
`
	cat, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	f, _ := cat.ByID("x")
	want := []string{"write", "draft"}
	if len(f.TriggerKeywords) != len(want) {
		t.Fatalf("expected keywords %v, got %v", want, f.TriggerKeywords)
	}
	for i, kw := range want {
		if f.TriggerKeywords[i] != kw {
			t.Errorf("keyword[%d]: expected %q, got %q", i, kw, f.TriggerKeywords[i])
		}
	}
}

func TestPatternsCaseInsensitive(t *testing.T) {
	f, err := Builtin().ByID("reasoning")
	if err != nil {
		t.Fatal(err)
	}

	matched := false
	for _, re := range f.PhrasePatterns {
		if re.MatchString("SHOULD I take this job") {
			matched = true
		}
	}
	if !matched {
		t.Error("expected a reasoning pattern to match uppercased phrasing")
	}
}

func TestIDsSorted(t *testing.T) {
	ids := Builtin().IDs()
	if len(ids) != 7 {
		t.Fatalf("expected 7 ids, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("ids not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}
