package template

import (
	"strings"
	"testing"

	"cruxen/domain/framework"
)

func TestValidateRenderedTemplates(t *testing.T) {
	a := newApplier(t)

	for _, f := range framework.Builtin().All() {
		out, err := a.Apply("compare the two storage engines for write-heavy workloads", f.ID)
		if err != nil {
			t.Fatalf("Apply(%s) failed: %v", f.ID, err)
		}
		if violations := Validate(out); len(violations) != 0 {
			t.Errorf("framework %s rendered with violations: %v", f.ID, violations)
		}
	}
}

// Hedge words carried in by the user's own request are not the
// template's problem: only the scaffolding is held to the standard.
func TestValidateIgnoresRequestSection(t *testing.T) {
	a := newApplier(t)

	out, err := a.Apply("maybe we should sort of redesign the onboarding flow", "reasoning")
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if violations := Validate(out); len(violations) != 0 {
		t.Errorf("user hedges in the request section flagged: %v", violations)
	}
}

func TestValidateMissingSections(t *testing.T) {
	violations := Validate("## Role\nYou are an editor.\n")

	if len(violations) == 0 {
		t.Fatal("expected violations for missing sections")
	}
	joined := strings.Join(violations, "; ")
	for _, want := range []string{"Request", "Objective", "Execution", "Output Contract"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected missing-section violation for %s, got: %s", want, joined)
		}
	}
}

func TestValidateHedgeDetection(t *testing.T) {
	doc := "## Role\nX\n## Request\nY\n## Objective\nperhaps do Z\n## Execution\n1. go\n## Output Contract\n- done\n"

	violations := Validate(doc)
	found := false
	for _, v := range violations {
		if strings.Contains(v, "perhaps") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected hedge violation for 'perhaps', got: %v", violations)
	}
}
