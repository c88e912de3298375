package template

import (
	"fmt"
	"regexp"
	"strings"
)

// MandatorySections are the headers every rendered template carries.
var MandatorySections = []string{
	"## Role",
	"## Request",
	"## Objective",
	"## Execution",
	"## Output Contract",
}

// hedgeWords are phrasings a structured prompt should not contain. The
// templates commit to decisions; hedging undoes that.
var hedgeWords = []string{
	"maybe",
	"possibly",
	"perhaps",
	"kind of",
	"sort of",
}

var hedgeRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(hedgeWords))
	for i, w := range hedgeWords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return res
}()

// Validate reports structural violations in a rendered prompt: missing
// mandatory sections and hedge wording outside the verbatim request
// restatement. An empty slice means the prompt is well-formed. This is
// diagnostic only and never blocks the primary flow.
func Validate(rendered string) []string {
	var violations []string

	for _, section := range MandatorySections {
		if !strings.Contains(rendered, section) {
			violations = append(violations, fmt.Sprintf("missing mandatory section: %s", strings.TrimPrefix(section, "## ")))
		}
	}

	// The request section restates user input verbatim, so hedges there
	// are the user's, not the template's.
	scanned := stripRequestSection(rendered)
	for i, re := range hedgeRes {
		if re.MatchString(scanned) {
			violations = append(violations, fmt.Sprintf("hedge wording detected: %q", hedgeWords[i]))
		}
	}

	return violations
}

func stripRequestSection(rendered string) string {
	start := strings.Index(rendered, "## Request")
	if start < 0 {
		return rendered
	}
	rest := rendered[start+len("## Request"):]
	end := strings.Index(rest, "## ")
	if end < 0 {
		return rendered[:start]
	}
	return rendered[:start] + rest[end:]
}
