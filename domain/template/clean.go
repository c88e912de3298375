package template

import (
	"regexp"
	"strings"
)

// fillerPatterns strip politeness and hedge phrasing from the objective
// slot. The request restatement always stays verbatim; only the derived
// objective line is cleaned.
var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(please|kindly|could you|can you|i want to|i need to|i would like to)\b`),
	regexp.MustCompile(`(?i)\b(maybe|possibly|perhaps|something like|sort of|kind of)\b`),
	regexp.MustCompile(`(?i)\b(basically|actually|honestly|literally)\b`),
}

// Clean removes filler phrases and collapses whitespace. It can return
// an empty string when the input is filler all the way down; callers
// fall back to the verbatim text in that case.
func Clean(text string) string {
	for _, re := range fillerPatterns {
		text = re.ReplaceAllString(text, "")
	}
	return strings.Join(strings.Fields(text), " ")
}
