// Package quality provides heuristic prompt quality scoring. Scores are
// diagnostic only: the scorer is a total function and never blocks the
// optimization flow.
package quality

import (
	"regexp"
	"strings"

	"github.com/montanaflynn/stats"
)

// Breakdown holds the four sub-scores plus their unweighted mean. All
// values are clamped to [0,1].
type Breakdown struct {
	Clarity      float64 `json:"clarity"`
	Specificity  float64 `json:"specificity"`
	Structure    float64 `json:"structure"`
	Completeness float64 `json:"completeness"`
	Overall      float64 `json:"overall"`
}

// Weighted-score coefficients. Equal weights are a policy default, kept
// as named constants so recalibration does not touch the scoring logic.
const (
	weightLength       = 0.25
	weightStructure    = 0.25
	weightSpecificity  = 0.25
	weightInstructions = 0.25

	// saturationWords is where length adequacy plateaus: enough detail,
	// no reward for verbosity beyond it.
	saturationWords = 30
)

var (
	numberRe    = regexp.MustCompile(`\b\d+(\.\d+)?\b`)
	quotedRe    = regexp.MustCompile(`"[^"]+"|'[^']+'`)
	bulletRe    = regexp.MustCompile(`(?m)^\s*([-*+]|\d+[.)])\s`)
	headerRe    = regexp.MustCompile(`(?m)^#{1,6}\s`)
	listColonRe = regexp.MustCompile(`:\s*(\n|$)`)

	constraintWords = []string{"must", "should", "require", "required", "exactly", "only", "at least", "at most", "never"}

	directiveVerbs = map[string]struct{}{
		"write": {}, "build": {}, "create": {}, "implement": {}, "generate": {},
		"explain": {}, "list": {}, "compare": {}, "analyze": {}, "design": {},
		"summarize": {}, "produce": {}, "describe": {}, "evaluate": {}, "draft": {},
		"review": {}, "fix": {}, "debug": {}, "teach": {}, "translate": {},
	}

	goalPhrases = []string{"so that", "in order to", "the goal", "i want", "i need", "output", "deliver", "return"}

	stopwords = map[string]struct{}{
		"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "if": {},
		"of": {}, "to": {}, "in": {}, "on": {}, "for": {}, "with": {}, "at": {},
		"by": {}, "is": {}, "are": {}, "was": {}, "be": {}, "it": {}, "this": {},
		"that": {}, "i": {}, "you": {}, "my": {}, "me": {}, "we": {}, "do": {},
		"can": {}, "how": {}, "what": {}, "about": {}, "as": {},
	}
)

// Score computes the quality breakdown for text. Empty or whitespace-only
// input yields the minimum on every sub-score rather than an error.
func Score(text string) Breakdown {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Breakdown{}
	}

	b := Breakdown{
		Clarity:      lengthAdequacy(trimmed),
		Specificity:  specificity(trimmed),
		Structure:    structure(trimmed),
		Completeness: explicitInstructions(trimmed),
	}

	mean, err := stats.Mean([]float64{b.Clarity, b.Specificity, b.Structure, b.Completeness})
	if err == nil {
		b.Overall = clamp01(mean)
	}
	return b
}

// WeightedOverall is the weighted single-number score reported for the
// optimized prompt. It reuses the same sub-score heuristics under the
// explicit weight policy.
func WeightedOverall(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return clamp01(weightLength*lengthAdequacy(trimmed) +
		weightStructure*structure(trimmed) +
		weightSpecificity*specificity(trimmed) +
		weightInstructions*explicitInstructions(trimmed))
}

// lengthAdequacy rises with word count and plateaus at saturationWords.
func lengthAdequacy(text string) float64 {
	words := len(strings.Fields(text))
	return clamp01(float64(words) / float64(saturationWords))
}

// structure rewards presence of structural markers: multiple lines,
// bullet or numbered lists, headers, and colons introducing lists.
func structure(text string) float64 {
	signals := 0.0
	if strings.Contains(text, "\n") {
		signals++
	}
	if bulletRe.MatchString(text) {
		signals++
	}
	if headerRe.MatchString(text) {
		signals++
	}
	if listColonRe.MatchString(text) {
		signals++
	}
	return clamp01(signals / 3)
}

// specificity blends vocabulary richness (distinct non-stopword tokens
// over total tokens) with explicit constraint indicators: numbers,
// quoted strings, and constraint keywords.
func specificity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	distinct := make(map[string]struct{}, len(tokens))
	content := 0
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		content++
		distinct[tok] = struct{}{}
	}
	richness := float64(len(distinct)) / float64(len(tokens))

	indicators := 0.0
	if numberRe.MatchString(text) {
		indicators++
	}
	if quotedRe.MatchString(text) {
		indicators++
	}
	lower := strings.ToLower(text)
	for _, w := range constraintWords {
		if strings.Contains(lower, w) {
			indicators++
			break
		}
	}

	return clamp01(0.7*richness + 0.1*indicators)
}

// explicitInstructions rewards directive verbs and explicit goal
// statements.
func explicitInstructions(text string) float64 {
	tokens := tokenize(text)
	directives := 0
	for _, tok := range tokens {
		if _, ok := directiveVerbs[tok]; ok {
			directives++
		}
	}

	score := 0.0
	if directives > 0 {
		score += 0.5
	}
	if directives > 2 {
		score += 0.2
	}

	lower := strings.ToLower(text)
	for _, phrase := range goalPhrases {
		if strings.Contains(lower, phrase) {
			score += 0.3
			break
		}
	}
	return clamp01(score)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
