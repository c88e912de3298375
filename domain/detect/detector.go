// Package detect maps raw request text to the framework whose trigger
// keywords and phrase patterns match it best.
package detect

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"cruxen/domain/framework"
	"cruxen/internal/errors"
)

// Scoring weights. The split favors phrase patterns over bare keywords
// because patterns encode sentence structure, not just vocabulary.
// These are tuning knobs: tests assert monotonicity and bounds, not
// exact values.
const (
	keywordWeight = 0.4
	patternWeight = 0.6

	// keywordCap bounds the divisor so frameworks with long keyword
	// lists are not penalized, and caps the counted hits so no single
	// framework dominates on vocabulary alone.
	keywordCap = 5
)

// Result is the outcome of a single detection pass.
type Result struct {
	FrameworkID string
	Confidence  float64
	// Scores holds the raw match score for every framework, keyed by id.
	Scores    map[string]float64
	Reasoning string
}

// Detector classifies text against an immutable catalog. It holds no
// mutable state and is safe for concurrent use.
type Detector struct {
	catalog *framework.Catalog
}

// New creates a detector over the given catalog.
func New(catalog *framework.Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// Detect scores text against every framework and returns exactly one
// framework id. When nothing matches, the catalog's designated default
// is returned with zero confidence; that is a defined fallback outcome,
// not an error. Empty input is the only error condition.
func (d *Detector) Detect(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.EmptyInput()
	}

	normalized := strings.ToLower(text)
	tokens := tokenize(normalized)

	all := d.catalog.All()
	scores := make(map[string]float64, len(all))
	rawByOrder := make([]float64, len(all))

	best := -1
	for i, f := range all {
		raw := keywordWeight*keywordScore(f, normalized, tokens) + patternWeight*patternScore(f, text)
		scores[f.ID] = raw
		rawByOrder[i] = raw
		// Strict greater-than: ties go to the earlier declaration.
		if best < 0 || raw > rawByOrder[best] {
			best = i
		}
	}

	total := floats.Sum(rawByOrder)
	if total == 0 {
		def := d.catalog.Default()
		return &Result{
			FrameworkID: def.ID,
			Confidence:  0,
			Scores:      scores,
			Reasoning:   fmt.Sprintf("no trigger keywords or phrase patterns matched; falling back to %s", def.Name),
		}, nil
	}

	selected := all[best]
	confidence := clamp01(rawByOrder[best] / total)

	return &Result{
		FrameworkID: selected.ID,
		Confidence:  confidence,
		Scores:      scores,
		Reasoning:   fmt.Sprintf("%s selected based on detected keywords and phrasing patterns", selected.Name),
	}, nil
}

// keywordScore counts distinct trigger keyword hits, capped, normalized
// to [0,1]. Single-word keywords require a whole-token match so "app"
// does not fire on "apple"; multi-word keywords match as substrings.
func keywordScore(f framework.Framework, normalized string, tokens map[string]struct{}) float64 {
	if len(f.TriggerKeywords) == 0 {
		return 0
	}

	hits := 0
	for _, kw := range f.TriggerKeywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(normalized, kw) {
				hits++
			}
		} else if _, ok := tokens[kw]; ok {
			hits++
		}
	}

	denom := len(f.TriggerKeywords)
	if denom > keywordCap {
		denom = keywordCap
	}
	if hits > denom {
		hits = denom
	}
	return float64(hits) / float64(denom)
}

// patternScore is the fraction of the framework's phrase patterns that
// match anywhere in the original text. Patterns are compiled
// case-insensitively at catalog load, so no normalization happens here.
func patternScore(f framework.Framework, text string) float64 {
	if len(f.PhrasePatterns) == 0 {
		return 0
	}
	matched := 0
	for _, re := range f.PhrasePatterns {
		if re.MatchString(text) {
			matched++
		}
	}
	return float64(matched) / float64(len(f.PhrasePatterns))
}

// tokenize splits lowercased text into a word set on non-alphanumeric
// boundaries.
func tokenize(normalized string) map[string]struct{} {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, w := range fields {
		tokens[w] = struct{}{}
	}
	return tokens
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
