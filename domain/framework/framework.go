package framework

import (
	"regexp"

	"cruxen/internal/errors"
)

// TemplateKind selects which expansion template the applier renders for a
// framework. The set is closed: every kind maps to exactly one renderer,
// and catalog construction rejects kinds outside this set.
type TemplateKind string

const (
	KindChainOfThought TemplateKind = "chain_of_thought"
	KindMultiSource    TemplateKind = "multi_source"
	KindInstructional  TemplateKind = "instructional"
	KindCodeFocused    TemplateKind = "code_focused"
	KindDivergent      TemplateKind = "divergent"
	KindNarrative      TemplateKind = "narrative"
	KindEvaluative     TemplateKind = "evaluative"
)

// Kinds lists every valid template kind in declaration order.
func Kinds() []TemplateKind {
	return []TemplateKind{
		KindChainOfThought,
		KindMultiSource,
		KindInstructional,
		KindCodeFocused,
		KindDivergent,
		KindNarrative,
		KindEvaluative,
	}
}

// Valid reports whether k is one of the declared template kinds.
func (k TemplateKind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Framework is a named category of user intent with a detection signature
// (trigger keywords + phrase patterns) and an associated prompt template.
// Instances are built once at catalog construction and never mutated.
type Framework struct {
	ID            string
	Name          string
	Description   string
	IdealUseCases []string

	// TriggerKeywords are lowercase, deduplicated literals. Single-word
	// keywords match on word boundaries; multi-word keywords match as
	// substrings of the lowercased input.
	TriggerKeywords []string

	// PhrasePatterns are compiled case-insensitively. Order does not
	// affect matching.
	PhrasePatterns []*regexp.Regexp

	// RolePersonas is non-empty; the first entry is the primary persona
	// used in template filling.
	RolePersonas []string

	TemplateKind TemplateKind

	// ExampleInputs are documentation-only samples, never consulted by
	// detection or scoring.
	ExampleInputs []string
}

// PrimaryPersona returns the persona used for the template role header.
func (f Framework) PrimaryPersona() string {
	return f.RolePersonas[0]
}

// Catalog is the immutable set of framework definitions, with one
// designated fallback used when detection matches nothing. It is safe for
// concurrent use once constructed.
type Catalog struct {
	frameworks []Framework
	byID       map[string]Framework
	defaultID  string
}

// New builds a catalog from framework records and validates it: ids must
// be unique and non-empty, every framework needs at least one persona and
// a valid template kind, and defaultID must name a declared framework.
func New(frameworks []Framework, defaultID string) (*Catalog, error) {
	if len(frameworks) == 0 {
		return nil, errors.ConfigInvalid("catalog requires at least one framework")
	}

	byID := make(map[string]Framework, len(frameworks))
	for _, f := range frameworks {
		if f.ID == "" {
			return nil, errors.ConfigInvalid("framework id must be non-empty")
		}
		if _, dup := byID[f.ID]; dup {
			return nil, errors.ConfigInvalid("duplicate framework id: " + f.ID)
		}
		if len(f.RolePersonas) == 0 {
			return nil, errors.ConfigInvalid("framework " + f.ID + " has no role personas")
		}
		if !f.TemplateKind.Valid() {
			return nil, errors.ConfigInvalid("framework " + f.ID + " has unknown template kind: " + string(f.TemplateKind))
		}
		byID[f.ID] = f
	}

	if _, ok := byID[defaultID]; !ok {
		return nil, errors.ConfigInvalid("default framework id not in catalog: " + defaultID)
	}

	out := make([]Framework, len(frameworks))
	copy(out, frameworks)

	return &Catalog{
		frameworks: out,
		byID:       byID,
		defaultID:  defaultID,
	}, nil
}

// All returns the frameworks in declaration order. The returned slice is
// a copy; callers cannot mutate catalog state through it.
func (c *Catalog) All() []Framework {
	out := make([]Framework, len(c.frameworks))
	copy(out, c.frameworks)
	return out
}

// ByID looks up a framework by id. Unknown ids are a client input error,
// not a system failure.
func (c *Catalog) ByID(id string) (Framework, error) {
	f, ok := c.byID[id]
	if !ok {
		return Framework{}, errors.NotFound("framework " + id)
	}
	return f, nil
}

// Default returns the designated fallback framework.
func (c *Catalog) Default() Framework {
	return c.byID[c.defaultID]
}

// Len returns the number of declared frameworks.
func (c *Catalog) Len() int {
	return len(c.frameworks)
}
