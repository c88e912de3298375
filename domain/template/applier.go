// Package template expands raw request text into a structured prompt
// scaffold specific to the detected framework. Rendering is pure string
// interpolation: the same (text, frameworkID) pair always produces the
// same output.
package template

import (
	"strings"

	"cruxen/domain/framework"
	"cruxen/internal/errors"
)

// renderFn renders one template kind. The verbatim text goes into the
// request restatement; the cleaned text feeds the objective slot.
type renderFn func(f framework.Framework, text, cleaned string) string

// renderers is a total mapping over framework.Kinds(). New's coverage
// check keeps "unknown template" out of the runtime error space.
var renderers = map[framework.TemplateKind]renderFn{
	framework.KindChainOfThought: renderChainOfThought,
	framework.KindMultiSource:    renderMultiSource,
	framework.KindInstructional:  renderInstructional,
	framework.KindCodeFocused:    renderCodeFocused,
	framework.KindDivergent:      renderDivergent,
	framework.KindNarrative:      renderNarrative,
	framework.KindEvaluative:     renderEvaluative,
}

// Applier renders framework-specific prompt templates. Stateless apart
// from the immutable catalog; safe for concurrent use.
type Applier struct {
	catalog *framework.Catalog
}

// New creates an applier and verifies every catalog framework maps to a
// known renderer, so Apply can never hit an unrenderable kind.
func New(catalog *framework.Catalog) (*Applier, error) {
	for _, f := range catalog.All() {
		if _, ok := renderers[f.TemplateKind]; !ok {
			return nil, errors.ConfigInvalid("no renderer for template kind: " + string(f.TemplateKind))
		}
	}
	return &Applier{catalog: catalog}, nil
}

// Apply expands text into the structured prompt for frameworkID. The
// output restates the trimmed input verbatim and always adds scaffolding,
// so it is never shorter than the trimmed input.
func (a *Applier) Apply(text, frameworkID string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errors.EmptyInput()
	}

	f, err := a.catalog.ByID(frameworkID)
	if err != nil {
		return "", errors.UnknownFramework(frameworkID)
	}

	cleaned := Clean(trimmed)
	if cleaned == "" {
		cleaned = trimmed
	}

	return renderers[f.TemplateKind](f, trimmed, cleaned), nil
}

// prompt assembles the shared section skeleton every template uses.
type prompt struct {
	b strings.Builder
}

func (p *prompt) role(f framework.Framework, posture string) {
	p.b.WriteString("## Role\n")
	p.b.WriteString("You are a " + f.PrimaryPersona() + ". " + posture + "\n\n")
}

func (p *prompt) request(text string) {
	p.b.WriteString("## Request\n")
	p.b.WriteString(text + "\n\n")
}

func (p *prompt) objective(goal, cleaned string) {
	p.b.WriteString("## Objective\n")
	p.b.WriteString(goal + ": " + cleaned + "\n\n")
}

func (p *prompt) scope(included, excluded []string) {
	p.b.WriteString("## Scope\n")
	p.b.WriteString("Included:\n")
	p.list(included)
	p.b.WriteString("Excluded:\n")
	p.list(excluded)
	p.b.WriteString("\n")
}

func (p *prompt) constraints(items []string) {
	p.b.WriteString("## Constraints\n")
	p.list(items)
	p.b.WriteString("\n")
}

func (p *prompt) execution(steps []string) {
	p.b.WriteString("## Execution\n")
	for i, s := range steps {
		p.b.WriteString(numbered(i+1) + s + "\n")
	}
	p.b.WriteString("\n")
}

func (p *prompt) contract(items []string) {
	p.b.WriteString("## Output Contract\n")
	p.list(items)
}

func (p *prompt) list(items []string) {
	for _, it := range items {
		p.b.WriteString("- " + it + "\n")
	}
}

func (p *prompt) String() string {
	return strings.TrimRight(p.b.String(), "\n") + "\n"
}

func numbered(i int) string {
	digits := [...]string{"1. ", "2. ", "3. ", "4. ", "5. ", "6. ", "7. ", "8. ", "9. "}
	if i >= 1 && i <= len(digits) {
		return digits[i-1]
	}
	return "- "
}
