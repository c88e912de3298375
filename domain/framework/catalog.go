package framework

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"cruxen/internal/errors"
)

//go:embed frameworks.yaml
var builtinYAML []byte

// catalogSpec mirrors the YAML document shape.
type catalogSpec struct {
	Default    string          `yaml:"default"`
	Frameworks []frameworkSpec `yaml:"frameworks"`
}

type frameworkSpec struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Template      string   `yaml:"template"`
	Personas      []string `yaml:"personas"`
	IdealUseCases []string `yaml:"ideal_use_cases"`
	Keywords      []string `yaml:"keywords"`
	Patterns      []string `yaml:"patterns"`
	Examples      []string `yaml:"examples"`
}

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
)

// Builtin returns the catalog compiled from the embedded framework
// definitions. The catalog is built once per process and shared; it is
// read-only and safe for concurrent use. Builtin panics if the embedded
// data is invalid, since that is a build defect rather than a runtime
// condition.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		cat, err := Parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("framework: embedded catalog is invalid: %v", err))
		}
		builtinCatalog = cat
	})
	return builtinCatalog
}

// Parse builds a catalog from a YAML document. Keywords are lowercased
// and deduplicated, patterns are compiled case-insensitively, and the
// result is validated by New.
func Parse(data []byte) (*Catalog, error) {
	var spec catalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, "parse framework catalog")
	}

	frameworks := make([]Framework, 0, len(spec.Frameworks))
	for _, fs := range spec.Frameworks {
		patterns := make([]*regexp.Regexp, 0, len(fs.Patterns))
		for _, p := range fs.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, errors.Wrapf(err, "framework %s: bad phrase pattern %q", fs.ID, p)
			}
			patterns = append(patterns, re)
		}

		frameworks = append(frameworks, Framework{
			ID:              fs.ID,
			Name:            fs.Name,
			Description:     fs.Description,
			IdealUseCases:   fs.IdealUseCases,
			TriggerKeywords: normalizeKeywords(fs.Keywords),
			PhrasePatterns:  patterns,
			RolePersonas:    fs.Personas,
			TemplateKind:    TemplateKind(fs.Template),
			ExampleInputs:   fs.Examples,
		})
	}

	return New(frameworks, spec.Default)
}

// normalizeKeywords lowercases, trims, and collapses duplicate keywords
// while keeping first-seen order deterministic.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

// IDs returns the sorted framework ids, useful for error messages.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.frameworks))
	for _, f := range c.frameworks {
		ids = append(ids, f.ID)
	}
	sort.Strings(ids)
	return ids
}
