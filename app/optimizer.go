// Package app wires the catalog, detector, applier, and scorer into the
// single optimization entry point the external surfaces consume.
package app

import (
	"strings"

	"cruxen/domain/detect"
	"cruxen/domain/framework"
	"cruxen/domain/quality"
	"cruxen/domain/template"
	"cruxen/internal/errors"
)

// FrameworkInfo is the framework summary embedded in a result.
type FrameworkInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Role        string `json:"role"`
}

// QualityMetrics reports before/after scoring for one optimization.
type QualityMetrics struct {
	Original  quality.Breakdown `json:"original"`
	Optimized quality.Breakdown `json:"optimized"`
	// Improvement may be negative for inputs that were already well
	// structured; that is a valid outcome, not a defect.
	Improvement  float64 `json:"improvement"`
	OverallScore float64 `json:"overall_score"`
}

// Result is the full optimization payload returned to callers. It is
// assembled whole or not at all; no partial results escape.
type Result struct {
	OriginalInput   string             `json:"original_input"`
	OptimizedPrompt string             `json:"optimized_prompt"`
	Framework       FrameworkInfo      `json:"framework"`
	Confidence      float64            `json:"confidence"`
	Reasoning       string             `json:"reasoning"`
	Scores          map[string]float64 `json:"scores,omitempty"`
	QualityMetrics  QualityMetrics     `json:"quality_metrics"`
}

// Optimizer orchestrates detection, template expansion, and scoring.
// Pure and stateless apart from the immutable catalog; safe to call from
// any number of goroutines.
type Optimizer struct {
	catalog  *framework.Catalog
	detector *detect.Detector
	applier  *template.Applier
}

// NewOptimizer builds the orchestrator over a catalog.
func NewOptimizer(catalog *framework.Catalog) (*Optimizer, error) {
	applier, err := template.New(catalog)
	if err != nil {
		return nil, err
	}
	return &Optimizer{
		catalog:  catalog,
		detector: detect.New(catalog),
		applier:  applier,
	}, nil
}

// Process optimizes text. When explicitFrameworkID is non-empty it is
// validated against the catalog and used with full confidence; otherwise
// the detector chooses. Errors carry their taxonomy code unchanged so
// the HTTP layer can map them without inspection.
func (o *Optimizer) Process(text, explicitFrameworkID string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.EmptyInput()
	}

	var (
		selected   framework.Framework
		confidence float64
		reasoning  string
		scores     map[string]float64
	)

	if explicitFrameworkID != "" {
		f, err := o.catalog.ByID(explicitFrameworkID)
		if err != nil {
			return nil, errors.UnknownFramework(explicitFrameworkID)
		}
		selected = f
		confidence = 1.0
		reasoning = "explicit framework selection"
	} else {
		det, err := o.detector.Detect(text)
		if err != nil {
			return nil, err
		}
		f, err := o.catalog.ByID(det.FrameworkID)
		if err != nil {
			// Detection only returns catalog ids; anything else is a bug.
			return nil, errors.Wrap(err, "detector returned unknown framework")
		}
		selected = f
		confidence = det.Confidence
		reasoning = det.Reasoning
		scores = det.Scores
	}

	optimized, err := o.applier.Apply(text, selected.ID)
	if err != nil {
		return nil, err
	}

	original := quality.Score(text)
	after := quality.Score(optimized)

	return &Result{
		OriginalInput:   text,
		OptimizedPrompt: optimized,
		Framework: FrameworkInfo{
			ID:          selected.ID,
			Name:        selected.Name,
			Description: selected.Description,
			Role:        selected.PrimaryPersona(),
		},
		Confidence: confidence,
		Reasoning:  reasoning,
		Scores:     scores,
		QualityMetrics: QualityMetrics{
			Original:     original,
			Optimized:    after,
			Improvement:  after.Overall - original.Overall,
			OverallScore: quality.WeightedOverall(optimized),
		},
	}, nil
}

// Catalog exposes the immutable catalog for read-only surfaces.
func (o *Optimizer) Catalog() *framework.Catalog {
	return o.catalog
}
