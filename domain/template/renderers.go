package template

import (
	"cruxen/domain/framework"
)

// The section content below is deliberately opinionated: each template
// commits to a single direction instead of offering alternatives, so the
// downstream model receives decisions, not options.

func renderCodeFocused(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Deliver production-grade work, not prototypes.")
	p.request(text)
	p.objective("Build a deterministic, production-ready implementation", cleaned)
	p.scope(
		[]string{"Core functionality", "Explicit error handling", "Type safety"},
		[]string{"Deployment configuration", "CI/CD pipelines", "Documentation beyond inline comments"},
	)
	p.constraints([]string{
		"Single technology stack, decided upfront",
		"Modular structure with single-responsibility units",
		"Every failure path handled explicitly",
		"No placeholders, no pseudo-code",
	})
	p.execution([]string{
		"Define the file structure and module boundaries",
		"Establish interfaces and type contracts",
		"Implement core logic with input validation",
		"Add error handling for edge cases",
		"Include a usage example",
	})
	p.contract([]string{
		"Complete, runnable code with all imports",
		"Inline comments only where intent is non-obvious",
		"No alternative implementations",
	})
	return p.String()
}

func renderChainOfThought(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Reason from first principles and land on one recommendation.")
	p.request(text)
	p.objective("Produce a single decision-grade recommendation", cleaned)
	p.scope(
		[]string{"Problem reframing", "Option analysis", "One recommendation"},
		[]string{"Implementation details", "Timelines", "Resource allocation"},
	)
	p.constraints([]string{
		"Restate the problem from first principles before analyzing",
		"Exactly three distinct options",
		"Explicit decision criteria with weights",
		"No hedging, no motivational language",
	})
	p.execution([]string{
		"Reframe the problem from first principles",
		"Identify hard constraints and key variables",
		"Generate three distinct options",
		"Score each option against weighted criteria",
		"State one recommendation with its reasoning chain",
	})
	p.contract([]string{
		"Structured analysis with a decision matrix",
		"Visible step-by-step reasoning",
		"Exactly one recommendation",
	})
	return p.String()
}

func renderMultiSource(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Ground every claim in evidence.")
	p.request(text)
	p.objective("Conduct a structured, evidence-backed analysis", cleaned)
	p.scope(
		[]string{"Research question", "Methodology", "Findings", "Implications"},
		[]string{"Recommendations beyond the stated scope", "Speculative futures"},
	)
	p.constraints([]string{
		"State the research question explicitly first",
		"Declare assumptions upfront",
		"Draw on multiple distinct sources or perspectives",
		"No claims without backing",
	})
	p.execution([]string{
		"Frame the precise research question",
		"Define scope boundaries and methodology",
		"Gather evidence from distinct source types",
		"Synthesize findings against the question",
		"State implications and known limitations",
	})
	p.contract([]string{
		"Structured analysis with section headers",
		"Each finding tied to its evidence",
		"Explicit limitations section",
	})
	return p.String()
}

func renderInstructional(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Teach progressively with verification at each step.")
	p.request(text)
	p.objective("Teach the concept progressively with checkpoints", cleaned)
	p.scope(
		[]string{"Core concept", "Prerequisites", "Practice exercises"},
		[]string{"Advanced edge cases", "Alternative approaches", "Historical context"},
	)
	p.constraints([]string{
		"State prerequisites before any content",
		"One concept per section",
		"Progress strictly from simple to applied to abstract",
		"End each section with a verification checkpoint",
	})
	p.execution([]string{
		"State prerequisites and the single learning outcome",
		"Introduce the concept with a minimal example",
		"Explain the mechanism, not just the surface form",
		"Provide a practice exercise with its expected result",
		"Bridge to the next concept",
	})
	p.contract([]string{
		"Numbered sections with headers",
		"Concept explanation, worked example, exercise",
		"No tangents",
	})
	return p.String()
}

func renderDivergent(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Create within explicit constraints and a single mood anchor.")
	p.request(text)
	p.objective("Generate creative output within explicit boundaries", cleaned)
	p.scope(
		[]string{"Concept directions", "Style rules", "One selected direction"},
		[]string{"Implementation detail", "Distribution strategy"},
	)
	p.constraints([]string{
		"Anchor on a single mood, stated explicitly",
		"Style rules expressed with concrete values",
		"Generate wide, then commit to one direction",
	})
	p.execution([]string{
		"Define the creative constraints explicitly",
		"Generate divergent candidate directions",
		"Evaluate candidates against the mood anchor",
		"Develop the strongest direction fully",
	})
	p.contract([]string{
		"One fully developed creative direction",
		"Stated constraints it satisfies",
		"No mood boards, no option lists",
	})
	return p.String()
}

func renderNarrative(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Write for one audience with one intent.")
	p.request(text)
	p.objective("Produce structured content for a defined audience", cleaned)
	p.scope(
		[]string{"Core message", "Structure", "Call to action"},
		[]string{"Distribution strategy", "SEO", "Visual assets"},
	)
	p.constraints([]string{
		"Define the audience explicitly before writing",
		"Lock a single content intent",
		"Keep tone consistent throughout",
		"Structure for scannable reading",
	})
	p.execution([]string{
		"Define the audience context and needs",
		"Lock the single content intent",
		"Draft with a clear narrative arc",
		"Apply the tone rules throughout",
		"Close with one clear call to action",
	})
	p.contract([]string{
		"A complete, publishable draft",
		"Headers and short paragraphs",
		"No alternative drafts",
	})
	return p.String()
}

func renderEvaluative(f framework.Framework, text, cleaned string) string {
	p := &prompt{}
	p.role(f, "Judge against explicit criteria and say what to change.")
	p.request(text)
	p.objective("Evaluate the subject against explicit criteria", cleaned)
	p.scope(
		[]string{"Evaluation criteria", "Findings per criterion", "Prioritized changes"},
		[]string{"Rewriting the subject wholesale", "Praise without findings"},
	)
	p.constraints([]string{
		"State the evaluation criteria before judging",
		"Every finding cites the specific passage or element",
		"Rank suggested changes by impact",
	})
	p.execution([]string{
		"Establish the evaluation criteria",
		"Assess the subject against each criterion",
		"Record concrete findings with references",
		"Rank the changes by expected impact",
		"Summarize the overall verdict",
	})
	p.contract([]string{
		"Findings grouped by criterion",
		"A prioritized change list",
		"One overall verdict",
	})
	return p.String()
}
