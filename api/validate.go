package api

import (
	"fmt"
	"regexp"
	"strings"

	"cruxen/app"
	"cruxen/internal/errors"
)

var (
	frameworkIDRe = regexp.MustCompile(`^[a-z0-9_]+$`)

	// suspiciousPatterns block obvious injection payloads before they
	// reach the engine or get echoed back to a browser.
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script[\s>]`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)data:text/html`),
		regexp.MustCompile(`\{\{.*\}\}`),
		regexp.MustCompile(`\$\{.*\}`),
	}
)

// validatePrompt enforces presence, length bounds, and content safety.
// Emptiness after trim is left to the engine so the EMPTY_INPUT code
// stays authoritative.
func (a *App) validatePrompt(prompt string) error {
	if prompt == "" {
		return errors.InvalidInput("prompt is required")
	}

	trimmed := strings.TrimSpace(prompt)
	if trimmed != "" && len(trimmed) < a.cfg.MinPromptLength {
		return errors.InvalidInput(fmt.Sprintf("prompt must be at least %d characters", a.cfg.MinPromptLength))
	}
	if len(prompt) > a.cfg.MaxPromptLength {
		return errors.InvalidInput(fmt.Sprintf("prompt must be at most %d characters", a.cfg.MaxPromptLength))
	}

	for _, re := range suspiciousPatterns {
		if re.MatchString(prompt) {
			return errors.InvalidInput("prompt contains disallowed content")
		}
	}
	return nil
}

// validFrameworkID normalizes and shape-checks a framework id. Catalog
// membership is checked downstream.
func validFrameworkID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || !frameworkIDRe.MatchString(id) {
		return "", errors.InvalidInput("framework id must match [a-z0-9_]+")
	}
	return id, nil
}

// chatSystemPrompt gives the provider the framework context for the
// final rewrite pass.
func chatSystemPrompt(result *app.Result) string {
	return fmt.Sprintf(`You are a prompt engineering specialist.
Your task is to improve and optimize user prompts based on the following framework and context.

Framework: %s
Description: %s
Role/Context: %s
Confidence: %.0f%%

Take the structured prompt and refine it to be more systematic, structured, and result-oriented using the framework principles.
Return ONLY the optimized prompt, nothing else.`,
		result.Framework.Name,
		result.Framework.Description,
		result.Framework.Role,
		result.Confidence*100,
	)
}
