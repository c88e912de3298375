package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"

	"cruxen/app"
	"cruxen/domain/framework"
	"cruxen/domain/template"
	"cruxen/internal/errors"
	"cruxen/ports"
)

// frameworkSummary is the read-only catalog dump shape.
type frameworkSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	IdealUseCases   []string `json:"ideal_use_cases"`
	ExampleInputs   []string `json:"example_inputs"`
	RolePersonas    []string `json:"role_personas"`
	TriggerKeywords []string `json:"trigger_keywords,omitempty"`
}

func summarize(f framework.Framework, withKeywords bool) frameworkSummary {
	s := frameworkSummary{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description,
		IdealUseCases: f.IdealUseCases,
		ExampleInputs: f.ExampleInputs,
		RolePersonas:  f.RolePersonas,
	}
	if withKeywords {
		s.TriggerKeywords = f.TriggerKeywords
	}
	return s
}

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "CruxEn Prompt Optimization API",
		"version": serviceVersion,
		"status":  "running",
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"llm_available": a.completer != nil,
	})
}

func (a *App) handleListFrameworks(w http.ResponseWriter, r *http.Request) {
	all := a.optimizer.Catalog().All()
	out := make([]frameworkSummary, 0, len(all))
	for _, f := range all {
		out = append(out, summarize(f, false))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) handleGetFramework(w http.ResponseWriter, r *http.Request) {
	id, err := validFrameworkID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	f, err := a.optimizer.Catalog().ByID(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(f, true))
}

// optimizeRequest is the body for /optimize and /chat.
type optimizeRequest struct {
	Prompt      string `json:"prompt"`
	Framework   string `json:"framework,omitempty"`
	IncludeHTML bool   `json:"include_html,omitempty"`
	IncludeMeta bool   `json:"include_meta,omitempty"`
}

func (a *App) handleOptimize(w http.ResponseWriter, r *http.Request) {
	req, err := a.decodeOptimizeRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := a.optimizer.Process(req.Prompt, req.Framework)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !req.IncludeHTML {
		writeJSON(w, http.StatusOK, result)
		return
	}

	// The templates render markdown; the HTML form is a convenience for
	// clients that preview the prompt.
	writeJSON(w, http.StatusOK, struct {
		*app.Result
		OptimizedPromptHTML string `json:"optimized_prompt_html"`
	}{
		Result:              result,
		OptimizedPromptHTML: string(markdown.ToHTML([]byte(result.OptimizedPrompt), nil, nil)),
	})
}

func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	if a.completer == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{
			Error: "LLM service not configured. GROQ_API_KEY required.",
		})
		return
	}

	req, err := a.decodeOptimizeRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := a.optimizer.Process(req.Prompt, req.Framework)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := a.completer.Complete(r.Context(), ports.CompletionRequest{
		Model:        a.llmCfg.Model,
		SystemPrompt: chatSystemPrompt(result),
		UserPrompt:   result.OptimizedPrompt,
		MaxTokens:    a.llmCfg.MaxTokens,
		Temperature:  a.llmCfg.Temperature,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := map[string]interface{}{
		"response": resp.Content,
	}
	if req.IncludeMeta {
		body["metadata"] = map[string]interface{}{
			"framework":       result.Framework,
			"confidence":      result.Confidence,
			"reasoning":       result.Reasoning,
			"quality_metrics": result.QualityMetrics,
			"violations":      template.Validate(result.OptimizedPrompt),
			"llm_model":       resp.Model,
			"usage":           resp.Usage,
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (a *App) decodeOptimizeRequest(r *http.Request) (*optimizeRequest, error) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.InvalidInput("request body must be a JSON object")
	}
	if err := a.validatePrompt(req.Prompt); err != nil {
		return nil, err
	}
	if req.Framework != "" {
		id, err := validFrameworkID(req.Framework)
		if err != nil {
			return nil, err
		}
		req.Framework = id
	}
	return &req, nil
}
