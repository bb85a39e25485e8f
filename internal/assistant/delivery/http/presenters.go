package http

import (
	"context"
	"encoding/json"
	"time"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/model"
)

// --- Request DTOs ---

type resolveReq struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

func (r resolveReq) validate() error { return nil }

func (r resolveReq) toInput() assistant.ResolveInput {
	return assistant.ResolveInput{Question: r.Question}
}

// ---

type trainReq struct {
	Entries []trainEntryReq `json:"entries" binding:"required"`
}

type trainEntryReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (r trainReq) validate() error { return nil }

func (r trainReq) toInput() assistant.TrainInput {
	entries := make([]assistant.TrainEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = assistant.TrainEntry{Question: e.Question, Answer: e.Answer}
	}
	return assistant.TrainInput{Entries: entries}
}

// ---

type listEntriesReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listEntriesReq) validate() error { return nil }

func (r listEntriesReq) toInput() assistant.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return assistant.ListInput{Limit: limit, Offset: offset}
}

// --- Response DTOs ---

type matchResp struct {
	Question   string  `json:"question"`
	Similarity float64 `json:"similarity"`
}

type intentResp struct {
	Action      string         `json:"action"`
	Params      map[string]any `json:"params"`
	Description string         `json:"description,omitempty"`
	Confidence  float64        `json:"confidence"`
}

func newIntentResp(in model.Intent) *intentResp {
	return &intentResp{
		Action:      string(in.Action),
		Params:      in.Params,
		Description: in.Description,
		Confidence:  in.Confidence,
	}
}

type templateResp struct {
	TriggerPhrase  string         `json:"trigger_phrase"`
	Action         string         `json:"action"`
	Description    string         `json:"description,omitempty"`
	RequiredInputs []string       `json:"required_inputs,omitempty"`
	DefaultParams  map[string]any `json:"default_params,omitempty"`
	Score          float64        `json:"score,omitempty"`
}

func newTemplateResp(tpl model.Template, score float64) *templateResp {
	return &templateResp{
		TriggerPhrase:  tpl.TriggerPhrase,
		Action:         string(tpl.Action),
		Description:    tpl.Description,
		RequiredInputs: tpl.RequiredInputs,
		DefaultParams:  tpl.DefaultParams,
		Score:          score,
	}
}

type resolveResp struct {
	Kind        string          `json:"kind"`
	Answer      string          `json:"answer,omitempty"`
	Similarity  float64         `json:"similarity,omitempty"`
	Matches     []matchResp     `json:"matches,omitempty"`
	Intent      *intentResp     `json:"intent,omitempty"`
	Template    *templateResp   `json:"template,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// newResolveResp shapes the outcome for the wire. Tool and template outcomes
// additionally execute the resolved action; a downstream failure leaves Data
// empty but still returns the outcome itself.
func (h *handler) newResolveResp(ctx context.Context, outcome model.ResolutionOutcome) resolveResp {
	resp := resolveResp{Kind: string(outcome.Kind)}

	switch outcome.Kind {
	case model.OutcomeFAQHit:
		hit := outcome.FAQHit
		resp.Answer = hit.Entry.Answer
		if hit.RewrittenAnswer != "" {
			resp.Answer = hit.RewrittenAnswer
		}
		resp.Similarity = hit.Similarity
		for _, m := range hit.TopMatches {
			resp.Matches = append(resp.Matches, matchResp{
				Question:   m.Entry.Question,
				Similarity: m.Similarity,
			})
		}

	case model.OutcomeToolDispatch:
		resp.Intent = newIntentResp(outcome.ToolDispatch.Intent)
		resp.Data = h.executeIntent(ctx, &outcome.ToolDispatch.Intent)

	case model.OutcomeTemplateHit:
		hit := outcome.TemplateHit
		resp.Template = newTemplateResp(hit.Template, hit.Score)
		resp.Data = h.executeIntent(ctx, &model.Intent{
			Action: hit.Template.Action,
			Params: hit.ExtractedParams,
		})

	case model.OutcomeGreeting:
		resp.Answer = outcome.Greeting.FreeText
		resp.Suggestions = outcome.Greeting.Suggestions

	case model.OutcomeAgentFallback:
		resp.Answer = outcome.AgentFallback.FreeText
		resp.Suggestions = outcome.AgentFallback.Suggestions
	}

	return resp
}

func (h *handler) executeIntent(ctx context.Context, in *model.Intent) json.RawMessage {
	data, err := h.dispatcher.Execute(ctx, in)
	if err != nil {
		h.l.Warnf(ctx, "dispatch.Execute: action=%s: %v", in.Action, err)
		return nil
	}
	return data
}

// ---

type trainResp struct {
	Created  int                      `json:"created"`
	Updated  int                      `json:"updated"`
	Failed   int                      `json:"failed"`
	Failures []assistant.TrainFailure `json:"failures,omitempty"`
}

func newTrainResp(out assistant.TrainOutput) trainResp {
	return trainResp{
		Created:  out.Created,
		Updated:  out.Updated,
		Failed:   out.Failed,
		Failures: out.Failures,
	}
}

// ---

type entryResp struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listEntriesResp struct {
	Entries []entryResp `json:"entries"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
}

func newListEntriesResp(out assistant.ListOutput, req listEntriesReq) listEntriesResp {
	entries := make([]entryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = entryResp{
			ID:        e.ID,
			Question:  e.Question,
			Answer:    e.Answer,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}
	}
	return listEntriesResp{
		Entries: entries,
		Total:   out.Total,
		Limit:   req.toInput().Limit,
		Offset:  req.toInput().Offset,
	}
}

type clearResp struct {
	Removed int `json:"removed"`
}

type listTemplatesResp struct {
	Templates []templateResp `json:"templates"`
}

func newListTemplatesResp(templates []model.Template) listTemplatesResp {
	resp := listTemplatesResp{Templates: make([]templateResp, len(templates))}
	for i, tpl := range templates {
		resp.Templates[i] = *newTemplateResp(tpl, 0)
	}
	return resp
}
