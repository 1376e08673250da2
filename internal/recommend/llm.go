package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/adaptic/internal/hierarchy"
	"github.com/abhisek/adaptic/internal/llm"
)

// recommendationSchema constrains the model to a single unit choice
// from the candidate list.
var recommendationSchema = &llm.Schema{
	Name:        "unit-recommendation",
	Description: "The next content unit for a learner after a difficulty change",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"unitId", "rationale"},
		"properties": map[string]any{
			"unitId": map[string]any{
				"type":        "string",
				"description": "ID of the chosen unit, or empty string when no candidate fits",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One sentence on why this unit fits",
			},
		},
	},
}

type recommendation struct {
	UnitID    string `json:"unitId"`
	Rationale string `json:"rationale"`
}

// Model asks an LLM to pick among the candidate sections at the target
// difficulty, falling back to the deterministic recommender when the
// model fails or picks something outside the candidate set.
type Model struct {
	provider llm.Provider
	fallback *Static
	log      *slog.Logger
}

// NewModel creates a model-backed recommender with a Static fallback.
func NewModel(provider llm.Provider, fallback *Static, log *slog.Logger) *Model {
	return &Model{provider: provider, fallback: fallback, log: log}
}

// Recommend picks a section at the requested level. The candidate set
// comes from the hierarchy; the model only chooses within it, so a
// hallucinated unit ID can never escape.
func (m *Model) Recommend(ctx context.Context, snap *hierarchy.Snapshot, learnerID string, difficulty int, currentUnitID string) (string, error) {
	if snap == nil {
		return "", nil
	}
	candidates := snap.SectionsAtDifficulty(difficulty, map[string]bool{currentUnitID: true})
	if len(candidates) == 0 {
		return "", nil
	}
	if len(candidates) == 1 {
		return candidates[0].ID, nil
	}

	unitID, err := m.ask(ctx, candidates, difficulty, currentUnitID)
	if err != nil {
		m.log.Warn("model recommendation failed, using fallback", "learner", learnerID, "err", err)
		return m.fallback.Recommend(ctx, snap, learnerID, difficulty, currentUnitID)
	}
	if unitID == "" {
		return "", nil
	}
	for _, c := range candidates {
		if c.ID == unitID {
			return unitID, nil
		}
	}
	m.log.Warn("model recommended unit outside candidate set, using fallback", "unit", unitID)
	return m.fallback.Recommend(ctx, snap, learnerID, difficulty, currentUnitID)
}

func (m *Model) ask(ctx context.Context, candidates []hierarchy.Unit, difficulty int, currentUnitID string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "A learner just moved to difficulty level %d while working on unit %s.\n", difficulty, currentUnitID)
	b.WriteString("Pick the best next section from these candidates:\n")
	for _, c := range candidates {
		name := c.Name
		if name == "" {
			name = c.ID
		}
		fmt.Fprintf(&b, "- %s: %s (difficulty %d)\n", c.ID, name, c.EffectiveDifficulty())
	}

	resp, err := m.provider.Generate(llm.WithPurpose(ctx, "unit-recommendation"), llm.Request{
		System:    "You select the next learning unit for a learner. Prefer units that build on what they were just doing. Answer only with the schema.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    recommendationSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return "", err
	}

	var rec recommendation
	if err := json.Unmarshal(resp.Content, &rec); err != nil {
		return "", fmt.Errorf("decode recommendation: %w", err)
	}
	return rec.UnitID, nil
}
