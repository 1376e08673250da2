package hierarchy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// StaticProvider serves a fixed unit set. Useful for tests and for
// embedding a hierarchy directly.
type StaticProvider []Unit

// Units implements Provider.
func (p StaticProvider) Units(context.Context) ([]Unit, error) {
	return p, nil
}

// fileUnit is the JSON shape of one unit in a hierarchy file.
type fileUnit struct {
	ID                  string   `json:"id"`
	Kind                Kind     `json:"kind"`
	Name                string   `json:"name,omitempty"`
	Children            []string `json:"children,omitempty"`
	Prerequisites       []string `json:"prerequisites,omitempty"`
	Objective           string   `json:"objective,omitempty"`
	MasteryThreshold    float64  `json:"masteryThreshold,omitempty"`
	ConfidenceThreshold float64  `json:"confidenceThreshold,omitempty"`
	Difficulty          int      `json:"difficulty,omitempty"`
}

// FileProvider reads the unit set from a JSON file on every call, so a
// Holder refresh picks up edits without a restart.
type FileProvider struct {
	Path string
}

// Units implements Provider.
func (p FileProvider) Units(context.Context) ([]Unit, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read hierarchy file: %w", err)
	}
	var fus []fileUnit
	if err := json.Unmarshal(raw, &fus); err != nil {
		return nil, fmt.Errorf("parse hierarchy file %s: %w", p.Path, err)
	}
	units := make([]Unit, len(fus))
	for i, fu := range fus {
		units[i] = Unit{
			ID:                  fu.ID,
			Kind:                fu.Kind,
			Name:                fu.Name,
			Children:            fu.Children,
			Prerequisites:       fu.Prerequisites,
			Objective:           fu.Objective,
			MasteryThreshold:    fu.MasteryThreshold,
			ConfidenceThreshold: fu.ConfidenceThreshold,
			Difficulty:          fu.Difficulty,
		}
	}
	return units, nil
}
