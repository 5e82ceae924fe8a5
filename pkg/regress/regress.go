// Package regress loads pre-trained linear regression artifacts and runs
// predictions against them. Artifacts are plain JSON files exported by the
// training pipeline.
package regress

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates a model artifact from path.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %q: %w", path, err)
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact %q: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %q: %w", path, err)
	}

	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("model has no coefficients")
	}

	seen := make(map[string]bool, len(m.Coefficients))
	for i, c := range m.Coefficients {
		if c.Feature == "" {
			return fmt.Errorf("coefficient %d has no feature name", i)
		}
		if seen[c.Feature] {
			return fmt.Errorf("duplicate coefficient for feature %q", c.Feature)
		}
		seen[c.Feature] = true
	}

	return nil
}

// Predict evaluates the regression for the given feature vector. Every model
// coefficient must have a matching feature, and every supplied feature must be
// known to the model.
func (m *Model) Predict(features map[string]float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coefficients), len(features))
	}

	out := m.Intercept
	for _, c := range m.Coefficients {
		x, ok := features[c.Feature]
		if !ok {
			return 0, fmt.Errorf("missing feature %q", c.Feature)
		}
		out += c.Weight * x
	}

	return out, nil
}
