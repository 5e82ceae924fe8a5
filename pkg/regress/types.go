package regress

// Model is a fitted linear regression consumed as a read-only artifact.
// Training happens elsewhere; this package only evaluates
// intercept + Σ weight_i * feature_i.
type Model struct {
	Name         string        `json:"name"`
	Version      string        `json:"version"`
	Target       string        `json:"target"`
	Intercept    float64       `json:"intercept"`
	Coefficients []Coefficient `json:"coefficients"`
}

// Coefficient is one named term of the regression.
type Coefficient struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// Features returns the feature names the model expects, in artifact order.
func (m *Model) Features() []string {
	names := make([]string, len(m.Coefficients))
	for i, c := range m.Coefficients {
		names[i] = c.Feature
	}
	return names
}
