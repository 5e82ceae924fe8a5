package regress_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/enesozmus/betterrest/pkg/regress"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

const validArtifact = `{
	"name": "sleepcalculator",
	"version": "1.0.0",
	"target": "sleep_seconds",
	"intercept": 1080.0,
	"coefficients": [
		{"feature": "wake_seconds", "weight": 0.04},
		{"feature": "sleep_hours", "weight": 3420.0},
		{"feature": "coffee_cups", "weight": 240.0}
	]
}`

func TestLoad(t *testing.T) {
	t.Run("Valid Artifact", func(t *testing.T) {
		m, err := regress.Load(writeArtifact(t, validArtifact))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name != "sleepcalculator" || m.Version != "1.0.0" {
			t.Errorf("unexpected identity: %s %s", m.Name, m.Version)
		}
		want := []string{"wake_seconds", "sleep_hours", "coffee_cups"}
		got := m.Features()
		if len(got) != len(want) {
			t.Fatalf("Features() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Features()[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("Missing File", func(t *testing.T) {
		if _, err := regress.Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := regress.Load(writeArtifact(t, "{not json")); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("No Coefficients", func(t *testing.T) {
		if _, err := regress.Load(writeArtifact(t, `{"intercept": 1.0, "coefficients": []}`)); err == nil {
			t.Error("expected error for empty coefficients")
		}
	})

	t.Run("Duplicate Feature", func(t *testing.T) {
		art := `{"intercept": 0, "coefficients": [
			{"feature": "a", "weight": 1},
			{"feature": "a", "weight": 2}
		]}`
		if _, err := regress.Load(writeArtifact(t, art)); err == nil {
			t.Error("expected error for duplicate feature")
		}
	})
}

func TestPredict(t *testing.T) {
	m, err := regress.Load(writeArtifact(t, validArtifact))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	t.Run("Exact Linear Combination", func(t *testing.T) {
		got, err := m.Predict(map[string]float64{
			"wake_seconds": 25200, // 07:00
			"sleep_hours":  8.0,
			"coffee_cups":  1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1080 + 0.04*25200 + 3420*8 + 240*1
		want := 29688.0
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Predict() = %f, want %f", got, want)
		}
	})

	t.Run("Missing Feature", func(t *testing.T) {
		_, err := m.Predict(map[string]float64{
			"wake_seconds": 25200,
			"sleep_hours":  8.0,
		})
		if err == nil {
			t.Error("expected error for missing feature")
		}
	})

	t.Run("Unknown Feature", func(t *testing.T) {
		_, err := m.Predict(map[string]float64{
			"wake_seconds": 25200,
			"sleep_hours":  8.0,
			"tea_cups":     3,
		})
		if err == nil {
			t.Error("expected error for unknown feature")
		}
	})
}
