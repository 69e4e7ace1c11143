package estimator

import (
	"encoding/json"
	"math"
	"os"

	"fincalc/core/finance"
	"fincalc/internal/errors"
)

// featureCount fixes the length of the model weight vector.
const featureCount = 6

// LinearModel is a trained linear regression over the feature vector,
// loaded from serialized coefficients. It stands in for whatever offline
// training produced the file; callers only see a Predictor.
type LinearModel struct {
	Intercept float64   `json:"intercept"`
	Weights   []float64 `json:"weights"`
}

// LoadLinearModel reads model coefficients from a JSON file.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read model file", err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Config("failed to decode model file", err)
	}
	if len(m.Weights) != featureCount {
		return nil, errors.Newf(errors.TypeConfig,
			"model must have %d weights, found %d", featureCount, len(m.Weights))
	}
	return &m, nil
}

// Name implements Predictor.
func (m *LinearModel) Name() string { return "linear-model" }

// Predict implements Predictor. Estimates below zero clamp to zero.
func (m *LinearModel) Predict(f Features) (float64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}

	sum := m.Intercept
	for i, x := range f.Vector() {
		sum += m.Weights[i] * x
	}
	return finance.Round2(math.Max(0, sum)), nil
}
