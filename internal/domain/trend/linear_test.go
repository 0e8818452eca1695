package trend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitLinear(t *testing.T) {
	tests := []struct {
		name     string
		xs, ys   []float64
		gradient float64
		icept    float64
		r2       float64
		start    float64
	}{
		{
			name:     "perfect line",
			xs:       []float64{0, 1, 2, 3, 4, 5, 6},
			ys:       []float64{230, 235, 240, 245, 250, 255, 260},
			gradient: 5,
			icept:    230,
			r2:       1,
			start:    230,
		},
		{
			name:     "decreasing line offset from origin",
			xs:       []float64{2, 3, 4, 5},
			ys:       []float64{10, 8, 6, 4},
			gradient: -2,
			icept:    14,
			r2:       1,
			start:    10,
		},
		{
			name:  "constant values",
			xs:    []float64{0, 1, 2},
			ys:    []float64{4, 4, 4},
			icept: 4,
			start: 4,
		},
		{
			name:  "single x value",
			xs:    []float64{3, 3},
			ys:    []float64{1, 3},
			icept: 2,
			start: 2,
		},
		{
			name: "empty",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := FitLinear(tt.xs, tt.ys)
			require.InDelta(t, tt.gradient, m.Gradient, 1e-9)
			require.InDelta(t, tt.icept, m.Intercept, 1e-9)
			require.InDelta(t, tt.r2, m.R2, 1e-9)
			require.InDelta(t, tt.start, m.PredictedStart, 1e-9)
		})
	}
}

func TestFitLinearNoisyDataHasLowerR2(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6}
	noisy := FitLinear(xs, []float64{230, 250, 231, 262, 244, 270, 251})

	require.Greater(t, noisy.Gradient, 0.0)
	require.Less(t, noisy.R2, 1.0)
	require.Greater(t, noisy.R2, 0.0)
	require.InDelta(t, noisy.Predict(0), noisy.PredictedStart, 1e-9)
}
