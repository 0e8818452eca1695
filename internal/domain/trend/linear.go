package trend

import "github.com/yanqian/protoform/internal/domain/fuzzy"

// LinearModel is an ordinary least squares fit y = Gradient*x + Intercept.
type LinearModel struct {
	Gradient  float64 `json:"gradient"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	// PredictedStart is the model value at the first fitted x.
	PredictedStart float64 `json:"predictedStart"`
}

// Predict evaluates the model at x.
func (m LinearModel) Predict(x float64) float64 {
	return m.Gradient*x + m.Intercept
}

// FitLinear fits xs against ys. With no spread in x the gradient is 0 and the
// intercept is the mean of ys; with no spread in y R2 is 0.
func FitLinear(xs, ys []float64) LinearModel {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return LinearModel{}
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}
	if sxx == 0 {
		return LinearModel{Intercept: meanY, PredictedStart: meanY}
	}

	m := LinearModel{Gradient: sxy / sxx}
	m.Intercept = meanY - m.Gradient*meanX
	m.PredictedStart = m.Predict(xs[0])

	if syy > 0 {
		var ssRes float64
		for i := 0; i < n; i++ {
			r := ys[i] - m.Predict(xs[i])
			ssRes += r * r
		}
		m.R2 = fuzzy.Clamp01(1 - ssRes/syy)
	}
	return m
}
