package fuzzy

import "math"

// MembershipFunc maps a crisp value onto a truth degree in [0,1].
type MembershipFunc func(x float64) float64

// Trapezoid is 0 below a, rises on [a,b], is 1 on [b,c], falls on [c,d] and is 0
// above d. Coinciding breakpoints turn a ramp into a step.
func Trapezoid(a, b, c, d float64) MembershipFunc {
	return func(x float64) float64 {
		switch {
		case math.IsNaN(x), x < a, x > d:
			return 0
		case x >= b && x <= c:
			return 1
		case x < b:
			return (x - a) / (b - a)
		default:
			return (d - x) / (d - c)
		}
	}
}

// LeftShoulder is 0 below a, rises on [a,b] and stays 1 above b.
func LeftShoulder(a, b float64) MembershipFunc {
	return func(x float64) float64 {
		switch {
		case math.IsNaN(x), x < a:
			return 0
		case x >= b:
			return 1
		default:
			return (x - a) / (b - a)
		}
	}
}

// RightShoulder is 1 below a, falls on [a,b] and stays 0 above b.
func RightShoulder(a, b float64) MembershipFunc {
	return func(x float64) float64 {
		switch {
		case math.IsNaN(x), x > b:
			return 0
		case x <= a:
			return 1
		default:
			return (b - x) / (b - a)
		}
	}
}

// Clamp01 limits v to [0,1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}
