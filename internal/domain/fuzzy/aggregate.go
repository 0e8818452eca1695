package fuzzy

import "math"

// Item is one time-weighted observation of a fuzzy attribute.
type Item struct {
	// Degree is the attribute membership A(item).
	Degree float64
	// Span is the share of the total time the item covers.
	Span float64
}

// SigmaCount scores "Q items are A": it sums Degree*Span*N over the N items,
// which puts the span-weighted sum back on the proportion domain the
// quantifier expects, and returns q of that sum clamped to [0,1].
func SigmaCount(items []Item, q MembershipFunc) float64 {
	if len(items) == 0 {
		return 0
	}
	n := float64(len(items))
	var sum float64
	for _, it := range items {
		sum += it.Degree * it.Span * n
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0
	}
	return Clamp01(q(sum))
}

// RelativeSigmaCount scores "Q of the time, A" as q(sum(Degree*Span) / sum(Span)).
// Zero total span yields 0.
func RelativeSigmaCount(items []Item, q MembershipFunc) float64 {
	var weighted, total float64
	for _, it := range items {
		weighted += it.Degree * it.Span
		total += it.Span
	}
	if total <= 0 || math.IsNaN(weighted) {
		return 0
	}
	return Clamp01(q(weighted / total))
}
