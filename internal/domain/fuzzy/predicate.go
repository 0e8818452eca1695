package fuzzy

// Predicate pairs the wording of a summary variable with its membership function.
type Predicate struct {
	Label string
	Fn    MembershipFunc
}

// Degree evaluates the predicate, clamped to [0,1].
func (p Predicate) Degree(x float64) float64 {
	return Clamp01(p.Fn(x))
}

// Quantity predicates over a proportion of time.
var (
	Most = Predicate{Label: "most", Fn: LeftShoulder(0.6, 0.7)}
	Half = Predicate{Label: "half", Fn: Trapezoid(0.3, 0.4, 0.6, 0.7)}
	Few  = Predicate{Label: "few", Fn: Trapezoid(0.1, 0.2, 0.3, 0.4)}
)

// Quantifiers lists the quantity predicates in summary order.
func Quantifiers() []Predicate {
	return []Predicate{Most, Half, Few}
}

// Min is the Zadeh conjunction of several degrees; no degrees means 0.
func Min(degrees ...float64) float64 {
	if len(degrees) == 0 {
		return 0
	}
	m := degrees[0]
	for _, d := range degrees[1:] {
		if d < m {
			m = d
		}
	}
	return Clamp01(m)
}
