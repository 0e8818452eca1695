// Package fuzzy holds the fuzzy-set primitives used to score linguistic
// summaries: trapezoidal membership functions, named predicates and the
// quantified aggregation that turns per-item degrees into one validity.
//
// Every function here is pure and safe for concurrent use.
package fuzzy
