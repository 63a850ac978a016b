// Package oddsmath converts stored probabilities into the percentage-scaled
// values shown to clients and computes the divergence between a bookmaker's
// implied probability and a prediction-market price.
package oddsmath

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// ToPercent scales a probability to a percentage with two decimal places,
// computed as floor(p*10000 + 0.5) / 100. Ties therefore round toward
// positive infinity, and the product is taken in float64 first, so 0.00145
// gives 0.14. A nil input yields nil. Out-of-range values are scaled
// unchanged; no validation happens here.
func ToPercent(p *float64) *float64 {
	if p == nil {
		return nil
	}
	if math.IsNaN(*p) || math.IsInf(*p, 0) {
		v := *p * 100
		return &v
	}
	v := decimal.NewFromFloat(*p * 10000).Add(half).Floor().Div(hundred).InexactFloat64()
	return &v
}

// ComputeEV returns the signed percentage divergence of web2 from poly,
// ((web2 - poly) / poly) * 100. It is nil when either side is missing or the
// market price is zero. The result is not rounded.
func ComputeEV(web2, poly *float64) *float64 {
	if web2 == nil || poly == nil || *poly == 0 {
		return nil
	}
	v := ((*web2 - *poly) / *poly) * 100
	return &v
}

// Round rounds v to the given number of decimal places for display. Nil
// stays nil.
func Round(v *float64, places int32) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return v
	}
	r := decimal.NewFromFloat(*v).Round(places).InexactFloat64()
	return &r
}

// AbsAtLeast reports whether |v| >= threshold. Nil never qualifies.
func AbsAtLeast(v *float64, threshold float64) bool {
	return v != nil && math.Abs(*v) >= threshold
}
