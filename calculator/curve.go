package calculator

import (
	"gonum.org/v1/gonum/floats"

	"entropy/model"
)

// GenerateCurve builds the temperature-entropy trace for a computed process.
// The entropy axis runs uniformly from 0 to ΔS and the temperature axis
// from tInitial to tFinal, paired index for index. This is a straight-line
// interpolation between the end states on the T-S plane, not an exact path
// for isobaric/isochoric processes.
//
// When ΔS is zero the trace degenerates to two points at entropy 0.
// A resolution below 2 falls back to the configured default.
func GenerateCurve(res model.ProcessResult, tInitial, tFinal float64, resolution int) model.TSCurve {
	if res.DeltaS == 0 {
		return model.TSCurve{{S: 0, T: tInitial}, {S: 0, T: tFinal}}
	}
	if resolution < 2 {
		resolution = cfg.Resolution
	}
	s := floats.Span(make([]float64, resolution), 0, res.DeltaS)
	temp := floats.Span(make([]float64, resolution), tInitial, tFinal)
	curve := make(model.TSCurve, resolution)
	for i := range curve {
		curve[i] = model.TSPoint{S: s[i], T: temp[i]}
	}
	return curve
}
