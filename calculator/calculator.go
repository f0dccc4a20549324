package calculator

import (
	"math"

	"entropy/model"
)

// 理想气体普适气体常数, J/(mol·K)
const R = 8.314

const isobaricNote = "work reported as 0: constant-pressure work P·ΔV is not modeled because pressure is not an input"

type processFunc func(in model.ProcessInput) (w, q, deltaS float64, note string, err error)

// 四种过程的分派表
var processes = map[model.ProcessType]processFunc{
	model.Isothermal: isothermal,
	model.Isobaric:   isobaric,
	model.Isochoric:  isochoric,
	model.Adiabatic:  adiabatic,
}

// Compute evaluates work, heat and entropy change for one process.
// It returns *InvalidInputError when a bound or a positivity precondition
// of the selected process is violated; the returned values are otherwise
// always finite.
func Compute(in model.ProcessInput) (model.ProcessResult, error) {
	if err := validateInput(in); err != nil {
		return model.ProcessResult{}, err
	}
	f, ok := processes[in.ProcessType]
	if !ok {
		return model.ProcessResult{}, &InvalidInputError{Field: "process_type", Reason: "unknown process " + string(in.ProcessType)}
	}
	w, q, deltaS, note, err := f(in)
	if err != nil {
		return model.ProcessResult{}, err
	}
	return model.ProcessResult{
		ProcessType: in.ProcessType,
		W:           w,
		Q:           q,
		DeltaS:      deltaS,
		Note:        note,
	}, nil
}

// W = nRT_i·ln(V_f/V_i), Q = W, ΔS = nR·ln(V_f/V_i)
func isothermal(in model.ProcessInput) (float64, float64, float64, string, error) {
	if in.VInitial <= 0 {
		return 0, 0, 0, "", &InvalidInputError{Field: "v_i", Reason: "must be > 0 for an isothermal process"}
	}
	if in.VFinal <= 0 {
		return 0, 0, 0, "", &InvalidInputError{Field: "v_f", Reason: "must be > 0 for an isothermal process"}
	}
	lnV := math.Log(in.VFinal / in.VInitial)
	w := in.N * R * in.TInitial * lnV
	return w, w, in.N * R * lnV, "", nil
}

// W = 0 (pressure not modeled), Q = nC_p·ΔT, ΔS = nC_p·ln(T_f/T_i)
func isobaric(in model.ProcessInput) (float64, float64, float64, string, error) {
	if err := requirePositiveTemperatures(in); err != nil {
		return 0, 0, 0, "", err
	}
	q := in.N * in.Cp * (in.TFinal - in.TInitial)
	deltaS := in.N * in.Cp * math.Log(in.TFinal/in.TInitial)
	return 0, q, deltaS, isobaricNote, nil
}

// W = 0, Q = nC_v·ΔT, ΔS = nC_v·ln(T_f/T_i)
func isochoric(in model.ProcessInput) (float64, float64, float64, string, error) {
	if err := requirePositiveTemperatures(in); err != nil {
		return 0, 0, 0, "", err
	}
	q := in.N * in.Cv * (in.TFinal - in.TInitial)
	deltaS := in.N * in.Cv * math.Log(in.TFinal/in.TInitial)
	return 0, q, deltaS, "", nil
}

// W = nC_v·(T_i−T_f); Q and ΔS are identically zero, the process is
// treated as isentropic by definition.
func adiabatic(in model.ProcessInput) (float64, float64, float64, string, error) {
	return in.N * in.Cv * (in.TInitial - in.TFinal), 0, 0, "", nil
}

func requirePositiveTemperatures(in model.ProcessInput) error {
	if in.TInitial <= 0 {
		return &InvalidInputError{Field: "t_i", Reason: "must be > 0 for a temperature-ratio entropy change"}
	}
	if in.TFinal <= 0 {
		return &InvalidInputError{Field: "t_f", Reason: "must be > 0 for a temperature-ratio entropy change"}
	}
	return nil
}
