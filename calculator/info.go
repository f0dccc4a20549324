package calculator

import "entropy/model"

// 每种过程的说明文字
var processInfo = map[model.ProcessType]string{
	model.Isothermal: `Isothermal Process
- Temperature remains constant (T = constant)
- Work done: W = nRT ln(V_f / V_i)
- Heat transfer: Q = W
- Entropy change: ΔS = nR ln(V_f / V_i)
- Entropy increases if expansion, decreases if compression
- Q ≠ 0, ΔS ≠ 0`,

	model.Isobaric: `Isobaric Process
- Pressure remains constant (P = constant)
- Work done: W = P ΔV
- Heat transfer: Q = n C_p ΔT
- Entropy change: ΔS = n C_p ln(T_f / T_i)
- Volume changes linearly with temperature
- Q ≠ 0, ΔS ≠ 0`,

	model.Isochoric: `Isochoric Process
- Volume remains constant (V = constant)
- Work done: W = 0
- Heat transfer: Q = n C_v ΔT
- Entropy change: ΔS = n C_v ln(T_f / T_i)
- No work is done
- Q ≠ 0, ΔS ≠ 0`,

	model.Adiabatic: `Adiabatic Process
- No heat transfer (Q = 0)
- Work done: W = n C_v (T_i - T_f)
- Entropy change: ΔS = 0 (Isentropic)
- Temperature and volume change according to adiabatic relations
- Q = 0, ΔS = 0`,
}

// ProcessInfo returns the explanatory text for one process type, or an
// empty string for an unknown one.
func ProcessInfo(p model.ProcessType) string {
	return processInfo[p]
}
