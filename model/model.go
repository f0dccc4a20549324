package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ProcessType selects one of the four ideal-gas processes.
type ProcessType string

const (
	Isothermal ProcessType = "Isothermal"
	Isobaric   ProcessType = "Isobaric"
	Isochoric  ProcessType = "Isochoric"
	Adiabatic  ProcessType = "Adiabatic"
)

// ProcessInput holds the state variables of one calculation request.
// The validate tags carry the numeric bounds of the input form; the
// per-process positivity preconditions are checked by the calculator.
type ProcessInput struct {
	ProcessType ProcessType `json:"process_type" validate:"required,oneof=Isothermal Isobaric Isochoric Adiabatic"`
	N           float64     `json:"n" validate:"gt=0"`    // moles
	TInitial    float64     `json:"t_i" validate:"gte=0"` // K
	TFinal      float64     `json:"t_f" validate:"gte=0"` // K
	VInitial    float64     `json:"v_i" validate:"gte=0"` // m³
	VFinal      float64     `json:"v_f" validate:"gte=0"` // m³
	Cv          float64     `json:"c_v" validate:"gte=0"` // J/(mol·K)
	Cp          float64     `json:"c_p" validate:"gte=0"` // J/(mol·K)
}

// ProcessResult is the outcome of one calculation.
type ProcessResult struct {
	ProcessType ProcessType `json:"process_type"`
	W           float64     `json:"w"`       // work done by the gas, J
	Q           float64     `json:"q"`       // heat transferred to the gas, J
	DeltaS      float64     `json:"delta_s"` // entropy change, J/K
	// Note carries a warning when a reported value is a known modeling
	// simplification (isobaric work).
	Note string `json:"note,omitempty"`
}

// TSPoint is one point of the temperature-entropy trace.
type TSPoint struct {
	S float64 `json:"s"` // J/K
	T float64 `json:"t"` // K
}

type TSCurve []TSPoint

// ComputeReply is the payload pushed to the client after a compute request.
type ComputeReply struct {
	Result ProcessResult `json:"result"`
	Curve  TSCurve       `json:"curve"`
}
