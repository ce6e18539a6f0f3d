package sandbox

// Sandbox-level error codes returned in ExecutionResponse.Error. A zero
// value means the sandbox accepted and ran the submission; the outcome is
// then carried by the result code.
const (
	ErrorOK              = 0
	ErrorAccessDenied    = 1
	ErrorUnknownLanguage = 2
	ErrorForbidden       = 3
	ErrorSubmissionLimit = 4
	ErrorServerOverload  = 5
)

// Run result codes, meaningful only when Error == ErrorOK.
const (
	ResultCompileError    = 11
	ResultRuntimeError    = 12
	ResultTimeLimit       = 13
	ResultSuccess         = 15
	ResultMemoryLimit     = 17
	ResultServerOverload  = 21
	ResultOutputLimit     = 30
)

// RunRequest describes one code submission to an execution service.
type RunRequest struct {
	Language   string         `json:"language_id" msgpack:"language_id"`
	SourceCode string         `json:"sourcecode" msgpack:"sourcecode"`
	Input      string         `json:"input,omitempty" msgpack:"input"`
	// Params carries sandbox tuning knobs (cputime, memorylimit, ...) taken
	// verbatim from the resolved block configuration.
	Params map[string]any `json:"parameters,omitempty" msgpack:"parameters"`
}

// ExecutionResponse is the wire-level outcome of a run. Error reports
// sandbox/transport failures; Result reports the execution outcome and is
// meaningful only when Error is zero.
type ExecutionResponse struct {
	Error   int    `json:"error"`
	Result  int    `json:"result"`
	Cmpinfo string `json:"cmpinfo"`
	Output  string `json:"output"`
	Stderr  string `json:"stderr"`
}

// Ran reports whether the sandbox actually executed the submission.
func (r *ExecutionResponse) Ran() bool {
	return r != nil && r.Error == ErrorOK
}
