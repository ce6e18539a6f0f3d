package jobe

// runSpec is the body of a Jobe run submission.
type runSpec struct {
	LanguageID     string         `json:"language_id"`
	SourceCode     string         `json:"sourcecode"`
	SourceFilename string         `json:"sourcefilename,omitempty"`
	Input          string         `json:"input,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
}

type runRequestBody struct {
	RunSpec runSpec `json:"run_spec"`
}

// runResult is the Jobe response for a completed run. Outcome uses the
// standard Jobe outcome codes (11 compile error .. 21 overload).
type runResult struct {
	RunID   string `json:"run_id"`
	Outcome int    `json:"outcome"`
	Cmpinfo string `json:"cmpinfo"`
	Stdout  string `json:"stdout"`
	Stderr  string `json:"stderr"`
}
