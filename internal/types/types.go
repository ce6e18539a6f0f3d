package types

// RunRequest submits one code block for sandboxed execution. Attributes are
// the declarative parameters of the content node; language falls back to the
// resolved configuration when not set explicitly.
type RunRequest struct {
	Feature    string            `json:"feature,optional"`
	Language   string            `json:"language,optional"`
	Code       string            `json:"code"`
	Stdin      string            `json:"stdin,optional"`
	Attributes map[string]string `json:"attributes,optional"`
	Provider   string            `json:"provider,optional"`
}

// RunResponse carries the classified, presentation-ready outcome.
type RunResponse struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Error    int    `json:"error"`
	Result   int    `json:"result"`
	Digest   string `json:"digest"`
	Cached   bool   `json:"cached"`
}

// ResolveRequest asks for the fully resolved configuration of a block.
type ResolveRequest struct {
	Feature    string            `json:"feature,optional"`
	Attributes map[string]string `json:"attributes,optional"`
}

// ResolveResponse returns every configuration key with its coerced value.
type ResolveResponse struct {
	Feature string         `json:"feature"`
	Params  map[string]any `json:"params"`
}

// LanguagesRequest optionally scopes the directory to one provider.
type LanguagesRequest struct {
	Provider string `form:"provider,optional"`
}

// LanguagesResponse lists the language identifiers a provider accepts.
type LanguagesResponse struct {
	Provider  string   `json:"provider"`
	Languages []string `json:"languages"`
}

// SubmissionsRequest filters the run audit log by digest or by language.
type SubmissionsRequest struct {
	Digest   string `form:"digest,optional"`
	Language string `form:"language,optional"`
	Limit    int    `form:"limit,optional"`
}

// SubmissionInfo is one audit row of a finished run.
type SubmissionInfo struct {
	Digest    string `json:"digest"`
	Feature   string `json:"feature"`
	Provider  string `json:"provider"`
	Language  string `json:"language"`
	Error     int    `json:"error"`
	Result    int    `json:"result"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// SubmissionsResponse lists matching audit rows, newest first.
type SubmissionsResponse struct {
	Submissions []SubmissionInfo `json:"submissions"`
}

// PingResponse is the health probe payload.
type PingResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}
