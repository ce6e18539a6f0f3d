package outcome

import "runbox-api/pkg/sandbox"

// Category names the user-facing classification of one execution response.
// The empty category means the run output speaks for itself (success,
// compile error, runtime error) and no localized message is shown.
type Category string

const (
	CategoryNone            Category = ""
	CategoryAccessDenied    Category = "access_denied"
	CategoryUnknownLanguage Category = "unknown_language"
	CategorySubmissionLimit Category = "submission_limit_reached"
	CategoryServerOverload  Category = "sandbox_server_overload"
	CategoryTimeout         Category = "timeout"
	CategoryMemoryLimit     Category = "memory_limit"
	CategoryExcessiveOutput Category = "excessive_output"
	CategoryUnknown         Category = "unknown_runtime_error"
)

// MessageKey returns the localization key for a non-empty category.
func (c Category) MessageKey() string {
	if c == CategoryUnknown {
		return "error_unknown_runtime"
	}
	return "error_" + string(c)
}

// Outcome is the classification of one execution response.
type Outcome struct {
	Category Category
}

// rule matches a (sandbox error, run result) pair. A non-zero expected error
// matches on the error alone; result only participates when the sandbox
// accepted the run.
type rule struct {
	err      int
	result   int
	category Category
}

// Ordered classification table, first match wins.
var rules = []rule{
	{err: sandbox.ErrorAccessDenied, category: CategoryAccessDenied},
	{err: sandbox.ErrorUnknownLanguage, category: CategoryUnknownLanguage},
	{err: sandbox.ErrorForbidden, category: CategoryAccessDenied},
	{err: sandbox.ErrorSubmissionLimit, category: CategorySubmissionLimit},
	{err: sandbox.ErrorServerOverload, category: CategoryServerOverload},
	{err: sandbox.ErrorOK, result: sandbox.ResultCompileError, category: CategoryNone},
	{err: sandbox.ErrorOK, result: sandbox.ResultRuntimeError, category: CategoryNone},
	{err: sandbox.ErrorOK, result: sandbox.ResultTimeLimit, category: CategoryTimeout},
	{err: sandbox.ErrorOK, result: sandbox.ResultSuccess, category: CategoryNone},
	{err: sandbox.ErrorOK, result: sandbox.ResultMemoryLimit, category: CategoryMemoryLimit},
	{err: sandbox.ErrorOK, result: sandbox.ResultServerOverload, category: CategoryServerOverload},
	{err: sandbox.ErrorOK, result: sandbox.ResultOutputLimit, category: CategoryExcessiveOutput},
}

// Classify maps an execution response onto its category by first match
// against the rule table. Unmatched pairs are never swallowed: they classify
// as CategoryUnknown so the raw code can be surfaced to the user.
func Classify(resp *sandbox.ExecutionResponse) Outcome {
	if resp == nil {
		return Outcome{Category: CategoryUnknown}
	}
	for _, r := range rules {
		if resp.Error != r.err {
			continue
		}
		if r.err != sandbox.ErrorOK || resp.Result == r.result {
			return Outcome{Category: r.category}
		}
	}
	return Outcome{Category: CategoryUnknown}
}
