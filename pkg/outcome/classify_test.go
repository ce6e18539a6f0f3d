package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"runbox-api/pkg/sandbox"
)

func TestClassifySandboxErrors(t *testing.T) {
	want := map[int]Category{
		1: CategoryAccessDenied,
		2: CategoryUnknownLanguage,
		3: CategoryAccessDenied,
		4: CategorySubmissionLimit,
		5: CategoryServerOverload,
	}
	// Sandbox-level errors classify on the error code alone; the result
	// field must be ignored whatever it holds.
	for errCode, category := range want {
		for _, result := range []int{0, 11, 15, 99, -1} {
			out := Classify(&sandbox.ExecutionResponse{Error: errCode, Result: result})
			assert.Equalf(t, category, out.Category, "error=%d result=%d", errCode, result)
		}
	}
}

func TestClassifyRunResults(t *testing.T) {
	want := map[int]Category{
		11: CategoryNone,
		12: CategoryNone,
		13: CategoryTimeout,
		15: CategoryNone,
		17: CategoryMemoryLimit,
		21: CategoryServerOverload,
		30: CategoryExcessiveOutput,
	}
	for result, category := range want {
		out := Classify(&sandbox.ExecutionResponse{Error: 0, Result: result})
		assert.Equalf(t, category, out.Category, "result=%d", result)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, resp := range []*sandbox.ExecutionResponse{
		{Error: 0, Result: 99},
		{Error: 0, Result: 14},
		{Error: 0, Result: -3},
		{Error: 6, Result: 15},
		{Error: -1, Result: 0},
		nil,
	} {
		out := Classify(resp)
		assert.Equalf(t, CategoryUnknown, out.Category, "resp=%+v", resp)
	}
}

func TestCategoryMessageKey(t *testing.T) {
	assert.Equal(t, "error_timeout", CategoryTimeout.MessageKey())
	assert.Equal(t, "error_access_denied", CategoryAccessDenied.MessageKey())
	assert.Equal(t, "error_unknown_runtime", CategoryUnknown.MessageKey())
}
