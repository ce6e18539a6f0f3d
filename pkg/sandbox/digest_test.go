package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestStable(t *testing.T) {
	req := &RunRequest{
		Language:   "python3",
		SourceCode: "print(1)",
		Input:      "a",
		Params:     map[string]any{"cputime": 5, "memorylimit": 64},
	}
	first, err := Digest(req)
	require.NoError(t, err)
	second, err := Digest(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestDigestParamOrderIndependent(t *testing.T) {
	a := &RunRequest{Language: "c", SourceCode: "x", Params: map[string]any{"one": 1, "two": 2}}
	b := &RunRequest{Language: "c", SourceCode: "x", Params: map[string]any{"two": 2, "one": 1}}
	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestDigestSensitiveToContent(t *testing.T) {
	base := &RunRequest{Language: "python3", SourceCode: "print(1)"}
	baseDigest, err := Digest(base)
	require.NoError(t, err)

	variants := []*RunRequest{
		{Language: "python2", SourceCode: "print(1)"},
		{Language: "python3", SourceCode: "print(2)"},
		{Language: "python3", SourceCode: "print(1)", Input: "x"},
		{Language: "python3", SourceCode: "print(1)", Params: map[string]any{"cputime": 5}},
	}
	for _, v := range variants {
		d, err := Digest(v)
		require.NoError(t, err)
		assert.NotEqualf(t, baseDigest, d, "variant %+v", v)
	}
}

func TestDigestNilRequest(t *testing.T) {
	_, err := Digest(nil)
	assert.Error(t, err)
}
