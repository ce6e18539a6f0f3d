package jobe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runbox-api/pkg/sandbox"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("jobe", "  ")
	require.Error(t, err)
}

func TestSubmitSuccess(t *testing.T) {
	var gotBody runRequestBody
	var gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/restapi/runs", r.URL.Path)
		gotAPIKey = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(runResult{
			RunID:   "r-1",
			Outcome: sandbox.ResultSuccess,
			Stdout:  "hi\n",
		})
	}))
	defer server.Close()

	client, err := NewClient("jobe", server.URL, WithAPIKey("k-123"))
	require.NoError(t, err)

	resp, err := client.Submit(context.Background(), &sandbox.RunRequest{
		Language:   "python3",
		SourceCode: `print("hi")`,
		Input:      "stdin data",
		Params:     map[string]any{"cputime": 5},
	})
	require.NoError(t, err)

	assert.Equal(t, sandbox.ErrorOK, resp.Error)
	assert.Equal(t, sandbox.ResultSuccess, resp.Result)
	assert.Equal(t, "hi\n", resp.Output)

	assert.Equal(t, "k-123", gotAPIKey)
	assert.Equal(t, "python3", gotBody.RunSpec.LanguageID)
	assert.Equal(t, `print("hi")`, gotBody.RunSpec.SourceCode)
	assert.Equal(t, "stdin data", gotBody.RunSpec.Input)
}

func TestSubmitStatusMapping(t *testing.T) {
	tests := map[int]int{
		http.StatusUnauthorized:       sandbox.ErrorAccessDenied,
		http.StatusForbidden:          sandbox.ErrorForbidden,
		http.StatusBadRequest:         sandbox.ErrorUnknownLanguage,
		http.StatusTooManyRequests:    sandbox.ErrorSubmissionLimit,
		http.StatusServiceUnavailable: sandbox.ErrorServerOverload,
	}
	for status, wantCode := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rejected", status)
		}))
		client, err := NewClient("jobe", server.URL)
		require.NoError(t, err)

		resp, err := client.Submit(context.Background(), &sandbox.RunRequest{Language: "x", SourceCode: "y"})
		require.NoErrorf(t, err, "status %d", status)
		assert.Equalf(t, wantCode, resp.Error, "status %d", status)
		server.Close()
	}
}

func TestSubmitUnexpectedStatusIsLocalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient("jobe", server.URL)
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), &sandbox.RunRequest{Language: "x", SourceCode: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLanguagesParsesPairsAndCaches(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/restapi/languages", r.URL.Path)
		calls++
		json.NewEncoder(w).Encode([][]string{{"c", "7.3"}, {"python3", "3.10"}})
	}))
	defer server.Close()

	now := time.Now()
	clock := func() time.Time { return now }
	client, err := NewClient("jobe", server.URL, WithClock(clock), WithLanguageCacheTTL(time.Minute))
	require.NoError(t, err)

	langs, err := client.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "python3"}, langs)
	assert.Equal(t, 1, calls)

	// Within TTL the directory is served from cache.
	_, err = client.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// After TTL it refreshes.
	now = now.Add(2 * time.Minute)
	_, err = client.Languages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSubmitNilRequest(t *testing.T) {
	client, err := NewClient("jobe", "http://localhost:4000")
	require.NoError(t, err)
	_, err = client.Submit(context.Background(), nil)
	assert.Error(t, err)
}
