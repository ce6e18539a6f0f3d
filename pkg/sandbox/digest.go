package sandbox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest returns a stable hex identifier for a run request. Params are
// flattened into sorted key/value pairs before encoding so that two maps with
// the same contents always hash identically.
func Digest(req *RunRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("sandbox: digest of nil request")
	}

	keys := make([]string, 0, len(req.Params))
	for k := range req.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	canonical := []any{req.Language, req.SourceCode, req.Input}
	for _, k := range keys {
		canonical = append(canonical, k, fmt.Sprint(req.Params[k]))
	}

	encoded, err := msgpack.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("sandbox: encode digest payload: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
