package i18nmsg

import (
	"context"
	"fmt"
)

// Translator resolves a message key within a feature namespace to
// user-facing text. Implementations may consult remote services, so lookups
// take a context.
type Translator interface {
	Get(ctx context.Context, key, namespace string) (string, error)
}

// ErrMissingMessage is returned when no catalog carries the requested key.
var ErrMissingMessage = fmt.Errorf("i18nmsg: message not found")

// defaultMessages is the built-in English catalog. Site catalogs loaded from
// configuration shadow these entries per namespace.
var defaultMessages = map[string]string{
	"error_access_denied":            "Access to the execution server was denied. Check the server configuration.",
	"error_unknown_language":         "The execution server does not support this language.",
	"error_submission_limit_reached": "You have reached the submission rate limit. Please wait before trying again.",
	"error_sandbox_server_overload":  "The execution server is overloaded. Please try again shortly.",
	"error_timeout":                  "Your code took too long to run and was stopped.",
	"error_memory_limit":             "Your code exceeded the memory limit.",
	"error_excessive_output":         "Your code produced too much output.",
	"error_unknown_runtime":          "An unexpected error occurred while running your code.",
	"submission_in_progress":         "A submission with the same code is already running.",
}

// Catalog is a Translator backed by in-memory per-namespace message maps
// with the built-in English catalog as fallback.
type Catalog struct {
	messages map[string]map[string]string
}

// NewCatalog builds a Catalog with optional per-namespace overrides.
func NewCatalog(overrides map[string]map[string]string) *Catalog {
	if overrides == nil {
		overrides = make(map[string]map[string]string)
	}
	return &Catalog{messages: overrides}
}

// Get implements Translator. Namespace entries win over the built-in
// catalog; an unknown key yields ErrMissingMessage.
func (c *Catalog) Get(ctx context.Context, key, namespace string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if ns, ok := c.messages[namespace]; ok {
		if msg, ok := ns[key]; ok {
			return msg, nil
		}
	}
	if msg, ok := defaultMessages[key]; ok {
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingMessage, namespace, key)
}
