package cache

import (
	"strings"
	"time"

	"runbox-api/internal/config"
)

// Namespace is the Redis key prefix for the runbox application.
const Namespace = "runbox"

// TTLClass represents a config-driven TTL bucket.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(cfg.Short, 10*time.Second),
		Medium: durationOrDefault(cfg.Medium, time.Minute),
		Long:   durationOrDefault(cfg.Long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// Duration returns the configured duration for the given TTL class.
func (t TTLSet) Duration(class TTLClass) time.Duration {
	switch class {
	case TTLShort:
		return t.Short
	case TTLMedium:
		return t.Medium
	case TTLLong:
		return t.Long
	default:
		return 0
	}
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// LanguagesKey holds the cached language directory for a provider.
func LanguagesKey(provider string) string {
	return formatKey("languages", provider)
}

// ResultKey stores the presented outcome of a finished run, scoped per
// provider so one provider's outcome never serves another's request.
func ResultKey(provider, digest string) string {
	return formatKey("result", provider, digest)
}

// InflightKey marks a submission digest as currently running on a provider.
// Used as a short-lived duplicate-submission guard.
func InflightKey(provider, digest string) string {
	return formatKey("inflight", provider, digest)
}
