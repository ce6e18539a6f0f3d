package param

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxOutputLength caps each of output/stderr before presentation.
const DefaultMaxOutputLength = 30000

// SiteConfig carries site-level filter settings: the presentation truncation cap
// and optional per-feature overrides applied on top of the built-in default
// tables.
type SiteConfig struct {
	MaxOutputLength int                          `yaml:"max_output_length"`
	Features        map[string]map[string]string `yaml:"features"`
}

// LoadConfig reads filter configuration from disk.
func LoadConfig(path string) (*SiteConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open filter config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a SiteConfig from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*SiteConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read filter config: %w", err)
	}
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal filter config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises the config, filling defaults.
func (c *SiteConfig) Validate() error {
	if c.MaxOutputLength == 0 {
		c.MaxOutputLength = DefaultMaxOutputLength
	}
	if c.MaxOutputLength < 0 {
		return fmt.Errorf("filter config: max_output_length must be positive")
	}
	for feature, overrides := range c.Features {
		switch feature {
		case FeatureHighlight, FeatureInteractive:
		default:
			return fmt.Errorf("filter config: unknown feature %q", feature)
		}
		table := DefaultsFor(feature)
		for key := range overrides {
			if _, ok := table[key]; !ok {
				return fmt.Errorf("filter config: feature %s has unknown key %q", feature, key)
			}
		}
	}
	return nil
}

// DefaultsFor returns the default table for a feature with any configured
// overrides applied. Overrides are parsed by the key's kind; booleans use
// true/false spelling here, unlike attribute presence semantics.
func (c *SiteConfig) DefaultsFor(feature string) (Defaults, error) {
	table := DefaultsFor(feature)
	if c == nil {
		return table, nil
	}
	for key, raw := range c.Features[feature] {
		def := table[key]
		switch def.Kind {
		case KindBool:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("filter config: %s.%s: invalid bool %q", feature, key, raw)
			}
			table[key] = BoolVal(b)
		case KindInt:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("filter config: %s.%s: invalid integer %q", feature, key, raw)
			}
			table[key] = IntVal(n)
		case KindNullableInt:
			if strings.EqualFold(strings.TrimSpace(raw), nullSentinel) {
				table[key] = NullInt()
				break
			}
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("filter config: %s.%s: invalid integer %q", feature, key, raw)
			}
			table[key] = NullableIntVal(n)
		default:
			table[key] = StringVal(raw)
		}
	}
	return table, nil
}
