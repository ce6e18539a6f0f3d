package param

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxOutputLength, cfg.MaxOutputLength)
}

func TestLoadConfigOverrides(t *testing.T) {
	yaml := `
max_output_length: 500
features:
  highlight:
    lang: cpp
    max-lines: "60"
  interactive:
    button-name: Run
    start-line-number: none
    hidden: "true"
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxOutputLength)

	highlight, err := cfg.DefaultsFor(FeatureHighlight)
	require.NoError(t, err)
	assert.Equal(t, StringVal("cpp"), highlight[KeyLang])
	assert.Equal(t, IntVal(60), highlight[KeyMaxLines])
	// Untouched keys keep built-in defaults.
	assert.Equal(t, IntVal(4), highlight[KeyMinLines])

	interactive, err := cfg.DefaultsFor(FeatureInteractive)
	require.NoError(t, err)
	assert.Equal(t, StringVal("Run"), interactive[KeyButtonName])
	assert.Equal(t, NullInt(), interactive[KeyStartLineNumber])
	assert.Equal(t, BoolVal(true), interactive[KeyHidden])
}

func TestLoadConfigRejectsUnknownFeature(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("features:\n  banner: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown feature")
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("features:\n  highlight:\n    sparkle: \"on\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestDefaultsForInvalidOverride(t *testing.T) {
	cfg := &SiteConfig{
		MaxOutputLength: DefaultMaxOutputLength,
		Features: map[string]map[string]string{
			FeatureHighlight: {KeyMinLines: "lots"},
		},
	}
	_, err := cfg.DefaultsFor(FeatureHighlight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer")
}

func TestNilConfigDefaultsFor(t *testing.T) {
	var cfg *SiteConfig
	table, err := cfg.DefaultsFor(FeatureInteractive)
	require.NoError(t, err)
	assert.Equal(t, InteractiveDefaults(), table)
}

func TestSiteOverridesFlowThroughResolve(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("features:\n  highlight:\n    lang: cpp\n"))
	require.NoError(t, err)

	table, err := cfg.DefaultsFor(FeatureHighlight)
	require.NoError(t, err)

	var resolved Config = Resolve(MapSource{"min-lines": "8"}, table)
	assert.Equal(t, "cpp", resolved.Str(KeyLang))
	assert.Equal(t, 8, resolved.Int(KeyMinLines))
}
