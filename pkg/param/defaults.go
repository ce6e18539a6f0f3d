package param

// Feature identifiers for the two block pipelines.
const (
	FeatureHighlight   = "highlight"
	FeatureInteractive = "interactive"
)

// DataAttrPrefix is the namespaced fallback form tried when a parameter is
// not declared under its bare name (data-lang vs lang).
const DataAttrPrefix = "data-"

// Well-known parameter keys.
const (
	KeyLang            = "lang"
	KeyClass           = "class"
	KeyFontSize        = "font-size"
	KeyStartLineNumber = "start-line-number"
	KeyMinLines        = "min-lines"
	KeyMaxLines        = "max-lines"
	KeyHidden          = "hidden"
	KeyStdin           = "stdin"
	KeyParams          = "params"
	KeyButtonName      = "button-name"
	KeyCodePrefix      = "code-prefix"
	KeyCodeSuffix      = "code-suffix"
)

// HighlightDefaults returns a fresh default table for static highlighted
// blocks. Callers receive their own copy; the table is never shared.
func HighlightDefaults() Defaults {
	return Defaults{
		KeyLang:            StringVal("python3"),
		KeyClass:           StringVal(""),
		KeyFontSize:        StringVal("11pt"),
		KeyStartLineNumber: NullInt(),
		KeyMinLines:        IntVal(4),
		KeyMaxLines:        IntVal(40),
		KeyHidden:          BoolVal(false),
	}
}

// InteractiveDefaults returns a fresh default table for runnable blocks.
func InteractiveDefaults() Defaults {
	d := HighlightDefaults()
	d[KeyStartLineNumber] = NullableIntVal(1)
	d[KeyButtonName] = StringVal("Try it!")
	d[KeyStdin] = StringVal("")
	d[KeyParams] = StringVal(`{"cputime": 5}`)
	d[KeyCodePrefix] = StringVal("")
	d[KeyCodeSuffix] = StringVal("")
	return d
}

// DefaultsFor maps a feature name to its default table. Unknown features get
// the highlight table, the most restrictive of the two.
func DefaultsFor(feature string) Defaults {
	if feature == FeatureInteractive {
		return InteractiveDefaults()
	}
	return HighlightDefaults()
}
