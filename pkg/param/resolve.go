package param

import (
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// langClassPrefix marks class tokens that carry a language override, as
// emitted by markdown renderers (language-python).
const langClassPrefix = "language-"

// nullSentinel is the attribute value that maps a nullable-integer to null.
const nullSentinel = "none"

// Resolve merges declared block attributes over a default table. Every key
// of the table appears in the result exactly once: declared values are
// coerced to the key's kind, undeclared keys keep their default. Resolve is
// total; a malformed integer keeps the default and is logged rather than
// poisoning the configuration.
func Resolve(src AttributeSource, defaults Defaults) Config {
	resolved := make(Config, len(defaults))
	for key, def := range defaults {
		raw, ok := lookupAttr(src, key, DataAttrPrefix+key)
		if !ok {
			resolved[key] = def
			continue
		}
		resolved[key] = coerce(key, raw, def)
	}
	applyClassLanguage(resolved)
	return resolved
}

// coerce converts one declared attribute value according to the kind the
// default table records for its key.
func coerce(key, raw string, def Value) Value {
	switch def.Kind {
	case KindBool:
		// Presence alone means true, whatever the declared value says.
		return BoolVal(true)
	case KindNullableInt:
		if strings.EqualFold(strings.TrimSpace(raw), nullSentinel) {
			return NullInt()
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			logx.Infof("param: %s=%q is not an integer, keeping default %s", key, raw, def)
			return def
		}
		return NullableIntVal(n)
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			logx.Infof("param: %s=%q is not an integer, keeping default %s", key, raw, def)
			return def
		}
		return IntVal(n)
	default:
		return StringVal(raw)
	}
}

// applyClassLanguage rewrites the resolved language from class tokens of the
// form language-<name>. The last matching token wins, letting a secondary
// authoring tool override the declared language.
func applyClassLanguage(resolved Config) {
	cls, ok := resolved[KeyClass]
	if !ok || cls.Str == "" {
		return
	}
	lang := ""
	for _, token := range strings.Fields(cls.Str) {
		if rest, found := strings.CutPrefix(token, langClassPrefix); found && rest != "" {
			lang = rest
		}
	}
	if lang != "" {
		resolved[KeyLang] = StringVal(lang)
	}
}
