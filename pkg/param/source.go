package param

// AttributeSource exposes the declared attributes of one content block.
type AttributeSource interface {
	HasAttribute(name string) bool
	GetAttribute(name string) string
}

// MapSource adapts a plain attribute map, as submitted over the API, to the
// AttributeSource capability.
type MapSource map[string]string

// HasAttribute implements AttributeSource.
func (m MapSource) HasAttribute(name string) bool {
	_, ok := m[name]
	return ok
}

// GetAttribute implements AttributeSource.
func (m MapSource) GetAttribute(name string) string {
	return m[name]
}

// lookupAttr tries candidate keys in order and returns the first declared
// value. The bool reports whether any candidate was present at all.
func lookupAttr(src AttributeSource, keys ...string) (string, bool) {
	for _, key := range keys {
		if src.HasAttribute(key) {
			return src.GetAttribute(key), true
		}
	}
	return "", false
}
