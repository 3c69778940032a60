package config

import "sort"

// Link is one (label, URL) pair of the blogroll or social widget.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Settings is a key to value mapping. Values are string, int, bool, []Link,
// []string or map[string]map[string]any. A key present with a nil value is
// disabled: switched off, such as a feed that should not be generated. It
// marshals as null / None and differs from an absent key.
type Settings map[Key]any

// Has reports whether k is present, including when it is disabled.
func (s Settings) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// IsDisabled reports whether k is present with a nil (disabled) value.
func (s Settings) IsDisabled(k Key) bool {
	v, ok := s[k]
	return ok && v == nil
}

// String returns the string value for k.
func (s Settings) String(k Key) (string, bool) {
	v, ok := s[k].(string)
	return v, ok
}

// Int returns the integer value for k.
func (s Settings) Int(k Key) (int, bool) {
	v, ok := s[k].(int)
	return v, ok
}

// Bool returns the boolean value for k.
func (s Settings) Bool(k Key) (bool, bool) {
	v, ok := s[k].(bool)
	return v, ok
}

// Links returns the link list for k.
func (s Settings) Links(k Key) ([]Link, bool) {
	v, ok := s[k].([]Link)
	return v, ok
}

// Keys returns the present keys in lexical order.
func (s Settings) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []Link:
		return append([]Link(nil), t...)
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case map[string]map[string]any:
		out := make(map[string]map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e).(map[string]any)
		}
		return out
	default:
		return v
	}
}
