package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/samber/oops"
)

// SlugPlaceholder is substituted by the generator in URL templates.
const SlugPlaceholder = "{slug}"

// Validate checks s against the vocabulary. Every missing required key and
// every value of the wrong shape is reported in a single error. Keys outside
// the vocabulary are passed through untouched.
func Validate(s Settings) error {
	var problems []string
	for _, k := range Required() {
		if !s.Has(k) {
			problems = append(problems, fmt.Sprintf("%s: missing", k))
		}
	}
	for _, k := range s.Keys() {
		spec, ok := Lookup(k)
		if !ok {
			continue
		}
		if msg := checkValue(spec, s[k]); msg != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", k, msg))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return oops.
		In("config").
		Code("invalid_settings").
		With("problems", problems).
		Errorf("invalid settings: %s", strings.Join(problems, "; "))
}

func checkValue(spec KeySpec, v any) string {
	want := "want " + spec.Kind.String()
	switch spec.Kind {
	case KindString:
		if _, ok := v.(string); !ok {
			return want
		}
	case KindInt:
		n, ok := v.(int)
		if !ok {
			return want
		}
		if spec.Key == PaginationSize && n <= 0 {
			return "must be positive"
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return want
		}
	case KindFeed:
		if v == nil {
			return ""
		}
		p, ok := v.(string)
		if !ok || strings.TrimSpace(p) == "" {
			return want
		}
	case KindTemplate:
		t, ok := v.(string)
		if !ok {
			return want
		}
		if !strings.Contains(t, SlugPlaceholder) {
			return "template has no " + SlugPlaceholder + " placeholder"
		}
	case KindTimezone:
		tz, ok := v.(string)
		if !ok || tz == "" {
			return want
		}
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Sprintf("unknown timezone %q", tz)
		}
	case KindLinks:
		links, ok := v.([]Link)
		if !ok {
			return want
		}
		for i, l := range links {
			if l.Label == "" || l.URL == "" {
				return fmt.Sprintf("entry %d needs both label and url", i)
			}
		}
	case KindStrings:
		if _, ok := v.([]string); !ok {
			return want
		}
	case KindExtensions:
		if _, ok := v.(map[string]map[string]any); !ok {
			return want
		}
	}
	return ""
}
