package report

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/sitecfg/sitecfg/internal/config"
)

// settingNames maps vocabulary keys to the names the generator reads from
// its settings module. Keys not listed are upper-cased.
var settingNames = map[config.Key]string{
	config.SiteName:           "SITENAME",
	config.SiteURL:            "SITEURL",
	config.ContentPath:        "PATH",
	config.DefaultLanguage:    "DEFAULT_LANG",
	config.PaginationSize:     "DEFAULT_PAGINATION",
	config.GoogleAnalyticsID:  "GOOGLE_ANALYTICS",
	config.CategoryFeed:       "CATEGORY_FEED_ATOM",
	config.TranslationFeed:    "TRANSLATION_FEED_ATOM",
	config.MarkdownExtensions: "MARKDOWN",
}

// SettingName returns the generator-side name for k.
func SettingName(k config.Key) string {
	if n, ok := settingNames[k]; ok {
		return n
	}
	return strings.ToUpper(string(k))
}

var identRe = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// checkSettingNames rejects keys whose generated name is not a Python
// identifier or is shared with another key.
func checkSettingNames(keys []config.Key) error {
	seen := make(map[string]config.Key, len(keys))
	for _, k := range keys {
		name := SettingName(k)
		if !identRe.MatchString(name) {
			return oops.In("report").Code("bad_setting_name").With("key", k).
				Errorf("key %q gives %s, which is not a valid setting name", k, name)
		}
		if prev, ok := seen[name]; ok {
			return oops.In("report").Code("duplicate_setting_name").With("key", k).With("other", prev).
				Errorf("keys %q and %q both map to %s", prev, k, name)
		}
		seen[name] = k
	}
	return nil
}

func writePython(w io.Writer, s config.Settings, h Header) error {
	keys := s.Keys()
	if err := checkSettingNames(keys); err != nil {
		return err
	}
	fmt.Fprintln(w, "#!/usr/bin/env python")
	fmt.Fprintln(w, "# -*- coding: utf-8 -*- #")
	fmt.Fprintf(w, "# generated by sitecfg (%s); edit the layer files instead\n", h.Env)
	for _, src := range h.Sources {
		fmt.Fprintf(w, "# layer: %s\n", src)
	}
	fmt.Fprintln(w)

	sort.SliceStable(keys, func(i, j int) bool { return SettingName(keys[i]) < SettingName(keys[j]) })
	for _, k := range keys {
		v := s[k]
		if k == config.MarkdownExtensions {
			// the generator nests extension options under extension_configs
			v = map[string]any{"extension_configs": v, "output_format": "html5"}
		}
		lit, err := pyLiteral(v)
		if err != nil {
			return oops.In("report").With("key", k).Wrapf(err, "encode %s", k)
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", SettingName(k), lit); err != nil {
			return err
		}
	}
	return nil
}

func pyLiteral(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "None", nil
	case string:
		return pyString(t), nil
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case []config.Link:
		parts := make([]string, len(t))
		for i, l := range t {
			parts[i] = "(" + pyString(l.Label) + ", " + pyString(l.URL) + ")"
		}
		return pyTuple(parts), nil
	case []string:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = pyString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			lit, err := pyLiteral(e)
			if err != nil {
				return "", err
			}
			parts[i] = lit
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case map[string]map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = e
		}
		return pyDict(m)
	case map[string]any:
		return pyDict(t)
	}
	return "", oops.Errorf("unsupported value type %T", v)
}

func pyDict(m map[string]any) (string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		lit, err := pyLiteral(m[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, pyString(k)+": "+lit)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func pyTuple(parts []string) string {
	switch len(parts) {
	case 0:
		return "()"
	case 1:
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\'':
			b.WriteString(`\'`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
