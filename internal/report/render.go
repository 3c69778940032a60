// Package report writes a resolved configuration in the formats the CLI
// offers: YAML, JSON, a Python settings module for the generator, and a
// human-readable table. It also renders the publish-versus-base diff.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/sitecfg/sitecfg/internal/config"
)

// Format is an output encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatPython Format = "python"
	FormatTable  Format = "table"
)

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "python", "py":
		return FormatPython, nil
	case "table":
		return FormatTable, nil
	}
	return "", oops.In("report").Code("unknown_format").With("format", s).Errorf("unknown format %q", s)
}

// Ext is the default file extension for f.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yml"
	case FormatJSON:
		return ".json"
	case FormatPython:
		return ".py"
	default:
		return ".txt"
	}
}

// Header describes where a rendered mapping came from. It is written as a
// comment in formats that support one.
type Header struct {
	Env     config.Environment
	Sources []string
}

// Write encodes s to w in format f.
func Write(w io.Writer, s config.Settings, f Format, h Header) error {
	switch f {
	case FormatYAML:
		return writeYAML(w, s, h)
	case FormatJSON:
		return writeJSON(w, s)
	case FormatPython:
		return writePython(w, s, h)
	case FormatTable:
		return writeTable(w, s)
	}
	return oops.In("report").Code("unknown_format").With("format", f).Errorf("unknown format %q", f)
}

// Bytes is Write into a buffer.
func Bytes(s config.Settings, f Format, h Header) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, s, f, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeYAML(w io.Writer, s config.Settings, h Header) error {
	fmt.Fprintf(w, "# generated by sitecfg (%s)\n", h.Env)
	for _, src := range h.Sources {
		fmt.Fprintf(w, "# layer: %s\n", src)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[config.Key]any(s)); err != nil {
		return oops.In("report").Wrapf(err, "encode yaml")
	}
	return enc.Close()
}

func writeJSON(w io.Writer, s config.Settings) error {
	b, err := json.MarshalIndent(map[config.Key]any(s), "", "  ")
	if err != nil {
		return oops.In("report").Wrapf(err, "encode json")
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeTable(w io.Writer, s config.Settings) error {
	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")
	for _, k := range s.Keys() {
		if err := table.Append([]string{string(k), FormatValue(s[k])}); err != nil {
			return err
		}
	}
	return table.Render()
}

// FormatValue renders v on a single line for tables and diffs.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "(disabled)"
	case string:
		if t == "" {
			return `""`
		}
		return t
	case []config.Link:
		parts := make([]string, len(t))
		for i, l := range t {
			parts[i] = l.Label + "=" + l.URL
		}
		return strings.Join(parts, ", ")
	case []string:
		return "[" + strings.Join(t, ", ") + "]"
	case map[string]map[string]any:
		names := make([]string, 0, len(t))
		for n := range t {
			names = append(names, n)
		}
		sort.Strings(names)
		return "{" + strings.Join(names, ", ") + "}"
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
