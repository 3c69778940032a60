package report

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitecfg/sitecfg/internal/config"
)

// ChangeKind classifies how a key differs between two mappings.
type ChangeKind string

const (
	Added     ChangeKind = "added"
	Replaced  ChangeKind = "replaced"
	Unchanged ChangeKind = "unchanged"
	Removed   ChangeKind = "removed"
)

// Change is one key of a Diff.
type Change struct {
	Key  config.Key
	Kind ChangeKind
	Old  any
	New  any
}

// Diff compares from against to, key by key, in lexical key order.
func Diff(from, to config.Settings) []Change {
	seen := make(map[config.Key]struct{}, len(from)+len(to))
	var keys []config.Key
	for _, s := range []config.Settings{from, to} {
		for k := range s {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	changes := make([]Change, 0, len(keys))
	for _, k := range keys {
		old, inFrom := from[k]
		nv, inTo := to[k]
		c := Change{Key: k, Old: old, New: nv}
		switch {
		case !inFrom:
			c.Kind = Added
		case !inTo:
			c.Kind = Removed
		case reflect.DeepEqual(old, nv):
			c.Kind = Unchanged
		default:
			c.Kind = Replaced
		}
		changes = append(changes, c)
	}
	return changes
}

// DiffOptions controls PrintDiff.
type DiffOptions struct {
	NoColor bool
	// ShowUnchanged also lists inherited keys.
	ShowUnchanged bool
}

var (
	addedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	replacedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	removedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintDiff writes changes one per line: "+" added, "~" replaced, "-"
// removed and " " unchanged.
func PrintDiff(w io.Writer, changes []Change, opts DiffOptions) {
	n := 0
	for _, c := range changes {
		var line string
		var style lipgloss.Style
		switch c.Kind {
		case Added:
			line = fmt.Sprintf("+ %s: %s", c.Key, FormatValue(c.New))
			style = addedStyle
		case Replaced:
			line = fmt.Sprintf("~ %s: %s -> %s", c.Key, FormatValue(c.Old), FormatValue(c.New))
			style = replacedStyle
		case Removed:
			line = fmt.Sprintf("- %s: %s", c.Key, FormatValue(c.Old))
			style = removedStyle
		default:
			if !opts.ShowUnchanged {
				continue
			}
			line = fmt.Sprintf("  %s: %s", c.Key, FormatValue(c.Old))
			style = dimStyle
		}
		if c.Kind != Unchanged {
			n++
		}
		if !opts.NoColor {
			line = style.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	if n == 0 {
		fmt.Fprintln(w, "No differences")
	}
}
