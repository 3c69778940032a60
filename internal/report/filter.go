package report

import (
	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"

	"github.com/sitecfg/sitecfg/internal/config"
)

// MatchKeys keeps the keys of s matching any of patterns, glob style
// ("feed_*", "*_url"). No patterns keeps everything.
func MatchKeys(s config.Settings, patterns []string) (config.Settings, error) {
	if len(patterns) == 0 {
		return s, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, oops.In("report").Code("bad_pattern").With("pattern", p).Errorf("invalid key pattern %q", p)
		}
	}
	out := config.Settings{}
	for k, v := range s {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, string(k)); ok {
				out[k] = v
				break
			}
		}
	}
	return out, nil
}
