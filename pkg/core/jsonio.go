package core

import (
	"encoding/json"
	"io"

	"github.com/sitecfg/sitecfg/internal/config"
)

// MarshalSettings pretty-prints settings as JSON for humans or pipelines.
func MarshalSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[Key]any(s))
}

// UnmarshalSettings decodes settings JSON back into Settings value types.
func UnmarshalSettings(r io.Reader) (Settings, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return config.Normalize(raw)
}
