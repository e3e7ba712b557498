package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Options holds the tunable constants of the review UI. Zero values are
// replaced with defaults on load, so a partial config file is fine.
type Options struct {
	// MinSideBySideWidth is the narrowest terminal (in columns) the
	// dual-column diff layout is allowed on.
	MinSideBySideWidth int `json:"minSideBySideWidth,omitempty"`
	// ContextLines is the number of unchanged lines kept around each change.
	ContextLines int `json:"contextLines,omitempty"`
	// MaxStatusFiles caps how many pending file names the status bar lists.
	MaxStatusFiles int `json:"maxStatusFiles,omitempty"`
	// HighlightStyle names the chroma style used for context lines.
	HighlightStyle string `json:"highlightStyle,omitempty"`
	// NoColor disables all styling (NO_COLOR in the environment also works).
	NoColor bool `json:"noColor,omitempty"`
}

// Default returns the built-in option values.
func Default() Options {
	return Options{
		MinSideBySideWidth: 120,
		ContextLines:       3,
		MaxStatusFiles:     5,
		HighlightStyle:     "monokai",
	}
}

// Load reads options from a JSON file. A missing file yields the defaults;
// present-but-broken files are an error.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}
	var o Options
	if err := json.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("parse config JSON: %w", err)
	}
	return o.withDefaults(), nil
}

// Save writes options as indented JSON.
func Save(path string, o Options) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (o Options) withDefaults() Options {
	d := Default()
	if o.MinSideBySideWidth <= 0 {
		o.MinSideBySideWidth = d.MinSideBySideWidth
	}
	if o.ContextLines <= 0 {
		o.ContextLines = d.ContextLines
	}
	if o.MaxStatusFiles <= 0 {
		o.MaxStatusFiles = d.MaxStatusFiles
	}
	if o.HighlightStyle == "" {
		o.HighlightStyle = d.HighlightStyle
	}
	return o
}
