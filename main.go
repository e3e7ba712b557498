// Copyright
// SPDX-License-Identifier: MIT
// difftrack: terminal tracker for in-flight file edits with inline and
// side-by-side diff review
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	cfg "difftrack/internal/config"
	appTUI "difftrack/internal/tui"
)

const Version = "0.3.0"

const (
	stateDirName   = ".difftrack"
	configFileName = "config.json"
)

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, stateDirName, configFileName)
}

func usage() {
	fmt.Fprintf(os.Stderr, `difftrack %s — review edits to files as they happen

Usage:
  difftrack [flags] FILE [FILE...]

Flags:
  -config PATH    config file (default %s)
  -context N      context lines around each change (default %d)
  -style NAME     syntax highlight style (default %q)
  -no-color       disable colors and syntax highlighting
  -version        print version and exit

Keys inside the TUI: ? shows help, tab toggles side-by-side, d dismisses.
`, Version, defaultConfigPath(), cfg.Default().ContextLines, cfg.Default().HighlightStyle)
}

func main() {
	var (
		configPath  = flag.String("config", defaultConfigPath(), "config file")
		contextArg  = flag.Int("context", 0, "context lines around each change")
		styleArg    = flag.String("style", "", "syntax highlight style")
		noColor     = flag.Bool("no-color", false, "disable colors")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("difftrack", Version)
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		usage()
		os.Exit(2)
	}

	opts, err := cfg.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "difftrack:", err)
		os.Exit(1)
	}

	// Flags win over the config file.
	if *contextArg > 0 {
		opts.ContextLines = *contextArg
	}
	if *styleArg != "" {
		opts.HighlightStyle = *styleArg
	}
	if *noColor {
		opts.NoColor = true
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintln(os.Stderr, "difftrack:", err)
			os.Exit(1)
		}
	}

	if err := appTUI.Run(opts, paths); err != nil {
		fmt.Fprintln(os.Stderr, "difftrack:", err)
		os.Exit(1)
	}
}
