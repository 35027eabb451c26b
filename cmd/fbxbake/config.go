package main

import (
	"flag"
	"fmt"
	"runtime"
)

// Config holds the CLI's parsed flags, per SPEC_FULL.md §4.11. No
// CLI-framework dependency appears anywhere in the example pack, so
// this is parsed with the standard flag package rather than a
// third-party flags/config library.
type Config struct {
	InputDir  string
	Recursive bool
	DryRun    bool
	Workers   int
	Verbose   bool
	Color     bool
}

// ParseFlags parses args (typically os.Args[1:]) into a Config.
func ParseFlags(args []string) (Config, error) {

	fs := flag.NewFlagSet("fbxbake", flag.ContinueOnError)

	var cfg Config
	fs.StringVar(&cfg.InputDir, "dir", ".", "directory to scan for .fbx and .prefab files")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "scan subdirectories too")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "report what would change without writing output files")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "number of files to process concurrently")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug-level logging")
	fs.BoolVar(&cfg.Color, "color", false, "colorize per-file log output")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("fbxbake: -workers must be at least 1")
	}
	return cfg, nil
}
