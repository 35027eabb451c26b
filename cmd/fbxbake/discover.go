package main

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// bakedDirName is the output subdirectory; it is never itself scanned
// for input, so re-running the CLI over its own output is a no-op.
const bakedDirName = "baked"

// discoverFiles walks cfg.InputDir (recursively if cfg.Recursive)
// collecting .fbx and .prefab files, per SPEC_FULL.md §4.9.
func discoverFiles(cfg Config) ([]string, error) {

	var found []string
	err := filepath.WalkDir(cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != cfg.InputDir && d.Name() == bakedDirName {
				return filepath.SkipDir
			}
			if path != cfg.InputDir && !cfg.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".fbx", ".prefab":
			found = append(found, path)
		}
		return nil
	})
	return found, err
}
