package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbxbake/bake/bake"
	"github.com/fbxbake/bake/descriptor"
	"github.com/fbxbake/bake/scene"
)

// safeProcessFile recovers a panic from processing a single file so
// one malformed input cannot take down the whole batch; it is logged
// as a failure for that file only, per SPEC_FULL.md §7.
func safeProcessFile(path string, cfg Config) (o outcome) {

	defer func() {
		if r := recover(); r != nil {
			o = outcome{path: path, kind: outcomeFailed, err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return processFile(path, cfg)
}

// processFile runs the scene baker or descriptor rewriter on path,
// depending on its extension, and writes the result under the input
// directory's baked/ subdirectory unless cfg.DryRun is set.
func processFile(path string, cfg Config) outcome {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".fbx":
		return processSceneFile(path, cfg)
	case ".prefab":
		return processDescriptorFile(path, cfg)
	default:
		return outcome{path: path, kind: outcomeUnchanged, detail: "not a recognized file type"}
	}
}

func processSceneFile(path string, cfg Config) outcome {

	binary, err := isBinaryFBX(path)
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}
	if binary {
		return outcome{path: path, kind: outcomeBinarySkipped, detail: "binary FBX variant"}
	}

	f, err := os.Open(path)
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}
	buf, err := scene.ReadBuffer(f)
	f.Close()
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}

	result, err := bake.Bake(buf)
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}
	if result.MeshesBaked == 0 {
		return outcome{path: path, kind: outcomeUnchanged, detail: "no non-neutral mesh transforms found"}
	}

	if !cfg.DryRun {
		if err := writeOutput(path, cfg, buf.Bytes()); err != nil {
			return outcome{path: path, kind: outcomeFailed, err: err}
		}
	}

	detail := fmt.Sprintf("%d mesh(es) baked, %d normal(s) adjusted", result.MeshesBaked, result.NormalsFixed)
	if result.MeshesSkipped > 0 {
		detail += fmt.Sprintf(", %d mesh(es) skipped (singular transform)", result.MeshesSkipped)
	}
	return outcome{path: path, kind: outcomeBaked, detail: detail, changed: result.MeshesBaked}
}

func processDescriptorFile(path string, cfg Config) outcome {

	f, err := os.Open(path)
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}
	buf, err := scene.ReadBuffer(f)
	f.Close()
	if err != nil {
		return outcome{path: path, kind: outcomeFailed, err: err}
	}

	changed := descriptor.RewriteBuffer(buf)
	if changed == 0 {
		return outcome{path: path, kind: outcomeUnchanged, detail: "no non-identity transform fields found"}
	}

	if !cfg.DryRun {
		if err := writeOutput(path, cfg, buf.Bytes()); err != nil {
			return outcome{path: path, kind: outcomeFailed, err: err}
		}
	}

	return outcome{
		path:    path,
		kind:    outcomeBaked,
		detail:  fmt.Sprintf("%d transform field(s) reset", changed),
		changed: changed,
	}
}

// writeOutput mirrors path's position under cfg.InputDir into the
// baked/ subdirectory and writes data there, creating directories as
// needed.
func writeOutput(path string, cfg Config, data []byte) error {

	rel, err := filepath.Rel(cfg.InputDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	outPath := filepath.Join(cfg.InputDir, bakedDirName, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
