package main

import (
	"github.com/fbxbake/bake/util/logger"
)

// run discovers files under cfg.InputDir, processes them across a
// bounded pool of cfg.Workers goroutines, and logs a final tally, per
// SPEC_FULL.md §4.9/§5. It returns the number of files that failed, or
// 1 if discovery itself failed — the caller turns that into the
// process exit code.
func run(cfg Config, log *logger.Logger) (failed int) {

	files, err := discoverFiles(cfg)
	if err != nil {
		log.Error("discovery failed: %v", err)
		return 1
	}
	log.Info("found %d file(s) to examine under %s", len(files), cfg.InputDir)

	jobs := make(chan string)
	results := make(chan outcome)

	for w := 0; w < cfg.Workers; w++ {
		go func() {
			for path := range jobs {
				results <- safeProcessFile(path, cfg)
			}
		}()
	}
	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
	}()

	var baked, unchanged, binarySkipped int
	for range files {
		o := <-results
		switch o.kind {
		case outcomeBaked:
			baked++
			log.LogFile(logger.INFO, o.path, "%s", o.detail)
		case outcomeUnchanged:
			unchanged++
			log.LogFile(logger.DEBUG, o.path, "%s", o.detail)
		case outcomeBinarySkipped:
			binarySkipped++
			log.LogFile(logger.INFO, o.path, "skipped (%s)", o.detail)
		case outcomeFailed:
			failed++
			log.LogFile(logger.ERROR, o.path, "failed: %v", o.err)
		}
	}

	log.Info("done: %d baked, %d unchanged, %d binary skipped, %d failed",
		baked, unchanged, binarySkipped, failed)
	return failed
}
