// Command fbxbake bakes parent-local transforms of ASCII scene files
// into mesh geometry and resets the corresponding scene-descriptor
// transform fields to identity, across every .fbx/.prefab file found
// under a directory.
package main

import (
	"fmt"
	"os"

	"github.com/fbxbake/bake/util/logger"
)

func main() {

	cfg, err := ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logger.New("fbxbake", nil)
	log.AddWriter(logger.NewConsole(cfg.Color))
	if cfg.Verbose {
		log.SetLevel(logger.DEBUG)
	} else {
		log.SetLevel(logger.INFO)
	}

	failed := run(cfg, log)
	if failed > 0 {
		os.Exit(1)
	}
}
