package main

import (
	"fmt"
	"os"

	"github.com/lamassuiot/lamassuiot/registry/v3/internal/registryctl"
)

var (
	version   string = "v0"    // tool version
	sha1ver   string = "-"     // sha1 revision used to build the program
	buildTime string = "devTS" // when the executable was built
)

func main() {
	root := registryctl.NewRootCommand(&registryctl.App{})
	root.Version = fmt.Sprintf("%s (sha1ver=%s buildTime=%s)", version, sha1ver, buildTime)

	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
