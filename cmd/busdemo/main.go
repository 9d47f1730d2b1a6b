// Package main provides the entry point for busdemo, a process that
// registers a MycoNet bus topology from a YAML file and serves it for
// the lifetime of the process, optionally with a live HMI panel.
package main

import (
	"os"

	"github.com/kodflow/myconet-bus/internal/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run())
}
