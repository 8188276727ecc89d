package main

import (
	"errors"
	"fmt"
	"os"

	"axis-gizmo/internal/commands"
	"axis-gizmo/internal/logger"
)

func main() {
	log := logger.New(logger.LogFilePath)
	reg := newRegistry(log, os.Stdout)
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"view"}
	}
	if err := reg.Execute(args); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			fmt.Fprintf(os.Stderr, "usage: gizmo <command> [flags]\n%s", reg.Usage())
		}
		log.Logf("error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
