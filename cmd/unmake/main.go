// Package main is the entry point for unmake, a POSIX makefile portability
// linter.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mcandre/unmake/internal/batch"
	"github.com/mcandre/unmake/internal/config"
	"github.com/mcandre/unmake/internal/lint" // Policies() also registers every policy via init().
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes, per the exit-code convention spec.md leaves to the CLI.
const (
	exitClean = 0
	exitDirty = 1
	exitError = 2
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	quiet := flag.Bool("q", false, "suppress per-file progress output")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("unmake %s (%s) %s\n", version, commit, date)
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		usage()
		os.Exit(exitError)
	}

	os.Exit(run(paths, *configPath, *quiet, os.Stderr))
}

func run(paths []string, configPath string, quiet bool, stderr *os.File) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "unmake: %v\n", err)
		return exitError
	}

	results, err := batch.Run(context.Background(), paths, cfg, lint.Policies())
	if err != nil {
		fmt.Fprintf(stderr, "unmake: %v\n", err)
		return exitError
	}

	dirty := false
	for _, r := range results {
		if r.Skipped {
			if !quiet {
				fmt.Fprintf(stderr, "%s: skipped (%s)\n", r.Path, r.SkipReason)
			}
			continue
		}

		if r.ParseError != nil {
			fmt.Fprintf(stderr, "%s\n", r.ParseError.Error())
			dirty = true
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(stderr, "%s\n", w.String())
			dirty = true
		}
	}

	if dirty {
		return exitDirty
	}
	return exitClean
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: unmake [flags] path [path...]

Lint POSIX makefile(s) for portability problems.

Flags:
`)
	flag.PrintDefaults()
}
