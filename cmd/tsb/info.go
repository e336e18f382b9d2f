package main

import (
	gocontext "context"
	"fmt"
	"sort"

	gh "github.com/google/go-github/v60/github"

	"github.com/tsbuilds/tsb/internal/config"
	"github.com/tsbuilds/tsb/internal/release"
	"github.com/tsbuilds/tsb/pkg/task"
)

const (
	releaseOwner = "tsbuilds"
	releaseRepo  = "tsb"
)

// handleInfo implements `tsb info [--check]`.
func handleInfo(args []string) error {
	fmt.Printf("tsb %s — shared build tooling for TypeScript projects\n\n", version)
	fmt.Printf("Optional config file: %s (or %s)\n\n", config.FileJSON, config.FileYAML)

	builtins := task.Builtins(config.Default().SrcDir)
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Builtin commands:")
	for _, name := range names {
		fmt.Printf("  %-14s %s\n", name, builtins[name].Run)
	}
	fmt.Println()
	fmt.Println("Builtin chain:")
	fmt.Println("  validate       format, lint, typecheck, test, build")

	if hasFlag(args, "--check") {
		fmt.Println()
		return checkForUpdate()
	}
	return nil
}

func checkForUpdate() error {
	checker := release.New(gh.NewClient(nil), releaseOwner, releaseRepo)
	tag, url, err := checker.Latest(gocontext.Background())
	if err != nil {
		return fmt.Errorf("release check: %w", err)
	}

	if release.IsNewer(version, tag) {
		fmt.Printf("Update available: %s (current %s)\n  %s\n", tag, version, url)
	} else {
		fmt.Printf("You are on the latest release (%s).\n", version)
	}
	return nil
}
