package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tsbuilds/tsb/internal/scaffold"
)

// handleCleanup implements `tsb cleanup [--yes|-y]` — removes tool-managed
// dependencies from the project's package.json.
func handleCleanup(args []string) error {
	yes := hasFlag(args, "--yes") || hasFlag(args, "-y")

	if !yes && !confirmCleanup() {
		fmt.Fprintln(os.Stderr, "Cleanup cancelled.")
		return nil
	}

	removed, err := scaffold.Cleanup(".")
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		fmt.Println("No managed dependencies found in package.json.")
		return nil
	}
	for _, name := range removed {
		fmt.Printf("Removed %s\n", name)
	}
	fmt.Println("Reinstall to update the lockfile.")
	return nil
}

func confirmCleanup() bool {
	fmt.Fprintf(os.Stderr, "Remove tool-managed dependencies from package.json? [y/N] ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes"
}
