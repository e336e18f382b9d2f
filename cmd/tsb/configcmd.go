package main

import (
	"fmt"

	"github.com/tsbuilds/tsb/internal/scaffold"
)

// handleConfig implements `tsb config [--force]` — writes the default
// configuration file.
func handleConfig(args []string) error {
	force := hasFlag(args, "--force")

	path, err := scaffold.WriteConfig(".", force)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
