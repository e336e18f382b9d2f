package main

import (
	"fmt"

	"github.com/tsbuilds/tsb/internal/scaffold"
)

// handleInit implements `tsb init` — idempotent seeding of shared tool
// configuration into the current project.
func handleInit() error {
	created, err := scaffold.Seed(".")
	if err != nil {
		return err
	}

	if len(created) == 0 {
		fmt.Println("All config files already present; nothing to do.")
		return nil
	}
	for _, name := range created {
		fmt.Printf("Created %s\n", name)
	}
	fmt.Println("Run `tsb config` to add a ts-builds.config.json as well.")
	return nil
}
