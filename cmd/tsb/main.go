package main

import (
	"fmt"
	"os"
)

// version is stamped at release time via -ldflags.
var version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "init":
		exitOnError(handleInit())
	case "config":
		exitOnError(handleConfig(os.Args[2:]))
	case "info":
		exitOnError(handleInfo(os.Args[2:]))
	case "cleanup":
		exitOnError(handleCleanup(os.Args[2:]))
	case "history":
		exitOnError(handleHistory(os.Args[2:]))
	case "version", "--version":
		fmt.Println("tsb " + version)
	case "help", "--help", "-h":
		printUsage()
	default:
		// Everything else is dynamic dispatch: a chain name, a user command,
		// or a builtin. The process exit code is the run's exit code.
		os.Exit(handleRun(os.Args[1], os.Args[2:]))
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tsb <command> [flags]")
	fmt.Println()
	fmt.Println("Setup commands:")
	fmt.Println("  init               seed shared tool config files (idempotent)")
	fmt.Println("  config [--force]   write the default ts-builds.config.json")
	fmt.Println("  info [--check]     show tool info; --check looks for a newer release")
	fmt.Println("  cleanup [--yes]    remove tool-managed deps from package.json")
	fmt.Println("  history [n]        show the n most recent recorded runs")
	fmt.Println()
	fmt.Println("Script commands (any chain or command from your config also works):")
	fmt.Println("  validate           format, lint, typecheck, test, build")
	fmt.Println("  format[:check]     prettier")
	fmt.Println("  lint[:check]       eslint")
	fmt.Println("  typecheck          tsc --noEmit")
	fmt.Println("  test[:watch|:coverage|:ui]")
	fmt.Println("  build[:watch], dev, compile")
	fmt.Println()
	fmt.Println("Flags for script commands:")
	fmt.Println("  --trace            dump the run's event timeline afterwards")
}
