package task

import "fmt"

// CommandSpec is one directly executable shell command. Dir, when set,
// overrides the working directory for that command only.
type CommandSpec struct {
	Run string
	Dir string
}

// ChainSpec is an ordered list of step names. Each name references another
// chain, a user-declared command, or a builtin. Order is execution order and
// duplicates are legal.
type ChainSpec []string

// Builtins returns the compiled-in command table, parameterized by the
// project's source directory. The set of names is fixed; callers get a fresh
// map on every call and may overlay their own entries on top of it.
func Builtins(srcDir string) map[string]CommandSpec {
	return map[string]CommandSpec{
		"format":        {Run: "prettier --write ."},
		"format:check":  {Run: "prettier --check ."},
		"lint":          {Run: fmt.Sprintf("eslint %s --fix", srcDir)},
		"lint:check":    {Run: fmt.Sprintf("eslint %s", srcDir)},
		"typecheck":     {Run: "tsc --noEmit"},
		"test":          {Run: "vitest run"},
		"test:watch":    {Run: "vitest"},
		"test:coverage": {Run: "vitest run --coverage"},
		"test:ui":       {Run: "vitest --ui"},
		"build":         {Run: "tsup"},
		"build:watch":   {Run: "tsup --watch"},
		"dev":           {Run: "tsup --watch"},
		"compile":       {Run: "tsc"},
	}
}
