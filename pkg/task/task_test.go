package task

import "testing"

var builtinNames = []string{
	"format", "format:check",
	"lint", "lint:check",
	"typecheck",
	"test", "test:watch", "test:coverage", "test:ui",
	"build", "build:watch",
	"dev", "compile",
}

func TestBuiltinsClosedSet(t *testing.T) {
	builtins := Builtins("./src")

	if len(builtins) != len(builtinNames) {
		t.Errorf("Builtins has %d entries, want %d", len(builtins), len(builtinNames))
	}
	for _, name := range builtinNames {
		spec, ok := builtins[name]
		if !ok {
			t.Errorf("missing builtin %q", name)
			continue
		}
		if spec.Run == "" {
			t.Errorf("builtin %q has empty Run", name)
		}
	}
}

func TestLintInterpolatesSrcDir(t *testing.T) {
	builtins := Builtins("./lib")

	if got, want := builtins["lint"].Run, "eslint ./lib --fix"; got != want {
		t.Errorf("lint = %q, want %q", got, want)
	}
	if got, want := builtins["lint:check"].Run, "eslint ./lib"; got != want {
		t.Errorf("lint:check = %q, want %q", got, want)
	}
}

func TestBuiltinsReturnsFreshMap(t *testing.T) {
	first := Builtins("./src")
	first["test"] = CommandSpec{Run: "mutated"}

	second := Builtins("./src")
	if second["test"].Run == "mutated" {
		t.Error("Builtins must return a fresh map on every call")
	}
}
