package chain

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tsbuilds/tsb/pkg/task"
)

func testResolver() *Resolver {
	return &Resolver{
		Chains: map[string]task.ChainSpec{
			"validate": {"format", "lint", "test"},
		},
		Commands: map[string]task.CommandSpec{
			"docs": {Run: "run-docs"},
		},
		Builtins: map[string]task.CommandSpec{
			"format": {Run: "prettier --write ."},
			"lint":   {Run: "eslint ./src --fix"},
			"test":   {Run: "vitest run"},
			"build":  {Run: "tsup"},
		},
	}
}

func stepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

func TestExpandFlattensNestedChains(t *testing.T) {
	r := testResolver()
	r.Chains["all"] = task.ChainSpec{"validate", "docs", "build"}

	steps, err := r.Expand("all")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	want := []string{"format", "lint", "test", "docs", "build"}
	if !reflect.DeepEqual(stepNames(steps), want) {
		t.Errorf("steps = %v, want %v", stepNames(steps), want)
	}
}

func TestExpandSingleCommand(t *testing.T) {
	r := testResolver()

	steps, err := r.Expand("docs")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(steps) != 1 || steps[0].Spec.Run != "run-docs" {
		t.Errorf("steps = %+v, want one run-docs step", steps)
	}
}

func TestExpandUnknownStep(t *testing.T) {
	r := testResolver()
	r.Chains["broken"] = task.ChainSpec{"format", "no-such-step"}

	_, err := r.Expand("broken")
	var unknown *UnknownStepError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownStepError", err)
	}
	if unknown.Step != "no-such-step" {
		t.Errorf("Step = %q, want %q", unknown.Step, "no-such-step")
	}
}

func TestExpandDetectsCycle(t *testing.T) {
	r := testResolver()
	r.Chains["a"] = task.ChainSpec{"b"}
	r.Chains["b"] = task.ChainSpec{"a"}

	_, err := r.Expand("a")
	var circular *CircularChainError
	if !errors.As(err, &circular) {
		t.Fatalf("err = %v, want CircularChainError", err)
	}
	if circular.Chain != "a" {
		t.Errorf("Chain = %q, want %q", circular.Chain, "a")
	}
}

func TestExpandSelfReference(t *testing.T) {
	r := testResolver()
	r.Chains["loop"] = task.ChainSpec{"format", "loop"}

	_, err := r.Expand("loop")
	var circular *CircularChainError
	if !errors.As(err, &circular) {
		t.Fatalf("err = %v, want CircularChainError", err)
	}
}

func TestExpandSiblingBranchesAreNotCycles(t *testing.T) {
	// "common" is referenced from two sibling branches; only a chain on the
	// current path may trigger cycle detection.
	r := testResolver()
	r.Chains["common"] = task.ChainSpec{"format"}
	r.Chains["left"] = task.ChainSpec{"common", "lint"}
	r.Chains["right"] = task.ChainSpec{"common", "test"}
	r.Chains["root"] = task.ChainSpec{"left", "right"}

	steps, err := r.Expand("root")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{"format", "lint", "format", "test"}
	if !reflect.DeepEqual(stepNames(steps), want) {
		t.Errorf("steps = %v, want %v", stepNames(steps), want)
	}
}

func TestExpandKeepsDuplicates(t *testing.T) {
	r := testResolver()
	r.Chains["twice"] = task.ChainSpec{"format", "format"}

	steps, err := r.Expand("twice")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(steps) != 2 {
		t.Errorf("got %d steps, want duplicates preserved", len(steps))
	}
}

func TestUserCommandShadowsBuiltin(t *testing.T) {
	r := testResolver()
	r.Commands["format"] = task.CommandSpec{Run: "biome format ."}

	steps, err := r.Expand("format")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if steps[0].Spec.Run != "biome format ." {
		t.Errorf("Run = %q, want the user command", steps[0].Spec.Run)
	}
}

func TestChainShadowsCommand(t *testing.T) {
	r := testResolver()
	r.Chains["docs"] = task.ChainSpec{"format"}

	steps, err := r.Expand("docs")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// The chain interpretation wins: one step named format, not run-docs.
	if len(steps) != 1 || steps[0].Name != "format" {
		t.Errorf("steps = %+v, want the chain expansion", steps)
	}

	shadowed := r.ShadowedCommands()
	if !reflect.DeepEqual(shadowed, []string{"docs"}) {
		t.Errorf("ShadowedCommands = %v, want [docs]", shadowed)
	}
}

func TestKnown(t *testing.T) {
	r := testResolver()
	for _, name := range []string{"validate", "docs", "build"} {
		if !r.Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if r.Known("nope") {
		t.Error("Known(nope) = true, want false")
	}
}
