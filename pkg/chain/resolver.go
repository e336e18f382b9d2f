// Package chain resolves named step chains into flat command lists and
// executes them sequentially with fail-fast semantics.
package chain

import (
	"fmt"

	"github.com/tsbuilds/tsb/pkg/task"
)

// UnknownStepError reports a step name that resolves to neither a chain, a
// user command, nor a builtin.
type UnknownStepError struct {
	Step string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q: not a chain, command, or builtin", e.Step)
}

// CircularChainError reports a chain that references itself, directly or
// transitively.
type CircularChainError struct {
	Chain string
}

func (e *CircularChainError) Error() string {
	return fmt.Sprintf("circular chain reference: %q", e.Chain)
}

// Step is one resolved, directly executable step of a flattened chain.
type Step struct {
	Name string
	Spec task.CommandSpec
}

// Resolver resolves step names against the three precedence-ordered sources:
// chains first, then user commands, then builtins.
type Resolver struct {
	Chains   map[string]task.ChainSpec
	Commands map[string]task.CommandSpec
	Builtins map[string]task.CommandSpec
}

// Expand flattens the named chain (or single command) into an ordered list of
// executable steps. Nested chains are inlined in place, preserving relative
// order; duplicates are kept. Returns UnknownStepError or CircularChainError
// without executing anything when resolution fails.
func (r *Resolver) Expand(name string) ([]Step, error) {
	return r.expand(name, map[string]bool{})
}

// expand walks the chain graph depth-first. onStack holds the chain names
// entered on the current path only, so a chain referenced from two sibling
// branches is legal while genuine cycles are not.
func (r *Resolver) expand(name string, onStack map[string]bool) ([]Step, error) {
	steps, isChain := r.Chains[name]
	if !isChain {
		spec, ok := r.command(name)
		if !ok {
			return nil, &UnknownStepError{Step: name}
		}
		return []Step{{Name: name, Spec: spec}}, nil
	}

	if onStack[name] {
		return nil, &CircularChainError{Chain: name}
	}
	onStack[name] = true
	defer delete(onStack, name)

	var flat []Step
	for _, step := range steps {
		expanded, err := r.expand(step, onStack)
		if err != nil {
			return nil, err
		}
		flat = append(flat, expanded...)
	}
	return flat, nil
}

// command resolves a directly executable step: user commands shadow builtins.
func (r *Resolver) command(name string) (task.CommandSpec, bool) {
	if spec, ok := r.Commands[name]; ok {
		return spec, true
	}
	spec, ok := r.Builtins[name]
	return spec, ok
}

// Known reports whether a name is runnable at all, in any of the three roles.
func (r *Resolver) Known(name string) bool {
	if _, ok := r.Chains[name]; ok {
		return true
	}
	_, ok := r.command(name)
	return ok
}

// ShadowedCommands returns the chain names that also exist as user commands.
// The chain interpretation wins during expansion, which silently hides the
// command; callers should warn about these before running.
func (r *Resolver) ShadowedCommands() []string {
	var shadowed []string
	for name := range r.Chains {
		if _, ok := r.Commands[name]; ok {
			shadowed = append(shadowed, name)
		}
	}
	return shadowed
}
