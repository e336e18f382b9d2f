// Package config loads and merges the project's ts-builds configuration.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsbuilds/tsb/pkg/task"
)

// Config file names, checked in order. JSON wins when both exist.
const (
	FileJSON = "ts-builds.config.json"
	FileYAML = "ts-builds.config.yaml"
)

// Config is the fully resolved configuration for one invocation. It is built
// fresh from defaults plus the optional on-disk file and read-only afterwards.
type Config struct {
	SrcDir   string
	TestDir  string
	Commands map[string]task.CommandSpec
	Chains   map[string]task.ChainSpec
}

// Default returns the compiled-in configuration: src/test directories and the
// single builtin validate chain.
func Default() Config {
	return Config{
		SrcDir:   "./src",
		TestDir:  "./test",
		Commands: map[string]task.CommandSpec{},
		Chains: map[string]task.ChainSpec{
			"validate": {"format", "lint", "typecheck", "test", "build"},
		},
	}
}

// rawCommand accepts either a bare command string or a {run, cwd} object.
type rawCommand struct {
	Run string
	Cwd string
}

func (c *rawCommand) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.Run)
	}
	var obj struct {
		Run string `json:"run"`
		Cwd string `json:"cwd"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Run, c.Cwd = obj.Run, obj.Cwd
	return nil
}

func (c *rawCommand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&c.Run)
	}
	var obj struct {
		Run string `yaml:"run"`
		Cwd string `yaml:"cwd"`
	}
	if err := node.Decode(&obj); err != nil {
		return err
	}
	c.Run, c.Cwd = obj.Run, obj.Cwd
	return nil
}

// rawConfig mirrors the on-disk file. All fields are optional.
type rawConfig struct {
	SrcDir        string                `json:"srcDir,omitempty" yaml:"srcDir,omitempty"`
	TestDir       string                `json:"testDir,omitempty" yaml:"testDir,omitempty"`
	ValidateChain []string              `json:"validateChain,omitempty" yaml:"validateChain,omitempty"`
	Commands      map[string]rawCommand `json:"commands" yaml:"commands"`
	Chains        map[string][]string   `json:"chains" yaml:"chains"`
}

// Load resolves the configuration for a project directory. It never fails:
// a missing file yields Default(), and an unreadable or unparsable file
// yields Default() alongside a non-nil error the caller should surface as a
// warning.
func Load(dir string) (Config, error) {
	cfg := Default()

	path, data, err := readConfigFile(dir)
	if err != nil {
		return cfg, err
	}
	if data == nil {
		return cfg, nil
	}

	var raw rawConfig
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	return merge(cfg, raw), nil
}

// readConfigFile returns the first config file present, or nil data if none.
func readConfigFile(dir string) (string, []byte, error) {
	for _, name := range []string{FileJSON, FileYAML} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return path, nil, fmt.Errorf("read %s: %w", path, err)
		}
		return path, data, nil
	}
	return "", nil, nil
}

// merge layers the user file over the defaults. Order matters: the legacy
// validateChain field installs the validate chain first, then the chains
// mapping replaces entries by name, so chains.validate wins when both are
// present. Entries replace whole values; individual fields are never merged.
func merge(cfg Config, raw rawConfig) Config {
	if raw.SrcDir != "" {
		cfg.SrcDir = raw.SrcDir
	}
	if raw.TestDir != "" {
		cfg.TestDir = raw.TestDir
	}

	if len(raw.ValidateChain) > 0 {
		cfg.Chains["validate"] = task.ChainSpec(raw.ValidateChain)
	}
	for name, steps := range raw.Chains {
		cfg.Chains[name] = task.ChainSpec(steps)
	}

	for name, cmd := range raw.Commands {
		cfg.Commands[name] = task.CommandSpec{Run: cmd.Run, Dir: cmd.Cwd}
	}

	return cfg
}

// DefaultFile renders the default configuration as the JSON file that
// `tsb config` writes. Resolving the written file reproduces Default().
func DefaultFile() []byte {
	raw := rawConfig{
		SrcDir:   "./src",
		TestDir:  "./test",
		Commands: map[string]rawCommand{},
		Chains: map[string][]string{
			"validate": {"format", "lint", "typecheck", "test", "build"},
		},
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		// rawConfig always marshals; this is unreachable.
		panic(err)
	}
	return append(data, '\n')
}
