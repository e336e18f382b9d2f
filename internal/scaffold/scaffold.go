// Package scaffold seeds shared tool configuration into a project and cleans
// up dependencies the tool now provides.
package scaffold

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsbuilds/tsb/internal/config"
)

//go:embed all:templates
var templatesFS embed.FS

// Seed copies every bundled template file into dir, skipping files that
// already exist. It is idempotent and returns the names it created.
func Seed(dir string) ([]string, error) {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	var created []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		target := filepath.Join(dir, e.Name())
		if _, err := os.Stat(target); err == nil {
			continue
		}

		data, err := fs.ReadFile(templatesFS, "templates/"+e.Name())
		if err != nil {
			return created, fmt.Errorf("read template %s: %w", e.Name(), err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return created, fmt.Errorf("write %s: %w", target, err)
		}
		created = append(created, e.Name())
	}
	return created, nil
}

// WriteConfig writes the default ts-builds.config.json into dir. An existing
// file is only overwritten when force is set.
func WriteConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.FileJSON)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, config.DefaultFile(), 0644); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// ManagedDependencies are the packages the tool itself carries; cleanup
// removes them from a project's own dependency lists.
var ManagedDependencies = []string{
	"@typescript-eslint/eslint-plugin",
	"@typescript-eslint/parser",
	"eslint",
	"prettier",
	"tsup",
	"typescript",
	"vitest",
}

// Cleanup removes managed dependencies from package.json in dir and rewrites
// the file. It returns the names actually removed, sorted; when nothing
// matches, the file is left untouched.
func Cleanup(dir string) ([]string, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var pkg map[string]any
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var removed []string
	for _, section := range []string{"dependencies", "devDependencies"} {
		deps, ok := pkg[section].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range ManagedDependencies {
			if _, ok := deps[name]; ok {
				delete(deps, name)
				removed = append(removed, name)
			}
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}
	sort.Strings(removed)

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return removed, fmt.Errorf("marshal %s: %w", path, err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0644); err != nil {
		return removed, fmt.Errorf("write %s: %w", path, err)
	}
	return removed, nil
}
