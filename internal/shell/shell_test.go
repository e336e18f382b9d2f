package shell

import (
	"bytes"
	gocontext "context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	var stdout bytes.Buffer
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stdout}

	code := r.Run(gocontext.Background(), "echo hello", "")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "hello") {
		t.Errorf("stdout = %q, want hello", stdout.String())
	}
}

func TestRunPropagatesExitCode(t *testing.T) {
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code := r.Run(gocontext.Background(), "exit 7", "")
	if code != 7 {
		t.Errorf("exit code = %d, want 7 (propagated, not remapped)", code)
	}
}

func TestRunShellFeatures(t *testing.T) {
	var stdout bytes.Buffer
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stdout}

	code := r.Run(gocontext.Background(), "GREETING=hi sh -c 'echo $GREETING' && echo chained", "")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "hi") || !strings.Contains(out, "chained") {
		t.Errorf("stdout = %q, want env prefix and && to work", out)
	}
}

func TestRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stdout}

	code := r.Run(gocontext.Background(), "ls", dir)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "marker.txt") {
		t.Errorf("ls output = %q, want marker.txt", stdout.String())
	}
}

func TestRunSpawnFailureMapsToOne(t *testing.T) {
	var stderr bytes.Buffer
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &stderr}

	// A nonexistent working directory makes the spawn itself fail, which is
	// reported but never propagated as an error.
	code := r.Run(gocontext.Background(), "echo hi", filepath.Join(t.TempDir(), "missing"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1 for spawn failure", code)
	}
	if stderr.Len() == 0 {
		t.Error("spawn failure should be reported on stderr")
	}
}

func TestRunMissingExecutableInsideShell(t *testing.T) {
	r := &Runner{Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	// The shell spawns fine and reports command-not-found itself.
	code := r.Run(gocontext.Background(), "definitely-not-a-real-tool-xyz", "")
	if code == 0 {
		t.Error("exit code = 0, want non-zero for missing executable")
	}
}
