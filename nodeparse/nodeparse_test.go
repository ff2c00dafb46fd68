package nodeparse

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/css-format/cssfmt/ir"
	"github.com/css-format/cssfmt/parse"
)

const fadeTree = `{"stylesheet":{"rules":[
  {"type":"rule",
   "selectors":["a"],
   "declarations":[{"type":"declaration","property":"color","value":"red",
                    "position":{"start":{"line":1}}}],
   "position":{"start":{"line":1}}}
]}}`

func TestParse(t *testing.T) {
	p := New(nil, t.TempDir())
	p.run = func(cmd *exec.Cmd) error {
		if cmd.Args[0] == "node" {
			io.WriteString(cmd.Stdout, fadeTree)
		}
		return nil
	}
	raws, err := p.Parse([]byte("a{color:red}"))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Raw{
		{
			"type":      "rule",
			"selectors": []any{"a"},
			"declarations": []any{
				map[string]any{
					"type": "declaration", "property": "color", "value": "red",
					"position": map[string]any{"start": map[string]any{"line": float64(1)}},
				},
			},
			"position": map[string]any{"start": map[string]any{"line": float64(1)}},
		},
	}
	if d := cmp.Diff(want, raws); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}

func TestParseExitError(t *testing.T) {
	dir := t.TempDir()
	// a present marker skips the install
	if err := os.WriteFile(filepath.Join(dir, "installed"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	p := New(nil, dir)
	p.run = func(cmd *exec.Cmd) error {
		io.WriteString(cmd.Stderr, "ParseError: missing '}'")
		return errors.New("exit status 1")
	}
	_, err := p.Parse([]byte("body {"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
	var xerr *ExitError
	if !errors.As(err, &xerr) {
		t.Fatalf("got %T, want *ExitError", err)
	}
	if xerr.Status != -1 {
		t.Errorf("status = %d, want -1", xerr.Status)
	}
	if !strings.Contains(xerr.Error(), "unexpected returncode (-1)") {
		t.Errorf("message = %q", xerr.Error())
	}
	if !strings.Contains(xerr.Error(), "ParseError: missing '}'") {
		t.Errorf("message = %q", xerr.Error())
	}
}

func TestEnsureEnvOnce(t *testing.T) {
	dir := t.TempDir()
	installs := 0
	p := New(nil, dir)
	p.run = func(cmd *exec.Cmd) error {
		if cmd.Args[0] == "npm" {
			installs++
		}
		return nil
	}
	if err := p.EnsureEnv(); err != nil {
		t.Fatal(err)
	}
	if err := p.EnsureEnv(); err != nil {
		t.Fatal(err)
	}
	if installs != 1 {
		t.Errorf("installs = %d, want 1", installs)
	}
	if _, err := os.Stat(filepath.Join(dir, "installed")); err != nil {
		t.Errorf("marker missing: %v", err)
	}
}

// A failed install leaves no half-built environment behind.
func TestEnsureEnvFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "env")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	p := New(nil, dir)
	p.run = func(cmd *exec.Cmd) error {
		return errors.New("npm not found")
	}
	if err := p.EnsureEnv(); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("environment dir still present: %v", err)
	}
}

func TestDecodeBadJSON(t *testing.T) {
	if _, err := decode([]byte("{")); err == nil {
		t.Error("expected error")
	}
}
