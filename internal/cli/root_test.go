package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bomviz/bomviz/pkg/errors"
)

// newTestCLI builds a CLI whose logger writes to a buffer and whose config
// comes from an isolated (empty) XDG home.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	return New(&buf, log.InfoLevel), &buf
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	want := map[string]bool{"mermaid": false, "dot": false, "inspect": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestNewLoadsConfigDefaults(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "bomviz")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "compact = true\nmax_packages = 7\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, log.InfoLevel)
	opts := c.diagramOptions()
	if !opts.Compact || opts.MaxPackages != 7 || opts.ExcludeExternalRefs {
		t.Errorf("diagramOptions = %+v, want config defaults applied", opts)
	}
}

func TestNewSurvivesMalformedConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "bomviz")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("compact = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	if c.Config == nil {
		t.Fatal("Config should fall back to the zero value")
	}
	if !strings.Contains(buf.String(), "ignoring config file") {
		t.Error("a malformed config should be logged")
	}
}

func TestMermaidCommandEndToEnd(t *testing.T) {
	c, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "diagram.mmd")

	root := c.RootCommand()
	root.SetArgs([]string{"mermaid", "testdata/minimal.spdx.json", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("mermaid command: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "graph LR\n") {
		t.Errorf("output should start with graph LR:\n%s", text)
	}
	if !strings.Contains(text, "Package_demo[") {
		t.Errorf("missing package node:\n%s", text)
	}
	if !strings.Contains(text, `DOCUMENT -->|"DESCRIBES"| Package_demo`) {
		t.Errorf("missing relationship edge:\n%s", text)
	}
	// The fixture's bare timestamp gets a timezone designator on the way in.
	if !strings.Contains(text, "Created: 2025-11-27T15:17:19Z") {
		t.Errorf("missing patched creation timestamp:\n%s", text)
	}
}

func TestMermaidCommandMissingInput(t *testing.T) {
	c, _ := newTestCLI(t)

	root := c.RootCommand()
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)
	root.SetArgs([]string{"mermaid", "does-not-exist.json"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestInspectCommandEndToEnd(t *testing.T) {
	c, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "model.json")

	root := c.RootCommand()
	root.SetArgs([]string{"inspect", "testdata/minimal.spdx.json", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("inspect command: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{`"elements"`, `"relationships"`, `"SPDXRef-Package-demo"`, `"DESCRIBES"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("model JSON missing %s:\n%s", want, data)
		}
	}
}

func TestDotCommandTextOutput(t *testing.T) {
	c, _ := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "diagram.dot")

	root := c.RootCommand()
	root.SetArgs([]string{"dot", "testdata/minimal.spdx.json", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("dot command: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "digraph sbom {") {
		t.Errorf("output should be DOT source:\n%s", data)
	}
}

func TestDotCommandRejectsUnknownFormat(t *testing.T) {
	c, _ := newTestCLI(t)

	root := c.RootCommand()
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)
	root.SetArgs([]string{"dot", "testdata/minimal.spdx.json", "-f", "gif"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestValidateFormat(t *testing.T) {
	for _, valid := range []string{"dot", "svg", "png"} {
		if err := validateFormat(valid); err != nil {
			t.Errorf("validateFormat(%q) = %v, want nil", valid, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("validateFormat should reject pdf")
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != "/tmp/xdg-cache/bomviz" {
		t.Errorf("cacheDir = %q, want /tmp/xdg-cache/bomviz", dir)
	}
}
