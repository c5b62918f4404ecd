package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/io"
)

// isolate points config and cache lookups at a fresh directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	_, err := executeOutput(t, args...)
	return err
}

// executeOutput runs the root command and returns what it printed.
func executeOutput(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := captureStdout(t)
	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckColorArgs(t *testing.T) {
	tests := []struct {
		name                           string
		input, size, maxDegree, output bool
		wantErr                        bool
	}{
		{"input file", true, false, false, true, false},
		{"generated", false, true, true, true, false},
		{"both sources", true, true, true, true, true},
		{"input and size", true, true, false, true, true},
		{"neither", false, false, false, true, true},
		{"size only", false, true, false, true, true},
		{"max degree only", false, false, true, true, true},
		{"no output", true, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkColorArgs(tt.input, tt.size, tt.maxDegree, tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkColorArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidArguments) {
				t.Errorf("code = %s, want INVALID_ARGUMENTS", errors.GetCode(err))
			}
		})
	}
}

func TestColorCommandRejectsArguments(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "out.json")

	tests := []struct {
		name string
		args []string
	}{
		{"neither", []string{"color", "--output-file", out}},
		{"both", []string{"color", "--input-file", "g.json", "--size", "5", "--max-degree", "2", "--output-file", out}},
		{"partial", []string{"color", "--size", "5", "--output-file", out}},
		{"no output", []string{"color", "--size", "5", "--max-degree", "2"}},
		{"bad size", []string{"color", "--size", "0", "--max-degree", "2", "--output-file", out}},
		{"bad generator", []string{"color", "--size", "5", "--max-degree", "2", "--generator", "grid", "--output-file", out}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if _, statErr := os.Stat(out); statErr == nil {
				t.Error("no output should be written for rejected arguments")
			}
		})
	}
}

func TestGenerateColorValidate(t *testing.T) {
	dir := isolate(t)
	graphFile := filepath.Join(dir, "graph.json")
	colored := filepath.Join(dir, "colored.json")

	if err := execute(t, "generate", "--size", "40", "--max-degree", "3", "--seed", "9", "--output-file", graphFile); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out, err := executeOutput(t, "color", "--input-file", graphFile, "--output-file", colored, "--workers", "2")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	for _, want := range []string{"Time to color the graph:", "seconds", "Budget", "Graph is properly colored"} {
		if !strings.Contains(out, want) {
			t.Errorf("color output missing %q:\n%s", want, out)
		}
	}

	g, err := io.ImportJSON(colored)
	if err != nil {
		t.Fatalf("import colored: %v", err)
	}
	if g.NodeCount() != 40 {
		t.Errorf("NodeCount() = %d, want 40", g.NodeCount())
	}
	report, err := coloring.ValidateGraph(context.Background(), g, coloring.Options{})
	if err != nil || !report.Valid {
		t.Errorf("colored output is not valid: %+v, %v", report, err)
	}

	if err := execute(t, "validate", colored); err != nil {
		t.Errorf("validate colored: %v", err)
	}
	if err := execute(t, "validate", graphFile); !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("validate uncolored error = %v, want INVALID_GRAPH", err)
	}
}

func TestColorCommandNoColoring(t *testing.T) {
	dir := isolate(t)
	graphFile := filepath.Join(dir, "path.json")
	data := `[
    {"id": 0, "neighbors": "1"},
    {"id": 1, "neighbors": "0,2"},
    {"id": 2, "neighbors": "1,3"},
    {"id": 3, "neighbors": "2,4"},
    {"id": 4, "neighbors": "3"}
]`
	if err := os.WriteFile(graphFile, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	err := execute(t, "color", "--input-file", graphFile, "--output-file", filepath.Join(dir, "out.json"), "--max-rounds", "1", "--no-cache")
	if !stderrors.Is(err, coloring.ErrNoColoring) {
		t.Errorf("color error = %v, want ErrNoColoring", err)
	}
}

func TestConfigFlagOverride(t *testing.T) {
	dir := isolate(t)
	cfgFile := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(cfgFile, []byte("[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", cfgFile, "cache", "path"})
	root.SetOut(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.Config.Cache.Backend != backendNone {
		t.Errorf("Backend = %q, want %q", c.Config.Cache.Backend, backendNone)
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := isolate(t)
	err := execute(t, "--config", filepath.Join(dir, "missing.toml"), "cache", "path")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want INVALID_PATH", err)
	}
}
