package pipeline

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/matzehuels/graphcolor/pkg/cache"
	"github.com/matzehuels/graphcolor/pkg/coloring"
	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/generate"
	"github.com/matzehuels/graphcolor/pkg/graph"
	"github.com/matzehuels/graphcolor/pkg/io"
)

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"input file", Options{InputFile: "graph.json"}, ""},
		{"generated", Options{Size: 10, MaxDegree: 3}, ""},
		{"generated with zero degree", Options{Size: 10}, ""},
		{"both sources", Options{InputFile: "graph.json", Size: 10, MaxDegree: 3}, errors.ErrCodeInvalidArguments},
		{"file and degree only", Options{InputFile: "graph.json", MaxDegree: 3}, errors.ErrCodeInvalidArguments},
		{"neither source", Options{}, errors.ErrCodeInvalidArguments},
		{"degree without size", Options{MaxDegree: 3}, errors.ErrCodeInvalidArguments},
		{"negative size", Options{Size: -1, MaxDegree: 3}, errors.ErrCodeInvalidInput},
		{"negative degree", Options{Size: 4, MaxDegree: -1}, errors.ErrCodeInvalidInput},
		{"unknown generator", Options{Size: 4, MaxDegree: 1, Generator: "grid"}, errors.ErrCodeInvalidArguments},
		{"bad output path", Options{Size: 4, MaxDegree: 1, OutputFile: "out/"}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Size: 5, MaxDegree: 2}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Generator != DefaultGenerator {
		t.Errorf("Generator = %q, want %q", opts.Generator, DefaultGenerator)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestExecuteGenerated(t *testing.T) {
	out := filepath.Join(t.TempDir(), "colored.json")
	runner := NewRunner(nil, nil, nil)

	res, err := runner.Execute(context.Background(), Options{
		Size:       200,
		MaxDegree:  4,
		Generator:  generate.Bounded,
		Seed:       99,
		OutputFile: out,
		Workers:    4,
		Partitions: 8,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.Seed != 99 {
		t.Errorf("Seed = %d, want 99", res.Seed)
	}
	if !res.Report.Valid {
		t.Errorf("Report = %+v, want valid", res.Report)
	}
	if res.Stats.NodeCount != 200 || res.Stats.MaxDegree > 4 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Search.Budget > res.Stats.MaxDegree+1 || res.Stats.ColorsUsed > res.Search.Budget {
		t.Errorf("budget %d, colors used %d, max degree %d", res.Search.Budget, res.Stats.ColorsUsed, res.Stats.MaxDegree)
	}

	written, err := io.ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	rep, _ := coloring.ValidateGraph(context.Background(), written, coloring.Options{})
	if !rep.Valid {
		t.Errorf("exported graph is not properly colored: %+v", rep)
	}
}

func TestExecuteInputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.json")

	g := graph.New()
	for id := range 4 {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	if err := io.ExportJSON(g, in); err != nil {
		t.Fatal(err)
	}

	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{InputFile: in})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Search.Budget != 2 || res.Seed != 0 {
		t.Errorf("Budget = %d, Seed = %d, want 2, 0", res.Search.Budget, res.Seed)
	}
	want := map[int]int{0: 0, 1: 1, 2: 0, 3: 1}
	for id, c := range res.Graph.Colors() {
		if want[id] != c {
			t.Errorf("node %d color %d, want %d", id, c, want[id])
		}
	}
}

func TestExecuteMissingFile(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		InputFile: filepath.Join(t.TempDir(), "nope.json"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExecuteNoColoring(t *testing.T) {
	out := filepath.Join(t.TempDir(), "colored.json")
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Size:       50,
		MaxDegree:  3,
		Seed:       5,
		MaxRounds:  1,
		OutputFile: out,
	})
	// One round can only color a graph without edges.
	if res != nil && res.Stats.EdgeCount == 0 {
		t.Skip("generated graph has no edges")
	}
	if !stderrors.Is(err, coloring.ErrNoColoring) {
		t.Fatalf("error = %v, want ErrNoColoring", err)
	}
	if res == nil || res.Search == nil || len(res.Search.Attempts) != 1 {
		t.Fatalf("Result should describe the failed attempt: %+v", res)
	}
	if _, err := io.ImportJSON(out); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Error("nothing should be exported without a coloring")
	}
}

func TestColorUsesCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)

	g, _, err := generate.Generate(generate.Options{Size: 60, MaxDegree: 4, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	first, hit, err := runner.ColorWithCacheInfo(ctx, g, Options{})
	if err != nil || hit {
		t.Fatalf("first run: hit=%v err=%v", hit, err)
	}
	second, hit, err := runner.ColorWithCacheInfo(ctx, g, Options{})
	if err != nil || !hit {
		t.Fatalf("second run: hit=%v err=%v, want hit", hit, err)
	}
	if second.Budget != first.Budget || len(second.Attempts) != len(first.Attempts) {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
	for id, c := range first.Colors {
		if second.Colors[id] != c {
			t.Fatalf("cached color of %d = %d, want %d", id, second.Colors[id], c)
		}
	}
	if second.Attempts[0].State != coloring.Converged {
		t.Errorf("cached attempt state = %v", second.Attempts[0].State)
	}

	// Colors don't change the key.
	g.SetColors(first.Colors)
	if _, hit, _ := runner.ColorWithCacheInfo(ctx, g, Options{}); !hit {
		t.Error("a colored copy of the same graph should hit the cache")
	}

	// Refresh skips the lookup.
	if _, hit, _ := runner.ColorWithCacheInfo(ctx, g, Options{Refresh: true}); hit {
		t.Error("Refresh should bypass the cache")
	}

	// A different round limit is a different key.
	if _, hit, _ := runner.ColorWithCacheInfo(ctx, g, Options{MaxRounds: 1000}); hit {
		t.Error("different MaxRounds should miss")
	}
}

func TestGraphHashIgnoresColors(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(0)
	_ = g.AddNode(1)
	_ = g.AddEdge(0, 1)

	h1, err := GraphHash(g)
	if err != nil {
		t.Fatal(err)
	}
	g.SetColors(map[int]int{0: 0, 1: 1})
	h2, _ := GraphHash(g)
	if h1 != h2 {
		t.Error("GraphHash should ignore colors")
	}
	if c, _ := g.Node(0); c.Color != 0 {
		t.Error("GraphHash must not reset the caller's colors")
	}

	_ = g.AddNode(2)
	h3, _ := GraphHash(g)
	if h1 == h3 {
		t.Error("GraphHash should change with structure")
	}
}
