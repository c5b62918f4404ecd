package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphcolor/pkg/graph"
)

func pathGraph() *graph.Graph {
	g := graph.New()
	for id := range 3 {
		_ = g.AddNode(id)
	}
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(2, 1)
	g.SetColors(map[int]int{0: 0, 1: 1})
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(pathGraph(), Options{})

	for _, want := range []string{
		"graph G {",
		`0 [label="0", fillcolor="#8dd3c7"];`,
		`1 [label="1", fillcolor="#ffffb3"];`,
		`2 [label="2", fillcolor=white, style="filled,dashed"];`,
		"0 -- 1;",
		"1 -- 2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "2 -- 1") || strings.Contains(dot, "->") {
		t.Errorf("edges should be undirected and emitted once:\n%s", dot)
	}
}

func TestToDOTDetailedAndPalette(t *testing.T) {
	dot := ToDOT(pathGraph(), Options{Detailed: true, Palette: []string{"red"}})

	if !strings.Contains(dot, `label="1\nc1", fillcolor="red"`) {
		t.Errorf("palette should wrap and detailed labels show colors:\n%s", dot)
	}
	if !strings.Contains(dot, `label="2\n-"`) {
		t.Errorf("uncolored node label:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() =\n%s\nwant\n%s", out, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
