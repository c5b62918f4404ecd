package io

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// ReadJSON decodes a graph file from r.
//
// Nodes are created first so neighbor lists may reference ids that appear
// later in the file. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := graph.New()
	for _, rec := range records {
		if err := g.AddNode(rec.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %d", rec.ID)
		}
		if rec.Color != nil {
			if err := g.SetColor(rec.ID, *rec.Color); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %d: color %d", rec.ID, *rec.Color)
			}
		}
	}
	for _, rec := range records {
		neighbors, err := parseNeighbors(rec.ID, rec.Neighbors)
		if err != nil {
			return nil, err
		}
		for _, m := range neighbors {
			if err := g.AddEdge(rec.ID, m); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %d: neighbor %d", rec.ID, m)
			}
		}
	}
	return g, nil
}

// UnmarshalJSON decodes a graph file held in memory.
func UnmarshalJSON(data []byte) (*graph.Graph, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads the graph file at path.
// A missing file fails with code FILE_NOT_FOUND.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
