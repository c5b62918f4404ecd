package io

import (
	"strconv"
	"strings"

	"github.com/matzehuels/graphcolor/pkg/errors"
	"github.com/matzehuels/graphcolor/pkg/graph"
)

// record is the on-disk shape of one node.
type record struct {
	ID        int    `json:"id"`
	Color     *int   `json:"color,omitempty"`
	Neighbors string `json:"neighbors"`
}

func toRecord(n graph.Node) record {
	ids := n.NeighborIDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	color := n.Color
	return record{ID: n.ID, Color: &color, Neighbors: strings.Join(parts, ",")}
}

func parseNeighbors(id int, s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		m, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %d: invalid neighbor %q", id, f)
		}
		out = append(out, m)
	}
	return out, nil
}
