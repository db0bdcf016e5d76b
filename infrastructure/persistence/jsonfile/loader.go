// Package jsonfile loads the location graph from its JSON description.
//
// The description is an array of nodes:
//
//	[{"id": 1, "name": "A", "connections": [{"to": 2, "distance": 5, "direction": "N"}]}]
//
// An optional "type" string is read when present. Unknown fields are ignored.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"hotpoints/domain/core/aggregates"
	"hotpoints/domain/core/entities"
	"hotpoints/domain/core/valueobjects"
	"hotpoints/pkg/utils"
)

// LoadError reports a graph description that is missing, unreadable or
// does not match the expected schema. It is fatal at startup.
type LoadError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("load graph from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}

type nodeRecord struct {
	ID          *uint64            `json:"id" validate:"required"`
	Name        *string            `json:"name" validate:"required"`
	Type        string             `json:"type"`
	Connections []connectionRecord `json:"connections" validate:"required,dive"`
}

type connectionRecord struct {
	To        *uint64 `json:"to" validate:"required"`
	Distance  *uint32 `json:"distance" validate:"required"`
	Direction *string `json:"direction" validate:"required"`
}

// Load reads and parses the graph description at path
func Load(path string) (*aggregates.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Decode(bytes.NewReader(data), path)
}

// Decode parses a graph description from r. source names r in errors.
func Decode(r io.Reader, source string) (*aggregates.Graph, error) {
	var records []nodeRecord

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&records); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Source: source, Err: errors.New("invalid JSON: trailing data after node array")}
	}
	if records == nil {
		return nil, &LoadError{Source: source, Err: errors.New("invalid JSON: expected an array of nodes")}
	}

	nodes := make([]*entities.Node, 0, len(records))
	for i, record := range records {
		if err := utils.ValidateStruct(record); err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("node[%d]: %w", i, err)}
		}
		nodes = append(nodes, record.toNode())
	}

	graph, err := aggregates.NewGraph(nodes)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return graph, nil
}

func (r nodeRecord) toNode() *entities.Node {
	conns := make([]entities.Connection, 0, len(r.Connections))
	for _, c := range r.Connections {
		conns = append(conns, entities.Connection{
			To:        valueobjects.NodeID(*c.To),
			Distance:  *c.Distance,
			Direction: *c.Direction,
		})
	}
	return entities.NewNode(valueobjects.NodeID(*r.ID), *r.Name, r.Type, conns)
}
