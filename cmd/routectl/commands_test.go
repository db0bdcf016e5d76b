package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainJSON = `[
  {"id": 1, "name": "A", "type": "entrance", "connections": [{"to": 2, "distance": 5, "direction": "N"}]},
  {"id": 2, "name": "B", "connections": [{"to": 3, "distance": 3, "direction": "E"}]},
  {"id": 3, "name": "C", "connections": []}
]`

func writeGraph(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(chainJSON), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	graph := writeGraph(t)

	out, err := run(t, "route", "--graph", graph, "--from", "1", "--to", "3")

	require.NoError(t, err)
	assert.Equal(t, " 1. A -> B: head N for 5\n 2. B -> C: head E for 3\n2 steps, total distance 8\n", out)
}

func TestRouteCommand_JSON(t *testing.T) {
	graph := writeGraph(t)

	out, err := run(t, "route", "--graph", graph, "--from", "2", "--to", "3", "--json")

	require.NoError(t, err)
	var steps []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 1)
	assert.Equal(t, "B", steps[0]["from"])
	assert.Equal(t, "C", steps[0]["to"])
}

func TestRouteCommand_SameNode(t *testing.T) {
	graph := writeGraph(t)

	out, err := run(t, "route", "--graph", graph, "--from", "2", "--to", "2")
	require.NoError(t, err)
	assert.Equal(t, "Already there.\n", out)

	out, err = run(t, "route", "--graph", graph, "--from", "2", "--to", "2", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestRouteCommand_Errors(t *testing.T) {
	graph := writeGraph(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing from", args: []string{"--to", "1"}, want: "Invalid or missing 'id_from'"},
		{name: "bad to", args: []string{"--from", "1", "--to", "x"}, want: "Invalid or missing 'id_to'"},
		{name: "unknown node", args: []string{"--from", "1", "--to", "42"}, want: "Start or end node ID not found in map"},
		{name: "unreachable", args: []string{"--from", "3", "--to", "1"}, want: "No route from node 3 to node 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"route", "--graph", graph}, tt.args...)

			_, err := run(t, args...)

			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestRouteCommand_MissingGraph(t *testing.T) {
	_, err := run(t, "route", "--graph", filepath.Join(t.TempDir(), "nope.json"), "--from", "1", "--to", "2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestLocationsCommand(t *testing.T) {
	graph := writeGraph(t)

	out, err := run(t, "locations", "--graph", graph)

	require.NoError(t, err)
	assert.Equal(t, "1\tA\t(entrance)\n2\tB\n3\tC\n", out)
}

func TestLocationsCommand_BundledMap(t *testing.T) {
	out, err := run(t, "locations", "--graph", filepath.Join("..", "..", "data", "hotpoints.json"), "--json")

	require.NoError(t, err)
	var locations []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &locations))
	assert.Len(t, locations, 12)
}
