package aggregates

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"hotpoints/domain/core/valueobjects"
)

// ErrNoRoute is returned when the end node cannot be reached from the start node
var ErrNoRoute = errors.New("no route between nodes")

// Step is one hop of a computed route. Values are copied out of the graph.
type Step struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
	Distance  uint32 `json:"distance"`
}

// Path is an ordered sequence of steps from a start node to an end node
type Path []Step

// Hops returns the number of steps
func (p Path) Hops() int {
	return len(p)
}

// TotalDistance sums the distance of every step
func (p Path) TotalDistance() uint64 {
	var total uint64
	for _, step := range p {
		total += uint64(step.Distance)
	}
	return total
}

// FindPath finds a fewest-hops route between two nodes using BFS.
//
// Connections are expanded in declaration order and the first discovery of a
// node fixes its parent, so the same graph always yields the same route.
// The result is empty (never nil) when start equals end. ErrNoRoute is
// returned when end is unreachable and ErrNodeNotFound when either endpoint
// is unknown.
func (g *Graph) FindPath(start, end valueobjects.NodeID) (Path, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("start: %w: %s", ErrNodeNotFound, start)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("end: %w: %s", ErrNodeNotFound, end)
	}

	parent, found := g.search(start, end)
	if !found {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRoute, start, end)
	}

	return g.buildSteps(walkBack(parent, end)), nil
}

// search runs the BFS and returns the parent map plus whether end was visited
func (g *Graph) search(start, end valueobjects.NodeID) (map[valueobjects.NodeID]valueobjects.NodeID, bool) {
	visited := map[valueobjects.NodeID]bool{start: true}
	parent := make(map[valueobjects.NodeID]valueobjects.NodeID)

	queue := linkedlistqueue.New()
	queue.Enqueue(start)

	for !queue.Empty() {
		value, _ := queue.Dequeue()
		current := value.(valueobjects.NodeID)
		if current == end {
			break
		}

		// A target that names no node is a dead end
		node, exists := g.index[current]
		if !exists {
			continue
		}

		for _, conn := range node.Connections() {
			if visited[conn.To] {
				continue
			}
			visited[conn.To] = true
			parent[conn.To] = current
			queue.Enqueue(conn.To)
		}
	}

	return parent, visited[end]
}

// walkBack follows parent pointers from end and returns ids in start->end order
func walkBack(parent map[valueobjects.NodeID]valueobjects.NodeID, end valueobjects.NodeID) []valueobjects.NodeID {
	ids := []valueobjects.NodeID{end}
	for current := end; ; {
		p, ok := parent[current]
		if !ok {
			break
		}
		ids = append(ids, p)
		current = p
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// buildSteps converts consecutive id pairs into steps
func (g *Graph) buildSteps(ids []valueobjects.NodeID) Path {
	steps := make(Path, 0, len(ids))
	for i := 0; i+1 < len(ids); i++ {
		from := g.mustNode(ids[i])
		to := g.mustNode(ids[i+1])

		conn, ok := from.ConnectionTo(to.ID())
		if !ok {
			panic(fmt.Sprintf("graph invariant violated: no connection %s -> %s on a discovered path", from.ID(), to.ID()))
		}

		steps = append(steps, Step{
			From:      from.Name(),
			To:        to.Name(),
			Direction: conn.Direction,
			Distance:  conn.Distance,
		})
	}
	return steps
}
