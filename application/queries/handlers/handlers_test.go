package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotpoints/application/queries"
	"hotpoints/domain/core/aggregates"
	"hotpoints/domain/core/entities"
	"hotpoints/domain/core/valueobjects"
	apperrors "hotpoints/pkg/errors"
	"hotpoints/pkg/observability"
)

func testGraph(t *testing.T) *aggregates.Graph {
	t.Helper()

	graph, err := aggregates.NewGraph([]*entities.Node{
		entities.NewNode(1, "Lobby", "entrance", []entities.Connection{{To: 2, Distance: 10, Direction: "N"}}),
		entities.NewNode(2, "Hall", "", []entities.Connection{{To: 3, Distance: 4, Direction: "E"}}),
		entities.NewNode(3, "Lab", "lab", nil),
	})
	require.NoError(t, err)
	return graph
}

// brokenStore reports every node as present but fails the search
type brokenStore struct {
	*aggregates.Graph
	err error
}

func (s brokenStore) Contains(valueobjects.NodeID) bool { return true }

func (s brokenStore) FindPath(_, _ valueobjects.NodeID) (aggregates.Path, error) {
	return nil, s.err
}

func TestFindRouteHandler(t *testing.T) {
	graph := testGraph(t)
	handler := NewFindRouteHandler(graph, observability.NewTracer("test", false), zap.NewNop())

	t.Run("route found", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), queries.FindRouteQuery{From: 1, To: 3})

		require.NoError(t, err)
		assert.Equal(t, []aggregates.Step{
			{From: "Lobby", To: "Hall", Direction: "N", Distance: 10},
			{From: "Hall", To: "Lab", Direction: "E", Distance: 4},
		}, result.Steps)
		assert.Equal(t, uint64(14), result.TotalDistance)
	})

	t.Run("same node", func(t *testing.T) {
		result, err := handler.Handle(context.Background(), queries.FindRouteQuery{From: 2, To: 2})

		require.NoError(t, err)
		assert.NotNil(t, result.Steps)
		assert.Empty(t, result.Steps)
		assert.Zero(t, result.TotalDistance)
	})

	t.Run("no route", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.FindRouteQuery{From: 3, To: 1})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		assert.Equal(t, "No route from node 3 to node 1", appErr.Message)
		assert.ErrorIs(t, err, aggregates.ErrNoRoute)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		for _, q := range []queries.FindRouteQuery{{From: 99, To: 1}, {From: 1, To: 99}} {
			_, err := handler.Handle(context.Background(), q)

			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, queries.MsgUnknownEndpoint, apperrors.GetAppError(err).Message)
		}
	})

	t.Run("unexpected store failure", func(t *testing.T) {
		broken := NewFindRouteHandler(brokenStore{Graph: graph, err: errors.New("disk on fire")}, nil, zap.NewNop())

		_, err := broken.Handle(context.Background(), queries.FindRouteQuery{From: 1, To: 3})

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	})

	t.Run("endpoint vanished during search", func(t *testing.T) {
		broken := NewFindRouteHandler(brokenStore{Graph: graph, err: aggregates.ErrNodeNotFound}, nil, zap.NewNop())

		_, err := broken.Handle(context.Background(), queries.FindRouteQuery{From: 1, To: 3})

		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestListLocationsHandler(t *testing.T) {
	handler := NewListLocationsHandler(testGraph(t), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.ListLocationsQuery{})

	require.NoError(t, err)
	assert.Equal(t, []queries.LocationSummary{
		{ID: 1, Name: "Lobby", Type: "entrance"},
		{ID: 2, Name: "Hall"},
		{ID: 3, Name: "Lab", Type: "lab"},
	}, result.Locations)
}

func TestListLocationsHandler_EmptyGraph(t *testing.T) {
	graph, err := aggregates.NewGraph(nil)
	require.NoError(t, err)

	result, err := NewListLocationsHandler(graph, zap.NewNop()).Handle(context.Background(), queries.ListLocationsQuery{})

	require.NoError(t, err)
	assert.NotNil(t, result.Locations)
	assert.Empty(t, result.Locations)
}

func TestGetLocationHandler(t *testing.T) {
	handler := NewGetLocationHandler(testGraph(t), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetLocationQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Lobby", result.Name)
	assert.Equal(t, "entrance", result.Type)
	assert.Equal(t, []entities.Connection{{To: 2, Distance: 10, Direction: "N"}}, result.Connections)

	result, err = handler.Handle(context.Background(), queries.GetLocationQuery{ID: 3})
	require.NoError(t, err)
	assert.NotNil(t, result.Connections)
	assert.Empty(t, result.Connections)

	_, err = handler.Handle(context.Background(), queries.GetLocationQuery{ID: 42})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Location 42 not found", apperrors.GetAppError(err).Message)
}
