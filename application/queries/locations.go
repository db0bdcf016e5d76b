package queries

import (
	"hotpoints/domain/core/entities"
	"hotpoints/domain/core/valueobjects"
)

// ListLocationsQuery lists every location in load order
type ListLocationsQuery struct{}

// Validate validates the ListLocationsQuery
func (q ListLocationsQuery) Validate() error {
	return nil
}

// LocationSummary is the short form of a location
type LocationSummary struct {
	ID   valueobjects.NodeID `json:"id"`
	Name string              `json:"name"`
	Type string              `json:"type,omitempty"`
}

// ListLocationsResult represents the result of listing locations
type ListLocationsResult struct {
	Locations []LocationSummary `json:"locations"`
}

// GetLocationQuery represents a query to get a single location
type GetLocationQuery struct {
	ID valueobjects.NodeID
}

// Validate validates the GetLocationQuery
func (q GetLocationQuery) Validate() error {
	return nil
}

// GetLocationResult is a location with its outgoing connections
type GetLocationResult struct {
	ID          valueobjects.NodeID   `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type,omitempty"`
	Connections []entities.Connection `json:"connections"`
}
