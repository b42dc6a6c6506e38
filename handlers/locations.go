// ABOUTME: Location MCP tool handlers
// ABOUTME: Implements add_location, list_locations, and update_location_status tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/refit/db"
	"github.com/harperreed/refit/models"
	"github.com/harperreed/refit/store"
)

type LocationHandlers struct {
	store *store.Store
}

func NewLocationHandlers(s *store.Store) *LocationHandlers {
	return &LocationHandlers{store: s}
}

type AddLocationInput struct {
	Name    string `json:"name" jsonschema:"Location name (required)"`
	Type    string `json:"type,omitempty" jsonschema:"Location type (store, office, warehouse...)"`
	Address string `json:"address,omitempty" jsonschema:"Street address"`
	Status  string `json:"status,omitempty" jsonschema:"Location status (defaults to planned)"`
}

type LocationOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status"`
}

func locationToOutput(loc *models.Location) LocationOutput {
	return LocationOutput{
		ID:      loc.ID,
		Name:    loc.Name,
		Type:    loc.Type,
		Address: loc.Address,
		Status:  loc.Status,
	}
}

func (h *LocationHandlers) AddLocation(_ context.Context, request *mcp.CallToolRequest, input AddLocationInput) (*mcp.CallToolResult, LocationOutput, error) {
	if input.Name == "" {
		return nil, LocationOutput{}, fmt.Errorf("name is required")
	}
	if input.Status != "" && !models.ValidLocationStatus(input.Status) {
		return nil, LocationOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	loc := &models.Location{
		Name:    input.Name,
		Type:    input.Type,
		Address: input.Address,
		Status:  input.Status,
	}
	if !db.CreateLocation(h.store, loc) {
		return nil, LocationOutput{}, fmt.Errorf("failed to create location")
	}
	return nil, locationToOutput(loc), nil
}

type ListLocationsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by location status"`
}

type ListLocationsOutput struct {
	Locations []LocationOutput `json:"locations"`
}

func (h *LocationHandlers) ListLocations(_ context.Context, request *mcp.CallToolRequest, input ListLocationsInput) (*mcp.CallToolResult, ListLocationsOutput, error) {
	var locs []*models.Location
	if input.Status != "" {
		locs = db.LocationsByStatus(h.store, input.Status)
	} else {
		locs = db.AllLocations(h.store)
	}

	result := make([]LocationOutput, len(locs))
	for i, loc := range locs {
		result[i] = locationToOutput(loc)
	}
	return nil, ListLocationsOutput{Locations: result}, nil
}

type UpdateLocationStatusInput struct {
	ID     string `json:"id" jsonschema:"Location ID (required)"`
	Status string `json:"status" jsonschema:"New status (required)"`
}

func (h *LocationHandlers) UpdateLocationStatus(_ context.Context, request *mcp.CallToolRequest, input UpdateLocationStatusInput) (*mcp.CallToolResult, LocationOutput, error) {
	if input.ID == "" {
		return nil, LocationOutput{}, fmt.Errorf("id is required")
	}
	if !models.ValidLocationStatus(input.Status) {
		return nil, LocationOutput{}, fmt.Errorf("invalid status %q", input.Status)
	}

	if !db.UpdateLocation(h.store, input.ID, func(loc *models.Location) {
		loc.Status = input.Status
	}) {
		return nil, LocationOutput{}, fmt.Errorf("location not found")
	}
	loc, _ := db.GetLocation(h.store, input.ID)
	return nil, locationToOutput(loc), nil
}
