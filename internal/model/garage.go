package model

import (
	"github.com/google/uuid"
)

// GarageEntry is a saved vehicle tire size.
type GarageEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size Input  `json:"size"`
	Note string `json:"note,omitempty"`
}

// NewGarageEntry creates a new GarageEntry with a generated ID.
func NewGarageEntry(name string, size Input) GarageEntry {
	return GarageEntry{
		ID:   uuid.New().String()[:8],
		Name: name,
		Size: size,
	}
}

// Label returns "name (W/V RR)".
func (e GarageEntry) Label() string {
	return e.Name + " (" + e.Size.Key() + ")"
}

// Garage holds the user's saved vehicle sizes.
type Garage struct {
	Entries []GarageEntry `json:"entries"`
}

// DefaultGarage returns a garage populated with a few common factory sizes.
func DefaultGarage() Garage {
	return Garage{
		Entries: []GarageEntry{
			NewGarageEntry("City car", Input{Rim: 14, Width: 175, Profile: 65}),
			NewGarageEntry("Compact hatchback", Input{Rim: 16, Width: 205, Profile: 55}),
			NewGarageEntry("Sports sedan", Input{Rim: 17, Width: 225, Profile: 45}),
			NewGarageEntry("Mid-size SUV", Input{Rim: 18, Width: 235, Profile: 60}),
		},
	}
}

// Add appends a new entry and returns it.
func (g *Garage) Add(name string, size Input) GarageEntry {
	e := NewGarageEntry(name, size)
	g.Entries = append(g.Entries, e)
	return e
}

// Remove deletes the entry with the given ID. It reports whether an entry
// was removed.
func (g *Garage) Remove(id string) bool {
	for i := range g.Entries {
		if g.Entries[i].ID == id {
			g.Entries = append(g.Entries[:i], g.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the entry with the given ID, or nil.
func (g *Garage) FindByID(id string) *GarageEntry {
	for i := range g.Entries {
		if g.Entries[i].ID == id {
			return &g.Entries[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first entry with the given name, or nil.
func (g *Garage) FindByName(name string) *GarageEntry {
	for i := range g.Entries {
		if g.Entries[i].Name == name {
			return &g.Entries[i]
		}
	}
	return nil
}

// Labels returns the entry labels for UI lists.
func (g *Garage) Labels() []string {
	labels := make([]string, len(g.Entries))
	for i, e := range g.Entries {
		labels[i] = e.Label()
	}
	return labels
}
