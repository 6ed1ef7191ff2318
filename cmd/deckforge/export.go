package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/layout"
	"github.com/lawnchairsociety/deckforge/internal/pathing"
)

// layoutYAML is the exported shape of one generated layout
type layoutYAML struct {
	Seed        int64          `yaml:"seed"`
	Kind        string         `yaml:"kind"`
	Archetype   string         `yaml:"archetype"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Connected   bool           `yaml:"connected"`
	Rooms       []roomYAML     `yaml:"rooms"`
	Links       []linkYAML     `yaml:"links"`
	Corridors   []corridorYAML `yaml:"corridors,omitempty"`
	Dropped     []string       `yaml:"dropped_types,omitempty"`
}

type roomYAML struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Branch int    `yaml:"branch"`
}

type linkYAML struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Kind string `yaml:"kind"`
}

type corridorYAML struct {
	From  string     `yaml:"from"`
	To    string     `yaml:"to"`
	Cells []cellYAML `yaml:"cells"`
}

type cellYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// buildLayoutYAML flattens the generated graph and its corridor routes
// into the export shape. Rooms, links and corridors keep their generation
// order so a replay with the same seed produces an identical file.
func buildLayoutYAML(seed int64, cfg layout.Config, graph *layout.Graph, connected bool, routes []pathing.Route, dropped []archetype.RoomType) *layoutYAML {
	out := &layoutYAML{
		Seed:        seed,
		Kind:        cfg.Kind.String(),
		Archetype:   cfg.Archetype,
		GeneratedAt: time.Now().UTC(),
		Connected:   connected,
	}

	for _, room := range graph.Rooms() {
		out.Rooms = append(out.Rooms, roomYAML{
			ID:     room.ID,
			Name:   room.Name,
			Type:   room.Type.String(),
			X:      room.X,
			Y:      room.Y,
			Branch: room.Branch,
		})
	}

	for _, link := range graph.Links() {
		out.Links = append(out.Links, linkYAML{
			From: link.From,
			To:   link.To,
			Kind: link.Kind.String(),
		})
	}

	for _, route := range routes {
		corridor := corridorYAML{From: route.Link.From, To: route.Link.To}
		for _, c := range route.Cells {
			corridor.Cells = append(corridor.Cells, cellYAML{X: c.X, Y: c.Y})
		}
		out.Corridors = append(out.Corridors, corridor)
	}

	for _, t := range dropped {
		out.Dropped = append(out.Dropped, t.String())
	}

	return out
}

// writeLayoutYAML writes the layout to a YAML file with a short header
// comment for humans poking at the output by hand.
func writeLayoutYAML(path string, data *layoutYAML) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# %s layout, archetype %s\n", data.Kind, data.Archetype)
	fmt.Fprintf(f, "# Generated with seed: %d\n", data.Seed)
	fmt.Fprintf(f, "# Room count: %d\n\n", len(data.Rooms))

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
