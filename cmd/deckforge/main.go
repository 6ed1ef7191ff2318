package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/config"
	"github.com/lawnchairsociety/deckforge/internal/layout"
	"github.com/lawnchairsociety/deckforge/internal/logger"
	"github.com/lawnchairsociety/deckforge/internal/pathing"
	"github.com/lawnchairsociety/deckforge/internal/placement"
	"github.com/lawnchairsociety/deckforge/internal/rng"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to generation config file")
	loggingPath := flag.String("logging", "logging.yaml", "Path to logging config file")
	seed := flag.Int64("seed", 0, "Generation seed (0 = random)")
	kind := flag.String("kind", "", "Layout kind: dungeon or ship (overrides config)")
	rooms := flag.Int("rooms", 0, "Number of rooms (overrides config)")
	archName := flag.String("archetype", "", "Archetype name (overrides config)")
	archFile := flag.String("archetype-file", "", "Path to a custom archetype YAML file")
	outPath := flag.String("out", "", "Write the layout to a YAML file")
	asciiMap := flag.Bool("ascii", true, "Print an ASCII map of the layout")
	gridView := flag.Bool("grid", false, "Print the corridor tile grid")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	logger.Initialize(logConfig)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags beat both the config file and environment overrides
	if *kind != "" {
		k, ok := layout.ParseLayoutKind(*kind)
		if !ok {
			log.Fatalf("Unknown layout kind %q (want dungeon or ship)", *kind)
		}
		cfg.Kind = k
	}
	if *rooms > 0 {
		cfg.NumRooms = *rooms
	}
	if *archName != "" {
		cfg.Archetype = *archName
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *archFile != "" {
		custom, err := archetype.LoadFile(*archFile)
		if err != nil {
			log.Fatalf("Failed to load archetype file: %v", err)
		}
		archetype.Register(custom)
		cfg.Archetype = custom.Name
		logger.Info("Registered custom archetype", "name", custom.Name, "file", *archFile)
	}

	genSeed := *seed
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
		logger.Info("Generation seed", "seed", genSeed, "random", true)
	} else {
		logger.Info("Generation seed", "seed", genSeed, "random", false)
	}

	src := rng.New(genSeed)

	gen, err := layout.NewGenerator(cfg, src)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}
	graph := gen.Generate()

	result := layout.Validate(graph)
	if !result.Connected {
		logger.Warning("Layout is not fully connected",
			"reachable", result.Reachable,
			"total", result.Total)
	}

	arch := archetype.Get(cfg.Archetype)
	assignment := placement.AssignTypes(graph, arch, src, cfg.NumRooms)

	grid := pathing.FromGraph(graph, cfg.CellSize)
	routes, unrouted := pathing.RouteLinks(graph, grid)

	logger.Info("Layout generated",
		"seed", genSeed,
		"kind", cfg.Kind.String(),
		"archetype", arch.Name,
		"rooms", graph.RoomCount(),
		"links", graph.LinkCount(),
		"assigned", assignment.Assigned,
		"corridors", len(routes))
	if len(unrouted) > 0 {
		logger.Warning("Some links could not be routed", "unrouted", len(unrouted))
	}

	if *asciiMap {
		fmt.Println(renderLayout(graph))
	}
	if *gridView {
		fmt.Println(renderGrid(grid))
	}

	if *outPath != "" {
		data := buildLayoutYAML(genSeed, cfg, graph, result.Connected, routes, assignment.Dropped)
		if err := writeLayoutYAML(*outPath, data); err != nil {
			log.Fatalf("Failed to write layout: %v", err)
		}
		fmt.Printf("Layout written to %s\n", *outPath)
	}
}
