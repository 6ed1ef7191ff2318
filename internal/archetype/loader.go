package archetype

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ArchetypeYAML represents an archetype loaded from YAML
type ArchetypeYAML struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Weights     []TypeWeightYAML         `yaml:"weights"`
	Guaranteed  []string                 `yaml:"guaranteed"`
	DeckRules   map[string]DeckRuleYAML  `yaml:"deck_rules"`
	Adjacency   map[string]AdjacencyYAML `yaml:"adjacency"`
}

// TypeWeightYAML represents one weight table entry loaded from YAML
type TypeWeightYAML struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// DeckRuleYAML represents a deck rule override loaded from YAML
type DeckRuleYAML struct {
	Zone   string `yaml:"zone"`
	Avoid  string `yaml:"avoid"`
	Weight int    `yaml:"weight"`
}

// AdjacencyYAML represents an adjacency rule override loaded from YAML
type AdjacencyYAML struct {
	Required  []string `yaml:"required"`
	Preferred []string `yaml:"preferred"`
	Avoided   []string `yaml:"avoided"`
}

// LoadFile loads a custom archetype definition from a YAML file. The result
// is returned but not registered; call Register to make it resolvable by
// name. Unknown room type or zone names are errors rather than silent
// fallbacks, since these files are user-authored.
func LoadFile(path string) (*Archetype, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype file: %w", err)
	}

	var ay ArchetypeYAML
	if err := yaml.Unmarshal(data, &ay); err != nil {
		return nil, fmt.Errorf("failed to parse archetype YAML: %w", err)
	}

	return ay.ToArchetype()
}

// ToArchetype converts the YAML representation to an Archetype
func (ay *ArchetypeYAML) ToArchetype() (*Archetype, error) {
	if ay.Name == "" {
		return nil, fmt.Errorf("archetype name is required")
	}
	if len(ay.Weights) == 0 {
		return nil, fmt.Errorf("archetype %q has no weight table", ay.Name)
	}

	a := &Archetype{
		Name:        ay.Name,
		Description: ay.Description,
	}

	for _, wy := range ay.Weights {
		t, ok := ParseRoomType(wy.Type)
		if !ok {
			return nil, fmt.Errorf("archetype %q: unknown room type %q in weights", ay.Name, wy.Type)
		}
		if wy.Weight < 1 {
			return nil, fmt.Errorf("archetype %q: weight for %q must be positive", ay.Name, wy.Type)
		}
		a.Weights = append(a.Weights, TypeWeight{Type: t, Weight: wy.Weight})
	}

	for _, name := range ay.Guaranteed {
		t, ok := ParseRoomType(name)
		if !ok {
			return nil, fmt.Errorf("archetype %q: unknown room type %q in guaranteed list", ay.Name, name)
		}
		a.Guaranteed = append(a.Guaranteed, t)
	}

	if len(ay.DeckRules) > 0 {
		a.DeckRules = make(map[RoomType]DeckRule, len(ay.DeckRules))
		for typeName, ry := range ay.DeckRules {
			t, ok := ParseRoomType(typeName)
			if !ok {
				return nil, fmt.Errorf("archetype %q: unknown room type %q in deck_rules", ay.Name, typeName)
			}
			zone, ok := ParseDeckZone(ry.Zone)
			if !ok {
				return nil, fmt.Errorf("archetype %q: unknown zone %q for %q", ay.Name, ry.Zone, typeName)
			}
			avoid, ok := ParseDeckZone(ry.Avoid)
			if !ok {
				return nil, fmt.Errorf("archetype %q: unknown avoid zone %q for %q", ay.Name, ry.Avoid, typeName)
			}
			weight := ry.Weight
			if weight == 0 {
				weight = 1
			}
			a.DeckRules[t] = DeckRule{Zone: zone, Avoid: avoid, Weight: weight}
		}
	}

	if len(ay.Adjacency) > 0 {
		a.Adjacency = make(map[RoomType]AdjacencyRule, len(ay.Adjacency))
		for typeName, ry := range ay.Adjacency {
			t, ok := ParseRoomType(typeName)
			if !ok {
				return nil, fmt.Errorf("archetype %q: unknown room type %q in adjacency", ay.Name, typeName)
			}
			rule := AdjacencyRule{}
			var err error
			if rule.Required, err = parseTypeList(ay.Name, ry.Required); err != nil {
				return nil, err
			}
			if rule.Preferred, err = parseTypeList(ay.Name, ry.Preferred); err != nil {
				return nil, err
			}
			if rule.Avoided, err = parseTypeList(ay.Name, ry.Avoided); err != nil {
				return nil, err
			}
			a.Adjacency[t] = rule
		}
	}

	return a, nil
}

func parseTypeList(archetypeName string, names []string) ([]RoomType, error) {
	if len(names) == 0 {
		return nil, nil
	}
	types := make([]RoomType, 0, len(names))
	for _, name := range names {
		t, ok := ParseRoomType(name)
		if !ok {
			return nil, fmt.Errorf("archetype %q: unknown room type %q in adjacency list", archetypeName, name)
		}
		types = append(types, t)
	}
	return types, nil
}
