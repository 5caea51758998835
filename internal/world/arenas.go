package world

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownArena = errors.New("unknown arena")

// MarkerConfig describes the billboard placed for a marker letter.
type MarkerConfig struct {
	Kind     string  `yaml:"kind"`
	Sprite   string  `yaml:"sprite"`
	Scale    float64 `yaml:"scale"`
	MapColor [3]int  `yaml:"map_color"`
}

// ArenaConfig is one entry of the arena catalog
type ArenaConfig struct {
	Name         string                  `yaml:"name"`
	File         string                  `yaml:"file"`
	StartHeading float64                 `yaml:"start_heading"` // degrees
	SkyColor     [3]int                  `yaml:"sky_color"`
	GroundColor  [3]int                  `yaml:"ground_color"`
	Markers      map[string]MarkerConfig `yaml:"markers"`
}

// ArenaCatalog maps arena keys to their configuration
type ArenaCatalog struct {
	Arenas map[string]*ArenaConfig `yaml:"arenas"`

	dir string
}

// Arena is a loaded arena ready to hand to the renderer
type Arena struct {
	Key    string
	Config *ArenaConfig
	*MapData
}

// LoadArenaCatalog reads the arena catalog. Map file paths inside it are
// resolved relative to the catalog's directory.
func LoadArenaCatalog(filename string) (*ArenaCatalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena catalog: %w", err)
	}

	var catalog ArenaCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse arena catalog: %w", err)
	}
	catalog.dir = filepath.Dir(filename)
	return &catalog, nil
}

// Keys returns the arena keys in sorted order.
func (c *ArenaCatalog) Keys() []string {
	keys := make([]string, 0, len(c.Arenas))
	for key := range c.Arenas {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load reads the map file of the named arena.
func (c *ArenaCatalog) Load(key string, tileSize float64) (*Arena, error) {
	arenaConfig, ok := c.Arenas[key]
	if !ok || arenaConfig == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArena, key)
	}

	path := arenaConfig.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}

	mapData, err := NewMapLoader(tileSize).LoadMap(path)
	if err != nil {
		return nil, err
	}

	for _, marker := range mapData.Markers {
		if _, ok := arenaConfig.Markers[string(marker.Letter)]; !ok {
			return nil, fmt.Errorf("arena %q: marker %q at (%d, %d) has no catalog entry", key, marker.Letter, marker.X, marker.Y)
		}
	}

	return &Arena{Key: key, Config: arenaConfig, MapData: mapData}, nil
}
