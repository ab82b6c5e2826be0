// Package catalog loads named room layouts from YAML.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roomba/internal/room"
)

// ErrUnknownRoom is returned when a requested room is not in the catalog.
var ErrUnknownRoom = errors.New("unknown room")

//go:embed rooms.yaml
var defaultRooms []byte

// Wall is a segment between two tile coordinates.
type Wall struct {
	From [2]int `yaml:"from"`
	To   [2]int `yaml:"to"`
}

// Layout describes one room.
type Layout struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Walls  []Wall `yaml:"walls,omitempty"`
}

// Build constructs a fresh room from the layout.
func (l Layout) Build() (*room.Room, error) {
	rm, err := room.New(l.Width, l.Height)
	if err != nil {
		return nil, fmt.Errorf("room %q: %w", l.Name, err)
	}
	for _, w := range l.Walls {
		rm.DrawWall(room.Tile{X: w.From[0], Y: w.From[1]}, room.Tile{X: w.To[0], Y: w.To[1]})
	}
	return rm, nil
}

// Catalog is an ordered list of layouts with unique names.
type Catalog struct {
	Rooms []Layout `yaml:"rooms"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultRooms)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded rooms.yaml: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(c.Rooms))
	for _, l := range c.Rooms {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: room without a name", room.ErrInvalidParameter)
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("%w: duplicate room %q", room.ErrInvalidParameter, l.Name)
		}
		seen[l.Name] = true
		if l.Width <= 0 || l.Height <= 0 {
			return nil, fmt.Errorf("%w: room %q has size %dx%d", room.ErrInvalidParameter, l.Name, l.Width, l.Height)
		}
	}
	return &c, nil
}

// Names lists the rooms in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Rooms))
	for i, l := range c.Rooms {
		names[i] = l.Name
	}
	return names
}

// Get returns the layout called name.
func (c *Catalog) Get(name string) (Layout, error) {
	for _, l := range c.Rooms {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
}

// Select returns a catalog holding only the named rooms, in the order given.
// No names selects every room.
func (c *Catalog) Select(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return c, nil
	}
	out := &Catalog{Rooms: make([]Layout, 0, len(names))}
	for _, name := range names {
		l, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		out.Rooms = append(out.Rooms, l)
	}
	return out, nil
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
