package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/room"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{
		"small-empty", "large-empty", "small-divided", "diagonal",
		"corridors", "zigzag", "bracket", "pocket",
	}, c.Names())

	for _, l := range c.Rooms {
		rm, err := l.Build()
		require.NoError(t, err, l.Name)
		total, cleaned := rm.Coverage()
		assert.Positive(t, total, l.Name)
		assert.Zero(t, cleaned, l.Name)
	}
}

func TestBuildDrawsWalls(t *testing.T) {
	l, err := Default().Get("small-divided")
	require.NoError(t, err)
	rm, err := l.Build()
	require.NoError(t, err)
	assert.Equal(t, []room.Tile{{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}}, rm.Walls())
}

func TestParseValidation(t *testing.T) {
	cases := map[string]string{
		"missing name": "rooms:\n  - {width: 3, height: 3}\n",
		"duplicate":    "rooms:\n  - {name: a, width: 3, height: 3}\n  - {name: a, width: 4, height: 4}\n",
		"bad size":     "rooms:\n  - {name: a, width: 0, height: 3}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, room.ErrInvalidParameter)
		})
	}

	_, err := Parse([]byte("rooms: [[["))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	c := Default()
	sub, err := c.Select([]string{"pocket", "small-empty"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pocket", "small-empty"}, sub.Names())

	all, err := c.Select(nil)
	require.NoError(t, err)
	assert.Equal(t, c.Names(), all.Names())

	_, err = c.Select([]string{"ballroom"})
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.yaml")
	src := &Catalog{Rooms: []Layout{{Name: "box", Width: 5, Height: 4, Walls: []Wall{{From: [2]int{0, 2}, To: [2]int{3, 2}}}}}}
	data, err := src.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	def, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Names(), def.Names())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
