package grid

import (
	"encoding/json"
	"os"
)

// Save writes the grid to path as indented JSON.
func (g *Grid) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Load reads a grid previously written with Save.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Cached restores the grid from path when the savefile exists,
// otherwise computes it and writes the savefile for next time.
func Cached(path string, compute func() (*Grid, error)) (*Grid, error) {
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	g, err := compute()
	if err != nil {
		return nil, err
	}
	if err := g.Save(path); err != nil {
		return nil, err
	}
	return g, nil
}
