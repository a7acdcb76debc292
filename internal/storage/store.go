// Package storage persists curve and orbit runs under a data
// directory, one subdirectory per run with metadata.json and
// samples.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/galpot/internal/curves"
	"github.com/san-kum/galpot/internal/orbit"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Components []string  `json:"components"`
	Timestamp  time.Time `json:"timestamp"`
	Samples    int       `json:"samples"`
	Extra      map[string]float64 `json:"extra,omitempty"`
}

func (s *Store) runDir(kind string) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", err
	}
	return runID, dir, nil
}

func (s *Store) writeMeta(dir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveCurve stores a rotation or escape curve.
func (s *Store) SaveCurve(kind string, components []string, samples []curves.Sample) (string, error) {
	runID, dir, err := s.runDir(kind)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Kind:       kind,
		Components: components,
		Timestamp:  time.Now(),
		Samples:    len(samples),
	}
	if err := s.writeMeta(dir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"R", "v"}); err != nil {
		return "", err
	}
	for _, sm := range samples {
		row := []string{
			strconv.FormatFloat(sm.R, 'f', 6, 64),
			strconv.FormatFloat(sm.V, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// SaveOrbit stores an integrated orbit.
func (s *Store) SaveOrbit(components []string, res *orbit.Result, cfg orbit.Config) (string, error) {
	runID, dir, err := s.runDir("orbit")
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Kind:       "orbit",
		Components: components,
		Timestamp:  time.Now(),
		Samples:    len(res.States),
		Extra: map[string]float64{
			"dt":           cfg.Dt,
			"duration":     cfg.Duration,
			"energy_drift": res.EnergyDrift,
		},
	}
	if err := s.writeMeta(dir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "R", "vR", "vT", "z", "vz", "phi"}); err != nil {
		return "", err
	}
	for i, st := range res.States {
		row := make([]string, 0, 7)
		row = append(row, strconv.FormatFloat(res.Times[i], 'f', 6, 64))
		for _, v := range st {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// List returns metadata for every stored run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// LoadCurve reads back the samples of a stored curve run.
func (s *Store) LoadCurve(runID string) ([]curves.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("storage: empty samples file for %s", runID)
	}

	samples := make([]curves.Sample, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 2 {
			return nil, fmt.Errorf("storage: %s is not a curve run", runID)
		}
		R, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, err
		}
		samples = append(samples, curves.Sample{R: R, V: v})
	}
	return samples, nil
}
