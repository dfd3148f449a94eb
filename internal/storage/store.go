package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/curvesketch/internal/config"
	"github.com/san-kum/curvesketch/internal/curve"
	"github.com/san-kum/curvesketch/internal/export"
	"github.com/san-kum/curvesketch/internal/geom"
)

const (
	metadataFile = "metadata.json"
	configFile   = "config.yaml"
	pointsFile   = "points.csv"
)

// ErrInvalidName is returned for run names and ids that would resolve
// outside the store's directory.
var ErrInvalidName = errors.New("storage: invalid run name")

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
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Timestamp time.Time       `json:"timestamp"`
	Points    int             `json:"points"`
	Quadratic curve.Quadratic `json:"quadratic"`
	Bounds    geom.Rect       `json:"bounds"`
	Speed     float64         `json:"speed"`
	Ease      string          `json:"ease"`
}

// Save writes the curve, the config it came from and a metadata record into
// a new run directory and returns the run id.
func (s *Store) Save(name string, cfg *config.Config, c *curve.Curve) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: now,
		Points:    c.Len(),
		Quadratic: c.Quadratic(),
		Bounds:    c.Bounds(),
		Speed:     cfg.Animation.Speed,
		Ease:      cfg.Animation.Ease,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := config.Save(filepath.Join(runDir, configFile), cfg); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, pointsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.WriteCSV(csvFile, c); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkName(runID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadConfig returns the configuration a run was generated with.
func (s *Store) LoadConfig(runID string) (*config.Config, error) {
	if err := checkName(runID); err != nil {
		return nil, err
	}
	return config.Load(filepath.Join(s.baseDir, runID, configFile))
}

// LoadCurve reads a run's points back into a Curve.
func (s *Store) LoadCurve(runID string) (*curve.Curve, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	points, err := export.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return curve.FromPoints(points, meta.Quadratic)
}

// checkName rejects empty names and anything that is not a single path
// element.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
