// Package storage persists sweep runs under a data directory, one
// subdirectory per run holding metadata.json and errors.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sdelab/internal/convergence"
	"github.com/san-kum/sdelab/internal/sde"
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
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Scheme         string    `json:"scheme"`
	Seed           int64     `json:"seed"`
	Paths          int       `json:"paths"`
	Drift          float64   `json:"drift"`
	Diffusion      float64   `json:"diffusion"`
	TotalSeconds   float64   `json:"total_seconds"`
	TotalSteps     int       `json:"total_steps"`
	EmpiricalOrder float64   `json:"empirical_order"`
}

func (s *Store) Save(res *convergence.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", res.Scheme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		Scheme:         string(res.Scheme),
		Seed:           res.Seed,
		Paths:          res.Paths,
		Drift:          res.Drift,
		Diffusion:      res.Diffusion,
		TotalSeconds:   res.TotalTime.Seconds(),
		TotalSteps:     res.TotalSteps,
		EmpiricalOrder: res.EmpiricalOrder(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "errors.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"h", "grid", "mean_err", "std_err"}); err != nil {
		return "", err
	}
	for i, h := range res.StepSizes {
		row := []string{
			strconv.FormatFloat(h, 'g', -1, 64),
			strconv.Itoa(res.GridSizes[i]),
			strconv.FormatFloat(res.MeanErrors[i], 'g', -1, 64),
			strconv.FormatFloat(res.StdErrors[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult reconstructs a sweep result from a stored run, enough to
// re-render plots and tables.
func (s *Store) LoadResult(runID string) (*convergence.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "errors.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	res := &convergence.Result{
		Paths:      meta.Paths,
		Drift:      meta.Drift,
		Diffusion:  meta.Diffusion,
		Scheme:     sde.Type(meta.Scheme),
		Seed:       meta.Seed,
		TotalTime:  time.Duration(meta.TotalSeconds * float64(time.Second)),
		TotalSteps: meta.TotalSteps,
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		h, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		grid, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		mean, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		std, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		res.StepSizes = append(res.StepSizes, h)
		res.GridSizes = append(res.GridSizes, grid)
		res.MeanErrors = append(res.MeanErrors, mean)
		res.StdErrors = append(res.StdErrors, std)
	}

	return res, nil
}
