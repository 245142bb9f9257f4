package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sphiros/internal/eos"
)

const (
	metadataFile = "metadata.json"
	fieldsFile   = "fields.csv"
)

var fieldsHeader = []string{"i", "rho", "eint", "p", "sos"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ModelRecord struct {
	ID     int                `json:"id"`
	Kind   string             `json:"kind"`
	Params map[string]float64 `json:"params"`
}

// ModelResult holds the first particle's outputs right after a model ran.
type ModelResult struct {
	ID  int     `json:"id"`
	P0  float64 `json:"p0"`
	Sos float64 `json:"sos0"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Backend   string             `json:"backend"`
	Particles int                `json:"particles"`
	Rho       float64            `json:"rho"`
	Eint      float64            `json:"eint"`
	Models    []ModelRecord      `json:"models"`
	Results   []ModelResult      `json:"results"`
	Metrics   map[string]float64 `json:"metrics"`
	Elapsed   time.Duration      `json:"elapsed_ns"`
}

// Records converts a collection into metadata records.
func Records(models eos.Collection) []ModelRecord {
	out := make([]ModelRecord, len(models))
	for i, m := range models {
		out[i] = ModelRecord{ID: m.ID(), Kind: m.Kind().String(), Params: eos.ParamsOf(m)}
	}
	return out
}

// Save writes the run under a fresh directory and returns its id.
func (s *Store) Save(meta RunMetadata, f eos.Fields) (string, error) {
	n, err := f.Len()
	if err != nil {
		return "", err
	}

	name := meta.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 1; exists(runDir); i++ {
		runID = fmt.Sprintf("%s_%d_%d", name, time.Now().Unix(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Name = name
	meta.Particles = n
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
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

	csvFile, err := os.Create(filepath.Join(runDir, fieldsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeFields(csvFile, f, n); err != nil {
		return "", err
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
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

// LoadFields reads back the particle arrays of a run.
func (s *Store) LoadFields(runID string) (eos.Fields, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, fieldsFile))
	if err != nil {
		return eos.Fields{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(fieldsHeader)

	records, err := r.ReadAll()
	if err != nil {
		return eos.Fields{}, err
	}
	if len(records) < 2 {
		return eos.NewFields(0), nil
	}

	f := eos.NewFields(len(records) - 1)
	for i, record := range records[1:] {
		cols := []*float64{&f.Rho[i], &f.E[i], &f.P[i], &f.C[i]}
		for j, dst := range cols {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return eos.Fields{}, fmt.Errorf("storage: %s row %d: %w", fieldsFile, i+1, err)
			}
			*dst = v
		}
	}

	return f, nil
}

func writeFields(out io.Writer, f eos.Fields, n int) error {
	w := csv.NewWriter(out)
	if err := w.Write(fieldsHeader); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row := []string{
			strconv.Itoa(i),
			formatFloat(f.Rho[i]),
			formatFloat(f.E[i]),
			formatFloat(f.P[i]),
			formatFloat(f.C[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// formatFloat keeps full precision so floor-level pressures survive.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
