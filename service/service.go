package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/datazip-inc/rogue-records/cleaner"
	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/destination"
	"github.com/datazip-inc/rogue-records/generator"
	"github.com/datazip-inc/rogue-records/metrics"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/writers/csv"
	"github.com/oklog/ulid"
)

// ErrOutsideRawDir is returned for raw file names that would resolve outside
// the raw directory.
var ErrOutsideRawDir = errors.New("file is outside the raw directory")

// Kind selects the raw or the cleaned data directory.
type Kind string

const (
	Raw     Kind = "raw"
	Cleaned Kind = "cleaned"
)

type Config struct {
	RawDir     string           `json:"raw_dir" validate:"required"`
	CleanedDir string           `json:"cleaned_dir" validate:"required"`
	MaxPrice   float64          `json:"max_price" validate:"gt=0"`
	DefaultQty int64            `json:"default_qty" validate:"gte=0"`
	CapPrice   bool             `json:"cap_price"`
	Format     types.FileFormat `json:"format" validate:"omitempty,oneof=csv parquet"`
	Now        func() time.Time `json:"-"`
}

// Service runs the generate, clean and upload jobs against one data
// directory. Jobs are serialized: two jobs never touch the directory at once.
type Service struct {
	config  Config
	metrics *metrics.Metrics
	mu      sync.Mutex
}

func New(config Config, m *metrics.Metrics) (*Service, error) {
	if err := utils.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid service config: %s", err)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Format == "" {
		config.Format = types.CSV
	}
	if m == nil {
		m = metrics.New()
	}
	return &Service{config: config, metrics: m}, nil
}

func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

func (s *Service) newJobID() string {
	return ulid.MustNew(ulid.Timestamp(s.config.Now()), rand.Reader).String()
}

func (s *Service) observe(job string, started time.Time) {
	s.metrics.JobDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
}

func (s *Service) dir(kind Kind) (string, error) {
	switch kind {
	case Raw:
		return s.config.RawDir, nil
	case Cleaned:
		return s.config.CleanedDir, nil
	default:
		return "", fmt.Errorf("unknown file kind [%s], expected raw or cleaned", kind)
	}
}

func prefix(kind Kind) string {
	if kind == Raw {
		return constants.RawFilePrefix
	}
	return constants.CleanedFilePrefix
}

type GenerateResult struct {
	JobID   string                   `json:"job_id"`
	Path    string                   `json:"path"`
	Records int                      `json:"records"`
	Rogue   int                      `json:"rogue"`
	Defects map[generator.Defect]int `json:"defects"`
}

// Generate writes a new batch of order records into the raw directory.
func (s *Service) Generate(ctx context.Context, config generator.Config) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe("generate", time.Now())

	gen, err := generator.New(config)
	if err != nil {
		return nil, err
	}

	batch := gen.Generate()
	path, err := generator.Save(batch.Dataset, s.config.RawDir, types.CSV, s.config.Now())
	s.metrics.FilesSaved.WithLabelValues(string(Raw), metrics.Status(err)).Inc()
	if err != nil {
		return nil, err
	}

	s.metrics.RecordsGenerated.WithLabelValues("none").Add(float64(batch.Dataset.Len() - batch.Rogue()))
	for defect, count := range batch.Defects {
		s.metrics.RecordsGenerated.WithLabelValues(string(defect)).Add(float64(count))
	}

	return &GenerateResult{
		JobID:   s.newJobID(),
		Path:    path,
		Records: batch.Dataset.Len(),
		Rogue:   batch.Rogue(),
		Defects: batch.Defects,
	}, nil
}

type CleanResult struct {
	JobID   string             `json:"job_id"`
	Input   string             `json:"input"`
	Save    cleaner.SaveResult `json:"save"`
	Reports []cleaner.Report   `json:"reports"`
	Summary *cleaner.Summary   `json:"summary,omitempty"`
}

// Clean runs the canonical pipeline over input, or over the newest raw file
// when input is empty, and saves the result into the cleaned directory. A
// failed save is reported both in the result and as the returned error.
func (s *Service) Clean(ctx context.Context, input string) (*CleanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.observe("clean", time.Now())

	if input == "" {
		latest, err := utils.LatestFile(s.config.RawDir, constants.RawFilePrefix, constants.CSVFileExt)
		if err != nil {
			return nil, err
		}
		input = latest
	}

	jobID := s.newJobID()
	jobLogger := logger.With("job_id", jobID)
	jobLogger.Info().Msgf("cleaning %s", input)

	dataset, err := csv.Read(input)
	if err != nil {
		return nil, err
	}

	pipeline, err := cleaner.NewPipeline(dataset,
		cleaner.WithMaxPrice(s.config.MaxPrice),
		cleaner.WithDefaultQty(s.config.DefaultQty),
		cleaner.WithFormat(s.config.Format),
		cleaner.WithClock(s.config.Now),
	)
	if err != nil {
		return nil, err
	}

	if err := pipeline.Canonical(s.config.CapPrice).Err(); err != nil {
		return nil, err
	}

	result := &CleanResult{
		JobID:   jobID,
		Input:   input,
		Save:    pipeline.Save(s.config.CleanedDir),
		Reports: pipeline.Reports(),
		Summary: pipeline.Summary(),
	}

	s.metrics.FilesSaved.WithLabelValues(string(Cleaned), metrics.Status(result.Save.Err)).Inc()
	if !result.Save.OK {
		return result, result.Save.Err
	}

	for _, report := range result.Reports {
		if !report.Changed() {
			continue
		}
		s.metrics.RowsDropped.Add(float64(report.Removed))
		s.metrics.CellsRepaired.WithLabelValues(report.Rule).Add(float64(report.Repaired + report.Coerced))
	}
	s.metrics.RowsCleaned.Add(float64(result.Save.Rows))
	jobLogger.Info().Msgf("cleaned %d rows into %s", result.Save.Rows, result.Save.Path)
	return result, nil
}

// RawFile resolves name, relative to the raw directory, to a path inside it.
// Absolute names and names escaping through ".." are rejected.
func (s *Service) RawFile(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRawDir, name)
	}
	return filepath.Join(s.config.RawDir, name), nil
}

// Latest returns the newest file of kind. Raw files are always CSV, cleaned
// files may be CSV or parquet.
func (s *Service) Latest(kind Kind) (string, error) {
	dir, err := s.dir(kind)
	if err != nil {
		return "", err
	}
	if kind == Raw {
		return utils.LatestFile(dir, prefix(kind), constants.CSVFileExt)
	}
	return utils.LatestFile(dir, prefix(kind), constants.CSVFileExt, constants.ParquetFileExt)
}

// Upload sends files to the client's bucket concurrently.
func (s *Service) Upload(ctx context.Context, client *destination.Client, files ...destination.File) error {
	defer s.observe("upload", time.Now())

	functions := make([]func(ctx context.Context) error, 0, len(files))
	for _, file := range files {
		functions = append(functions, func(ctx context.Context) error {
			err := client.Upload(ctx, file.Source, file.Name)
			s.metrics.Uploads.WithLabelValues(client.Type(), metrics.Status(err)).Inc()
			return err
		})
	}
	return utils.ErrExec(ctx, functions...)
}

// UploadLatest uploads the newest file of kind under its own base name.
func (s *Service) UploadLatest(ctx context.Context, client *destination.Client, kind Kind) (string, error) {
	path, err := s.Latest(kind)
	if err != nil {
		return "", err
	}
	return path, s.Upload(ctx, client, destination.File{Source: path})
}

type RunResult struct {
	Generate *GenerateResult `json:"generate"`
	Clean    *CleanResult    `json:"clean"`
	Uploaded []string        `json:"uploaded,omitempty"`
}

// Run generates a batch, cleans it and, when client is not nil, uploads the
// raw and the cleaned file.
func (s *Service) Run(ctx context.Context, config generator.Config, client *destination.Client) (*RunResult, error) {
	generated, err := s.Generate(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("generate failed: %s", err)
	}

	cleaned, err := s.Clean(ctx, generated.Path)
	if err != nil {
		return &RunResult{Generate: generated, Clean: cleaned}, fmt.Errorf("clean failed: %s", err)
	}

	result := &RunResult{Generate: generated, Clean: cleaned}
	if client == nil {
		return result, nil
	}

	err = s.Upload(ctx, client,
		destination.File{Source: generated.Path},
		destination.File{Source: cleaned.Save.Path},
	)
	if err != nil {
		return result, fmt.Errorf("upload failed: %s", err)
	}
	result.Uploaded = []string{generated.Path, cleaned.Save.Path}
	return result, nil
}

type FileInfo struct {
	Kind    Kind      `json:"kind"`
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

// Files lists the generated and cleaned files, newest first. Missing
// directories are treated as empty.
func (s *Service) Files() ([]FileInfo, error) {
	var files []FileInfo
	for _, kind := range []Kind{Raw, Cleaned} {
		dir, _ := s.dir(kind)
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to list %s: %s", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			created, ok := stamped(entry.Name(), prefix(kind))
			if !ok {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				return nil, err
			}
			files = append(files, FileInfo{
				Kind:    kind,
				Name:    entry.Name(),
				Path:    filepath.Join(dir, entry.Name()),
				Size:    info.Size(),
				Created: created,
			})
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Created.After(files[j].Created)
	})
	return files, nil
}

func stamped(name, prefix string) (time.Time, bool) {
	for _, ext := range []string{constants.CSVFileExt, constants.ParquetFileExt} {
		if at, ok := utils.ParseFileTimestamp(name, prefix, ext); ok {
			return at, true
		}
	}
	return time.Time{}, false
}
