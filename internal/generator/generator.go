// Package generator orchestrates a diagram run: file discovery, parallel
// per-file extraction, ordered assembly and writing of the rendered
// artifact. Failures are isolated per file; a run always produces the
// best-effort combined model for the files that did extract.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lyubolp/py2uml/internal/config"
	"github.com/lyubolp/py2uml/internal/depgraph"
	"github.com/lyubolp/py2uml/internal/discovery"
	"github.com/lyubolp/py2uml/internal/extract"
	"github.com/lyubolp/py2uml/internal/model"
	"github.com/lyubolp/py2uml/internal/render"
)

// Stats summarizes one run.
type Stats struct {
	FilesProcessed int
	FilesFailed    int
	Classes        int
	CacheHits      int
	Duration       time.Duration
}

// Generator runs the extraction pipeline over one project root.
type Generator struct {
	cfg       *config.Config
	rootDir   string
	extractor *extract.Extractor
	cache     *resultCache
	progress  ProgressReporter
	logger    *log.Entry
}

// New creates a Generator for rootDir. A nil progress reporter disables
// progress events.
func New(cfg *config.Config, rootDir string, progress ProgressReporter) (*Generator, error) {
	if progress == nil {
		progress = NoopReporter{}
	}

	cache, err := newResultCache(cfg.Extraction.CacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction cache: %w", err)
	}

	logger := log.WithFields(log.Fields{
		"run_id": uuid.NewString(),
		"root":   rootDir,
	})

	return &Generator{
		cfg:       cfg,
		rootDir:   rootDir,
		extractor: extract.New(extract.DefaultRules(), logger),
		cache:     cache,
		progress:  progress,
		logger:    logger,
	}, nil
}

// Close releases the extraction cache.
func (g *Generator) Close() {
	g.cache.close()
}

// ClassDiagram extracts all discovered files and writes the rendered
// class diagram to outputPath.
func (g *Generator) ClassDiagram(ctx context.Context, outputPath string) (*Stats, error) {
	records, stats, err := g.ExtractAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := writeLines(outputPath, render.ClassDiagram(records)); err != nil {
		return nil, fmt.Errorf("failed to write diagram: %w", err)
	}

	g.logger.WithFields(log.Fields{
		"classes": stats.Classes,
		"output":  outputPath,
	}).Info("class diagram written")

	return stats, nil
}

// DependencyDiagram scans imports across all discovered files and writes
// the rendered module dependency diagram to outputPath.
func (g *Generator) DependencyDiagram(ctx context.Context, outputPath string) error {
	files, err := g.discoverFiles()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	moduleGraph, err := depgraph.Build(files, g.rootDir)
	if err != nil {
		// Partial graphs are still rendered; the failures were logged.
		g.logger.Warn("dependency graph built with skipped files: ", err)
	}

	rootName := filepath.Base(g.rootDir)
	if abs, err := filepath.Abs(g.rootDir); err == nil {
		rootName = filepath.Base(abs)
	}

	if err := writeLines(outputPath, depgraph.Diagram(moduleGraph, rootName)); err != nil {
		return fmt.Errorf("failed to write diagram: %w", err)
	}

	g.logger.WithFields(log.Fields{"output": outputPath}).Info("dependency diagram written")
	return nil
}

// ExtractAll discovers the project's source files and extracts each one,
// in parallel, into class records. The combined model is an ordered
// concatenation: file discovery order, then block order within a file.
// Files that fail to read are reported and skipped.
func (g *Generator) ExtractAll(ctx context.Context) ([]model.ClassRecord, *Stats, error) {
	start := time.Now()

	files, err := g.discoverFiles()
	if err != nil {
		return nil, nil, err
	}

	stats := &Stats{}
	g.progress.OnExtractionStart(len(files))

	results := make([][]model.ClassRecord, len(files))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Extraction.Workers)

	for i, path := range files {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, cached, err := g.extractFile(path)

			mu.Lock()
			if err != nil {
				stats.FilesFailed++
			} else {
				results[i] = records
				stats.FilesProcessed++
				stats.Classes += len(records)
				if cached {
					stats.CacheHits++
				}
			}
			mu.Unlock()

			if err != nil {
				g.logger.WithFields(log.Fields{"file": path}).Warn("skipping file: ", err)
			}
			g.progress.OnFileProcessed(filepath.Base(path))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var records []model.ClassRecord
	for _, fileRecords := range results {
		records = append(records, fileRecords...)
	}

	stats.Duration = time.Since(start)
	g.progress.OnExtractionComplete(stats)

	return records, stats, nil
}

// extractFile extracts one file, consulting the content-hash cache first.
// Structural failures inside the file are logged and reduce the file's
// records without failing it.
func (g *Generator) extractFile(path string) (records []model.ClassRecord, cached bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	hash := contentHash(data)
	if records, ok := g.cache.lookup(path, hash); ok {
		return records, true, nil
	}

	records, extractErr := g.extractor.ExtractSource(strings.Split(string(data), "\n"))
	if extractErr != nil {
		g.logger.WithFields(log.Fields{"file": path}).Warn("skipped malformed blocks: ", extractErr)
	}

	g.cache.store(path, hash, records)
	return records, false, nil
}

func (g *Generator) discoverFiles() ([]string, error) {
	g.progress.OnDiscoveryStart()

	d, err := discovery.New(g.rootDir, g.cfg.Paths.Sources, g.cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("invalid source patterns: %w", err)
	}

	files, err := d.Files()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}

	g.progress.OnDiscoveryComplete(len(files))
	return files, nil
}

// writeLines writes the diagram atomically: a temp file in the target
// directory, renamed over the destination once fully written.
func writeLines(path string, lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".py2uml-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	for _, line := range lines {
		if _, err := tmp.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
