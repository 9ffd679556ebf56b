package engine

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"javakg/internal/config"
	"javakg/internal/export"
	"javakg/internal/graph"
)

// Engine orchestrates the analysis pipeline: walk -> classify -> extract ->
// assemble graph -> snapshot.
type Engine struct {
	cfg *config.Config
	g   *graph.Graph

	snapshot       *graph.Snapshot
	filesProcessed int
	filesErrored   int
}

// New creates a new Engine with the given config.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg: cfg,
		g:   graph.New(),
	}
}

// Graph returns the engine's graph.
func (e *Engine) Graph() *graph.Graph {
	return e.g
}

// Snapshot returns the last generated snapshot, or nil.
func (e *Engine) Snapshot() *graph.Snapshot {
	return e.snapshot
}

// Config returns the engine config.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Generate runs a full analysis of the tree rooted at rootPath. A file that
// fails to process is counted and skipped; only an unusable root path is
// fatal. Cancellation is honored between files.
func (e *Engine) Generate(ctx context.Context, rootPath string) (*graph.Snapshot, error) {
	start := time.Now()

	if rootPath == "" {
		rootPath = e.cfg.Root
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", absRoot)
	}

	// Clear previous state
	e.g.Clear()
	e.filesProcessed = 0
	e.filesErrored = 0

	files, err := e.walkTree(absRoot)
	if err != nil {
		return nil, fmt.Errorf("walking tree: %w", err)
	}
	log.Printf("[engine] found %d files in %s", len(files), absRoot)

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis canceled: %w", err)
		}
		if err := e.processFile(absRoot, rel); err != nil {
			e.filesErrored++
			log.Printf("[engine] error processing %s: %v", rel, err)
			continue
		}
		e.filesProcessed++
	}

	duration := time.Since(start)
	stats := statsMap(e.g.Counts())
	stats["files_errored"] = e.filesErrored
	e.snapshot = &graph.Snapshot{
		Meta: graph.Meta{
			RootPath:       absRoot,
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
			Duration:       duration.String(),
			FilesFound:     len(files),
			FilesProcessed: e.filesProcessed,
			FilesErrored:   e.filesErrored,
		},
		Nodes: e.g.Nodes(),
		Edges: e.g.Edges(),
		Stats: stats,
	}

	log.Printf("[engine] graph generated in %s: %d nodes, %d edges, %d files errored",
		duration, e.g.NodeCount(), e.g.EdgeCount(), e.filesErrored)
	return e.snapshot, nil
}

// walkTree collects all files under root, applying ignore patterns. A
// traversal error (an unreadable directory, a file that vanished mid-walk)
// is logged and counted, and that subtree is skipped; it never aborts the
// walk.
func (e *Engine) walkTree(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("[engine] walk error at %s: %v", path, err)
			e.filesErrored++
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if e.isIgnored(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			files = append(files, rel)
		}
		return nil
	})
	return files, err
}

// isIgnored checks whether a path matches any ignore pattern. A directory
// pattern like "target/**" also matches the directory itself so the walker
// can skip it wholesale.
func (e *Engine) isIgnored(relPath string) bool {
	rel := filepath.ToSlash(relPath)
	for _, pattern := range e.cfg.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if dir := strings.TrimSuffix(pattern, "/**"); dir != pattern {
			if ok, err := doublestar.Match(dir, rel); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// WriteArtifacts writes the snapshot to the configured output directory:
// the node-link JSON graph and, when configured, a SQLite database.
func (e *Engine) WriteArtifacts(rootPath string) error {
	if e.snapshot == nil {
		return fmt.Errorf("no snapshot generated")
	}

	outDir := filepath.Join(rootPath, e.cfg.Output.Dir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	graphPath := filepath.Join(outDir, e.cfg.Output.GraphFile)
	if err := export.WriteJSONFile(graphPath, e.snapshot); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}
	log.Printf("[engine] wrote %s", graphPath)

	if e.cfg.Output.SQLiteFile != "" {
		dbPath := filepath.Join(outDir, e.cfg.Output.SQLiteFile)
		if err := export.WriteSQLite(dbPath, e.snapshot); err != nil {
			return fmt.Errorf("writing sqlite: %w", err)
		}
		log.Printf("[engine] wrote %s", dbPath)
	}

	return nil
}

func statsMap(counts map[graph.Kind]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}
