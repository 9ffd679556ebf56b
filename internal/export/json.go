package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"javakg/internal/graph"
)

// WriteJSON writes a snapshot in node-link form (nodes + links + stats) to w.
func WriteJSON(w io.Writer, snap *graph.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// WriteJSONFile writes a snapshot to the given path.
func WriteJSONFile(path string, snap *graph.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, snap); err != nil {
		return err
	}
	return f.Close()
}

// ReadJSONFile reads a snapshot previously written with WriteJSONFile.
func ReadJSONFile(path string) (*graph.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &snap, nil
}
