package site

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const manifestFile = "manifest.json"

// Artifact kinds recorded in the manifest.
const (
	KindPage       = "page"
	KindIndex      = "index"
	KindFeed       = "feed"
	KindStylesheet = "stylesheet"
	KindManifest   = "manifest"
)

// Output is one generated file.
type Output struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// Manifest is a record of one build's identity and outputs.
type Manifest struct {
	ID          string   `json:"id"`
	GeneratedAt string   `json:"generated_at"`
	DurationMS  int64    `json:"duration_ms"`
	Entries     int      `json:"entries"`
	Outputs     []Output `json:"outputs"`
}

// NewManifest assembles the manifest for a completed build.
func NewManifest(generatedAt time.Time, duration time.Duration, entries int, outputs []Output) Manifest {
	return Manifest{
		ID:          uuid.NewString(),
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		DurationMS:  duration.Milliseconds(),
		Entries:     entries,
		Outputs:     outputs,
	}
}

// Write serializes the manifest to path.
func (m Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
