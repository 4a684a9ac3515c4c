package domain

import (
	"fmt"
	"strings"

	m "kmeroracle.dev/pkg/kmeroracle/internal/model"
)

// Settings is the harness configuration. It is built once by the CLI and
// passed to every component that needs it.
type Settings struct {
	SUTBinary       string
	ReferenceBinary string

	CorpusDir      m.Path
	FixturePattern string
	ColorFile      m.Path // fixed manual colorfile; generated when empty

	WorkDir m.Path // per-run artifact namespaces are created below it
	TempDir m.Path // scratch space handed to the SUT

	Threads    int
	MaxThreads int // thread count of the second build in determinism rows
}

// DefaultFixturePattern selects compressed FASTA files.
const DefaultFixturePattern = `\.fasta\.gz$`

// Validate reports settings that would make every pipeline fail.
func (s Settings) Validate() error {
	var missing []string

	if strings.TrimSpace(s.SUTBinary) == "" {
		missing = append(missing, "sut binary")
	}

	if strings.TrimSpace(s.ReferenceBinary) == "" {
		missing = append(missing, "reference binary")
	}

	if s.WorkDir == "" {
		missing = append(missing, "work directory")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing settings: %s", strings.Join(missing, ", "))
	}

	if s.Threads <= 0 {
		return fmt.Errorf("thread count must be positive, got %d", s.Threads)
	}

	return nil
}

func (s Settings) threads() int {
	if s.Threads <= 0 {
		return 1
	}

	return s.Threads
}

func (s Settings) maxThreads() int {
	if s.MaxThreads <= 0 {
		return 4
	}

	return s.MaxThreads
}

func (s Settings) tempDir() m.Path {
	if s.TempDir == "" {
		return s.WorkDir
	}

	return s.TempDir
}
