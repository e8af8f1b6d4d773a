package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Sadvi2004/CodeForge/internal/archive"
	"github.com/Sadvi2004/CodeForge/internal/fileutil"
)

// ArchiveName is the default archive file name.
const ArchiveName = "codeforge-project.zip"

// ErrNoSink is returned by an Exporter without a sink.
var ErrNoSink = errors.New("no export sink")

// Sink stores a finished archive.
type Sink interface {
	// Save stores data under name and returns where it was written.
	Save(name string, data []byte) (string, error)
}

// DirSink writes archives into a directory.
type DirSink struct {
	mu  sync.Mutex
	dir string
}

// NewDirSink creates a sink writing into dir. An empty dir means the
// current working directory.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Dir returns the output directory.
func (s *DirSink) Dir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

// SetDir changes the output directory.
func (s *DirSink) SetDir(dir string) {
	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()
}

// Save writes data to dir/name, replacing any existing file.
func (s *DirSink) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.Dir(), filepath.Base(name))
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Result describes a completed export.
type Result struct {
	Path    string
	Size    int
	Entries int
}

// Exporter assembles and stores project archives.
type Exporter struct {
	Sink Sink
	Name string

	// Now stamps archive entries. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates an exporter writing ArchiveName to sink.
func NewExporter(sink Sink) *Exporter {
	return &Exporter{Sink: sink, Name: ArchiveName}
}

// Export assembles the buffers, encodes the archive and saves it.
// It returns ErrNothingToExport unchanged so callers can test for it.
func (e *Exporter) Export(markup, style, script string) (Result, error) {
	if e.Sink == nil {
		return Result{}, ErrNoSink
	}

	entries, err := Assemble(markup, style, script)
	if err != nil {
		return Result{}, err
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	data := archive.BuildAt(entries, now())

	name := e.Name
	if name == "" {
		name = ArchiveName
	}
	path, err := e.Sink.Save(name, data)
	if err != nil {
		return Result{}, fmt.Errorf("save %s: %w", name, err)
	}

	return Result{Path: path, Size: len(data), Entries: len(entries)}, nil
}
