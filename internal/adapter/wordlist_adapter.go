// Package adapter contains the filesystem adapters used by the mutation workflow.
package adapter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	m "gooze.dev/pkg/pwmutate/internal/model"
)

// maxWordLength is the longest input line the reader accepts.
const maxWordLength = 1024 * 1024

const outputFilePerm = 0o644

// WordlistAdapter hides direct os access so the workflow can be tested
// without touching the disk.
type WordlistAdapter interface {
	// Open returns a reader over the base words in the file at path.
	Open(path m.Path) (WordReader, error)

	// Create truncates or creates the file at path for writing mutations.
	Create(path m.Path) (WordWriter, error)
}

// WordReader iterates over base words, one per input line.
type WordReader interface {
	Next() bool
	Word() string
	Err() error
	Close() error
}

// WordWriter writes newline-terminated lines. Close flushes before closing.
type WordWriter interface {
	WriteLine(line string) error
	Close() error
}

// FSWordlistAdapter reads and writes wordlists on an afero filesystem.
type FSWordlistAdapter struct {
	fs afero.Fs
}

// NewFSWordlistAdapter constructs an adapter over fs.
func NewFSWordlistAdapter(fs afero.Fs) *FSWordlistAdapter {
	return &FSWordlistAdapter{fs: fs}
}

// NewLocalWordlistAdapter constructs an adapter over the OS filesystem.
func NewLocalWordlistAdapter() *FSWordlistAdapter {
	return NewFSWordlistAdapter(afero.NewOsFs())
}

// Open opens the input wordlist for line-by-line reading.
func (a *FSWordlistAdapter) Open(path m.Path) (WordReader, error) {
	file, err := a.fs.Open(string(path))
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxWordLength)

	slog.Debug("opened wordlist", "path", path)

	return &fileWordReader{path: path, file: file, scanner: scanner}, nil
}

// Create opens the output wordlist, truncating any existing content.
func (a *FSWordlistAdapter) Create(path m.Path) (WordWriter, error) {
	file, err := a.fs.OpenFile(string(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return nil, err
	}

	slog.Debug("created output wordlist", "path", path)

	return &fileWordWriter{path: path, file: file, buf: bufio.NewWriter(file)}, nil
}

type fileWordReader struct {
	path    m.Path
	file    afero.File
	scanner *bufio.Scanner
	word    string
}

func (r *fileWordReader) Next() bool {
	if !r.scanner.Scan() {
		return false
	}

	r.word = strings.TrimSpace(r.scanner.Text())

	return true
}

func (r *fileWordReader) Word() string {
	return r.word
}

func (r *fileWordReader) Err() error {
	return r.scanner.Err()
}

func (r *fileWordReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil

	return err
}

type fileWordWriter struct {
	path m.Path
	file afero.File
	buf  *bufio.Writer
}

func (w *fileWordWriter) WriteLine(line string) error {
	if w.file == nil {
		return fmt.Errorf("write to closed wordlist %s", w.path)
	}

	if _, err := w.buf.WriteString(line); err != nil {
		return err
	}

	return w.buf.WriteByte('\n')
}

func (w *fileWordWriter) Close() error {
	if w.file == nil {
		return nil
	}

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	w.file = nil

	if flushErr != nil {
		slog.Error("failed to flush output wordlist", "path", w.path, "error", flushErr)
		return flushErr
	}

	if closeErr != nil {
		slog.Error("failed to close output wordlist", "path", w.path, "error", closeErr)
	}

	return closeErr
}
