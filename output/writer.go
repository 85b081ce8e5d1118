// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/thediveo/lxkns/log"
)

// DefaultPath is the default path of the primary results CSV file.
const DefaultPath = "subdomains.csv"

// InScopePath returns the default path of the in-scope results CSV file,
// derived from the path of the primary results file: "_in_scope" gets
// inserted before the file extension.
func InScopePath(primary string) string {
	ext := filepath.Ext(primary)
	return strings.TrimSuffix(primary, ext) + "_in_scope" + ext
}

// Writer writes batches of records to the primary results file, and in-scope
// records additionally to the in-scope results file. The in-scope file gets
// opened only when the first in-scope record shows up.
type Writer struct {
	withDomain  bool
	primaryPath string
	inScopePath string

	mu      sync.Mutex
	primary *CSVFile
	inScope *CSVFile
}

// Option can be passed to NewWriter when creating new Writer objects.
type Option func(*Writer)

// WithoutDomain drops the registrable domain column, writing only subdomains
// and their IP addresses.
func WithoutDomain() Option {
	return func(w *Writer) {
		w.withDomain = false
	}
}

// WithInScopePath sets the path of the in-scope results file.
func WithInScopePath(path string) Option {
	return func(w *Writer) {
		w.inScopePath = path
	}
}

// NewWriter returns a new Writer appending to the primary results file at
// the specified path, opening (or creating) it immediately.
func NewWriter(path string, options ...Option) (*Writer, error) {
	if path == "" {
		path = DefaultPath
	}
	w := &Writer{
		withDomain:  true,
		primaryPath: path,
	}
	for _, opt := range options {
		opt(w)
	}
	if w.inScopePath == "" {
		w.inScopePath = InScopePath(path)
	}
	primary, err := OpenCSV(path, Header(w.withDomain))
	if err != nil {
		return nil, err
	}
	w.primary = primary
	return w, nil
}

// WithDomain returns true if records are written including their registrable
// domain.
func (w *Writer) WithDomain() bool { return w.withDomain }

// Path returns the path of the primary results file.
func (w *Writer) Path() string { return w.primaryPath }

// InScopePath returns the path of the in-scope results file; this file
// might not have been created (yet).
func (w *Writer) InScopePath() string { return w.inScopePath }

// Write a batch of records, returning the number of in-scope records written.
func (w *Writer) Write(records []Record) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(records) == 0 {
		return 0, nil
	}
	rows := make([][]string, 0, len(records))
	var inScopeRows [][]string
	for _, rec := range records {
		row := rec.Row(w.withDomain)
		rows = append(rows, row)
		if rec.InScope {
			inScopeRows = append(inScopeRows, row)
		}
	}
	if err := w.primary.Append(rows); err != nil {
		return 0, err
	}
	if len(inScopeRows) == 0 {
		return 0, nil
	}
	if w.inScope == nil {
		log.Debugf("creating in-scope results file %s", w.inScopePath)
		inScope, err := OpenCSV(w.inScopePath, Header(w.withDomain))
		if err != nil {
			return 0, err
		}
		w.inScope = inScope
	}
	if err := w.inScope.Append(inScopeRows); err != nil {
		return 0, err
	}
	return len(inScopeRows), nil
}

// Close the results files.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	if w.primary != nil {
		errs = append(errs, w.primary.Close())
		w.primary = nil
	}
	if w.inScope != nil {
		errs = append(errs, w.inScope.Close())
		w.inScope = nil
	}
	return errors.Join(errs...)
}
