// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVFile appends rows to a CSV file, never truncating it. A header row is
// written only when the file is new or empty.
type CSVFile struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// OpenCSV opens the CSV file at path for appending, creating it if
// necessary. If the file is empty, then the specified header row gets written
// first.
func OpenCSV(path string, header []string) (*CSVFile, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot stat output file: %w", err)
	}
	c := &CSVFile{
		path: path,
		f:    f,
		w:    csv.NewWriter(f),
	}
	if info.Size() == 0 && len(header) > 0 {
		if err := c.Append([][]string{header}); err != nil {
			f.Close()
			return nil, err
		}
	}
	return c, nil
}

// Path returns the path of the CSV file.
func (c *CSVFile) Path() string { return c.path }

// Append the specified rows and flush them to the file.
func (c *CSVFile) Append(rows [][]string) error {
	if err := c.w.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot write to %s: %w", c.path, err)
	}
	return nil
}

// Close the CSV file.
func (c *CSVFile) Close() error {
	c.w.Flush()
	werr := c.w.Error()
	if err := c.f.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", c.path, err)
	}
	if werr != nil {
		return fmt.Errorf("cannot write to %s: %w", c.path, werr)
	}
	return nil
}
