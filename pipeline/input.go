// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength limits the length of a single input line.
const maxLineLength = 1024 * 1024

// ReadSubdomains reads all subdomains from the input file at path, one
// subdomain per line. Lines are trimmed of leading and trailing white space;
// empty lines are kept, as they are subdomains too, albeit invalid ones.
func ReadSubdomains(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()
	subdomains, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file %s: %w", path, err)
	}
	return subdomains, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
