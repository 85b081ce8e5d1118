// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package scope

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/siemens/subdig/types"
)

// Set is the set of IP addresses considered to be “in scope”. IP addresses
// are plain strings, matched using string equality: no CIDR matching, no
// normalization. A nil or empty Set disables scope filtering. Sets are
// read-only after loading and thus safe for concurrent use.
type Set map[string]struct{}

// New returns a new Set with the specified IP addresses.
func New(ips ...string) Set {
	s := make(Set, len(ips))
	for _, ip := range ips {
		s[ip] = struct{}{}
	}
	return s
}

// Load the scope set from the file at the specified path, with one IP address
// literal per line. An empty path means no scope at all and returns a nil
// Set. However, a missing or unreadable file is an error.
func Load(path string) (Set, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scope file: %w", err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read scope file %s: %w", path, err)
	}
	return s, nil
}

// Read the scope set from r, with one IP address literal per line. Leading
// and trailing white space is ignored, as are empty lines.
func Read(r io.Reader) (Set, error) {
	s := Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ip := strings.TrimSpace(scanner.Text())
		if ip == "" {
			continue
		}
		s[ip] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of IP addresses in scope.
func (s Set) Len() int { return len(s) }

// Contains returns true if the specified IP address is in scope.
func (s Set) Contains(ip string) bool {
	_, ok := s[ip]
	return ok
}

// IsInScope returns true if the outcome is a resolved one and at least one of
// its IP addresses is in scope. It always returns false for an empty scope.
func IsInScope(outcome types.Outcome, s Set) bool {
	if len(s) == 0 || outcome.Kind != types.Resolved {
		return false
	}
	for _, ip := range outcome.IPs {
		if s.Contains(ip) {
			return true
		}
	}
	return false
}
