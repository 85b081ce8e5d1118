// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// Result pairs a subdomain with the outcome of resolving it.
type Result struct {
	Subdomain string  `json:"subdomain"` // raw input line, may be empty.
	Outcome   Outcome `json:"outcome"`
}

// Key identifies a Result by value: two results with the same subdomain and
// the same outcome kind and detail map onto the same key. Keys are
// comparable and are thus usable as map keys.
type Key struct {
	Subdomain string
	Kind      Kind
	Detail    string
}

// Key returns the composite key of this result.
func (r Result) Key() Key {
	return Key{
		Subdomain: r.Subdomain,
		Kind:      r.Outcome.Kind,
		Detail:    r.Outcome.Detail(),
	}
}
