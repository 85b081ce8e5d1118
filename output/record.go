// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"sort"

	"github.com/siemens/subdig/types"
)

// Record is a single output row.
type Record struct {
	Domain    string // registrable domain, or "".
	Subdomain string
	Value     string // joined IP addresses, or the failure reason.
	InScope   bool
}

// NewRecord returns the output record for the specified resolution result.
// The extractor may be nil, leaving the registrable domain empty.
func NewRecord(result types.Result, inScope bool, extract DomainExtractor) Record {
	rec := Record{
		Subdomain: result.Subdomain,
		Value:     result.Outcome.Detail(),
		InScope:   inScope,
	}
	if extract != nil && result.Subdomain != "" {
		rec.Domain = extract(result.Subdomain)
	}
	return rec
}

// Row returns the CSV fields of this record, with or without the registrable
// domain column.
func (r Record) Row(withDomain bool) []string {
	if withDomain {
		return []string{r.Domain, r.Subdomain, r.Value}
	}
	return []string{r.Subdomain, r.Value}
}

// Header returns the CSV header fields, with or without the registrable
// domain column.
func Header(withDomain bool) []string {
	if withDomain {
		return []string{"Domain", "Subdomain", "IPs"}
	}
	return []string{"Subdomain", "IPs"}
}

// SortRecords sorts records in place by subdomain and then by value, so that
// the rows of a batch get written in a stable order.
func SortRecords(records []Record) {
	sort.Slice(records, func(a, b int) bool {
		if records[a].Subdomain != records[b].Subdomain {
			return records[a].Subdomain < records[b].Subdomain
		}
		return records[a].Value < records[b].Value
	})
}
