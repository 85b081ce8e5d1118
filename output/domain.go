// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package output

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// DomainExtractor returns the registrable domain of a host name, or "" if
// there is none.
type DomainExtractor func(host string) string

// RegisteredDomain returns the registrable domain (“eTLD+1”) of the
// specified host name, based on the public suffix list. For instance, it
// returns "example.co.uk" for "www.example.co.uk". It returns "" for hosts
// without a registrable domain, such as public suffixes themselves, IP
// address literals, or empty host names.
func RegisteredDomain(host string) string {
	host = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(host), "."))
	if host == "" || strings.HasPrefix(host, ".") || strings.Contains(host, "..") {
		return ""
	}
	if net.ParseIP(host) != nil {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}
