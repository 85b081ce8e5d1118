// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// ErrLabel signals a subdomain with an empty label, or with a label or the
// whole name exceeding the DNS length limits.
var ErrLabel = errors.New("label empty or too long")

// Normalize returns the ASCII form of the specified subdomain, suitable for
// passing it to a resolver. Internationalized names get converted into their
// punycode form before checking the label and name lengths.
func Normalize(subdomain string) (string, error) {
	name := subdomain
	if !isASCII(name) {
		if !utf8.ValidString(name) {
			return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrLabel, subdomain)
		}
		var err error
		name, err = idna.Punycode.ToASCII(name)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrLabel, err.Error())
		}
	}
	for _, label := range strings.Split(strings.TrimSuffix(name, "."), ".") {
		if label == "" {
			return "", fmt.Errorf("%w: %q", ErrLabel, subdomain)
		}
	}
	if _, ok := dns.IsDomainName(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrLabel, subdomain)
	}
	return name, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
