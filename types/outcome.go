// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// Kind tells whether a subdomain resolved into addresses, could not be
// resolved, or wasn't even worth asking a resolver about.
type Kind int

// The kinds of resolution outcomes.
const (
	Resolved   Kind = iota // subdomain resolved into one or more IP addresses.
	Unresolved             // the resolver failed to resolve the subdomain.
	Invalid                // subdomain is malformed, no lookup attempted.
)

// String returns the clear-text representation of a Kind value.
func (k Kind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Unresolved:
		return "unresolved"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Reason details why a subdomain is either Unresolved or Invalid.
type Reason int

// The reasons for unsuccessful outcomes.
const (
	NoReason      Reason = iota // resolved outcomes don't need no reason.
	EmptyInput                  // empty subdomain line.
	NotResolvable               // name not found, server failure, et cetera.
	LabelError                  // empty label or label/name too long.
)

// String returns the human-readable failure reason, as it also appears in
// the CSV output.
func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case EmptyInput:
		return "Empty subdomain"
	case NotResolvable:
		return "Could not resolve. May be stale data."
	case LabelError:
		return "UnicodeError: label empty or too long"
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// Outcome is the classified result of trying to resolve a single subdomain.
// Outcomes are values: please treat the IPs slice as read-only once an
// Outcome has been handed out.
type Outcome struct {
	Kind   Kind     `json:"kind"`
	IPs    []string `json:"ips,omitempty"`    // in resolver order, duplicates included.
	Reason Reason   `json:"reason,omitempty"` // only for Unresolved and Invalid.
}

// NewResolved returns a Resolved outcome for the specified IP addresses.
func NewResolved(ips ...string) Outcome {
	return Outcome{Kind: Resolved, IPs: ips}
}

// NewUnresolved returns an Unresolved outcome with the specified reason.
func NewUnresolved(reason Reason) Outcome {
	return Outcome{Kind: Unresolved, Reason: reason}
}

// NewInvalid returns an Invalid outcome with the specified reason.
func NewInvalid(reason Reason) Outcome {
	return Outcome{Kind: Invalid, Reason: reason}
}

// Detail returns either the resolved IP addresses joined by ", ", or the
// human-readable reason of an unsuccessful outcome.
func (o Outcome) Detail() string {
	if o.Kind == Resolved {
		return strings.Join(o.IPs, ", ")
	}
	return o.Reason.String()
}

// Equal returns true if both outcomes have the same kind, reason and IP
// addresses in the same order.
func (o Outcome) Equal(other Outcome) bool {
	if o.Kind != other.Kind || o.Reason != other.Reason || len(o.IPs) != len(other.IPs) {
		return false
	}
	for idx := range o.IPs {
		if o.IPs[idx] != other.IPs[idx] {
			return false
		}
	}
	return true
}

// String returns a textual representation, mainly for logging.
func (o Outcome) String() string {
	return o.Kind.String() + ": " + o.Detail()
}
