// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"net"

	"github.com/siemens/subdig/types"

	"github.com/thediveo/lxkns/log"
)

// Lookuper looks up the IP addresses of a host, returning them in textual
// form. The platform resolver [net.Resolver] is a Lookuper.
type Lookuper interface {
	LookupHost(ctx context.Context, host string) (addrs []string, err error)
}

var _ Lookuper = (*net.Resolver)(nil)

// Resolver resolves subdomains into their IP addresses and classifies the
// outcomes. Outcomes are memoized in a [Cache], so repeated resolutions of
// the same subdomain don't hit the wire again.
type Resolver struct {
	lookup Lookuper
	cache  *Cache
}

// Option can be passed to New when creating new Resolver objects.
type Option func(*Resolver)

// New returns a new Resolver. Unless told otherwise using the [WithLookuper]
// and [WithCache] options, the Resolver uses the platform resolver and a new
// Cache of its own.
func New(options ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		opt(r)
	}
	if r.lookup == nil {
		r.lookup = net.DefaultResolver
	}
	if r.cache == nil {
		r.cache = NewCache()
	}
	return r
}

// WithLookuper sets the Lookuper to use instead of the platform resolver.
func WithLookuper(l Lookuper) Option {
	return func(r *Resolver) {
		r.lookup = l
	}
}

// WithCache sets the cache to use for memoizing outcomes.
func WithCache(c *Cache) Option {
	return func(r *Resolver) {
		r.cache = c
	}
}

// Cache returns the outcome cache used by this Resolver.
func (r *Resolver) Cache() *Cache { return r.cache }

// Resolve the specified subdomain into its IP addresses. Resolve never fails
// but instead classifies any trouble into the returned outcome:
//   - an empty subdomain results in Invalid{EmptyInput}, without any lookup.
//   - a malformed subdomain results in Invalid{LabelError}.
//   - any lookup failure results in Unresolved{NotResolvable}.
//
// There are no retries: the first outcome is cached and final for the
// lifetime of the Resolver's cache. Concurrent resolutions of the same yet
// uncached subdomain might look up the subdomain more than once.
func (r *Resolver) Resolve(ctx context.Context, subdomain string) types.Outcome {
	if subdomain == "" {
		return types.NewInvalid(types.EmptyInput)
	}
	if outcome, ok := r.cache.Get(subdomain); ok {
		return outcome
	}
	outcome := r.resolve(ctx, subdomain)
	r.cache.Put(subdomain, outcome)
	return outcome
}

// resolve does the real work of a cache miss.
func (r *Resolver) resolve(ctx context.Context, subdomain string) types.Outcome {
	name, err := Normalize(subdomain)
	if err != nil {
		log.Debugf("invalid subdomain: %s", err.Error())
		return types.NewInvalid(types.LabelError)
	}
	addrs, err := r.lookup.LookupHost(ctx, name)
	if err != nil {
		log.Debugf("cannot resolve %q: %s", subdomain, err.Error())
		return types.NewUnresolved(types.NotResolvable)
	}
	if len(addrs) == 0 {
		return types.NewUnresolved(types.NotResolvable)
	}
	return types.NewResolved(addrs...)
}
