/*
Package resolver resolves subdomains into their IP addresses using the
platform resolver, memoizing and classifying the outcomes.

A [Resolver] never returns errors: empty and malformed subdomains as well as
lookup failures are classified into a [types.Outcome] instead. Resolved IP
addresses are kept in the order the platform resolver returned them, including
any duplicates.

The outcome [Cache] is owned by whoever creates it, typically a single
pipeline run. It is never evicted.
*/
package resolver
