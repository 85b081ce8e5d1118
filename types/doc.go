/*
Package types defines subdig's information model. Which is rather simple and
revolves around a [Result], pairing a subdomain with its resolution
[Outcome].

An Outcome is of one [Kind] only:
  - [Resolved], carrying the IP addresses in the order the resolver returned
    them, including duplicates.
  - [Unresolved], with the reason [NotResolvable].
  - [Invalid], with either [EmptyInput] or [LabelError] as the reason.

Per-subdomain failures are thus data, not errors: they flow through the same
channels and sets as successful resolutions do.

# Deduplication

Results are deduplicated by value, never by identity. [Result.Key] returns a
comparable composite key of the subdomain, the outcome kind, and the outcome
detail (the joined IP addresses or the failure reason).
*/
package types
