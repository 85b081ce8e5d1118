/*
Package dig implements the batched subdomain-to-address digger.

A [Digger] splits the list of subdomains into batches of a fixed maximum size.
The subdomains of a batch are resolved concurrently, under the constraint of a
limited number of DNS workers (a [dnsworker.Pool]). Once all lookups of a
batch have completed, the results are deduplicated by value, classified as in
scope or not, and then written to the output sink, before the next batch
starts.

	subdomains --> batch --> Resolver (parallel) --> ResultSet --> scope --> Sink
	                                         \--> Progress

# Notes

Results are only deduplicated within a batch. When the same subdomain appears
in two different batches, both batches resolve (or rather get served from the
resolver's cache) and write it.
*/
package dig
