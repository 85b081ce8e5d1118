/*
Package dnsworker implements a simple limiting DNS lookup execution pool.
subdig uses one [Pool] per batch of subdomains, submitting one lookup task per
subdomain and then waiting for the whole batch to complete before moving on
to the next batch.

Usage

	workers := dnsworker.New(50) // clamped into [1..50]
	for _, name := range batch {
	    name := name
	    workers.Submit(func() {
	        // ...look up name
	    })
	}
	workers.StopWait() // join barrier: all tasks have completed.

# Acknowledgements

Under its hood, [Pool] leverages [gammazero/workerpool] as
the limiting goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package dnsworker
