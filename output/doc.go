/*
Package output appends resolution results to CSV files.

Rows are appended batch by batch to the primary results file, and in-scope rows
additionally to a separate in-scope results file. Existing files are never
truncated, and the header row only gets written to new (or empty) files:

	Domain,Subdomain,IPs
	example.com,www.example.com,"93.184.216.34, 2606:2800:220:1:248:1893:25c8:1946"
	example.com,gone.example.com,Could not resolve. May be stale data.

Without the registrable domain column, the header is “Subdomain,IPs” instead.

The registrable domain gets extracted using the public suffix list, courtesy of
[golang.org/x/net/publicsuffix].

[golang.org/x/net/publicsuffix]: https://pkg.go.dev/golang.org/x/net/publicsuffix
*/
package output
