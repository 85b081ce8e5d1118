/*
Package pipeline drives subdig's resolution pipeline over one or more input
files:

	input file --> subdomains --> dig.Digger --> output.Writer
	                                  \--> progress.Reporter

Input files are processed strictly in the order given, each read fully into
memory before digging its subdomains in batches. The scope set is loaded only
once, before processing the first input file, and the resolution cache lives
for the whole run, so subdomains appearing in multiple input files get
resolved only once.

Only configuration and output problems are errors: see [ConfigError] and
[OutputError]. Resolution failures end up as rows in the results.
*/
package pipeline
