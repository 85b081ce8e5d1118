/*
Package progress reports the progress of resolving subdomains, together with
an estimate of the remaining time.

Status lines are rendered to a [Terminal] that replaces the previous status
line with the current one, such as [github.com/gosuri/uilive.Writer]. A status
line is only rendered after at least one subdomain has been processed, so
estimates never divide by zero.
*/
package progress
