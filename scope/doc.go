/*
Package scope classifies resolution outcomes as in scope or out of scope,
based on an allow-list of IP addresses.
*/
package scope
