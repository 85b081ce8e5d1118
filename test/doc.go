/*
Package test provides test doubles shared by the subdig package tests, most
notably a fake platform resolver [Lookup].
*/
package test
