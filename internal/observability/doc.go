// Package observability records to-do list mutations as structured JSON Lines
// events and derives usage metrics from them on demand.
package observability
