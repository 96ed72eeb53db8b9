// Package render turns trace steps into terminal text for the algotrace
// command: one-line summaries, step tables, bar plots of a snapshot and a
// verbose dump of the raw Step value.
package render
