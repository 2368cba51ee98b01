// Package source reads and rewrites the generated Swift file as a list of
// terminator-preserving lines.
package source
