// Package rewrite holds the pure text transformation applied to the
// generated ChainKit bindings: marker detection, the two-state region
// filter and the two-line header.
//
// Nothing here touches the filesystem or spawns processes.
package rewrite
