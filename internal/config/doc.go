// Package config defines the settings of a rewrite run and loads them from
// an optional YAML file.
//
// Every field has a default; running without a file reproduces the fixed
// target path, canImport/endif markers and header of the original tool.
package config
