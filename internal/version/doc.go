// Package version exposes build metadata of the chainkit-mutate binary.
//
// Version, Commit and BuildTime are injected with
//
//	-ldflags "-X github.com/oshokin/chainkit-mutate/internal/version.Commit=$(git rev-parse HEAD)"
//
// and keep their defaults for local builds. This is the tool's own version,
// unrelated to the revision stamped into rewritten files.
package version
