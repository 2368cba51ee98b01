// Package mutator runs the post-generation fixups on the ChainKit Swift
// bindings: it resolves the current git revision, unwraps the canImport
// region, prepends the swiftlint/version header and writes the file back.
package mutator
