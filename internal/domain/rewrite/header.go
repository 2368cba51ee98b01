package rewrite

import "strings"

const (
	// DefaultLintDirective silences swiftlint for the generated file.
	DefaultLintDirective = "// swiftlint:disable all"

	versionPrefix = "// version: "
)

// Header returns the two lines prepended to every rewritten file.
// The version is embedded verbatim, so an empty one yields "// version: ".
func Header(lintDirective, version string) []string {
	return []string{
		lintDirective + "\n",
		versionPrefix + version + "\n",
	}
}

// Apply prepends the header to the filtered lines. No check is made for a
// header left by an earlier run, so applying twice stacks two header pairs.
func Apply(header, lines []string) []string {
	out := make([]string, 0, len(header)+len(lines))
	out = append(out, header...)

	return append(out, lines...)
}

// SplitLines splits text after every "\n", keeping the terminators. A final
// fragment without a newline is returned as its own line.
func SplitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Join concatenates lines back into file contents.
func Join(lines []string) string {
	return strings.Join(lines, "")
}
