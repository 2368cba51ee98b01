// Package revision looks up the commit the working tree is checked out at.
//
// The lookup shells out to `git rev-parse HEAD` and classifies failures so
// callers can decide between aborting and stamping a placeholder.
package revision
