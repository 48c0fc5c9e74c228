// Package render reconstructs documents from the token stream.
//
// The formatter produces deterministic, idempotent output: fixed-width
// indentation, leaf elements collapsed onto one line when short enough, and
// greedy word wrapping for long leaf text. The minifier concatenates token
// source forms with no separators. Both collapse whitespace runs in text
// content, so formatting never changes what the minifier produces.
package render
