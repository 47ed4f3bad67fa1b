// Package internal provides the claim-checking engine behind canon.
//
// The engine reads claim files: plain text where every non-empty,
// non-comment line asserts that two addition expressions denote the same
// value, written "lhs = rhs". Each claim is parsed, both sides are
// rewritten into canonical chains, and the claim is either discharged or
// reported as an issue.
//
// Key components:
//
// Engine: coordinates the check. It parses each line, asks the sum package
// to verify the claim, and maps verification outcomes onto named rules
// with configurable severities.
//
// Issue: one finding about one claim, including its location in the file.
//
// Cache: an optional persistent cache of per-file results, invalidated by
// content hash, entry age, and configuration changes.
//
// SourceCode: the lines of a claim file, used by the formatter to render
// findings alongside the offending line.
//
// The engine can also watch directories and re-check claim files as they
// change; see StartWatching.
//
// This package is intended for internal use within canon and should not be
// imported by external packages.
package internal
