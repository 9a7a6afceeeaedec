// Package envlist encodes and decodes list values: a single environment
// variable value holding an ordered sequence of entries separated by ';'
// (PATH, PATHEXT, PSModulePath and friends).
//
// Two decode modes exist and callers must pick deliberately:
//
//   - Split drops empty segments, so "a;;b;" reads as [a b] and an empty
//     value reads as an empty list. Used when adding entries.
//   - SplitRaw keeps every segment, so "a;;b;" reads as [a "" b ""] and an
//     empty value reads as [""]. Used when removing entries or testing
//     membership, so a malformed value is rewritten segment for segment.
//
// Join never adds a leading or trailing separator; Join(nil) is "".
package envlist
