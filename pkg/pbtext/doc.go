// Package pbtext indexes protobuf-style text documents and answers queries
// against the original buffer without building a tree of owned strings.
//
// A single pass over the input records where each `name { ... }` block and
// each `name: value` attribute occurs. The result is two flat descriptor
// arrays plus per-block child index lists:
//   - Document: the immutable parse result (text + descriptor arrays)
//   - View: a cheap, copyable read handle positioned on one block
//
// Names and values are sliced out of the original text on first access and
// memoized on their descriptors. Views are safe for concurrent use.
//
// Malformed input (unbalanced braces, unterminated quotes) is not validated;
// the index it yields is unspecified but never causes a panic.
package pbtext
