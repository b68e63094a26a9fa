// Package render serializes dom trees to HTML5 text.
//
// The renderer walks the tree depth-first, validates tag and attribute
// names, enforces each element kind's content model, and escapes text
// through the discipline its context requires:
//
//   - Text children of normal elements escape '&', '<' and '>'
//   - Attribute values are double-quoted and escape '"'
//   - Comment text is rewritten so it cannot break comment syntax
//   - Raw text elements (<script>, <style>) reject text that contains
//     their own closing tag
//
// Output is deterministic: attributes are emitted in sorted key order
// and children in insertion order.
//
// # Errors
//
// Rendering either succeeds completely or fails with an *Error that
// pinpoints the offending node. The error carries a Cause and a path
// such as "/1(input)/0": the child indexes (with tag names for element
// children) walked from the root to the failure. Output already written
// to the sink before a failure is partial and should be discarded.
//
// # Concurrency
//
// Rendering is pure and never mutates the tree, so the same tree may be
// rendered concurrently from multiple goroutines.
package render
