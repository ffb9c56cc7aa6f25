// Package writers turns an index into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (FASTA wrapping, name lists).
//   • reconstruct stays domain-only; the app only picks a format.
//   • Formats register themselves in init() and are dispatched by name.
package writers
