// Package writers emits the transformed buffer.
//
// Design:
//   • The buffer is written verbatim in one call; no re-wrapping or encoding.
//   • Output files are replaced atomically, including when output == input.
//   • Engine stays domain-only; Pipeline stays orchestration-only.
package writers
