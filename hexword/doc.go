// Package hexword converts raw binary memory images into hex word dumps.
//
// An image is split into 32-bit little-endian words, each rendered as an
// 8-digit lowercase hexadecimal line. The dump starts with the fixed load
// address marker HEADER, as expected by simulation memory loaders.
//
// Trailing bytes that do not complete a word are handled according to a
// TailPolicy: fault (the default), drop, or zero-pad.
package hexword
