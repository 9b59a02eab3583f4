// Package sir0 reads and writes the SIR0 relocation container.
//
// A SIR0 file wraps an opaque payload and records every absolute offset in
// that payload which holds a pointer, so the engine can relocate the file
// after loading it.
//
// # Layout
//
// All integers are little-endian.
//
//	[Magic "SIR0"(4)][DataOffset(4)][FooterOffset(4)][Zero(4)] ... [Footer]
//
// DataOffset points at the "header payload" owned by the wrapped format.
// The bytes between DataOffset and FooterOffset are handed back to the caller
// by Parse as Container.Header.
//
// # Footer
//
// The footer is the list of pointer offsets in ascending order. Each entry is
// stored as the delta from the previous entry (the first one from zero),
// written big-endian in 7-bit groups with the high bit set on every byte but
// the last. A single zero byte ends the list, and the footer block is padded
// with zeros to a multiple of Alignment bytes.
//
// The two pointer fields of the SIR0 header itself (offsets 4 and 8) are
// conventionally the first two entries of the list.
package sir0
