// Package message reads and writes message files: the string tables holding
// the localized text of the game.
//
// # File Format
//
// A message file is a SIR0 container (see package sir0). All integers are
// little-endian. The SIR0 header payload is
//
//	[RecordCount(4)][RecordTableOffset(4)]
//
// RecordTableOffset points at RecordCount fixed-size records:
//
//	[StringPointer(4)][StringHash(4)][Unk(4)]
//
// StringPointer is the absolute offset of a string, stored as 16-bit code
// units terminated by a zero unit. StringHash identifies the message (it is a
// checksum of an external key) and Unk is an opaque value kept as-is.
//
// Files written by this package are laid out as
//
//	[SIR0 header(16)][strings][pad to 4][record table][header payload][pad to 16][footer]
//
// with the record table sorted by hash while the strings follow the store
// order. Every StringPointer field, plus the RecordTableOffset field, is
// listed in the SIR0 footer.
//
// # Message Order
//
// A Store keeps messages in insertion order. Load inserts messages in
// ascending StringPointer order, which is the order their text appears in the
// file, independent of the record table order.
//
// # Text Conversion
//
// Load and Write take an optional code table (codetable.Decoder and
// codetable.Encoder). Without one, code units are read and written as plain
// UTF-16. Control characters such as colors are kept as single characters;
// use package keyword to turn them into editable [NAME] tokens.
//
// # Errors
//
// Load and Write either complete or return an error; nothing is retried.
// Offsets are computed with overflow checks and fail with ErrOverflow when a
// value does not fit in 32 bits. Text conversion failures are reported as
// *DecodeTextError or *EncodeTextError carrying the offending text. Text
// holding U+0000 cannot be stored, since a zero unit ends a string; Write
// rejects it with ErrNullCharacter.
//
// # Concurrency
//
// A Store is not safe for concurrent mutation. Load and Write seek back and
// forth on the stream they are given; the stream must not be shared with
// concurrent callers.
package message
