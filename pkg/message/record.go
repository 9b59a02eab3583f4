package message

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

const (
	recordSize        = 12 // StringPointer + StringHash + Unk
	headerPayloadSize = 8  // RecordCount + RecordTableOffset
	stringAlignment   = 4

	// recordTableOffsetField is the position of RecordTableOffset inside the
	// header payload.
	recordTableOffsetField = 4
)

// utf16le converts text without a code table. Byte order marks are kept as
// ordinary characters.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// record is one entry of the record table
type record struct {
	StringPointer uint32 // Absolute offset of the string
	StringHash    uint32
	Unk           uint32
}

// marshal writes the record into dst, which must hold recordSize bytes
func (r record) marshal(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:4], r.StringPointer)
	binary.LittleEndian.PutUint32(dst[4:8], r.StringHash)
	binary.LittleEndian.PutUint32(dst[8:12], r.Unk)
}

// unmarshal reads the record from src, which must hold recordSize bytes
func (r *record) unmarshal(src []byte) {
	r.StringPointer = binary.LittleEndian.Uint32(src[0:4])
	r.StringHash = binary.LittleEndian.Uint32(src[4:8])
	r.Unk = binary.LittleEndian.Uint32(src[8:12])
}
