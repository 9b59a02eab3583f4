package message

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/ssargent/pmdmessage/pkg/codetable"
	"github.com/ssargent/pmdmessage/pkg/sir0"
)

// Encode serializes the store into a new message file. See Write.
func (s *Store) Encode(enc codetable.Encoder) ([]byte, error) {
	buf := &writeBuffer{}
	if err := s.Write(buf, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes the store to w, which must be positioned at offset 0.
// When enc is nil, text is written as plain UTF-16. Strings are written in
// store order and the record table is sorted by hash. The SIR0 header is
// written last, once every offset is known.
func (s *Store) Write(w io.WriteSeeker, enc codetable.Encoder) error {
	if _, err := w.Write(make([]byte, sir0.HeaderSize)); err != nil {
		return err
	}

	records := make([]record, 0, len(s.messages))
	for _, msg := range s.messages {
		data, err := encodeText(msg, enc)
		if err != nil {
			return err
		}

		pointer, err := position(w)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		records = append(records, record{
			StringPointer: pointer,
			StringHash:    msg.Hash,
			Unk:           msg.Unk,
		})
	}

	if err := pad(w, stringAlignment); err != nil {
		return err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StringHash < records[j].StringHash
	})

	tableOffset, err := position(w)
	if err != nil {
		return err
	}
	recordCount, err := toU32(int64(len(records)))
	if err != nil {
		return err
	}
	tableSize, err := mulU32(recordCount, recordSize)
	if err != nil {
		return err
	}
	tableEnd, err := addU32(tableOffset, tableSize)
	if err != nil {
		return err
	}

	pointerOffsets := make([]uint32, 0, len(records)+3)
	pointerOffsets = append(pointerOffsets, sir0.DataOffsetField, sir0.FooterOffsetField)

	table := make([]byte, tableSize)
	for i, rec := range records {
		rec.marshal(table[i*recordSize:])
		// i*recordSize < tableSize, so this cannot overflow
		pointerOffsets = append(pointerOffsets, tableOffset+uint32(i)*recordSize)
	}
	if _, err := w.Write(table); err != nil {
		return err
	}

	// The header payload directly follows the table.
	dataOffset, err := position(w)
	if err != nil {
		return err
	}
	tableOffsetPointer, err := addU32(tableEnd, recordTableOffsetField)
	if err != nil {
		return err
	}
	pointerOffsets = append(pointerOffsets, tableOffsetPointer)

	var payload [headerPayloadSize]byte
	binary.LittleEndian.PutUint32(payload[0:4], recordCount)
	binary.LittleEndian.PutUint32(payload[4:8], tableOffset)
	if _, err := w.Write(payload[:]); err != nil {
		return err
	}

	if err := pad(w, sir0.Alignment); err != nil {
		return err
	}
	footerOffset, err := position(w)
	if err != nil {
		return err
	}
	if err := sir0.WriteFooter(w, pointerOffsets); err != nil {
		return fmt.Errorf("failed to write sir0 footer: %w", err)
	}
	if _, err := position(w); err != nil {
		return err
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := sir0.WriteHeader(w, dataOffset, footerOffset); err != nil {
		return fmt.Errorf("failed to write sir0 header: %w", err)
	}
	_, err = w.Seek(0, io.SeekEnd)
	return err
}

// encodeText converts the message text to zero-terminated code units
func encodeText(msg Message, enc codetable.Encoder) ([]byte, error) {
	var data []byte
	if enc == nil {
		var err error
		data, err = utf16le.NewEncoder().Bytes([]byte(msg.Text))
		if err != nil {
			return nil, &EncodeTextError{Hash: msg.Hash, Text: msg.Text, Err: err}
		}
	} else {
		units, err := enc.Encode(msg.Text)
		if err != nil {
			return nil, &EncodeTextError{Hash: msg.Hash, Text: msg.Text, Err: err}
		}
		data = make([]byte, len(units)*2, len(units)*2+2)
		for i, unit := range units {
			binary.LittleEndian.PutUint16(data[i*2:], unit)
		}
	}

	// A zero unit would end the string early on load.
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return nil, &EncodeTextError{Hash: msg.Hash, Text: msg.Text, Err: ErrNullCharacter}
		}
	}
	return append(data, 0, 0), nil
}

// position returns the current offset of w as a 32-bit file offset
func position(w io.Seeker) (uint32, error) {
	pos, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	return toU32(pos)
}

// pad writes zeros up to the next multiple of alignment
func pad(w io.WriteSeeker, alignment uint32) error {
	pos, err := position(w)
	if err != nil {
		return err
	}
	rem := pos % alignment
	if rem == 0 {
		return nil
	}
	if _, err := addU32(pos, alignment-rem); err != nil {
		return err
	}
	_, err = w.Write(make([]byte, alignment-rem))
	return err
}
