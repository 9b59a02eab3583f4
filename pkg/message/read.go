package message

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf16"

	"github.com/ssargent/pmdmessage/pkg/codetable"
	"github.com/ssargent/pmdmessage/pkg/sir0"
)

// maxPrealloc caps the record slice capacity taken from an untrusted count
const maxPrealloc = 4096

// Decode parses a message file held in memory. See Load.
func Decode(data []byte, dec codetable.Decoder) (*Store, error) {
	return Load(bytes.NewReader(data), dec)
}

// Load reads a message file from r. When dec is nil, strings are read as
// plain UTF-16. Messages are inserted in the order their strings appear in
// the file.
func Load(r io.ReadSeeker, dec codetable.Decoder) (*Store, error) {
	container, err := sir0.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sir0 container: %w", err)
	}

	if len(container.Header) < headerPayloadSize {
		return nil, fmt.Errorf("header payload is %d bytes: %w", len(container.Header), ErrTruncated)
	}
	recordCount := binary.LittleEndian.Uint32(container.Header[0:4])
	recordTableOffset := binary.LittleEndian.Uint32(container.Header[4:8])

	if _, err := r.Seek(int64(recordTableOffset), io.SeekStart); err != nil {
		return nil, err
	}
	reader := bufio.NewReader(r)
	records, err := readRecords(reader, recordCount)
	if err != nil {
		return nil, fmt.Errorf("failed to read record table at 0x%X: %w", recordTableOffset, err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StringPointer < records[j].StringPointer
	})

	store := NewStore()
	for _, rec := range records {
		if _, err := r.Seek(int64(rec.StringPointer), io.SeekStart); err != nil {
			return nil, err
		}
		reader.Reset(r)

		raw, err := readWideString(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read string of message 0x%08X at 0x%X: %w", rec.StringHash, rec.StringPointer, err)
		}

		text, err := decodeText(raw, dec)
		if err != nil {
			return nil, err
		}
		store.Insert(rec.StringHash, rec.Unk, text)
	}

	return store, nil
}

func readRecords(r io.Reader, count uint32) ([]record, error) {
	capacity := maxPrealloc
	if count < maxPrealloc {
		capacity = int(count)
	}
	records := make([]record, 0, capacity)

	var buf [recordSize]byte
	for i := uint32(0); i < count; i++ {
		if err := readFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		var rec record
		rec.unmarshal(buf[:])
		records = append(records, rec)
	}

	return records, nil
}

// readWideString reads little-endian code units up to, and excluding, the
// zero terminator. It returns the raw bytes.
func readWideString(r io.Reader) ([]byte, error) {
	var (
		raw  []byte
		unit [2]byte
	)
	for {
		if err := readFull(r, unit[:]); err != nil {
			return nil, err
		}
		if unit[0] == 0 && unit[1] == 0 {
			return raw, nil
		}
		raw = append(raw, unit[0], unit[1])
	}
}

func decodeText(raw []byte, dec codetable.Decoder) (string, error) {
	if dec == nil {
		text, err := utf16le.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	text, err := dec.Decode(units)
	if err != nil {
		return "", &DecodeTextError{Raw: string(utf16.Decode(units)), Err: err}
	}
	return text, nil
}

func readFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}
