package sir0

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderSize is the size of the fixed SIR0 header in bytes.
	HeaderSize = 16
	// Alignment is the boundary the payload is padded to before the footer.
	Alignment = 16

	// DataOffsetField and FooterOffsetField are the positions of the two
	// pointer fields inside the SIR0 header.
	DataOffsetField   = 4
	FooterOffsetField = 8
)

var magic = []byte("SIR0")

// Errors
var (
	ErrInvalidMagic        = errors.New("sir0: invalid magic")
	ErrInvalidHeader       = errors.New("sir0: invalid header offsets")
	ErrInvalidFooter       = errors.New("sir0: invalid pointer offset list")
	ErrTruncated           = errors.New("sir0: unexpected end of data")
	ErrOffsetNotIncreasing = errors.New("sir0: pointer offsets must be strictly increasing")
)

// Container is a parsed SIR0 file.
type Container struct {
	DataOffset   uint32   // Start of the header payload
	FooterOffset uint32   // Start of the pointer offset list
	Header       []byte   // Bytes in [DataOffset, FooterOffset)
	Offsets      []uint32 // Absolute pointer offsets, ascending
}

// Parse reads the SIR0 header, the header payload and the pointer offset
// list from r. The stream position is unspecified afterwards.
func Parse(r io.ReadSeeker) (*Container, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var hdr [HeaderSize]byte
	if err := readFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if !bytes.Equal(hdr[0:4], magic) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, hdr[0:4])
	}

	c := &Container{
		DataOffset:   binary.LittleEndian.Uint32(hdr[4:8]),
		FooterOffset: binary.LittleEndian.Uint32(hdr[8:12]),
	}
	if c.DataOffset < HeaderSize || c.DataOffset > c.FooterOffset {
		return nil, fmt.Errorf("%w: data=%d footer=%d", ErrInvalidHeader, c.DataOffset, c.FooterOffset)
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if int64(c.FooterOffset) > size {
		return nil, fmt.Errorf("footer offset %d is past the end of the data (%d bytes): %w", c.FooterOffset, size, ErrTruncated)
	}

	if _, err := r.Seek(int64(c.DataOffset), io.SeekStart); err != nil {
		return nil, err
	}
	c.Header = make([]byte, c.FooterOffset-c.DataOffset)
	if err := readFull(r, c.Header); err != nil {
		return nil, fmt.Errorf("failed to read header payload: %w", err)
	}

	footer, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c.Offsets, err = DecodeOffsets(footer)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// DecodeOffsets decodes an encoded pointer offset list. Bytes after the
// terminating zero are ignored.
func DecodeOffsets(data []byte) ([]uint32, error) {
	var (
		offsets []uint32
		current uint32
		delta   uint32
		inGroup bool
	)

	for _, b := range data {
		if !inGroup && b == 0 {
			return offsets, nil
		}
		if delta > 0xFFFFFFFF>>7 {
			return nil, fmt.Errorf("%w: delta does not fit in 32 bits", ErrInvalidFooter)
		}
		delta = delta<<7 | uint32(b&0x7F)
		if b&0x80 != 0 {
			inGroup = true
			continue
		}

		if current > 0xFFFFFFFF-delta {
			return nil, fmt.Errorf("%w: offset does not fit in 32 bits", ErrInvalidFooter)
		}
		current += delta
		offsets = append(offsets, current)
		delta = 0
		inGroup = false
	}

	return nil, fmt.Errorf("failed to read pointer offset list: %w", ErrTruncated)
}

// EncodeOffsets encodes a strictly increasing list of absolute offsets,
// including the terminating zero byte but without padding.
func EncodeOffsets(offsets []uint32) ([]byte, error) {
	buf := make([]byte, 0, len(offsets)*2+1)
	var previous uint32

	for i, offset := range offsets {
		if offset <= previous {
			return nil, fmt.Errorf("%w: offset %d (index %d) follows %d", ErrOffsetNotIncreasing, offset, i, previous)
		}
		buf = appendDelta(buf, offset-previous)
		previous = offset
	}

	return append(buf, 0), nil
}

// WriteFooter writes the pointer offset list padded to Alignment bytes.
func WriteFooter(w io.Writer, offsets []uint32) error {
	buf, err := EncodeOffsets(offsets)
	if err != nil {
		return err
	}
	if rem := len(buf) % Alignment; rem != 0 {
		buf = append(buf, make([]byte, Alignment-rem)...)
	}

	_, err = w.Write(buf)
	return err
}

// WriteHeader writes the fixed SIR0 header.
func WriteHeader(w io.Writer, dataOffset, footerOffset uint32) error {
	var hdr [HeaderSize]byte
	copy(hdr[0:4], magic)
	binary.LittleEndian.PutUint32(hdr[4:8], dataOffset)
	binary.LittleEndian.PutUint32(hdr[8:12], footerOffset)

	_, err := w.Write(hdr[:])
	return err
}

// appendDelta appends v as big-endian 7-bit groups.
func appendDelta(buf []byte, v uint32) []byte {
	var groups [5]byte
	n := 0
	for {
		groups[n] = byte(v & 0x7F)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}
	for i := n - 1; i > 0; i-- {
		buf = append(buf, groups[i]|0x80)
	}
	return append(buf, groups[0])
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
