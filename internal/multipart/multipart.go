// Package multipart reads and writes the binary framing of ActiveSync
// multipart responses (application/vnd.ms-sync.multipart).
//
// A body starts with a little-endian uint32 part count followed by one
// (offset, length) uint32 pair per part; the parts themselves follow the
// header and are addressed by absolute offset into the body.
package multipart

import (
	"encoding/binary"
	"fmt"
)

const (
	countSize = 4
	pairSize  = 8

	// MinBodySize is the size of a header holding a count and one pair.
	MinBodySize = countSize + pairSize
)

// Part locates one part inside a multipart body.
type Part struct {
	Offset uint32
	Length uint32
}

// Metadata is the decoded multipart header.
type Metadata struct {
	Parts []Part
}

// Count returns the number of declared parts.
func (m *Metadata) Count() int {
	return len(m.Parts)
}

// Ints renders the header as [count, off1, len1, off2, len2, ...].
func (m *Metadata) Ints() []int {
	out := make([]int, 0, 1+2*len(m.Parts))
	out = append(out, len(m.Parts))
	for _, p := range m.Parts {
		out = append(out, int(p.Offset), int(p.Length))
	}
	return out
}

// ReadMetadata parses the multipart header of body. It returns nil with no
// error when body is too short to hold a count and one pair. Only the
// declared number of pairs is read, whatever follows the header.
func ReadMetadata(body []byte) (*Metadata, error) {
	if len(body) < MinBodySize {
		return nil, nil
	}

	count := binary.LittleEndian.Uint32(body)
	headerSize := uint64(count)*pairSize + countSize
	if headerSize > uint64(len(body)) {
		return nil, fmt.Errorf("%w: %d parts need %d bytes, body has %d",
			ErrTruncatedHeader, count, headerSize, len(body))
	}

	md := &Metadata{Parts: make([]Part, count)}
	for i := range md.Parts {
		at := countSize + i*pairSize
		p := Part{
			Offset: binary.LittleEndian.Uint32(body[at:]),
			Length: binary.LittleEndian.Uint32(body[at+4:]),
		}
		if uint64(p.Offset)+uint64(p.Length) > uint64(len(body)) {
			return nil, fmt.Errorf("%w: part %d [%d+%d] of %d bytes",
				ErrPartOutOfRange, i, p.Offset, p.Length, len(body))
		}
		md.Parts[i] = p
	}
	return md, nil
}

// ExtractPart returns the bytes of part i. The slice aliases body.
func ExtractPart(body []byte, md *Metadata, i int) ([]byte, error) {
	if md == nil || i < 0 || i >= len(md.Parts) {
		return nil, fmt.Errorf("%w: index %d", ErrPartOutOfRange, i)
	}
	p := md.Parts[i]
	end := uint64(p.Offset) + uint64(p.Length)
	if end > uint64(len(body)) {
		return nil, fmt.Errorf("%w: part %d", ErrPartOutOfRange, i)
	}
	return body[p.Offset:end], nil
}

// Build frames parts into a multipart body, laying them out back to back
// after the header.
func Build(parts ...[]byte) []byte {
	headerSize := countSize + pairSize*len(parts)
	size := headerSize
	for _, p := range parts {
		size += len(p)
	}

	out := make([]byte, headerSize, size)
	binary.LittleEndian.PutUint32(out, uint32(len(parts)))
	offset := headerSize
	for i, p := range parts {
		at := countSize + i*pairSize
		binary.LittleEndian.PutUint32(out[at:], uint32(offset))
		binary.LittleEndian.PutUint32(out[at+4:], uint32(len(p)))
		offset += len(p)
	}
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
