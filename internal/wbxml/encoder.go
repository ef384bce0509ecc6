// Package wbxml implements the WAP Binary XML encoding used by Exchange
// ActiveSync (MS-ASWBXML): XML element names are replaced by single-byte
// tokens taken from per-namespace code pages, text travels as inline strings
// or opaque byte runs, and nesting is delimited by END tokens.
package wbxml

import (
	"encoding/base64"
	"fmt"
)

// Global tokens (WBXML 1.3, section 7.1).
const (
	tokenSwitchPage byte = 0x00
	tokenEnd        byte = 0x01
	tokenEntity     byte = 0x02
	tokenStrI       byte = 0x03
	tokenStrT       byte = 0x83
	tokenOpaque     byte = 0xC3

	flagContent    byte = 0x40
	flagAttributes byte = 0x80
	tagMask        byte = 0x3F
)

// Document header written by the encoder: WBXML 1.3, unknown public id,
// UTF-8, empty string table.
var header = []byte{0x03, 0x01, 0x6A, 0x00}

// Encoder appends the binary form of a Node tree to an internal buffer.
type Encoder struct {
	buf  []byte
	page byte
}

// NewEncoder creates an encoder positioned on code page 0.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 256)}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Encode converts an XML document to WBXML. An empty document encodes to an
// empty body.
func Encode(xmlText string) ([]byte, error) {
	if isBlank(xmlText) {
		return nil, nil
	}
	root, err := ParseXML(xmlText)
	if err != nil {
		return nil, err
	}
	return EncodeNode(root)
}

// EncodeNode converts a Node tree to WBXML.
func EncodeNode(root *Node) ([]byte, error) {
	e := NewEncoder()
	e.buf = append(e.buf, header...)
	if err := e.writeNode(root, 0, 0); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func (e *Encoder) writeNode(n *Node, inherited byte, depth int) error {
	if depth > maxDepth {
		return ErrTooDeep
	}

	page := inherited
	if n.Space != "" {
		p, ok := PageByName(n.Space)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCodePage, n.Space)
		}
		page = p.Index
	}
	cp, ok := PageByIndex(page)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCodePage, page)
	}
	token, ok := cp.Token(n.Name)
	if !ok {
		return fmt.Errorf("%w: %s:%s", ErrUnknownTag, cp.Name, n.Name)
	}

	if page != e.page {
		e.buf = append(e.buf, tokenSwitchPage, page)
		e.page = page
	}

	hasContent := n.Text != "" || len(n.Children) > 0
	if !hasContent {
		e.buf = append(e.buf, token)
		return nil
	}
	e.buf = append(e.buf, token|flagContent)

	if n.Text != "" {
		if err := e.writeValue(page, n); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := e.writeNode(c, page, depth+1); err != nil {
			return err
		}
	}

	e.buf = append(e.buf, tokenEnd)
	return nil
}

func (e *Encoder) writeValue(page byte, n *Node) error {
	switch Opaque(page, n.Name) {
	case OpaqueText:
		e.writeOpaque([]byte(n.Text))
	case OpaqueBase64:
		raw, err := base64.StdEncoding.DecodeString(n.Text)
		if err != nil {
			return fmt.Errorf("%w: <%s>: %v", ErrInvalidOpaque, n.Name, err)
		}
		e.writeOpaque(raw)
	default:
		e.buf = append(e.buf, tokenStrI)
		e.buf = append(e.buf, n.Text...)
		e.buf = append(e.buf, 0x00)
	}
	return nil
}

func (e *Encoder) writeOpaque(b []byte) {
	e.buf = append(e.buf, tokenOpaque)
	e.writeMultiByteUint(uint32(len(b)))
	e.buf = append(e.buf, b...)
}

// writeMultiByteUint appends a mb_u_int32: big-endian groups of 7 bits, with
// the continuation bit set on every byte but the last.
func (e *Encoder) writeMultiByteUint(v uint32) {
	var tmp [5]byte
	i := len(tmp) - 1
	tmp[i] = byte(v & 0x7F)
	v >>= 7
	for v > 0 {
		i--
		tmp[i] = byte(v&0x7F) | 0x80
		v >>= 7
	}
	e.buf = append(e.buf, tmp[i:]...)
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return false
		}
	}
	return true
}
