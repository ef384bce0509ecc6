package wbxml

import (
	"encoding/base64"
	"fmt"
)

// maxDepth bounds element nesting in both directions.
const maxDepth = 256

// Decoder reads a WBXML token stream.
type Decoder struct {
	buf     []byte
	pos     int
	page    byte
	strings []byte
}

// NewDecoder creates a decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

// Decode converts a WBXML document to XML text. An empty body decodes to an
// empty string.
func Decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	root, err := DecodeNode(data)
	if err != nil {
		return "", err
	}
	return root.String(), nil
}

// DecodeNode converts a WBXML document to a Node tree.
func DecodeNode(data []byte) (*Node, error) {
	d := NewDecoder(data)
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	root, err := d.readElement(0)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(d.buf)-d.pos)
	}
	return root, nil
}

func (d *Decoder) readHeader() error {
	version, err := d.readByte()
	if err != nil {
		return err
	}
	if version < 0x01 || version > 0x03 {
		return fmt.Errorf("%w: version 0x%02x", ErrInvalidHeader, version)
	}

	publicID, err := d.readMultiByteUint()
	if err != nil {
		return err
	}
	if publicID == 0 {
		// Public id given as a string table index.
		if _, err = d.readMultiByteUint(); err != nil {
			return err
		}
	}
	if _, err = d.readMultiByteUint(); err != nil { // charset
		return err
	}

	size, err := d.readMultiByteUint()
	if err != nil {
		return err
	}
	table, err := d.readN(int(size))
	if err != nil {
		return err
	}
	d.strings = table
	return nil
}

func (d *Decoder) readElement(depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	tag, err := d.readByte()
	if err != nil {
		return nil, err
	}
	for tag == tokenSwitchPage {
		if err = d.switchPage(); err != nil {
			return nil, err
		}
		if tag, err = d.readByte(); err != nil {
			return nil, err
		}
	}
	if tag&flagAttributes != 0 {
		return nil, fmt.Errorf("%w: tag 0x%02x", ErrUnsupportedAttribute, tag)
	}

	cp, _ := PageByIndex(d.page)
	name, ok := cp.Tags[tag&tagMask]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x on page %s", ErrUnknownToken, tag, cp.Name)
	}
	n := &Node{Space: cp.Name, Name: name}
	if tag&flagContent == 0 {
		return n, nil
	}

	for {
		b, err := d.peekByte()
		if err != nil {
			return nil, err
		}

		switch b {
		case tokenEnd:
			d.pos++
			return n, nil
		case tokenSwitchPage:
			d.pos++
			if err = d.switchPage(); err != nil {
				return nil, err
			}
		case tokenStrI:
			d.pos++
			s, err := d.readCString()
			if err != nil {
				return nil, err
			}
			n.Text += s
		case tokenStrT:
			d.pos++
			s, err := d.readTableString()
			if err != nil {
				return nil, err
			}
			n.Text += s
		case tokenEntity:
			d.pos++
			r, err := d.readMultiByteUint()
			if err != nil {
				return nil, err
			}
			n.Text += string(rune(r))
		case tokenOpaque:
			d.pos++
			s, err := d.readOpaque(cp.Index, n.Name)
			if err != nil {
				return nil, err
			}
			n.Text += s
		default:
			if b&tagMask < 0x05 {
				return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownToken, b)
			}
			child, err := d.readElement(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}
}

func (d *Decoder) switchPage() error {
	page, err := d.readByte()
	if err != nil {
		return err
	}
	if _, ok := PageByIndex(page); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCodePage, page)
	}
	d.page = page
	return nil
}

func (d *Decoder) readOpaque(page byte, name string) (string, error) {
	size, err := d.readMultiByteUint()
	if err != nil {
		return "", err
	}
	raw, err := d.readN(int(size))
	if err != nil {
		return "", err
	}
	if Opaque(page, name) == OpaqueText {
		return string(raw), nil
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (d *Decoder) readCString() (string, error) {
	for i := d.pos; i < len(d.buf); i++ {
		if d.buf[i] == 0x00 {
			s := string(d.buf[d.pos:i])
			d.pos = i + 1
			return s, nil
		}
	}
	return "", ErrTruncated
}

func (d *Decoder) readTableString() (string, error) {
	offset, err := d.readMultiByteUint()
	if err != nil {
		return "", err
	}
	if int(offset) >= len(d.strings) {
		return "", fmt.Errorf("%w: string table offset %d", ErrTruncated, offset)
	}
	for i := int(offset); i < len(d.strings); i++ {
		if d.strings[i] == 0x00 {
			return string(d.strings[offset:i]), nil
		}
	}
	return "", ErrTruncated
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, ErrTruncated
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *Decoder) peekByte() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, ErrTruncated
	}
	return d.buf[d.pos], nil
}

func (d *Decoder) readN(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.buf) {
		return nil, ErrTruncated
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *Decoder) readMultiByteUint() (uint32, error) {
	var v uint32
	for i := 0; i < 5; i++ {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		v = v<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: mb_u_int32 overflow", ErrInvalidHeader)
}
