package activesync

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// decodeCharset decodes a text body. An empty charset means US-ASCII.
func decodeCharset(body []byte, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "us-ascii", "ascii":
		return decodeASCII(body), nil
	case "utf-8", "utf8":
		return string(body), nil
	case "utf-7", "unicode-1-1-utf-7", "csunicode11utf7":
		s, err := decodeUTF7(body)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return s, nil
	case "utf-16", "unicode":
		// Windows servers mean little-endian; a BOM overrides it.
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), body)
	}

	enc, _ := ianaindex.MIME.Encoding(charset)
	if enc == nil {
		enc, _ = ianaindex.IANA.Encoding(charset)
	}
	if enc == nil {
		return "", fmt.Errorf("%w: unsupported charset %q", ErrDecode, charset)
	}
	return decodeWith(enc, body)
}

func decodeWith(enc encoding.Encoding, body []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return string(out), nil
}

// decodeASCII maps every byte above 0x7F to U+FFFD.
func decodeASCII(body []byte) string {
	var b strings.Builder
	b.Grow(len(body))
	for _, c := range body {
		if c < utf8.RuneSelf {
			b.WriteByte(c)
		} else {
			b.WriteRune(utf8.RuneError)
		}
	}
	return b.String()
}
