package activesync

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// RFC 2152 UTF-7, as a response charset. Unlike the IMAP variant the shift
// character is '+' and the alphabet is standard Base64.
const utf7chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var utf7encoding = base64.NewEncoding(utf7chars).WithPadding(base64.NoPadding)

var (
	errUTF7Base64   = errors.New("utf7: bad base64")
	errUTF7OddSized = errors.New("utf7: odd-sized data")
	errUTF7NonASCII = errors.New("utf7: byte outside 7-bit range")
)

func isUTF7Base64(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '/'
}

func decodeUTF7(s []byte) (string, error) {
	var out strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x80 {
			return "", fmt.Errorf("%w: 0x%02x at %d", errUTF7NonASCII, c, i)
		}
		if c != '+' {
			out.WriteByte(c)
			i++
			continue
		}

		i++
		start := i
		for i < len(s) && isUTF7Base64(s[i]) {
			i++
		}
		b := s[start:i]
		// A '-' ends the shift and is absorbed; "+-" is a literal '+'.
		if i < len(s) && s[i] == '-' {
			i++
		}
		if len(b) == 0 {
			out.WriteByte('+')
			continue
		}

		buf, err := utf7encoding.DecodeString(string(b))
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", errUTF7Base64, b, err)
		}
		if len(buf)%2 != 0 {
			return "", errUTF7OddSized
		}
		units := make([]uint16, len(buf)/2)
		for j := range units {
			units[j] = uint16(buf[2*j])<<8 | uint16(buf[2*j+1])
		}
		out.WriteString(string(utf16.Decode(units)))
	}
	return out.String(), nil
}
