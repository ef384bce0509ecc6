package activesync

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultLocale is en-US.
const DefaultLocale uint16 = 0x0409

// Session holds the per-device settings read by every request. It is a
// value: switching users or devices means building a new Client.
type Session struct {
	DeviceID        string
	DeviceType      string
	User            string
	ProtocolVersion string
	Locale          uint16

	// CompactQuery selects the Base64 query string. FolderSync is always
	// sent in plain text.
	CompactQuery bool

	AcceptLanguage string
	AcceptGzip     bool
}

// Validate checks the fields the framer relies on.
func (s Session) Validate() error {
	if s.DeviceID == "" || s.DeviceType == "" {
		return fmt.Errorf("%w: device id and type are required", ErrInvalidSession)
	}
	if _, err := versionByte(s.ProtocolVersion); err != nil {
		return err
	}
	if s.CompactQuery && (len(s.DeviceID) > 255 || len(s.DeviceType) > 255) {
		return fmt.Errorf("%w: device id or type too long for compact query", ErrInvalidSession)
	}
	return nil
}

// AtLeast reports whether the session protocol version is at least v.
func (s Session) AtLeast(v string) bool {
	have, err := versionByte(s.ProtocolVersion)
	if err != nil {
		return false
	}
	want, err := versionByte(v)
	if err != nil {
		return false
	}
	return have >= want
}

// versionByte renders "14.1" as 141, the compact query form.
func versionByte(v string) (byte, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(v), ".")
	if !ok {
		minor = "0"
	}
	ma, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("%w: protocol version %q", ErrInvalidSession, v)
	}
	mi, err := strconv.Atoi(minor)
	if err != nil || mi < 0 || mi > 9 || ma < 1 || ma*10+mi > 255 {
		return 0, fmt.Errorf("%w: protocol version %q", ErrInvalidSession, v)
	}
	return byte(ma*10 + mi), nil
}

// formatVersion renders 141 as "14.1".
func formatVersion(b byte) string {
	return fmt.Sprintf("%d.%d", b/10, b%10)
}
