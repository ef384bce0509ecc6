package activesync

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-eas-suite/models"
)

// ErrInvalidQuery is returned when a request query string cannot be parsed.
var ErrInvalidQuery = errors.New("activesync: invalid query string")

// Header names of the plain-text framing.
const (
	HeaderProtocolVersion  = "MS-ASProtocolVersion"
	HeaderProtocolVersions = "MS-ASProtocolVersions"
	HeaderPolicyKey        = "X-MS-PolicyKey"
	HeaderAcceptMultiPart  = "MS-ASAcceptMultiPart"
	HeaderProtocolCommands = "MS-ASProtocolCommands"
)

// Query is the decoded form of a request query string, in either framing.
type Query struct {
	Compact         bool
	ProtocolVersion string
	Command         models.Command
	Locale          uint16
	User            string
	DeviceID        string
	PolicyKey       string
	DeviceType      string
	Parameters      models.Parameters
	AcceptMultiPart bool
}

// compactQuery assembles the binary query of MS-ASHTTP 2.2.1.1.1.1. The
// second result reports a policy key that was set but not numeric, in which
// case it is sent with length 0.
func compactQuery(s Session, policyKey string, cmd models.Command, params models.Parameters) ([]byte, bool, error) {
	ver, err := versionByte(s.ProtocolVersion)
	if err != nil {
		return nil, false, err
	}

	buf := make([]byte, 0, 32+len(s.DeviceID)+len(s.DeviceType))
	buf = append(buf, ver, cmd.Code())
	buf = binary.LittleEndian.AppendUint16(buf, s.Locale)
	buf = append(buf, byte(len(s.DeviceID)))
	buf = append(buf, s.DeviceID...)

	dropped := false
	if key, err := strconv.ParseUint(policyKey, 10, 32); err == nil {
		buf = append(buf, 4)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(key))
	} else {
		dropped = policyKey != ""
		buf = append(buf, 0)
	}

	buf = append(buf, byte(len(s.DeviceType)))
	buf = append(buf, s.DeviceType...)

	for _, p := range params {
		if p.Name.Numeric() {
			buf = append(buf, byte(p.Name), 1, p.Flags)
			continue
		}
		if len(p.Value) > 255 {
			return nil, false, fmt.Errorf("%w: parameter %s longer than 255 bytes", ErrInvalidRequest, p.Name)
		}
		buf = append(buf, byte(p.Name), byte(len(p.Value)))
		buf = append(buf, p.Value...)
	}
	return buf, dropped, nil
}

// plainQuery renders Cmd, User, DeviceId and DeviceType followed by the
// parameters in order. The SaveInSent bit of Options becomes SaveInSent=T;
// the multipart bit travels as a header instead.
func plainQuery(s Session, cmd models.Command, params models.Parameters) string {
	var b strings.Builder
	add := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	add("Cmd", cmd.String())
	add("User", s.User)
	add("DeviceId", s.DeviceID)
	add("DeviceType", s.DeviceType)
	for _, p := range params {
		if p.Name == models.ParamOptions {
			if p.Flags&models.OptionSaveInSent != 0 {
				add("SaveInSent", "T")
			}
			continue
		}
		add(p.Name.String(), p.Value)
	}
	return b.String()
}

// ParseQuery decodes a request query in either framing. Plain-text requests
// carry the protocol version, policy key and multipart flag in headers.
func ParseQuery(rawQuery string, header http.Header) (*Query, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	if values.Has("Cmd") {
		return parsePlainQuery(rawQuery, header)
	}

	raw, err := url.QueryUnescape(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return ParseCompactQuery(data)
}

// ParseCompactQuery decodes the binary (already Base64-decoded) query.
func ParseCompactQuery(data []byte) (*Query, error) {
	r := &queryReader{buf: data}

	ver := r.readByte()
	code := r.readByte()
	locale := r.readUint16()
	deviceID := r.readString(int(r.readByte()))
	var policyKey string
	switch n := r.readByte(); n {
	case 0:
	case 4:
		policyKey = strconv.FormatUint(uint64(r.readUint32()), 10)
	default:
		return nil, fmt.Errorf("%w: policy key length %d", ErrInvalidQuery, n)
	}
	deviceType := r.readString(int(r.readByte()))
	if r.err != nil {
		return nil, r.err
	}

	cmd, err := models.CommandByCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	q := &Query{
		Compact:         true,
		ProtocolVersion: formatVersion(ver),
		Command:         cmd,
		Locale:          locale,
		DeviceID:        deviceID,
		PolicyKey:       policyKey,
		DeviceType:      deviceType,
	}
	for r.pos < len(r.buf) {
		tag := models.ParameterName(r.readByte())
		value := r.readString(int(r.readByte()))
		if r.err != nil {
			return nil, r.err
		}
		switch {
		case tag == models.ParamUser:
			q.User = value
			q.Parameters.Set(tag, value)
		case tag.Numeric():
			if len(value) != 1 {
				return nil, fmt.Errorf("%w: %s length %d", ErrInvalidQuery, tag, len(value))
			}
			q.Parameters.SetFlags(tag, value[0])
			q.AcceptMultiPart = value[0]&models.OptionAcceptMultiPart != 0
		default:
			q.Parameters.Set(tag, value)
		}
	}
	return q, nil
}

func parsePlainQuery(rawQuery string, header http.Header) (*Query, error) {
	q := &Query{
		ProtocolVersion: header.Get(HeaderProtocolVersion),
		PolicyKey:       header.Get(HeaderPolicyKey),
		AcceptMultiPart: strings.EqualFold(header.Get(HeaderAcceptMultiPart), "T"),
	}

	// Walk pairs in order; url.Values would lose it.
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}

		switch key {
		case "Cmd":
			if q.Command, err = models.ParseCommand(value); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
			}
		case "User":
			q.User = value
		case "DeviceId":
			q.DeviceID = value
		case "DeviceType":
			q.DeviceType = value
		case "SaveInSent":
			if value == "T" {
				q.Parameters.SetFlags(models.ParamOptions, models.OptionSaveInSent)
			}
		default:
			name, err := models.ParseParameterName(key)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
			}
			q.Parameters.Set(name, value)
		}
	}
	return q, nil
}

type queryReader struct {
	buf []byte
	pos int
	err error
}

func (r *queryReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.buf) {
		r.err = fmt.Errorf("%w: truncated at byte %d", ErrInvalidQuery, r.pos)
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *queryReader) readByte() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *queryReader) readUint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *queryReader) readUint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *queryReader) readString(n int) string {
	return string(r.take(n))
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
