package activesync

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/multipart"
	"github.com/MKhiriev/go-eas-suite/internal/wbxml"
)

// RawResponse is one HTTP response with its body decoded to XML text.
type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte

	// XML is the decoded document. It is empty when the body was.
	XML string

	// Multipart is set for multipart bodies; Parts then holds every part
	// after the first (XML) one, undecoded.
	Multipart *multipart.Metadata
	Parts     [][]byte
}

// ContentType returns the media type of the response without parameters.
func (r *RawResponse) ContentType() string {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType
}

// isActiveSyncContent reports whether a content type carries a WBXML
// document, so that an error status with such a body is still decoded.
func isActiveSyncContent(contentType string) bool {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	return mediaType == ContentTypeWBXML || mediaType == ContentTypeMultipart
}

// decode fills XML (and the multipart fields) from Body according to the
// content type: WBXML through the codec, multipart through the framing codec
// then the codec, anything else as text in the declared charset.
func (r *RawResponse) decode(contentType string) error {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, params = strings.ToLower(strings.TrimSpace(contentType)), nil
	}

	switch mediaType {
	case ContentTypeWBXML:
		r.XML, err = decodeWBXML(r.Body)
		return err
	case ContentTypeMultipart:
		return r.decodeMultipart()
	default:
		r.XML, err = decodeCharset(r.Body, params["charset"])
		return err
	}
}

func (r *RawResponse) decodeMultipart() error {
	md, err := multipart.ReadMetadata(r.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if md == nil {
		if len(r.Body) == 0 {
			return nil
		}
		return fmt.Errorf("%w: %w: %d bytes", ErrDecode, multipart.ErrTruncatedHeader, len(r.Body))
	}

	r.Multipart = md
	for i := 0; i < md.Count(); i++ {
		part, err := multipart.ExtractPart(r.Body, md, i)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
		if i == 0 {
			if r.XML, err = decodeWBXML(part); err != nil {
				return err
			}
			continue
		}
		r.Parts = append(r.Parts, part)
	}
	return nil
}

func decodeWBXML(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	root, err := wbxml.DecodeNode(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	redactPictures(root, false)
	return root.String(), nil
}
