package activesync

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/wbxml"
	"github.com/MKhiriev/go-eas-suite/models"
)

// Content types used on the wire.
const (
	ContentTypeWBXML     = "application/vnd.ms-sync.wbxml"
	ContentTypeMultipart = "application/vnd.ms-sync.multipart"
	ContentTypeRFC822    = "message/rfc822"
	ContentTypeXML       = "text/xml"
)

// Endpoint paths relative to the SUT base URL.
const (
	EndpointPath     = "/Microsoft-Server-ActiveSync"
	AutodiscoverPath = "/autodiscover/autodiscover.xml"
)

// RequestOptions adjust the framing of a single request.
type RequestOptions struct {
	// AcceptMultiPart asks for a multipart response.
	AcceptMultiPart bool
	// ContentType overrides the content type picked for the command.
	ContentType string
}

// RawRequest is a framed command, ready for a Transport. It is not modified
// after BuildRequest returns.
type RawRequest struct {
	Command     models.Command
	Method      string
	Path        string
	Query       string
	Compact     bool
	ContentType string
	Header      http.Header

	// XML is the request document as sent, after elision. Body is its wire
	// form: WBXML, a bare MIME message, or the XML text itself.
	XML  string
	Body []byte

	Parameters models.Parameters
	Session    Session
	PolicyKey  string

	// PolicyKeyDropped is set when a non-numeric policy key was sent with
	// length 0 in a compact query.
	PolicyKeyDropped bool
}

// URL returns the request path with its query string.
func (r *RawRequest) URL() string {
	return r.Path + "?" + r.Query
}

// BuildRequest frames cmd for transport: it picks the content type,
// serializes the body and assembles the query string and headers.
func BuildRequest(s Session, policyKey string, cmd models.Command, params models.Parameters, bodyXML string, opts RequestOptions) (*RawRequest, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	req := &RawRequest{
		Command:    cmd,
		Method:     http.MethodPost,
		Path:       EndpointPath,
		Compact:    s.CompactQuery && cmd != models.CommandFolderSync,
		Header:     make(http.Header),
		Parameters: params.Clone(),
		Session:    s,
		PolicyKey:  policyKey,
	}

	req.ContentType = opts.ContentType
	if req.ContentType == "" {
		req.ContentType = ContentTypeWBXML
		if usesLegacyMime(s, cmd) {
			req.ContentType = ContentTypeRFC822
		}
	}
	if err := req.setBody(bodyXML); err != nil {
		return nil, err
	}

	if req.Compact {
		if opts.AcceptMultiPart {
			flags := byte(0)
			if p, ok := req.Parameters.Get(models.ParamOptions); ok {
				flags = p.Flags
			}
			req.Parameters.SetFlags(models.ParamOptions, flags|models.OptionAcceptMultiPart)
		}
		q, dropped, err := compactQuery(s, policyKey, cmd, req.Parameters)
		if err != nil {
			return nil, err
		}
		req.Query = url.QueryEscape(encodeBase64(q))
		req.PolicyKeyDropped = dropped
	} else {
		req.Query = plainQuery(s, cmd, req.Parameters)
		req.Header.Set(HeaderProtocolVersion, s.ProtocolVersion)
		if policyKey != "" {
			req.Header.Set(HeaderPolicyKey, policyKey)
		}
		if opts.AcceptMultiPart {
			req.Header.Set(HeaderAcceptMultiPart, "T")
		}
	}

	req.Header.Set("Content-Type", req.ContentType)
	if s.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", s.AcceptLanguage)
	}
	if s.AcceptGzip {
		req.Header.Set("Accept-Encoding", "gzip")
	}
	return req, nil
}

func (r *RawRequest) setBody(bodyXML string) error {
	switch r.ContentType {
	case ContentTypeWBXML:
		if strings.TrimSpace(bodyXML) == "" {
			return nil
		}
		root, err := wbxml.ParseXML(bodyXML)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRequest, r.Command, err)
		}
		elide(r.Command, root)
		body, err := wbxml.EncodeNode(root)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRequest, r.Command, err)
		}
		r.XML = root.String()
		r.Body = body
	case ContentTypeRFC822:
		r.XML = bodyXML
		r.Body = []byte(cdataPayload(bodyXML))
	default:
		r.XML = bodyXML
		r.Body = []byte(bodyXML)
	}
	return nil
}

// usesLegacyMime reports whether mail submission is sent as a bare MIME
// message, which is the case before protocol 14.0.
func usesLegacyMime(s Session, cmd models.Command) bool {
	switch cmd {
	case models.CommandSendMail, models.CommandSmartForward, models.CommandSmartReply:
		return !s.AtLeast("14.0")
	}
	return false
}

// cdataPayload returns the content of the first CDATA section of doc, or ""
// if it has none.
func cdataPayload(doc string) string {
	const open, closing = "<![CDATA[", "]]>"
	start := strings.Index(doc, open)
	if start < 0 {
		return ""
	}
	start += len(open)
	end := strings.Index(doc[start:], closing)
	if end < 0 {
		return ""
	}
	return doc[start : start+end]
}
