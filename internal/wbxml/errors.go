package wbxml

import "errors"

// Decoding and encoding errors. The codec is closed over the ActiveSync code
// pages: anything outside them fails instead of being passed through.
var (
	ErrInvalidHeader        = errors.New("wbxml: invalid header")
	ErrTruncated            = errors.New("wbxml: truncated input")
	ErrUnknownCodePage      = errors.New("wbxml: unknown code page")
	ErrUnknownTag           = errors.New("wbxml: unknown tag")
	ErrUnknownToken         = errors.New("wbxml: unknown token")
	ErrUnsupportedAttribute = errors.New("wbxml: attributes are not supported")
	ErrMixedContent         = errors.New("wbxml: mixed text and element content")
	ErrInvalidOpaque        = errors.New("wbxml: invalid opaque value")
	ErrTooDeep              = errors.New("wbxml: element nesting too deep")
	ErrTrailingData         = errors.New("wbxml: trailing data after root element")
	ErrInvalidXML           = errors.New("wbxml: invalid xml")
)
