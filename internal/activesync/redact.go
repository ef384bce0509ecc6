package activesync

import (
	"strconv"

	"github.com/MKhiriev/go-eas-suite/internal/wbxml"
)

// redactPictures replaces the Data payload of every Picture element with the
// decimal length of the payload and returns how many it replaced. With
// keepRedacted set, a value that is already a decimal number is taken as a
// length from an earlier pass and left alone. A tree fresh from the server
// is redacted with keepRedacted unset, so all-digit payloads are replaced
// too.
func redactPictures(root *wbxml.Node, keepRedacted bool) int {
	n := 0
	root.Walk(func(x *wbxml.Node) {
		if x.Name != "Picture" {
			return
		}
		for _, c := range x.Children {
			if c.Name != "Data" || c.Text == "" {
				continue
			}
			if !keepRedacted || !isDecimal(c.Text) {
				c.Text = strconv.Itoa(len(c.Text))
				n++
			}
		}
	})
	return n
}

// RedactPictures applies the picture redaction to an XML document that may
// already have been redacted. Applying it to its own output is a no-op.
func RedactPictures(doc string) (string, error) {
	root, err := wbxml.ParseXML(doc)
	if err != nil {
		return "", err
	}
	redactPictures(root, true)
	return root.String(), nil
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
