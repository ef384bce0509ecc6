package activesync

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// statusProvisioningRequired is the Exchange specific "Retry With" status
// sent when the device must run Provision first.
const statusProvisioningRequired = 449

const maxErrorBody = 512

func mapHTTPError(code int, status string, body []byte) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	e := &TransportError{StatusCode: code, Status: status, Body: errorBody(body)}
	switch {
	case code == http.StatusUnauthorized:
		e.Err = ErrUnauthorized
	case code == http.StatusForbidden:
		e.Err = ErrForbidden
	case code == statusProvisioningRequired:
		e.Err = ErrProvisioningRequired
	case code >= http.StatusInternalServerError:
		e.Err = ErrServerError
	}
	return e
}

func errorBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
		for !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
		s += "..."
	}
	return s
}
