package activesync

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers failures to complete an HTTP exchange: connection
	// errors and non-2xx responses without a usable body.
	ErrTransport = errors.New("activesync: transport error")
	// ErrDecode covers response bodies that cannot be decoded: malformed
	// WBXML, truncated multipart headers, unknown charsets or XML that does
	// not fit the command's response type.
	ErrDecode = errors.New("activesync: cannot decode response")
	// ErrPrecondition marks a protocol assumption the SUT does not meet. A
	// scenario failing with it is skipped rather than failed.
	ErrPrecondition = errors.New("activesync: protocol precondition not met")
	// ErrPollingExhausted is returned when a polling loop used its whole
	// retry budget without reaching its stop condition.
	ErrPollingExhausted = errors.New("activesync: polling retries exhausted")
	// ErrResultCountExceeded is returned by Search when the server returns
	// more results than expected.
	ErrResultCountExceeded = errors.New("activesync: result count exceeds expected count")

	ErrUnauthorized         = errors.New("activesync: unauthorized")
	ErrForbidden            = errors.New("activesync: forbidden")
	ErrProvisioningRequired = errors.New("activesync: provisioning required")
	ErrServerError          = errors.New("activesync: server error")

	// ErrCommandStatus is returned by multi-step helpers when a command
	// answers with a Status other than success.
	ErrCommandStatus = errors.New("activesync: command returned a failure status")

	ErrInvalidSession = errors.New("activesync: invalid session")
	ErrInvalidRequest = errors.New("activesync: invalid request")
)

// TransportError is a non-2xx response without a usable body.
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("activesync: http %d %s", e.StatusCode, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is makes every TransportError match ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
