package client

import "errors"

// ErrRunFailed is returned by App.Run when at least one requirement failed.
var ErrRunFailed = errors.New("conformance run has failed requirements")
