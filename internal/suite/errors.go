package suite

import "errors"

var (
	// ErrCheckFailed marks a response that does not meet the requirement.
	ErrCheckFailed = errors.New("suite: check failed")
	// ErrUnknownScenario is returned by Select for a name that is not in
	// the catalog.
	ErrUnknownScenario = errors.New("suite: unknown scenario")
)
