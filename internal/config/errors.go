package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSUTConfigs indicates a missing or malformed SUT base URL,
	// or a non-positive request timeout.
	ErrInvalidSUTConfigs = errors.New("invalid sut configuration")
	// ErrInvalidDeviceConfigs indicates a missing device id or type, or a
	// protocol version the suite does not know.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidPollingConfigs indicates a retry count below one or a
	// negative wait time.
	ErrInvalidPollingConfigs = errors.New("invalid polling configuration")
	// ErrInvalidStorageConfigs indicates an unusable capture DSN, such as an
	// in-memory SQLite database that would vanish with the process.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSuiteConfigs indicates an unknown log level.
	ErrInvalidSuiteConfigs = errors.New("invalid suite configuration")
)
