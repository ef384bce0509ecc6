// Package config provides configuration loading, merging, and validation
// for the conformance suite.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (comments and trailing commas allowed)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. The [StructuredConfig]
// accessors translate the result into activesync session and transport
// settings.
package config
