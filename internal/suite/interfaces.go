// Package suite runs the smoke scenarios against an ActiveSync server and
// records one requirement verdict per scenario.
//
// It defines the Scenario interface and a Runner that executes scenarios in
// order against a single client session.
package suite

import (
	"context"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/models"
)

// Scenario is one check of the suite.
//
// Run returns nil when the requirement holds, an error wrapping
// [activesync.ErrPrecondition] when the server cannot be checked, and any
// other error when the requirement is violated.
//
// Example implementation:
//
//	type pingScenario struct{}
//
//	func (pingScenario) Name() string { return "ping" }
//
//	func (pingScenario) Requirement() models.Requirement {
//	    return models.Requirement{Protocol: "MS-ASCMD", ID: "ping-status"}
//	}
//
//	func (pingScenario) Run(ctx context.Context, c *activesync.Client, s *State) error {
//	    // send Ping, inspect Status
//	}
type Scenario interface {
	Name() string
	Requirement() models.Requirement
	Run(ctx context.Context, client *activesync.Client, state *State) error
}

// State is shared between the scenarios of one run. Later scenarios read
// what earlier ones discovered.
type State struct {
	PolicyKey     string
	FolderSyncKey string
	InboxID       string
}
