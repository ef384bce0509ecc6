package suite

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/models"
)

const (
	protocolHTTP = "MS-ASHTTP"
	protocolCMD  = "MS-ASCMD"

	folderTypeInbox = "2"
	statusSuccess   = "1"
)

// Default returns the smoke scenarios in run order.
func Default() []Scenario {
	return []Scenario{
		OptionsScenario{},
		ProvisionScenario{},
		FolderSyncScenario{},
		InboxSyncScenario{},
	}
}

// Select returns the named scenarios of the default catalog in the order
// given. An empty list selects all of them.
func Select(names []string) ([]Scenario, error) {
	all := Default()
	if len(names) == 0 {
		return all, nil
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		found := false
		for _, s := range all {
			if s.Name() == name {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
		}
	}
	return out, nil
}

// OptionsScenario checks that OPTIONS succeeds and advertises the protocol
// version of the session.
type OptionsScenario struct{}

func (OptionsScenario) Name() string { return "options" }

func (OptionsScenario) Requirement() models.Requirement {
	return models.Requirement{
		Protocol:    protocolHTTP,
		ID:          "options-protocol-versions",
		Description: "OPTIONS advertises the protocol version in MS-ASProtocolVersions",
	}
}

func (OptionsScenario) Run(ctx context.Context, client *activesync.Client, _ *State) error {
	opts, err := client.Options(ctx)
	if err != nil {
		return err
	}
	if opts.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: OPTIONS status %d", ErrCheckFailed, opts.StatusCode)
	}
	version := client.Session().ProtocolVersion
	if !opts.Supports(version) {
		return fmt.Errorf("%w: %s not in %q", ErrCheckFailed, version, strings.Join(opts.Versions, ","))
	}
	return nil
}

// ProvisionScenario runs the two-leg provisioning handshake.
type ProvisionScenario struct{}

func (ProvisionScenario) Name() string { return "provision" }

func (ProvisionScenario) Requirement() models.Requirement {
	return models.Requirement{
		Protocol:    protocolCMD,
		ID:          "provision-policy-key",
		Description: "Provision returns a policy key after the policy is acknowledged",
	}
}

func (ProvisionScenario) Run(ctx context.Context, client *activesync.Client, state *State) error {
	key, err := client.ProvisionDevice(ctx, nil)
	if err != nil {
		return err
	}
	state.PolicyKey = key
	return nil
}

// FolderSyncScenario checks an initial FolderSync and remembers the Inbox.
type FolderSyncScenario struct{}

func (FolderSyncScenario) Name() string { return "foldersync" }

func (FolderSyncScenario) Requirement() models.Requirement {
	return models.Requirement{
		Protocol:    protocolCMD,
		ID:          "foldersync-status",
		Description: "FolderSync with SyncKey 0 returns Status 1 and a new SyncKey",
	}
}

func (FolderSyncScenario) Run(ctx context.Context, client *activesync.Client, state *State) error {
	resp, err := client.FolderSync(ctx, &models.FolderSyncRequest{SyncKey: "0"})
	if err != nil {
		return err
	}
	if resp.Status != statusSuccess {
		return fmt.Errorf("%w: FolderSync status %q", ErrCheckFailed, resp.Status)
	}
	if resp.SyncKey == "" {
		return fmt.Errorf("%w: FolderSync returned no SyncKey", ErrCheckFailed)
	}
	state.FolderSyncKey = resp.SyncKey
	if inbox, ok := resp.FindByType(folderTypeInbox); ok {
		state.InboxID = inbox.ServerID
	}
	return nil
}

// InboxSyncScenario checks an initial Sync of the Inbox found by
// FolderSyncScenario.
type InboxSyncScenario struct{}

func (InboxSyncScenario) Name() string { return "sync-inbox" }

func (InboxSyncScenario) Requirement() models.Requirement {
	return models.Requirement{
		Protocol:    protocolCMD,
		ID:          "sync-inbox-status",
		Description: "Sync of the Inbox with SyncKey 0 returns Status 1 and a new SyncKey",
	}
}

func (InboxSyncScenario) Run(ctx context.Context, client *activesync.Client, state *State) error {
	if state.InboxID == "" {
		return fmt.Errorf("%w: no Inbox folder known", activesync.ErrPrecondition)
	}

	resp, err := client.Sync(ctx, &models.SyncRequest{
		Collections: []models.SyncCollection{{SyncKey: "0", CollectionID: state.InboxID}},
	}, false)
	if err != nil {
		return err
	}
	col := resp.Collection()
	if col == nil {
		return fmt.Errorf("%w: Sync returned no collection (status %q)", ErrCheckFailed, resp.Status)
	}
	if col.Status != statusSuccess {
		return fmt.Errorf("%w: Sync status %q", ErrCheckFailed, col.Status)
	}
	if col.SyncKey == "" || col.SyncKey == "0" {
		return fmt.Errorf("%w: Sync returned SyncKey %q", ErrCheckFailed, col.SyncKey)
	}
	return nil
}
