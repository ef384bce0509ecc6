package activesync

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/utils"
	"github.com/MKhiriev/go-eas-suite/models"
)

// FolderSync synchronizes the folder hierarchy. It is always framed with a
// plain-text query.
func (c *Client) FolderSync(ctx context.Context, req *models.FolderSyncRequest) (*models.FolderSyncResponse, error) {
	resp, _, err := invoke[models.FolderSyncResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// FolderCreate creates a folder.
func (c *Client) FolderCreate(ctx context.Context, req *models.FolderCreateRequest) (*models.FolderCreateResponse, error) {
	resp, _, err := invoke[models.FolderCreateResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// FolderDelete deletes a folder.
func (c *Client) FolderDelete(ctx context.Context, req *models.FolderDeleteRequest) (*models.FolderDeleteResponse, error) {
	resp, _, err := invoke[models.FolderDeleteResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// FolderUpdate renames or moves a folder.
func (c *Client) FolderUpdate(ctx context.Context, req *models.FolderUpdateRequest) (*models.FolderUpdateResponse, error) {
	resp, _, err := invoke[models.FolderUpdateResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// GetItemEstimate asks for the number of items a Sync would return.
func (c *Client) GetItemEstimate(ctx context.Context, req *models.GetItemEstimateRequest) (*models.GetItemEstimateResponse, error) {
	resp, _, err := invoke[models.GetItemEstimateResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// ItemOperations fetches items, attachments or documents. With multiPart
// set the server may answer with a multipart body, whose binary parts are
// returned in the response Parts.
func (c *Client) ItemOperations(ctx context.Context, req *models.ItemOperationsRequest, multiPart bool) (*models.ItemOperationsResponse, error) {
	resp, _, err := invoke[models.ItemOperationsResponse](ctx, c, req, RequestOptions{AcceptMultiPart: multiPart})
	return resp, err
}

// MeetingResponse answers meeting requests.
func (c *Client) MeetingResponse(ctx context.Context, req *models.MeetingResponseRequest) (*models.MeetingResponseResponse, error) {
	resp, _, err := invoke[models.MeetingResponseResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// MoveItems moves items between folders.
func (c *Client) MoveItems(ctx context.Context, req *models.MoveItemsRequest) (*models.MoveItemsResponse, error) {
	resp, _, err := invoke[models.MoveItemsResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// Ping waits for changes in a set of folders.
func (c *Client) Ping(ctx context.Context, req *models.PingRequest) (*models.PingResponse, error) {
	resp, _, err := invoke[models.PingResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// Provision runs one leg of the provisioning handshake. The policy key is
// not changed; see ProvisionDevice.
func (c *Client) Provision(ctx context.Context, req *models.ProvisionRequest) (*models.ProvisionResponse, error) {
	resp, _, err := invoke[models.ProvisionResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// ProvisionDevice downloads the WBXML policy, acknowledges it and stores
// the final policy key on the client.
func (c *Client) ProvisionDevice(ctx context.Context, info *models.DeviceInformation) (string, error) {
	first, err := c.Provision(ctx, &models.ProvisionRequest{
		DeviceInformation: info,
		Policies:          []models.ProvisionPolicy{{PolicyType: models.PolicyTypeWBXML}},
	})
	if err != nil {
		return "", err
	}
	if first.Status != "1" || first.PolicyKey() == "" {
		return "", fmt.Errorf("%w: Provision status %q", ErrCommandStatus, first.Status)
	}
	c.SetPolicyKey(first.PolicyKey())

	second, err := c.Provision(ctx, &models.ProvisionRequest{
		Policies: []models.ProvisionPolicy{{
			PolicyType: models.PolicyTypeWBXML,
			PolicyKey:  first.PolicyKey(),
			Status:     "1",
		}},
	})
	if err != nil {
		return "", err
	}
	if second.Status != "1" || second.PolicyKey() == "" {
		return "", fmt.Errorf("%w: Provision acknowledgement status %q", ErrCommandStatus, second.Status)
	}
	c.SetPolicyKey(second.PolicyKey())

	c.logger.Info().Str("policy_key", second.PolicyKey()).Msg("device provisioned")
	return second.PolicyKey(), nil
}

// ResolveRecipients resolves recipient names.
func (c *Client) ResolveRecipients(ctx context.Context, req *models.ResolveRecipientsRequest) (*models.ResolveRecipientsResponse, error) {
	resp, _, err := invoke[models.ResolveRecipientsResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// SendMail submits a message. Before protocol 14.0 only the MIME payload is
// sent, as message/rfc822. An empty ClientId is filled in on req.
func (c *Client) SendMail(ctx context.Context, req *models.SendMailRequest) (*models.ComposeMailResponse, error) {
	fillClientID(&req.ClientID)
	resp, _, err := invoke[models.ComposeMailResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// SmartForward forwards a message.
func (c *Client) SmartForward(ctx context.Context, req *models.SmartForwardRequest) (*models.ComposeMailResponse, error) {
	fillClientID(&req.ClientID)
	resp, _, err := invoke[models.ComposeMailResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// SmartReply replies to a message.
func (c *Client) SmartReply(ctx context.Context, req *models.SmartReplyRequest) (*models.ComposeMailResponse, error) {
	fillClientID(&req.ClientID)
	resp, _, err := invoke[models.ComposeMailResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// Settings gets or sets user and device settings.
func (c *Client) Settings(ctx context.Context, req *models.SettingsRequest) (*models.SettingsResponse, error) {
	resp, _, err := invoke[models.SettingsResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// ValidateCert asks the server to validate certificates.
func (c *Client) ValidateCert(ctx context.Context, req *models.ValidateCertRequest) (*models.ValidateCertResponse, error) {
	resp, _, err := invoke[models.ValidateCertResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// Find searches the mailbox or the GAL (protocol 16.1).
func (c *Client) Find(ctx context.Context, req *models.FindRequest) (*models.FindResponse, error) {
	resp, _, err := invoke[models.FindResponse](ctx, c, req, RequestOptions{})
	return resp, err
}

// GetAttachment downloads an attachment. The body is returned as received
// and is not kept as the last response XML.
func (c *Client) GetAttachment(ctx context.Context, req *models.GetAttachmentRequest) (*models.GetAttachmentResponse, error) {
	ctx, span := c.startSpan(ctx, models.CommandGetAttachment.String())
	raw, err := c.send(ctx, req, RequestOptions{})
	endSpan(span, err)
	c.lastResponseXML = ""
	if err != nil {
		return nil, err
	}
	return &models.GetAttachmentResponse{ContentType: raw.ContentType(), Data: raw.Body}, nil
}

// Autodiscover looks up the ActiveSync URL of email. The request is plain
// XML.
func (c *Client) Autodiscover(ctx context.Context, email string) (*models.AutodiscoverResponse, error) {
	ctx, span := c.startSpan(ctx, "Autodiscover")
	var err error
	defer func() { endSpan(span, err) }()

	body, err := models.NewAutodiscoverRequest(email).ToXML()
	if err != nil {
		return nil, err
	}
	c.lastRequestXML = body
	c.lastResponseXML = ""

	raw, err := c.transport.Autodiscover(ctx, body, ContentTypeXML)
	if raw != nil {
		c.lastResponseXML = raw.XML
	}
	if err != nil {
		return nil, err
	}

	out := &models.AutodiscoverResponse{}
	if err = out.FromRaw(raw.XML); err != nil {
		err = fmt.Errorf("%w: Autodiscover: %w", ErrDecode, err)
		return nil, err
	}
	return out, nil
}

// ServerOptions is what an OPTIONS request advertises.
type ServerOptions struct {
	StatusCode int
	Versions   []string
	Commands   []string
}

// Supports reports whether version is advertised.
func (o *ServerOptions) Supports(version string) bool {
	return slices.Contains(o.Versions, version)
}

// Options queries the protocol versions and commands the server supports.
func (c *Client) Options(ctx context.Context) (*ServerOptions, error) {
	ctx, span := c.startSpan(ctx, "Options")
	raw, err := c.transport.Options(ctx)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return &ServerOptions{
		StatusCode: raw.StatusCode,
		Versions:   splitHeaderList(raw.Header.Get(HeaderProtocolVersions)),
		Commands:   splitHeaderList(raw.Header.Get(HeaderProtocolCommands)),
	}, nil
}

// RequireProtocolVersion fails with ErrPrecondition unless the server
// advertises version.
func (c *Client) RequireProtocolVersion(ctx context.Context, version string) error {
	opts, err := c.Options(ctx)
	if err != nil {
		return err
	}
	if !opts.Supports(version) {
		return fmt.Errorf("%w: server does not support protocol %s (has %s)",
			ErrPrecondition, version, strings.Join(opts.Versions, ","))
	}
	return nil
}

func splitHeaderList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// fillClientID sets a unique ClientId, which the server uses to detect
// duplicate submissions.
func fillClientID(id *string) {
	if *id == "" {
		*id = utils.NewUUIDGenerator().Generate()
	}
}
