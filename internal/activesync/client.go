package activesync

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/models"
)

const tracerName = "github.com/MKhiriev/go-eas-suite/internal/activesync"

// Polling bounds the retry loops of SyncEmail and Search.
type Polling struct {
	WaitTime   time.Duration
	RetryCount int
}

// Client exposes one typed method per ActiveSync command. It holds a single
// device session and is not safe for concurrent use.
type Client struct {
	session   Session
	transport Transport
	polling   Polling
	logger    *logger.Logger
	tracer    trace.Tracer

	policyKey       string
	lastRequestXML  string
	lastResponseXML string
}

// NewClient constructs a Client for session over transport.
func NewClient(session Session, transport Transport, polling Polling, logger *logger.Logger) (*Client, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if transport == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrInvalidSession)
	}
	if polling.RetryCount < 1 {
		polling.RetryCount = 1
	}
	return &Client{
		session:   session,
		transport: transport,
		polling:   polling,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}, nil
}

// Session returns the session the client was built with.
func (c *Client) Session() Session {
	return c.session
}

// SetPolicyKey stores the policy key sent with every following request.
func (c *Client) SetPolicyKey(key string) {
	c.policyKey = key
}

// PolicyKey returns the current policy key.
func (c *Client) PolicyKey() string {
	return c.policyKey
}

// LastRawRequestXML returns the XML of the last request sent, after elision.
func (c *Client) LastRawRequestXML() string {
	return c.lastRequestXML
}

// LastRawResponseXML returns the decoded XML of the last response. After a
// paging Sync it holds the final page with the Commands of every page.
func (c *Client) LastRawResponseXML() string {
	return c.lastResponseXML
}

// invoke sends req and binds the decoded body to a new Resp.
func invoke[Resp any, PResp interface {
	*Resp
	models.CommandResponse
}](ctx context.Context, c *Client, req models.CommandRequest, opts RequestOptions) (PResp, *RawResponse, error) {
	cmd := req.Command()
	ctx, span := c.startSpan(ctx, cmd.String())
	var err error
	defer func() { endSpan(span, err) }()

	raw, err := c.send(ctx, req, opts)
	if err != nil {
		return nil, raw, err
	}

	out := PResp(new(Resp))
	if err = out.FromRaw(raw.XML); err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrDecode, cmd, err)
		return nil, raw, err
	}
	if pr, ok := any(out).(models.PartsReceiver); ok && len(raw.Parts) > 0 {
		pr.SetParts(raw.Parts)
	}
	return out, raw, nil
}

func (c *Client) send(ctx context.Context, req models.CommandRequest, opts RequestOptions) (*RawResponse, error) {
	cmd := req.Command()
	body, params, err := req.ToRawBody()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRequest, cmd, err)
	}

	raw, err := BuildRequest(c.session, c.policyKey, cmd, params, body, opts)
	if err != nil {
		return nil, err
	}
	if raw.PolicyKeyDropped {
		c.logger.Warn().
			Str("command", cmd.String()).
			Str("policy_key", c.policyKey).
			Msg("policy key is not numeric, sent with length 0")
	}

	c.lastRequestXML = raw.XML
	c.lastResponseXML = ""

	resp, err := c.transport.Send(ctx, raw)
	if resp != nil {
		c.lastResponseXML = resp.XML
	}
	if err != nil {
		c.logger.Error().Err(err).Str("command", cmd.String()).Msg("command failed")
		return resp, err
	}
	return resp, nil
}

func (c *Client) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "activesync."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("activesync.command", name),
			attribute.String("activesync.protocol_version", c.session.ProtocolVersion),
			attribute.Bool("activesync.compact_query", c.session.CompactQuery),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// sleep waits d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
