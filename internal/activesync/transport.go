package activesync

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/metrics"
	"github.com/MKhiriev/go-eas-suite/internal/utils"
)

// maxResponseBody bounds a Content-Length delimited body.
const maxResponseBody = 64 << 20

var errBodyTooLarge = errors.New("response body too large")

// HTTPTransportConfig configures the HTTP transport.
type HTTPTransportConfig struct {
	BaseURL            string
	AutodiscoverURL    string
	Domain             string
	Username           string
	Password           string
	Timeout            time.Duration
	UserAgent          string
	InsecureSkipVerify bool
}

type httpTransport struct {
	client          *utils.HTTPClient
	autodiscoverURL string
	logger          *logger.Logger
}

// NewHTTPTransport constructs the resty-based implementation of [Transport].
// AutodiscoverURL defaults to the autodiscover path on the base URL.
func NewHTTPTransport(cfg HTTPTransportConfig, logger *logger.Logger) (Transport, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("%w: empty base url", ErrInvalidSession)
	}
	autodiscover := cfg.AutodiscoverURL
	if autodiscover == "" {
		autodiscover = base + AutodiscoverPath
	}

	client := utils.NewConfiguredHTTPClient(utils.HTTPClientOptions{
		BaseURL:            base,
		Timeout:            cfg.Timeout,
		UserAgent:          cfg.UserAgent,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Domain:             cfg.Domain,
		Username:           cfg.Username,
		Password:           cfg.Password,
	})
	return &httpTransport{client: client, autodiscoverURL: autodiscover, logger: logger}, nil
}

// Send implements [Transport].
func (t *httpTransport) Send(ctx context.Context, req *RawRequest) (*RawResponse, error) {
	start := time.Now()
	r := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeaderMultiValues(req.Header)
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL())
	out, err := t.finish(resp, err)
	metrics.CommandObserve(ctx, req.Command.String(), req.Method, statusCode(out), err, start)
	return out, err
}

// Options implements [Transport].
func (t *httpTransport) Options(ctx context.Context) (*RawResponse, error) {
	start := time.Now()
	resp, err := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Options(EndpointPath)
	out, err := t.finish(resp, err)
	metrics.CommandObserve(ctx, "Options", http.MethodOptions, statusCode(out), err, start)
	return out, err
}

// Autodiscover implements [Transport].
func (t *httpTransport) Autodiscover(ctx context.Context, body, contentType string) (*RawResponse, error) {
	start := time.Now()
	resp, err := t.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Content-Type", contentType).
		SetBody([]byte(body)).
		Post(t.autodiscoverURL)
	out, err := t.finish(resp, err)
	metrics.CommandObserve(ctx, "Autodiscover", http.MethodPost, statusCode(out), err, start)
	return out, err
}

// finish reads and decodes the body of resp. The body is closed on every
// path.
func (t *httpTransport) finish(resp *resty.Response, err error) (*RawResponse, error) {
	if resp != nil && resp.RawResponse != nil && resp.RawResponse.Body != nil {
		defer resp.RawResponse.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	raw := resp.RawResponse
	data, err := readBody(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	out := &RawResponse{
		StatusCode: raw.StatusCode,
		Status:     statusText(raw),
		Header:     raw.Header,
		Body:       data,
	}

	contentType := raw.Header.Get("Content-Type")
	if httpErr := mapHTTPError(raw.StatusCode, out.Status, data); httpErr != nil {
		if len(data) == 0 || !isActiveSyncContent(contentType) {
			t.logger.Warn().Err(httpErr).Int("status", raw.StatusCode).Msg("non-2xx response without a usable body")
			return out, httpErr
		}
		t.logger.Debug().Int("status", raw.StatusCode).Msg("decoding body of non-2xx response")
	}

	if err := out.decode(contentType); err != nil {
		t.logger.Error().Err(err).Str("content_type", contentType).Int("bytes", len(data)).Msg("cannot decode response body")
		return out, err
	}
	return out, nil
}

// readBody reads a chunked body (or one of unknown length) to end of
// stream, and any other body for exactly Content-Length bytes. gzip content
// is inflated.
func readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}

	var (
		data []byte
		err  error
	)
	if isChunked(resp) || resp.ContentLength < 0 {
		data, err = io.ReadAll(resp.Body)
	} else {
		if resp.ContentLength > maxResponseBody {
			return nil, fmt.Errorf("%w: %d bytes", errBodyTooLarge, resp.ContentLength)
		}
		data = make([]byte, resp.ContentLength)
		_, err = io.ReadFull(resp.Body, data)
	}
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") && len(data) > 0 {
		return gunzip(data)
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func isChunked(resp *http.Response) bool {
	for _, te := range resp.TransferEncoding {
		if strings.EqualFold(te, "chunked") {
			return true
		}
	}
	return false
}

func statusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

func statusCode(resp *RawResponse) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
