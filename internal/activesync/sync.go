package activesync

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eas-suite/models"
)

const (
	commandsOpen  = "<Commands>"
	commandsClose = "</Commands>"

	// moreAvailableMarker is matched literally and case-sensitively against
	// the raw XML of a page. Other spellings such as <MoreAvailable/> end
	// paging.
	moreAvailableMarker = "<MoreAvailable />"
)

// Sync synchronizes the first collection of req. With resync set, pages are
// requested while the raw XML of a page carries moreAvailableMarker: the
// SyncKey of each page is carried into req, and the Commands of every page
// are merged into the returned response and into LastRawResponseXML. A page
// without a body or with a Status other than 1 is returned unchanged.
func (c *Client) Sync(ctx context.Context, req *models.SyncRequest, resync bool) (*models.SyncResponse, error) {
	if !resync {
		resp, _, err := invoke[models.SyncResponse](ctx, c, req, RequestOptions{})
		return resp, err
	}

	var (
		merged  models.SyncCommands
		rawCmds strings.Builder
		page    *models.SyncResponse
		lastXML string
		pages   int
		hasCmds bool
	)
	for {
		resp, raw, err := invoke[models.SyncResponse](ctx, c, req, RequestOptions{})
		if err != nil {
			return nil, err
		}
		pages++
		page, lastXML = resp, raw.XML

		col := page.Collection()
		if !page.Present() || col == nil || (col.Status != "" && col.Status != "1") {
			return page, nil
		}
		if col.SyncKey != "" && len(req.Collections) > 0 {
			req.Collections[0].SyncKey = col.SyncKey
		}
		if col.Commands != nil {
			hasCmds = true
			merged.Add = append(merged.Add, col.Commands.Add...)
			merged.Change = append(merged.Change, col.Commands.Change...)
			merged.Delete = append(merged.Delete, col.Commands.Delete...)
			merged.SoftDelete = append(merged.SoftDelete, col.Commands.SoftDelete...)
			rawCmds.WriteString(innerCommands(raw.XML))
		}
		if !strings.Contains(lastXML, moreAvailableMarker) {
			break
		}
		c.logger.Debug().
			Int("page", pages).
			Str("sync_key", col.SyncKey).
			Int("entries", col.Commands.Len()).
			Msg("more sync changes available")
	}

	if hasCmds {
		if col := page.Collection(); col != nil {
			col.Commands = &models.SyncCommands{
				Add:        merged.Add,
				Change:     merged.Change,
				Delete:     merged.Delete,
				SoftDelete: merged.SoftDelete,
			}
		}
		if strings.Contains(lastXML, commandsOpen) {
			c.lastResponseXML = replaceCommands(lastXML, rawCmds.String())
		}
	}
	return page, nil
}

// SyncEmail repeats req until an item with subject shows up among the Add or
// Change entries. With retry unset only one attempt is made.
func (c *Client) SyncEmail(ctx context.Context, req *models.SyncRequest, subject string, retry bool) (*models.SyncResponse, *models.SyncItem, error) {
	attempts := 1
	if retry {
		attempts = c.polling.RetryCount
	}

	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := sleep(ctx, c.polling.WaitTime); err != nil {
				return nil, nil, err
			}
		}
		resp, err := c.Sync(ctx, req, true)
		if err != nil {
			return nil, nil, err
		}
		if item, ok := resp.FindSubject(subject); ok {
			return resp, item, nil
		}
		c.logger.Debug().Int("attempt", i+1).Str("subject", subject).Msg("item not synced yet")
	}
	return nil, nil, fmt.Errorf("%w: no item with subject %q after %d attempts", ErrPollingExhausted, subject, attempts)
}

func innerCommands(doc string) string {
	start := strings.Index(doc, commandsOpen)
	end := strings.LastIndex(doc, commandsClose)
	if start < 0 || end < start {
		return ""
	}
	return doc[start+len(commandsOpen) : end]
}

func replaceCommands(doc, inner string) string {
	start := strings.Index(doc, commandsOpen)
	end := strings.LastIndex(doc, commandsClose)
	if start < 0 || end < start {
		return doc
	}
	return doc[:start+len(commandsOpen)] + inner + doc[end:]
}
