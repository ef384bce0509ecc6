package activesync_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-eas-suite/internal/activesync"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/internal/mock"
	"github.com/MKhiriev/go-eas-suite/models"
)

func newTestClient(t *testing.T, retries int) (*activesync.Client, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)

	c, err := activesync.NewClient(activesync.Session{
		DeviceID:        "dev1",
		DeviceType:      "SmartPhone",
		User:            "alice",
		ProtocolVersion: "14.1",
		Locale:          activesync.DefaultLocale,
		CompactQuery:    true,
	}, tr, activesync.Polling{RetryCount: retries}, logger.Nop())
	require.NoError(t, err)
	return c, tr
}

func xmlResponse(doc string) *activesync.RawResponse {
	return &activesync.RawResponse{StatusCode: http.StatusOK, Header: http.Header{}, XML: doc}
}

func syncPage(syncKey string, more bool, subjects ...string) string {
	var b strings.Builder
	b.WriteString(`<Sync xmlns="AirSync"><Collections><Collection><Class>Email</Class>`)
	fmt.Fprintf(&b, `<SyncKey>%s</SyncKey><CollectionId>5</CollectionId><Status>1</Status>`, syncKey)
	if more {
		b.WriteString(`<MoreAvailable />`)
	}
	if len(subjects) > 0 {
		b.WriteString(`<Commands>`)
		for i, s := range subjects {
			fmt.Fprintf(&b, `<Add><ServerId>5:%s%d</ServerId><ApplicationData><Subject xmlns="Email">%s</Subject></ApplicationData></Add>`,
				syncKey, i, s)
		}
		b.WriteString(`</Commands>`)
	}
	b.WriteString(`</Collection></Collections></Sync>`)
	return b.String()
}

func inboxSync() *models.SyncRequest {
	return &models.SyncRequest{Collections: []models.SyncCollection{{
		SyncKey:      "0",
		CollectionID: "5",
		GetChanges:   &models.Empty{},
	}}}
}

func TestClient_SyncMergesPages(t *testing.T) {
	c, tr := newTestClient(t, 1)

	pages := []string{
		syncPage("1", true, "a", "b"),
		syncPage("2", true, "c", "d"),
		syncPage("3", false, "e", "f"),
	}
	var sentKeys []string
	call := 0
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
			assert.Equal(t, models.CommandSync, req.Command)
			start := strings.Index(req.XML, "<SyncKey>") + len("<SyncKey>")
			sentKeys = append(sentKeys, req.XML[start:start+1])
			resp := xmlResponse(pages[call])
			call++
			return resp, nil
		})

	req := inboxSync()
	resp, err := c.Sync(context.Background(), req, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2"}, sentKeys)
	assert.Equal(t, "3", req.Collections[0].SyncKey)

	col := resp.Collection()
	require.NotNil(t, col)
	assert.Equal(t, "3", col.SyncKey)
	require.Len(t, col.Commands.Add, 6)
	for i, want := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Equal(t, want, col.Commands.Add[i].ApplicationData.Subject())
	}

	last := c.LastRawResponseXML()
	assert.Equal(t, 6, strings.Count(last, "<Add>"))
	assert.Equal(t, 1, strings.Count(last, "<Commands>"))
	assert.Contains(t, last, "<SyncKey>3</SyncKey>")
	assert.NotContains(t, last, "<MoreAvailable />")
}

func TestClient_SyncWithoutResyncSendsOnce(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(syncPage("1", true, "a")), nil)

	resp, err := c.Sync(context.Background(), inboxSync(), false)
	require.NoError(t, err)
	assert.Len(t, resp.Collection().Commands.Add, 1)
	assert.NotNil(t, resp.Collection().MoreAvailable)
}

func TestClient_SyncStopsOnFailureStatus(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(
		`<Sync xmlns="AirSync"><Collections><Collection><SyncKey>0</SyncKey><CollectionId>5</CollectionId>`+
			`<Status>3</Status><MoreAvailable /></Collection></Collections></Sync>`), nil)

	resp, err := c.Sync(context.Background(), inboxSync(), true)
	require.NoError(t, err)
	assert.Equal(t, "3", resp.Collection().Status)
}

func TestClient_SyncLaterPageFailureReturnedUnchanged(t *testing.T) {
	c, tr := newTestClient(t, 1)

	failing := `<Sync xmlns="AirSync"><Collections><Collection><SyncKey>1</SyncKey><CollectionId>5</CollectionId>` +
		`<Status>3</Status><Commands><Delete><ServerId>5:9</ServerId></Delete></Commands>` +
		`</Collection></Collections></Sync>`
	gomock.InOrder(
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(syncPage("1", true, "a", "b")), nil),
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(failing), nil),
	)

	resp, err := c.Sync(context.Background(), inboxSync(), true)
	require.NoError(t, err)

	col := resp.Collection()
	require.NotNil(t, col)
	assert.Equal(t, "3", col.Status)
	require.NotNil(t, col.Commands)
	assert.Empty(t, col.Commands.Add)
	require.Len(t, col.Commands.Delete, 1)
	assert.Equal(t, "5:9", col.Commands.Delete[0].ServerID)
	assert.Equal(t, failing, c.LastRawResponseXML())
}

func TestClient_SyncMoreAvailableIsLiteral(t *testing.T) {
	c, tr := newTestClient(t, 1)

	page := strings.Replace(syncPage("1", true, "a"), "<MoreAvailable />", "<MoreAvailable/>", 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(1).Return(xmlResponse(page), nil)

	resp, err := c.Sync(context.Background(), inboxSync(), true)
	require.NoError(t, err)
	assert.Len(t, resp.Collection().Commands.Add, 1)
}

func TestClient_SyncEmptyBody(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(""), nil)

	resp, err := c.Sync(context.Background(), inboxSync(), true)
	require.NoError(t, err)
	assert.False(t, resp.Present())
	assert.Nil(t, resp.Collection())
}

func TestClient_SyncEmail(t *testing.T) {
	c, tr := newTestClient(t, 3)
	gomock.InOrder(
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(syncPage("1", false, "other")), nil),
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(syncPage("2", false, "wanted")), nil),
	)

	_, item, err := c.SyncEmail(context.Background(), inboxSync(), "wanted", true)
	require.NoError(t, err)
	assert.Equal(t, "5:20", item.ServerID)
}

func TestClient_SyncEmailExhausted(t *testing.T) {
	c, tr := newTestClient(t, 2)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(context.Context, *activesync.RawRequest) (*activesync.RawResponse, error) {
			return xmlResponse(syncPage("1", false)), nil
		})

	_, _, err := c.SyncEmail(context.Background(), inboxSync(), "missing", true)
	assert.ErrorIs(t, err, activesync.ErrPollingExhausted)
}

func TestClient_SyncEmailNoRetry(t *testing.T) {
	c, tr := newTestClient(t, 5)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(syncPage("1", false)), nil)

	_, _, err := c.SyncEmail(context.Background(), inboxSync(), "missing", false)
	assert.ErrorIs(t, err, activesync.ErrPollingExhausted)
}

func searchResponse(results ...string) string {
	return `<Search xmlns="Search"><Status>1</Status><Response><Store><Status>1</Status>` +
		strings.Join(results, "") + `</Store></Response></Search>`
}

const (
	emptyResult = `<Result />`
	classResult = `<Result><Class xmlns="AirSync">Email</Class><LongId>1</LongId></Result>`
	bareResult  = `<Result><LongId>2</LongId></Result>`
)

func galSearch() *models.SearchRequest {
	return &models.SearchRequest{Store: models.SearchStore{Name: "GAL", Query: *models.NewRawXML("alice")}}
}

func TestClient_Search(t *testing.T) {
	tests := []struct {
		name      string
		responses []string
		expected  int
		retries   int
		err       error
		calls     int
	}{
		{name: "no match signal", responses: []string{searchResponse(emptyResult)}, expected: 0, retries: 3, calls: 1},
		{name: "no results", responses: []string{searchResponse()}, expected: 0, retries: 3, calls: 1},
		{name: "one class among two", responses: []string{searchResponse(bareResult, classResult)}, expected: 2, retries: 3, calls: 1},
		{name: "exceeds expected", responses: []string{searchResponse(classResult, classResult)}, expected: 1, retries: 3, err: activesync.ErrResultCountExceeded, calls: 1},
		{
			name:      "settles on retry",
			responses: []string{searchResponse(emptyResult), searchResponse(classResult)},
			expected:  1,
			retries:   3,
			calls:     2,
		},
		{
			name:      "exhausted",
			responses: []string{searchResponse(bareResult), searchResponse(bareResult)},
			expected:  1,
			retries:   2,
			err:       activesync.ErrPollingExhausted,
			calls:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newTestClient(t, tt.retries)
			call := 0
			tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(tt.calls).
				DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
					assert.Equal(t, models.CommandSearch, req.Command)
					resp := xmlResponse(tt.responses[call])
					call++
					return resp, nil
				})

			_, err := c.Search(context.Background(), galSearch(), true, tt.expected)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClient_SearchWithoutLoop(t *testing.T) {
	c, tr := newTestClient(t, 5)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Return(xmlResponse(searchResponse(bareResult)), nil)

	_, err := c.Search(context.Background(), galSearch(), false, 1)
	assert.ErrorIs(t, err, activesync.ErrPollingExhausted)
}

func TestClient_ProvisionDevice(t *testing.T) {
	c, tr := newTestClient(t, 1)
	gomock.InOrder(
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
				assert.Empty(t, req.PolicyKey)
				assert.NotContains(t, req.XML, "<PolicyKey>")
				return xmlResponse(`<Provision xmlns="Provision"><Status>1</Status><Policies><Policy>` +
					`<PolicyType>MS-EAS-Provisioning-WBXML</PolicyType><Status>1</Status><PolicyKey>111</PolicyKey>` +
					`</Policy></Policies></Provision>`), nil
			}),
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
				assert.Equal(t, "111", req.PolicyKey)
				assert.Contains(t, req.XML, "<PolicyKey>111</PolicyKey>")
				return xmlResponse(`<Provision xmlns="Provision"><Status>1</Status><Policies><Policy>` +
					`<PolicyType>MS-EAS-Provisioning-WBXML</PolicyType><Status>1</Status><PolicyKey>222</PolicyKey>` +
					`</Policy></Policies></Provision>`), nil
			}),
	)

	key, err := c.ProvisionDevice(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "222", key)
	assert.Equal(t, "222", c.PolicyKey())
}

func TestClient_ProvisionDeviceFailureStatus(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(xmlResponse(`<Provision xmlns="Provision"><Status>2</Status></Provision>`), nil)

	_, err := c.ProvisionDevice(context.Background(), nil)
	assert.ErrorIs(t, err, activesync.ErrCommandStatus)
	assert.Empty(t, c.PolicyKey())
}

func TestClient_ItemOperationsParts(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
			q, err := activesync.ParseQuery(req.Query, req.Header)
			require.NoError(t, err)
			assert.True(t, q.AcceptMultiPart)

			resp := xmlResponse(`<ItemOperations xmlns="ItemOperations"><Status>1</Status><Response><Fetch>` +
				`<Status>1</Status><Properties><Part>1</Part></Properties></Fetch></Response></ItemOperations>`)
			resp.Parts = [][]byte{[]byte("payload")}
			return resp, nil
		})

	resp, err := c.ItemOperations(context.Background(), &models.ItemOperationsRequest{
		Fetches: []models.ItemOperationsFetch{{Store: "Mailbox", FileReference: "5:1:0"}},
	}, true)
	require.NoError(t, err)
	require.Len(t, resp.Fetches, 1)
	assert.Equal(t, "1", resp.Fetches[0].Status)
	assert.Equal(t, [][]byte{[]byte("payload")}, resp.Parts)
}

func TestClient_GetAttachment(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
			assert.Equal(t, models.CommandGetAttachment, req.Command)
			assert.Empty(t, req.Body)
			return &activesync.RawResponse{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"image/png"}},
				Body:       []byte{0x89, 'P', 'N', 'G'},
				XML:        "�PNG",
			}, nil
		})

	resp, err := c.GetAttachment(context.Background(), &models.GetAttachmentRequest{AttachmentName: "5:1:0"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, resp.Data)
	assert.Empty(t, c.LastRawResponseXML())
}

func TestClient_OptionsAndRequireProtocolVersion(t *testing.T) {
	c, tr := newTestClient(t, 1)
	resp := &activesync.RawResponse{StatusCode: http.StatusOK, Header: http.Header{}}
	resp.Header.Set(activesync.HeaderProtocolVersions, "12.1, 14.0,14.1")
	resp.Header.Set("MS-ASProtocolCommands", "Sync,FolderSync")
	tr.EXPECT().Options(gomock.Any()).Return(resp, nil).Times(3)

	opts, err := c.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"12.1", "14.0", "14.1"}, opts.Versions)
	assert.Equal(t, []string{"Sync", "FolderSync"}, opts.Commands)

	require.NoError(t, c.RequireProtocolVersion(context.Background(), "14.1"))
	err = c.RequireProtocolVersion(context.Background(), "16.1")
	assert.ErrorIs(t, err, activesync.ErrPrecondition)
}

func TestClient_Autodiscover(t *testing.T) {
	c, tr := newTestClient(t, 1)
	tr.EXPECT().Autodiscover(gomock.Any(), gomock.Any(), activesync.ContentTypeXML).
		DoAndReturn(func(_ context.Context, body, _ string) (*activesync.RawResponse, error) {
			assert.Contains(t, body, "alice@example.com")
			return xmlResponse(`<?xml version="1.0" encoding="utf-8"?>` +
				`<Autodiscover xmlns="http://schemas.microsoft.com/exchange/autodiscover/responseschema/2006">` +
				`<Response xmlns="http://schemas.microsoft.com/exchange/autodiscover/mobilesync/responseschema/2006">` +
				`<Action><Settings><Server><Type>MobileSync</Type><Url>https://mail.example.com/Microsoft-Server-ActiveSync</Url>` +
				`</Server></Settings></Action></Response></Autodiscover>`), nil
		})

	resp, err := c.Autodiscover(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com/Microsoft-Server-ActiveSync", resp.MobileSyncURL())
	assert.Contains(t, c.LastRawRequestXML(), "alice@example.com")
}

func TestClient_Errors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		c, tr := newTestClient(t, 1)
		raw := &activesync.RawResponse{StatusCode: http.StatusForbidden, Header: http.Header{}}
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(raw, &activesync.TransportError{StatusCode: http.StatusForbidden, Err: activesync.ErrForbidden})

		_, err := c.FolderSync(context.Background(), &models.FolderSyncRequest{SyncKey: "0"})
		assert.ErrorIs(t, err, activesync.ErrTransport)
		assert.ErrorIs(t, err, activesync.ErrForbidden)
		assert.Contains(t, c.LastRawRequestXML(), "<SyncKey>0</SyncKey>")
	})

	t.Run("decode", func(t *testing.T) {
		c, tr := newTestClient(t, 1)
		tr.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(xmlResponse(`<Sync xmlns="AirSync"><Collections>`), nil)

		_, err := c.Sync(context.Background(), inboxSync(), false)
		assert.ErrorIs(t, err, activesync.ErrDecode)
		assert.Equal(t, `<Sync xmlns="AirSync"><Collections>`, c.LastRawResponseXML())
	})

	t.Run("invalid request", func(t *testing.T) {
		c, _ := newTestClient(t, 1)
		_, err := c.Sync(context.Background(), &models.SyncRequest{}, false)
		assert.ErrorIs(t, err, activesync.ErrInvalidRequest)
	})

	t.Run("invalid session", func(t *testing.T) {
		_, err := activesync.NewClient(activesync.Session{}, nil, activesync.Polling{}, logger.Nop())
		assert.ErrorIs(t, err, activesync.ErrInvalidSession)
	})
}

func TestClient_NonNumericPolicyKey(t *testing.T) {
	c, tr := newTestClient(t, 1)
	c.SetPolicyKey("not-a-number")
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
			assert.True(t, req.PolicyKeyDropped)
			q, err := activesync.ParseQuery(req.Query, req.Header)
			require.NoError(t, err)
			assert.Empty(t, q.PolicyKey)
			return xmlResponse(syncPage("1", false)), nil
		})

	_, err := c.Sync(context.Background(), inboxSync(), false)
	require.NoError(t, err)
}

func TestClient_SendMailFillsClientID(t *testing.T) {
	c, tr := newTestClient(t, 1)
	var sent string
	tr.EXPECT().Send(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, req *activesync.RawRequest) (*activesync.RawResponse, error) {
			sent = req.XML
			return xmlResponse(""), nil
		})

	req := &models.SendMailRequest{Mime: models.Mime{Text: "Subject: hi\r\n\r\nbody"}}
	resp, err := c.SendMail(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Present())
	require.NotEmpty(t, req.ClientID)
	assert.Contains(t, sent, "<ClientId>"+req.ClientID+"</ClientId>")

	fixed := &models.SendMailRequest{ClientID: "42", Mime: models.Mime{Text: "x"}}
	_, err = c.SendMail(context.Background(), fixed)
	require.NoError(t, err)
	assert.Equal(t, "42", fixed.ClientID)
	assert.Contains(t, sent, "<ClientId>42</ClientId>")
}
