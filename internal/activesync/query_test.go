package activesync

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-suite/models"
)

func testSession() Session {
	return Session{
		DeviceID:        "dev1",
		DeviceType:      "SmartPhone",
		User:            "alice",
		ProtocolVersion: "14.1",
		Locale:          DefaultLocale,
		CompactQuery:    true,
	}
}

func TestCompactQuery_Bytes(t *testing.T) {
	var params models.Parameters
	params.Set(models.ParamItemID, "5:1")
	params.SetFlags(models.ParamOptions, models.OptionSaveInSent)

	got, dropped, err := compactQuery(testSession(), "12345678", models.CommandSmartReply, params)
	require.NoError(t, err)
	assert.False(t, dropped)

	want := []byte{141, 3, 0x09, 0x04, 4, 'd', 'e', 'v', '1', 4, 0x4E, 0x61, 0xBC, 0x00, 10}
	want = append(want, "SmartPhone"...)
	want = append(want, 3, 3, '5', ':', '1', 7, 1, 0x01)
	assert.Equal(t, want, got)
}

func TestCompactQuery_PolicyKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    []byte
		dropped bool
	}{
		{name: "numeric", key: "12345678", want: []byte{4, 0x4E, 0x61, 0xBC, 0x00}},
		{name: "unset", key: "", want: []byte{0}},
		{name: "not numeric", key: "abc", want: []byte{0}, dropped: true},
		{name: "too large", key: "99999999999", want: []byte{0}, dropped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped, err := compactQuery(testSession(), tt.key, models.CommandSync, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.dropped, dropped)
			// version, command, locale, device id length and device id
			offset := 5 + len("dev1")
			assert.Equal(t, tt.want, got[offset:offset+len(tt.want)])
		})
	}
}

func TestCompactQuery_ValueTooLong(t *testing.T) {
	var params models.Parameters
	params.Set(models.ParamLongID, string(make([]byte, 256)))
	_, _, err := compactQuery(testSession(), "", models.CommandSmartForward, params)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPlainQuery(t *testing.T) {
	var params models.Parameters
	params.Set(models.ParamItemID, "5:1")
	params.Set(models.ParamCollectionID, "5")
	params.SetFlags(models.ParamOptions, models.OptionSaveInSent|models.OptionAcceptMultiPart)

	got := plainQuery(testSession(), models.CommandSmartReply, params)
	assert.Equal(t,
		"Cmd=SmartReply&User=alice&DeviceId=dev1&DeviceType=SmartPhone&ItemId=5%3A1&CollectionId=5&SaveInSent=T",
		got)
}

func TestParseQuery_CompactRoundTrip(t *testing.T) {
	var params models.Parameters
	params.Set(models.ParamAttachmentName, "5:1:0")
	params.Set(models.ParamUser, "alice")

	req, err := BuildRequest(testSession(), "12345678", models.CommandGetAttachment, params, "",
		RequestOptions{AcceptMultiPart: true})
	require.NoError(t, err)
	require.True(t, req.Compact)

	q, err := ParseQuery(req.Query, req.Header)
	require.NoError(t, err)
	assert.True(t, q.Compact)
	assert.Equal(t, "14.1", q.ProtocolVersion)
	assert.Equal(t, models.CommandGetAttachment, q.Command)
	assert.Equal(t, DefaultLocale, q.Locale)
	assert.Equal(t, "dev1", q.DeviceID)
	assert.Equal(t, "SmartPhone", q.DeviceType)
	assert.Equal(t, "12345678", q.PolicyKey)
	assert.Equal(t, "alice", q.User)
	assert.True(t, q.AcceptMultiPart)

	name, ok := q.Parameters.Get(models.ParamAttachmentName)
	require.True(t, ok)
	assert.Equal(t, "5:1:0", name.Value)
}

func TestParseQuery_PlainRoundTrip(t *testing.T) {
	s := testSession()
	s.CompactQuery = false

	var params models.Parameters
	params.Set(models.ParamCollectionID, "7")
	req, err := BuildRequest(s, "99", models.CommandItemOperations, params, "", RequestOptions{AcceptMultiPart: true})
	require.NoError(t, err)
	assert.False(t, req.Compact)
	assert.Equal(t, "14.1", req.Header.Get(HeaderProtocolVersion))
	assert.Equal(t, "99", req.Header.Get(HeaderPolicyKey))
	assert.Equal(t, "T", req.Header.Get(HeaderAcceptMultiPart))

	q, err := ParseQuery(req.Query, req.Header)
	require.NoError(t, err)
	assert.False(t, q.Compact)
	assert.Equal(t, models.CommandItemOperations, q.Command)
	assert.Equal(t, "alice", q.User)
	assert.Equal(t, "dev1", q.DeviceID)
	assert.Equal(t, "99", q.PolicyKey)
	assert.True(t, q.AcceptMultiPart)
	p, ok := q.Parameters.Get(models.ParamCollectionID)
	require.True(t, ok)
	assert.Equal(t, "7", p.Value)
}

func TestParseCompactQuery_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "truncated device id", data: []byte{141, 0, 0x09, 0x04, 9, 'a'}},
		{name: "bad policy key length", data: []byte{141, 0, 0x09, 0x04, 0, 3, 1, 2, 3, 0}},
		{name: "unknown command", data: []byte{141, 200, 0x09, 0x04, 0, 0, 0}},
		{name: "truncated parameter", data: []byte{141, 0, 0x09, 0x04, 0, 0, 0, 1, 5, 'a'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCompactQuery(tt.data)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestParseQuery_BadBase64(t *testing.T) {
	_, err := ParseQuery(url.QueryEscape("not base64!"), nil)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestBuildRequest_CompactSyncWithPolicyKey(t *testing.T) {
	req, err := BuildRequest(testSession(), "12345678", models.CommandSync, nil,
		`<Sync xmlns="AirSync"><Collections><Collection><SyncKey>0</SyncKey><CollectionId>5</CollectionId></Collection></Collections></Sync>`,
		RequestOptions{})
	require.NoError(t, err)

	raw, err := url.QueryUnescape(req.Query)
	require.NoError(t, err)
	data, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)

	assert.Equal(t, byte(141), data[0])
	assert.Equal(t, byte(0), data[1])
	idx := 5 + len("dev1")
	assert.Equal(t, byte(4), data[idx])
	assert.Equal(t, []byte{0x4E, 0x61, 0xBC, 0x00}, data[idx+1:idx+5])
	assert.Empty(t, req.Header.Get(HeaderProtocolVersion))
	assert.Equal(t, ContentTypeWBXML, req.Header.Get("Content-Type"))
	assert.Equal(t, []byte{0x03, 0x01, 0x6A, 0x00}, req.Body[:4])
}
