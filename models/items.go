package models

import "encoding/xml"

// MoveItemsRequest moves items between folders (Move namespace).
type MoveItemsRequest struct {
	XMLName xml.Name `xml:"Move MoveItems"`
	Moves   []Move   `xml:"Move"`
}

type Move struct {
	SrcMsgID string `xml:"SrcMsgId"`
	SrcFldID string `xml:"SrcFldId"`
	DstFldID string `xml:"DstFldId"`
}

func (r *MoveItemsRequest) Command() Command { return CommandMoveItems }

func (r *MoveItemsRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type MoveItemsResponse struct {
	Payload
	XMLName   xml.Name       `xml:"Move MoveItems"`
	Responses []MoveResponse `xml:"Response"`
}

type MoveResponse struct {
	SrcMsgID string `xml:"SrcMsgId"`
	Status   string `xml:"Status"`
	DstMsgID string `xml:"DstMsgId"`
}

func (r *MoveItemsResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// GetItemEstimateRequest asks how many items a Sync would return.
type GetItemEstimateRequest struct {
	XMLName     xml.Name                    `xml:"GetItemEstimate GetItemEstimate"`
	Collections []GetItemEstimateCollection `xml:"Collections>Collection"`
}

type GetItemEstimateCollection struct {
	SyncKey          string       `xml:"AirSync SyncKey"`
	CollectionID     string       `xml:"CollectionId"`
	ConversationMode string       `xml:"AirSync ConversationMode,omitempty"`
	Options          *SyncOptions `xml:"AirSync Options,omitempty"`
}

func (r *GetItemEstimateRequest) Command() Command { return CommandGetItemEstimate }

func (r *GetItemEstimateRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type GetItemEstimateResponse struct {
	Payload
	XMLName   xml.Name                      `xml:"GetItemEstimate GetItemEstimate"`
	Status    string                        `xml:"Status"`
	Responses []GetItemEstimateResponseItem `xml:"Response"`
}

type GetItemEstimateResponseItem struct {
	Status     string `xml:"Status"`
	Collection struct {
		CollectionID string `xml:"CollectionId"`
		Estimate     string `xml:"Estimate"`
	} `xml:"Collection"`
}

func (r *GetItemEstimateResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// MeetingResponseRequest accepts, tentatively accepts or declines meeting
// requests (UserResponse 1, 2, 3).
type MeetingResponseRequest struct {
	XMLName  xml.Name                `xml:"MeetingResponse MeetingResponse"`
	Requests []MeetingResponseTarget `xml:"Request"`
}

type MeetingResponseTarget struct {
	UserResponse string `xml:"UserResponse"`
	CollectionID string `xml:"CollectionId,omitempty"`
	RequestID    string `xml:"RequestId,omitempty"`
	LongID       string `xml:"Search LongId,omitempty"`
	InstanceID   string `xml:"InstanceId,omitempty"`
}

func (r *MeetingResponseRequest) Command() Command { return CommandMeetingResponse }

func (r *MeetingResponseRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type MeetingResponseResponse struct {
	Payload
	XMLName xml.Name                `xml:"MeetingResponse MeetingResponse"`
	Results []MeetingResponseResult `xml:"Result"`
}

type MeetingResponseResult struct {
	RequestID  string `xml:"RequestId"`
	Status     string `xml:"Status"`
	CalendarID string `xml:"CalendarId"`
}

func (r *MeetingResponseResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// ItemOperationsRequest fetches items or attachments, or empties a folder.
type ItemOperationsRequest struct {
	XMLName             xml.Name              `xml:"ItemOperations ItemOperations"`
	EmptyFolderContents *EmptyFolderContents  `xml:"EmptyFolderContents,omitempty"`
	Fetches             []ItemOperationsFetch `xml:"Fetch"`
	Moves               []ItemOperationsMove  `xml:"Move"`
}

type EmptyFolderContents struct {
	CollectionID     string `xml:"AirSync CollectionId"`
	DeleteSubFolders *Empty `xml:"Options>DeleteSubFolders,omitempty"`
}

type ItemOperationsFetch struct {
	Store         string                 `xml:"Store"`
	ServerID      string                 `xml:"AirSync ServerId,omitempty"`
	CollectionID  string                 `xml:"AirSync CollectionId,omitempty"`
	LongID        string                 `xml:"Search LongId,omitempty"`
	FileReference string                 `xml:"AirSyncBase FileReference,omitempty"`
	Options       *ItemOperationsOptions `xml:"Options,omitempty"`
}

type ItemOperationsOptions struct {
	Schema         *RawXML          `xml:"Schema,omitempty"`
	Range          string           `xml:"Range,omitempty"`
	MIMESupport    string           `xml:"AirSync MIMESupport,omitempty"`
	BodyPreference []BodyPreference `xml:"AirSyncBase BodyPreference,omitempty"`
}

type ItemOperationsMove struct {
	ConversationID string `xml:"ConversationId"`
	DstFldID       string `xml:"DstFldId"`
}

func (r *ItemOperationsRequest) Command() Command { return CommandItemOperations }

func (r *ItemOperationsRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type ItemOperationsResponse struct {
	Payload
	XMLName xml.Name                    `xml:"ItemOperations ItemOperations"`
	Status  string                      `xml:"Status"`
	Fetches []ItemOperationsFetchResult `xml:"Response>Fetch"`
	Empties []ItemOperationsStatus      `xml:"Response>EmptyFolderContents"`
	Moves   []ItemOperationsStatus      `xml:"Response>Move"`

	// Parts holds the binary parts following the XML part of a multipart
	// response, in order.
	Parts [][]byte `xml:"-"`
}

type ItemOperationsFetchResult struct {
	Status        string  `xml:"Status"`
	ServerID      string  `xml:"AirSync ServerId"`
	CollectionID  string  `xml:"AirSync CollectionId"`
	LongID        string  `xml:"Search LongId"`
	FileReference string  `xml:"AirSyncBase FileReference"`
	Class         string  `xml:"AirSync Class"`
	Properties    *RawXML `xml:"Properties"`
}

type ItemOperationsStatus struct {
	Status         string `xml:"Status"`
	CollectionID   string `xml:"AirSync CollectionId"`
	ConversationID string `xml:"ConversationId"`
}

func (r *ItemOperationsResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// SetParts implements [PartsReceiver].
func (r *ItemOperationsResponse) SetParts(parts [][]byte) {
	r.Parts = parts
}
