package models

import "encoding/xml"

// Folder is one folder of the hierarchy (FolderHierarchy namespace).
type Folder struct {
	ServerID    string `xml:"ServerId"`
	ParentID    string `xml:"ParentId"`
	DisplayName string `xml:"DisplayName"`
	Type        string `xml:"Type"`
}

// FolderSyncRequest synchronizes the folder hierarchy.
type FolderSyncRequest struct {
	XMLName xml.Name `xml:"FolderHierarchy FolderSync"`
	SyncKey string   `xml:"SyncKey"`
}

func (r *FolderSyncRequest) Command() Command { return CommandFolderSync }

func (r *FolderSyncRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

// FolderSyncResponse lists hierarchy changes since the request sync key.
type FolderSyncResponse struct {
	Payload
	XMLName xml.Name       `xml:"FolderHierarchy FolderSync"`
	Status  string         `xml:"Status"`
	SyncKey string         `xml:"SyncKey"`
	Changes *FolderChanges `xml:"Changes"`
}

// FolderChanges are the hierarchy changes of a FolderSync response.
type FolderChanges struct {
	Count  string   `xml:"Count"`
	Update []Folder `xml:"Update"`
	Delete []Folder `xml:"Delete"`
	Add    []Folder `xml:"Add"`
}

func (r *FolderSyncResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// FindByType returns the first added folder of the given type, e.g. "2" for
// the Inbox.
func (r *FolderSyncResponse) FindByType(folderType string) (*Folder, bool) {
	if r.Changes == nil {
		return nil, false
	}
	for i := range r.Changes.Add {
		if r.Changes.Add[i].Type == folderType {
			return &r.Changes.Add[i], true
		}
	}
	return nil, false
}

// FolderCreateRequest creates a folder under ParentID.
type FolderCreateRequest struct {
	XMLName     xml.Name `xml:"FolderHierarchy FolderCreate"`
	SyncKey     string   `xml:"SyncKey"`
	ParentID    string   `xml:"ParentId"`
	DisplayName string   `xml:"DisplayName"`
	Type        string   `xml:"Type"`
}

func (r *FolderCreateRequest) Command() Command { return CommandFolderCreate }

func (r *FolderCreateRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type FolderCreateResponse struct {
	Payload
	XMLName  xml.Name `xml:"FolderHierarchy FolderCreate"`
	Status   string   `xml:"Status"`
	SyncKey  string   `xml:"SyncKey"`
	ServerID string   `xml:"ServerId"`
}

func (r *FolderCreateResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// FolderDeleteRequest deletes the folder ServerID.
type FolderDeleteRequest struct {
	XMLName  xml.Name `xml:"FolderHierarchy FolderDelete"`
	SyncKey  string   `xml:"SyncKey"`
	ServerID string   `xml:"ServerId"`
}

func (r *FolderDeleteRequest) Command() Command { return CommandFolderDelete }

func (r *FolderDeleteRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type FolderDeleteResponse struct {
	Payload
	XMLName xml.Name `xml:"FolderHierarchy FolderDelete"`
	Status  string   `xml:"Status"`
	SyncKey string   `xml:"SyncKey"`
}

func (r *FolderDeleteResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// FolderUpdateRequest moves or renames the folder ServerID.
type FolderUpdateRequest struct {
	XMLName     xml.Name `xml:"FolderHierarchy FolderUpdate"`
	SyncKey     string   `xml:"SyncKey"`
	ServerID    string   `xml:"ServerId"`
	ParentID    string   `xml:"ParentId"`
	DisplayName string   `xml:"DisplayName"`
}

func (r *FolderUpdateRequest) Command() Command { return CommandFolderUpdate }

func (r *FolderUpdateRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type FolderUpdateResponse struct {
	Payload
	XMLName xml.Name `xml:"FolderHierarchy FolderUpdate"`
	Status  string   `xml:"Status"`
	SyncKey string   `xml:"SyncKey"`
}

func (r *FolderUpdateResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}
