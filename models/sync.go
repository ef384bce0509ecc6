// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/xml"

// SyncRequest is the body of a Sync command (AirSync namespace).
type SyncRequest struct {
	XMLName           xml.Name         `xml:"AirSync Sync"`
	Collections       []SyncCollection `xml:"Collections>Collection"`
	Wait              string           `xml:"Wait,omitempty"`
	HeartbeatInterval string           `xml:"HeartbeatInterval,omitempty"`
	WindowSize        string           `xml:"WindowSize,omitempty"`
	Partial           *Empty           `xml:"Partial,omitempty"`
}

// SyncCollection is one collection of a Sync request.
type SyncCollection struct {
	SyncKey          string               `xml:"SyncKey"`
	CollectionID     string               `xml:"CollectionId"`
	Supported        *RawXML              `xml:"Supported,omitempty"`
	DeletesAsMoves   string               `xml:"DeletesAsMoves,omitempty"`
	GetChanges       *Empty               `xml:"GetChanges,omitempty"`
	WindowSize       string               `xml:"WindowSize,omitempty"`
	ConversationMode string               `xml:"ConversationMode,omitempty"`
	Options          *SyncOptions         `xml:"Options,omitempty"`
	Commands         *SyncRequestCommands `xml:"Commands,omitempty"`
}

// SyncOptions narrows what the server returns for a collection.
type SyncOptions struct {
	FilterType     string           `xml:"FilterType,omitempty"`
	Class          string           `xml:"Class,omitempty"`
	BodyPreference []BodyPreference `xml:"AirSyncBase BodyPreference,omitempty"`
	MIMESupport    string           `xml:"MIMESupport,omitempty"`
	MIMETruncation string           `xml:"MIMETruncation,omitempty"`
	MaxItems       string           `xml:"MaxItems,omitempty"`
}

// BodyPreference selects body type and truncation (AirSyncBase namespace).
type BodyPreference struct {
	Type           string `xml:"Type"`
	TruncationSize string `xml:"TruncationSize,omitempty"`
	AllOrNone      string `xml:"AllOrNone,omitempty"`
	Preview        string `xml:"Preview,omitempty"`
}

// SyncRequestCommands are client-side changes uploaded with a Sync request.
type SyncRequestCommands struct {
	Add    []SyncRequestItem `xml:"Add,omitempty"`
	Change []SyncRequestItem `xml:"Change,omitempty"`
	Delete []SyncRequestItem `xml:"Delete,omitempty"`
	Fetch  []SyncRequestItem `xml:"Fetch,omitempty"`
}

// SyncRequestItem is one uploaded change. ApplicationData is sent verbatim.
type SyncRequestItem struct {
	Class           string  `xml:"Class,omitempty"`
	ServerID        string  `xml:"ServerId,omitempty"`
	ClientID        string  `xml:"ClientId,omitempty"`
	ApplicationData *RawXML `xml:"ApplicationData,omitempty"`
}

// Command implements [CommandRequest].
func (r *SyncRequest) Command() Command { return CommandSync }

// ToRawBody implements [CommandRequest].
func (r *SyncRequest) ToRawBody() (string, Parameters, error) {
	if len(r.Collections) == 0 {
		return "", nil, ErrInvalidRequest
	}
	body, err := marshalBody(r)
	return body, nil, err
}

// SyncResponse is the decoded body of a Sync response.
type SyncResponse struct {
	Payload
	XMLName     xml.Name                 `xml:"AirSync Sync"`
	Status      string                   `xml:"Status,omitempty"`
	Limit       string                   `xml:"Limit,omitempty"`
	Collections []SyncCollectionResponse `xml:"Collections>Collection"`
}

// SyncCollectionResponse is one collection of a Sync response.
type SyncCollectionResponse struct {
	Class         string         `xml:"Class,omitempty"`
	SyncKey       string         `xml:"SyncKey,omitempty"`
	CollectionID  string         `xml:"CollectionId,omitempty"`
	Status        string         `xml:"Status,omitempty"`
	MoreAvailable *Empty         `xml:"MoreAvailable,omitempty"`
	Commands      *SyncCommands  `xml:"Commands,omitempty"`
	Responses     *SyncResponses `xml:"Responses,omitempty"`
}

// SyncCommands are the server-side changes of one page.
type SyncCommands struct {
	Add        []SyncItem `xml:"Add,omitempty"`
	Change     []SyncItem `xml:"Change,omitempty"`
	Delete     []SyncItem `xml:"Delete,omitempty"`
	SoftDelete []SyncItem `xml:"SoftDelete,omitempty"`
}

// Len returns the total number of entries.
func (c *SyncCommands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Add) + len(c.Change) + len(c.Delete) + len(c.SoftDelete)
}

// SyncResponses acknowledge client-side changes.
type SyncResponses struct {
	Add    []SyncItem `xml:"Add,omitempty"`
	Change []SyncItem `xml:"Change,omitempty"`
	Fetch  []SyncItem `xml:"Fetch,omitempty"`
}

// SyncItem is one Add/Change/Delete/SoftDelete entry.
type SyncItem struct {
	Class           string           `xml:"Class,omitempty"`
	ServerID        string           `xml:"ServerId,omitempty"`
	ClientID        string           `xml:"ClientId,omitempty"`
	Status          string           `xml:"Status,omitempty"`
	ApplicationData *ApplicationData `xml:"ApplicationData,omitempty"`
}

// ApplicationData keeps the item properties as raw XML and lifts out the
// subject of the item classes that have one.
type ApplicationData struct {
	EmailSubject    string `xml:"Email Subject"`
	CalendarSubject string `xml:"Calendar Subject"`
	TasksSubject    string `xml:"Tasks Subject"`
	NotesSubject    string `xml:"Notes Subject"`
	Inner           string `xml:",innerxml"`
}

// Subject returns the item subject whatever its class.
func (a *ApplicationData) Subject() string {
	if a == nil {
		return ""
	}
	for _, s := range []string{a.EmailSubject, a.CalendarSubject, a.TasksSubject, a.NotesSubject} {
		if s != "" {
			return s
		}
	}
	return ""
}

// FromRaw implements [CommandResponse].
func (r *SyncResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// Collection returns the first collection of the response, or nil.
func (r *SyncResponse) Collection() *SyncCollectionResponse {
	if len(r.Collections) == 0 {
		return nil
	}
	return &r.Collections[0]
}

// FindSubject looks for an item with the given subject among the Add
// entries, then among the Change entries, of every collection.
func (r *SyncResponse) FindSubject(subject string) (*SyncItem, bool) {
	for _, field := range []func(*SyncCommands) []SyncItem{
		func(c *SyncCommands) []SyncItem { return c.Add },
		func(c *SyncCommands) []SyncItem { return c.Change },
	} {
		for ci := range r.Collections {
			cmds := r.Collections[ci].Commands
			if cmds == nil {
				continue
			}
			items := field(cmds)
			for i := range items {
				if items[i].ApplicationData.Subject() == subject {
					return &items[i], true
				}
			}
		}
	}
	return nil, false
}
