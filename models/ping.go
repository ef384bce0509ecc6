package models

import "encoding/xml"

// PingRequest waits for changes in the listed folders.
type PingRequest struct {
	XMLName           xml.Name     `xml:"Ping Ping"`
	HeartbeatInterval string       `xml:"HeartbeatInterval,omitempty"`
	Folders           []PingFolder `xml:"Folders>Folder"`
}

type PingFolder struct {
	ID    string `xml:"Id"`
	Class string `xml:"Class"`
}

func (r *PingRequest) Command() Command { return CommandPing }

func (r *PingRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type PingResponse struct {
	Payload
	XMLName           xml.Name `xml:"Ping Ping"`
	Status            string   `xml:"Status"`
	HeartbeatInterval string   `xml:"HeartbeatInterval"`
	MaxFolders        string   `xml:"MaxFolders"`
	Folders           []string `xml:"Folders>Folder"`
}

func (r *PingResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}
