package models

import "encoding/xml"

// FindRequest runs a mailbox search (protocol 16.1).
type FindRequest struct {
	XMLName       xml.Name          `xml:"Find Find"`
	SearchID      string            `xml:"SearchId"`
	ExecuteSearch FindExecuteSearch `xml:"ExecuteSearch"`
}

type FindExecuteSearch struct {
	MailBoxSearchCriterion *FindCriterion `xml:"MailBoxSearchCriterion,omitempty"`
	GalSearchCriterion     *FindCriterion `xml:"GalSearchCriterion,omitempty"`
}

// FindCriterion holds the query as inner XML plus result options.
type FindCriterion struct {
	Query   RawXML       `xml:"Query"`
	Options *FindOptions `xml:"Options,omitempty"`
}

type FindOptions struct {
	Range         string `xml:"Range,omitempty"`
	DeepTraversal *Empty `xml:"DeepTraversal,omitempty"`
}

func (r *FindRequest) Command() Command { return CommandFind }

func (r *FindRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type FindResponse struct {
	Payload
	XMLName  xml.Name          `xml:"Find Find"`
	Status   string            `xml:"Status"`
	Response *FindStoreResults `xml:"Response"`
}

type FindStoreResults struct {
	Store   string       `xml:"ItemOperations Store"`
	Status  string       `xml:"Status"`
	Results []FindResult `xml:"Result"`
	Range   string       `xml:"Range"`
	Total   string       `xml:"Total"`
}

type FindResult struct {
	Class        string  `xml:"AirSync Class"`
	ServerID     string  `xml:"AirSync ServerId"`
	CollectionID string  `xml:"AirSync CollectionId"`
	Properties   *RawXML `xml:"Properties"`
}

func (r *FindResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}
