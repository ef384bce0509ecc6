package models

import "encoding/xml"

// ResolveRecipientsRequest resolves names against the GAL and contacts.
type ResolveRecipientsRequest struct {
	XMLName xml.Name                  `xml:"ResolveRecipients ResolveRecipients"`
	To      []string                  `xml:"To"`
	Options *ResolveRecipientsOptions `xml:"Options,omitempty"`
}

type ResolveRecipientsOptions struct {
	CertificateRetrieval   string                 `xml:"CertificateRetrieval,omitempty"`
	MaxCertificates        string                 `xml:"MaxCertificates,omitempty"`
	MaxAmbiguousRecipients string                 `xml:"MaxAmbiguousRecipients,omitempty"`
	Availability           *RecipientAvailability `xml:"Availability,omitempty"`
	Picture                *SearchPicture         `xml:"Picture,omitempty"`
}

type RecipientAvailability struct {
	StartTime string `xml:"StartTime"`
	EndTime   string `xml:"EndTime"`
}

func (r *ResolveRecipientsRequest) Command() Command { return CommandResolveRecipients }

func (r *ResolveRecipientsRequest) ToRawBody() (string, Parameters, error) {
	if len(r.To) == 0 {
		return "", nil, ErrInvalidRequest
	}
	body, err := marshalBody(r)
	return body, nil, err
}

type ResolveRecipientsResponse struct {
	Payload
	XMLName   xml.Name                 `xml:"ResolveRecipients ResolveRecipients"`
	Status    string                   `xml:"Status"`
	Responses []ResolveRecipientsEntry `xml:"Response"`
}

type ResolveRecipientsEntry struct {
	To             string      `xml:"To"`
	Status         string      `xml:"Status"`
	RecipientCount string      `xml:"RecipientCount"`
	Recipients     []Recipient `xml:"Recipient"`
}

type Recipient struct {
	Type         string  `xml:"Type"`
	DisplayName  string  `xml:"DisplayName"`
	EmailAddress string  `xml:"EmailAddress"`
	Picture      *RawXML `xml:"Picture"`
}

func (r *ResolveRecipientsResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// ValidateCertRequest asks the server to validate certificates, given
// Base64 encoded.
type ValidateCertRequest struct {
	XMLName          xml.Name `xml:"ValidateCert ValidateCert"`
	CertificateChain []string `xml:"CertificateChain>Certificate,omitempty"`
	Certificates     []string `xml:"Certificates>Certificate"`
	CheckCRL         string   `xml:"CheckCRL,omitempty"`
}

func (r *ValidateCertRequest) Command() Command { return CommandValidateCert }

func (r *ValidateCertRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type ValidateCertResponse struct {
	Payload
	XMLName      xml.Name `xml:"ValidateCert ValidateCert"`
	Status       string   `xml:"Status"`
	Certificates []string `xml:"Certificate>Status"`
}

func (r *ValidateCertResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}
