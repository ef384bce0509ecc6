package models

import "encoding/xml"

const (
	autodiscoverRequestSchema  = "http://schemas.microsoft.com/exchange/autodiscover/mobilesync/requestschema/2006"
	autodiscoverResponseSchema = "http://schemas.microsoft.com/exchange/autodiscover/mobilesync/responseschema/2006"
)

// AutodiscoverRequest is sent as plain XML to the autodiscover endpoint.
type AutodiscoverRequest struct {
	XMLName                  xml.Name `xml:"Autodiscover"`
	Xmlns                    string   `xml:"xmlns,attr"`
	EMailAddress             string   `xml:"Request>EMailAddress"`
	AcceptableResponseSchema string   `xml:"Request>AcceptableResponseSchema"`
}

// NewAutodiscoverRequest builds a mobilesync autodiscover request for email.
func NewAutodiscoverRequest(email string) *AutodiscoverRequest {
	return &AutodiscoverRequest{
		Xmlns:                    autodiscoverRequestSchema,
		EMailAddress:             email,
		AcceptableResponseSchema: autodiscoverResponseSchema,
	}
}

// ToXML renders the request with an XML declaration.
func (r *AutodiscoverRequest) ToXML() (string, error) {
	body, err := marshalBody(r)
	if err != nil {
		return "", err
	}
	return xml.Header + body, nil
}

// AutodiscoverResponse carries the user and the server URLs found.
type AutodiscoverResponse struct {
	Payload
	XMLName     xml.Name             `xml:"Autodiscover"`
	DisplayName string               `xml:"Response>User>DisplayName"`
	EMail       string               `xml:"Response>User>EMailAddress"`
	Servers     []AutodiscoverServer `xml:"Response>Action>Settings>Server"`
	Redirect    string               `xml:"Response>Action>Redirect"`
	Error       *AutodiscoverError   `xml:"Response>Action>Error"`
}

type AutodiscoverServer struct {
	Type string `xml:"Type"`
	URL  string `xml:"Url"`
	Name string `xml:"Name"`
}

type AutodiscoverError struct {
	Status  string `xml:"Status"`
	Message string `xml:"Message"`
}

func (r *AutodiscoverResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// MobileSyncURL returns the URL of the first MobileSync server.
func (r *AutodiscoverResponse) MobileSyncURL() string {
	for _, s := range r.Servers {
		if s.Type == "MobileSync" {
			return s.URL
		}
	}
	return ""
}
