package models

import "encoding/xml"

// DeviceInformation describes the client device (Settings namespace).
type DeviceInformation struct {
	Set DeviceInformationSet `xml:"Set"`
}

type DeviceInformationSet struct {
	Model          string `xml:"Model,omitempty"`
	IMEI           string `xml:"IMEI,omitempty"`
	FriendlyName   string `xml:"FriendlyName,omitempty"`
	OS             string `xml:"OS,omitempty"`
	OSLanguage     string `xml:"OSLanguage,omitempty"`
	PhoneNumber    string `xml:"PhoneNumber,omitempty"`
	UserAgent      string `xml:"UserAgent,omitempty"`
	MobileOperator string `xml:"MobileOperator,omitempty"`
}

// SettingsRequest gets or sets user and device settings.
type SettingsRequest struct {
	XMLName           xml.Name           `xml:"Settings Settings"`
	Oof               *OofRequest        `xml:"Oof,omitempty"`
	DeviceInformation *DeviceInformation `xml:"DeviceInformation,omitempty"`
	UserInformation   *UserInformation   `xml:"UserInformation,omitempty"`
}

// OofRequest reads (Get) or writes (Set, raw XML) out-of-office settings.
type OofRequest struct {
	Get *OofGet `xml:"Get,omitempty"`
	Set *RawXML `xml:"Set,omitempty"`
}

type OofGet struct {
	BodyType string `xml:"BodyType"`
}

type UserInformation struct {
	Get *Empty `xml:"Get"`
}

func (r *SettingsRequest) Command() Command { return CommandSettings }

func (r *SettingsRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type SettingsResponse struct {
	Payload
	XMLName           xml.Name          `xml:"Settings Settings"`
	Status            string            `xml:"Status"`
	Oof               *OofResponse      `xml:"Oof"`
	DeviceInformation *DeviceInfoStatus `xml:"DeviceInformation"`
	UserInformation   *UserInfoResponse `xml:"UserInformation"`
}

type OofResponse struct {
	Status string  `xml:"Status"`
	Get    *RawXML `xml:"Get"`
}

type UserInfoResponse struct {
	Status        string   `xml:"Status"`
	SMTPAddresses []string `xml:"Get>EmailAddresses>SMTPAddress"`
	PrimarySMTP   string   `xml:"Get>EmailAddresses>PrimarySmtpAddress"`
}

func (r *SettingsResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}
