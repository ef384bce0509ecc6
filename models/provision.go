// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/xml"

// PolicyTypeWBXML is the policy type requested by protocol 12.0 and later.
const PolicyTypeWBXML = "MS-EAS-Provisioning-WBXML"

// ProvisionRequest runs one leg of the provisioning handshake: first without
// a policy key to download the policy, then with the temporary key and
// Status 1 to acknowledge it.
type ProvisionRequest struct {
	XMLName           xml.Name             `xml:"Provision Provision"`
	DeviceInformation *DeviceInformation   `xml:"Settings DeviceInformation,omitempty"`
	Policies          []ProvisionPolicy    `xml:"Policies>Policy"`
	RemoteWipe        *ProvisionRemoteWipe `xml:"RemoteWipe,omitempty"`
}

type ProvisionPolicy struct {
	PolicyType string  `xml:"PolicyType"`
	PolicyKey  string  `xml:"PolicyKey,omitempty"`
	Status     string  `xml:"Status,omitempty"`
	Data       *RawXML `xml:"Data,omitempty"`
}

type ProvisionRemoteWipe struct {
	Status string `xml:"Status"`
}

func (r *ProvisionRequest) Command() Command { return CommandProvision }

func (r *ProvisionRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, nil, err
}

type ProvisionResponse struct {
	Payload
	XMLName           xml.Name          `xml:"Provision Provision"`
	Status            string            `xml:"Status"`
	DeviceInformation *DeviceInfoStatus `xml:"Settings DeviceInformation"`
	Policies          []ProvisionPolicy `xml:"Policies>Policy"`
	RemoteWipe        *Empty            `xml:"RemoteWipe"`
}

// DeviceInfoStatus is the server's answer to a DeviceInformation Set.
type DeviceInfoStatus struct {
	Status string `xml:"Status"`
}

func (r *ProvisionResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// PolicyKey returns the key of the first returned policy.
func (r *ProvisionResponse) PolicyKey() string {
	if len(r.Policies) == 0 {
		return ""
	}
	return r.Policies[0].PolicyKey
}
