// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// CommandRequest is implemented by every typed ActiveSync request.
type CommandRequest interface {
	// Command returns the command the request is sent as.
	Command() Command

	// ToRawBody returns the XML body of the request and its query
	// parameters. A request without a body returns an empty string.
	ToRawBody() (string, Parameters, error)
}

// CommandResponse is implemented by every typed ActiveSync response.
type CommandResponse interface {
	// FromRaw populates the response from decoded XML. An empty document
	// leaves the response zero-valued.
	FromRaw(raw string) error
}

// PartsReceiver is implemented by responses that keep the binary parts
// following the XML part of a multipart body.
type PartsReceiver interface {
	SetParts(parts [][]byte)
}

// Empty is a presence-only element such as <GetChanges /> or <MoreAvailable />.
type Empty struct{}

// RawXML keeps the inner XML of an element verbatim.
type RawXML struct {
	Inner string `xml:",innerxml"`
}

// IsEmpty reports whether the element has no content.
func (r *RawXML) IsEmpty() bool {
	return r == nil || strings.TrimSpace(r.Inner) == ""
}

// NewRawXML wraps inner XML.
func NewRawXML(inner string) *RawXML {
	return &RawXML{Inner: inner}
}

func marshalBody(v any) (string, error) {
	b, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %T: %v", ErrInvalidRequest, v, err)
	}
	return string(b), nil
}

func unmarshalBody(raw string, v any) (bool, error) {
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	if err := xml.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %T: %v", ErrUnexpectedResponse, v, err)
	}
	return true, nil
}

// Payload records whether a response carried an XML body at all.
type Payload struct {
	present bool
}

// Present reports whether the server returned a body.
func (p Payload) Present() bool {
	return p.present
}
