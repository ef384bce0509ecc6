// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/xml"

// Mime is a raw RFC 822 message. It is written as CDATA so that legacy
// (pre-14.0) submissions can send the payload alone as message/rfc822.
type Mime struct {
	Text string `xml:",cdata"`
}

// SendMailRequest submits a new message (ComposeMail namespace).
type SendMailRequest struct {
	XMLName         xml.Name `xml:"ComposeMail SendMail"`
	ClientID        string   `xml:"ClientId"`
	AccountID       string   `xml:"AccountId,omitempty"`
	SaveInSentItems *Empty   `xml:"SaveInSentItems,omitempty"`
	Mime            Mime     `xml:"Mime"`
}

func (r *SendMailRequest) Command() Command { return CommandSendMail }

func (r *SendMailRequest) ToRawBody() (string, Parameters, error) {
	var params Parameters
	if r.SaveInSentItems != nil {
		params.SetFlags(ParamOptions, OptionSaveInSent)
	}
	body, err := marshalBody(r)
	return body, params, err
}

// ComposeSource identifies the original message of a forward or reply.
type ComposeSource struct {
	FolderID   string `xml:"FolderId,omitempty"`
	ItemID     string `xml:"ItemId,omitempty"`
	LongID     string `xml:"LongId,omitempty"`
	InstanceID string `xml:"InstanceId,omitempty"`
}

func (s ComposeSource) parameters(saveInSent bool) Parameters {
	var params Parameters
	if s.ItemID != "" {
		params.Set(ParamItemID, s.ItemID)
	}
	if s.FolderID != "" {
		params.Set(ParamCollectionID, s.FolderID)
	}
	if s.LongID != "" {
		params.Set(ParamLongID, s.LongID)
	}
	if s.InstanceID != "" {
		params.Set(ParamOccurrence, s.InstanceID)
	}
	if saveInSent {
		params.SetFlags(ParamOptions, OptionSaveInSent)
	}
	return params
}

// SmartForwardRequest forwards Source with a new MIME message.
type SmartForwardRequest struct {
	XMLName         xml.Name      `xml:"ComposeMail SmartForward"`
	ClientID        string        `xml:"ClientId"`
	Source          ComposeSource `xml:"Source"`
	AccountID       string        `xml:"AccountId,omitempty"`
	SaveInSentItems *Empty        `xml:"SaveInSentItems,omitempty"`
	ReplaceMime     *Empty        `xml:"ReplaceMime,omitempty"`
	Mime            Mime          `xml:"Mime"`
}

func (r *SmartForwardRequest) Command() Command { return CommandSmartForward }

func (r *SmartForwardRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, r.Source.parameters(r.SaveInSentItems != nil), err
}

// SmartReplyRequest replies to Source with a new MIME message.
type SmartReplyRequest struct {
	XMLName         xml.Name      `xml:"ComposeMail SmartReply"`
	ClientID        string        `xml:"ClientId"`
	Source          ComposeSource `xml:"Source"`
	AccountID       string        `xml:"AccountId,omitempty"`
	SaveInSentItems *Empty        `xml:"SaveInSentItems,omitempty"`
	ReplaceMime     *Empty        `xml:"ReplaceMime,omitempty"`
	Mime            Mime          `xml:"Mime"`
}

func (r *SmartReplyRequest) Command() Command { return CommandSmartReply }

func (r *SmartReplyRequest) ToRawBody() (string, Parameters, error) {
	body, err := marshalBody(r)
	return body, r.Source.parameters(r.SaveInSentItems != nil), err
}

// ComposeMailResponse is shared by SendMail, SmartForward and SmartReply.
// Success is an empty body; a failure carries a Status under the command
// root, whose name depends on the command.
type ComposeMailResponse struct {
	Payload
	XMLName xml.Name
	Status  string `xml:"Status"`
}

func (r *ComposeMailResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// GetAttachmentRequest fetches an attachment by file reference (protocol
// 12.1 and earlier). It has no body.
type GetAttachmentRequest struct {
	AttachmentName string
}

func (r *GetAttachmentRequest) Command() Command { return CommandGetAttachment }

func (r *GetAttachmentRequest) ToRawBody() (string, Parameters, error) {
	if r.AttachmentName == "" {
		return "", nil, ErrInvalidRequest
	}
	var params Parameters
	params.Set(ParamAttachmentName, r.AttachmentName)
	return "", params, nil
}

// GetAttachmentResponse carries the attachment bytes as received.
type GetAttachmentResponse struct {
	ContentType string
	Data        []byte
}
