// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/xml"

// SearchRequest searches a store such as the GAL or the mailbox.
type SearchRequest struct {
	XMLName xml.Name    `xml:"Search Search"`
	Store   SearchStore `xml:"Store"`
}

// SearchStore names the store and carries the query. Query is written as
// inner XML so that both a bare GAL string and an <And> tree can be sent.
type SearchStore struct {
	Name    string         `xml:"Name"`
	Query   RawXML         `xml:"Query"`
	Options *SearchOptions `xml:"Options,omitempty"`
}

type SearchOptions struct {
	Range          string         `xml:"Range,omitempty"`
	UserName       string         `xml:"UserName,omitempty"`
	Password       string         `xml:"Password,omitempty"`
	DeepTraversal  *Empty         `xml:"DeepTraversal,omitempty"`
	RebuildResults *Empty         `xml:"RebuildResults,omitempty"`
	Picture        *SearchPicture `xml:"Picture,omitempty"`
}

type SearchPicture struct {
	MaxSize     string `xml:"MaxSize,omitempty"`
	MaxPictures string `xml:"MaxPictures,omitempty"`
}

func (r *SearchRequest) Command() Command { return CommandSearch }

func (r *SearchRequest) ToRawBody() (string, Parameters, error) {
	if r.Store.Name == "" {
		return "", nil, ErrInvalidRequest
	}
	body, err := marshalBody(r)
	return body, nil, err
}

// SearchResponse is the decoded body of a Search response.
type SearchResponse struct {
	Payload
	XMLName  xml.Name            `xml:"Search Search"`
	Status   string              `xml:"Status"`
	Response *SearchStoreResults `xml:"Response>Store"`
}

// SearchStoreResults are the results of the searched store.
type SearchStoreResults struct {
	Status  string         `xml:"Status"`
	Results []SearchResult `xml:"Result"`
	Range   string         `xml:"Range"`
	Total   string         `xml:"Total"`
}

// SearchResult is one hit. A result with no class, collection, long id or
// properties is the server's way of saying nothing matched.
type SearchResult struct {
	Class        string  `xml:"AirSync Class"`
	LongID       string  `xml:"LongId"`
	CollectionID string  `xml:"AirSync CollectionId"`
	Properties   *RawXML `xml:"Properties"`
}

// IsEmpty reports whether the result carries no data at all.
func (r SearchResult) IsEmpty() bool {
	return r.Class == "" && r.LongID == "" && r.CollectionID == "" && r.Properties.IsEmpty()
}

func (r *SearchResponse) FromRaw(raw string) error {
	var err error
	r.present, err = unmarshalBody(raw, r)
	return err
}

// Results returns the results of the searched store.
func (r *SearchResponse) Results() []SearchResult {
	if r.Response == nil {
		return nil
	}
	return r.Response.Results
}
