// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ParameterName is a command parameter key. The numeric value is the tag used
// in compact queries.
type ParameterName byte

const (
	ParamAttachmentName ParameterName = 0
	ParamCollectionID   ParameterName = 1
	ParamCollectionName ParameterName = 2
	ParamItemID         ParameterName = 3
	ParamLongID         ParameterName = 4
	ParamParentID       ParameterName = 5
	ParamOccurrence     ParameterName = 6
	ParamOptions        ParameterName = 7
	ParamUser           ParameterName = 8
)

// Bits of the Options parameter.
const (
	OptionSaveInSent      byte = 0x01
	OptionAcceptMultiPart byte = 0x02
)

var parameterNames = map[ParameterName]string{
	ParamAttachmentName: "AttachmentName",
	ParamCollectionID:   "CollectionId",
	ParamCollectionName: "CollectionName",
	ParamItemID:         "ItemId",
	ParamLongID:         "LongId",
	ParamParentID:       "ParentId",
	ParamOccurrence:     "Occurrence",
	ParamOptions:        "Options",
	ParamUser:           "User",
}

// String returns the plain-text query key of the parameter.
func (p ParameterName) String() string {
	if name, ok := parameterNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Parameter(%d)", byte(p))
}

// Numeric reports whether the parameter carries a one-byte value rather than
// a string.
func (p ParameterName) Numeric() bool {
	return p == ParamOptions
}

// ParseParameterName resolves a parameter by its plain-text key.
func ParseParameterName(name string) (ParameterName, error) {
	for p, n := range parameterNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Parameter is one command parameter. String parameters use Value; numeric
// ones (Options) use Flags.
type Parameter struct {
	Name  ParameterName
	Value string
	Flags byte
}

// Parameters is an ordered set of command parameters with unique names.
// Iteration order is insertion order.
type Parameters []Parameter

// Set stores a string parameter, replacing any previous value in place.
func (ps *Parameters) Set(name ParameterName, value string) {
	ps.put(Parameter{Name: name, Value: value})
}

// SetFlags stores a numeric parameter, replacing any previous value in place.
func (ps *Parameters) SetFlags(name ParameterName, flags byte) {
	ps.put(Parameter{Name: name, Flags: flags})
}

func (ps *Parameters) put(p Parameter) {
	for i := range *ps {
		if (*ps)[i].Name == p.Name {
			(*ps)[i] = p
			return
		}
	}
	*ps = append(*ps, p)
}

// Get returns the parameter with the given name.
func (ps Parameters) Get(name ParameterName) (Parameter, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Clone returns a copy that can be modified without touching ps.
func (ps Parameters) Clone() Parameters {
	if ps == nil {
		return nil
	}
	out := make(Parameters, len(ps))
	copy(out, ps)
	return out
}
