/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asset

import (
	"encoding/json"
	"time"
)

// Value is the outcome of decoding one stored entry during a traversal.
// Either Fields is set, or the entry could not be decoded and Raw holds its text.
type Value struct {
	Fields Fields
	Raw    string
}

// NewValue decodes raw, falling back to its text when it is not a JSON object.
// The decoding error, if any, is returned alongside the fallback value.
func NewValue(raw []byte) (Value, error) {
	f, err := FieldsFromBytes(raw)
	if err != nil {
		return Value{Raw: string(raw)}, err
	}
	return Value{Fields: f}, nil
}

// Decoded tells whether the entry was decoded into fields
func (v Value) Decoded() bool {
	return v.Fields != nil
}

// MarshalJSON renders the fields as an object, or the raw text as a string
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Decoded() {
		return json.Marshal(v.Fields)
	}
	return json.Marshal(v.Raw)
}

// MarshalYAML renders the fields as a mapping, or the raw text as a string
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Decoded() {
		return map[string]interface{}(v.Fields), nil
	}
	return v.Raw, nil
}

// Record is an entry returned by a scan of the whole key space
type Record struct {
	Key   string `json:"key" yaml:"key"`
	Value Value  `json:"value" yaml:"value"`
}

// HistoryEntry is one committed version of an asset.
// TxID and Timestamp are the revision marker assigned by the store, if any.
type HistoryEntry struct {
	TxID      string    `json:"txId" yaml:"txId"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Value     Value     `json:"value" yaml:"value"`
}
