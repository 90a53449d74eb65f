/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package selector

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/thedevsaddam/gojsonq"
)

// Selector is a CouchDB-style rich query restricted to equality on field paths.
// Paths use dots to reach nested fields, for example {"selector":{"owner.name":"alice"}}.
type Selector struct {
	fields map[string]interface{}
}

type query struct {
	Selector map[string]interface{} `json:"selector"`
}

// Parse parses a rich query. The empty string selects everything.
func Parse(q string) (*Selector, error) {
	if len(strings.TrimSpace(q)) == 0 {
		return &Selector{}, nil
	}
	var parsed query
	if err := json.Unmarshal([]byte(q), &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed parsing query [%s]", q)
	}
	if parsed.Selector == nil {
		return nil, errors.Errorf("invalid query [%s], selector missing", q)
	}
	for path := range parsed.Selector {
		if strings.HasPrefix(path, "$") {
			return nil, errors.Errorf("invalid query [%s], operator [%s] not supported", q, path)
		}
	}
	return &Selector{fields: parsed.Selector}, nil
}

// MatchAll tells whether the selector has no condition
func (s *Selector) MatchAll() bool {
	return len(s.fields) == 0
}

// Matches tells whether the given stored value satisfies every condition of the selector.
// Values that are not JSON only match the empty selector.
func (s *Selector) Matches(value []byte) bool {
	if s.MatchAll() {
		return true
	}
	doc := string(value)
	for path, expected := range s.fields {
		jq := gojsonq.New().FromString(doc)
		found := jq.Find(path)
		if jq.Error() != nil || found == nil {
			return false
		}
		if !reflect.DeepEqual(found, expected) {
			return false
		}
	}
	return true
}
