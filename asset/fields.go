/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Fields is the payload of an asset: a mapping from field name to value.
// Values are whatever encoding/json produces, numbers are kept as json.Number.
type Fields map[string]interface{}

// Merge returns a new Fields holding the fields of f overwritten by those of update.
// Fields of f that are not in update are preserved.
func (f Fields) Merge(update Fields) Fields {
	merged := make(Fields, len(f)+len(update))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

// Bytes serializes the fields. The encoding is deterministic: object keys are sorted.
// Strings that are not valid UTF-8 are rejected, encoding/json would replace their invalid bytes.
func (f Fields) Bytes() ([]byte, error) {
	if f == nil {
		f = Fields{}
	}
	if err := checkUTF8("", map[string]interface{}(f)); err != nil {
		return nil, errors.WithMessage(err, "failed marshalling fields")
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed marshalling fields")
	}
	return raw, nil
}

// FieldsFromBytes decodes raw as a JSON object.
// Anything else, including null, arrays and trailing data, is an error.
func FieldsFromBytes(raw []byte) (Fields, error) {
	if !utf8.Valid(raw) {
		return nil, errors.Wrap(ErrInvalidUTF8, "failed unmarshalling fields")
	}
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	var f Fields
	if err := d.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed unmarshalling fields")
	}
	if f == nil {
		return nil, errors.New("failed unmarshalling fields: not an object")
	}
	if _, err := d.Token(); err != io.EOF {
		return nil, errors.New("failed unmarshalling fields: trailing data")
	}
	return f, nil
}

// checkUTF8 walks v and fails on the first key or string that is not valid UTF-8
func checkUTF8(path string, v interface{}) error {
	switch v := v.(type) {
	case string:
		if !utf8.ValidString(v) {
			return errors.Wrapf(ErrInvalidUTF8, "field [%s]", path)
		}
	case []string:
		for i, s := range v {
			if err := checkUTF8(fmt.Sprintf("%s[%d]", path, i), s); err != nil {
				return err
			}
		}
	case []interface{}:
		for i, e := range v {
			if err := checkUTF8(fmt.Sprintf("%s[%d]", path, i), e); err != nil {
				return err
			}
		}
	case Fields:
		return checkUTF8(path, map[string]interface{}(v))
	case map[string]string:
		for k, e := range v {
			if !utf8.ValidString(k) {
				return errors.Wrapf(ErrInvalidUTF8, "field name [%q]", k)
			}
			if err := checkUTF8(join(path, k), e); err != nil {
				return err
			}
		}
	case map[string]interface{}:
		for k, e := range v {
			if !utf8.ValidString(k) {
				return errors.Wrapf(ErrInvalidUTF8, "field name [%q]", k)
			}
			if err := checkUTF8(join(path, k), e); err != nil {
				return err
			}
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
