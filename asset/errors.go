/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asset

import "github.com/pkg/errors"

var (
	// ErrAlreadyExists is returned when creating an asset whose key is already present
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned when reading, updating or deleting an absent asset
	ErrNotFound = errors.New("does not exist")
	// ErrInvalidUTF8 is returned for payloads holding text that is not valid UTF-8
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

func alreadyExists(key string) error {
	return errors.Wrapf(ErrAlreadyExists, "the asset %s", key)
}

func notFound(key string) error {
	return errors.Wrapf(ErrNotFound, "the asset %s", key)
}
