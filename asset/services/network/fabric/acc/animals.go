/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package acc

import (
	"context"
	"fmt"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/pkg/errors"
)

var animalFunctions = map[string]bool{
	AnimalExistsFunction:   true,
	CreateAnimalFunction:   true,
	ReadAnimalFunction:     true,
	UpdateAnimalFunction:   true,
	DeleteAnimalFunction:   true,
	ReadAllAnimalsFunction: true,
	AnimalHistoryFunction:  true,
}

// animalService reports the registry errors of the animal functions
// with the wording animal contract clients match on: "The animal 1001 already exists".
type animalService struct {
	asset.Service
}

func (s *animalService) Create(ctx context.Context, store asset.Store, key string, fields asset.Fields) error {
	return animalError(key, s.Service.Create(ctx, store, key, fields))
}

func (s *animalService) Read(ctx context.Context, store asset.Store, key string) (asset.Fields, error) {
	fields, err := s.Service.Read(ctx, store, key)
	return fields, animalError(key, err)
}

func (s *animalService) Update(ctx context.Context, store asset.Store, key string, fields asset.Fields) error {
	return animalError(key, s.Service.Update(ctx, store, key, fields))
}

func (s *animalService) Delete(ctx context.Context, store asset.Store, key string) error {
	return animalError(key, s.Service.Delete(ctx, store, key))
}

type animalErr struct {
	key    string
	reason error
	cause  error
}

func (e *animalErr) Error() string { return fmt.Sprintf("The animal %s %s", e.key, e.reason) }

func (e *animalErr) Unwrap() error { return e.cause }

func animalError(key string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, asset.ErrAlreadyExists):
		return &animalErr{key: key, reason: asset.ErrAlreadyExists, cause: err}
	case errors.Is(err, asset.ErrNotFound):
		return &animalErr{key: key, reason: asset.ErrNotFound, cause: err}
	}
	return err
}
