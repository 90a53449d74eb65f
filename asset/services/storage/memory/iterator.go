/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memory

import (
	"github.com/hyperledger/fabric-protos-go-apiv2/ledger/queryresult"
	"github.com/pkg/errors"
)

// iterator walks a snapshot taken when it was opened
type iterator[T any] struct {
	store  *Store
	items  []T
	closed bool
}

func (it *iterator[T]) HasNext() bool {
	return !it.closed && len(it.items) > 0
}

func (it *iterator[T]) next() (T, error) {
	var zero T
	if it.closed {
		return zero, errors.New("iterator closed")
	}
	if len(it.items) == 0 {
		return zero, errors.New("no more items")
	}
	item := it.items[0]
	it.items = it.items[1:]
	return item, nil
}

func (it *iterator[T]) Close() error {
	if it.closed {
		return errors.New("iterator already closed")
	}
	it.closed = true
	it.items = nil
	it.store.release()
	return nil
}

type stateIterator struct {
	iterator[*queryresult.KV]
}

func (it *stateIterator) Next() (*queryresult.KV, error) {
	return it.next()
}

type historyIterator struct {
	iterator[*queryresult.KeyModification]
}

func (it *historyIterator) Next() (*queryresult.KeyModification, error) {
	return it.next()
}
