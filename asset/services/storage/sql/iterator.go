/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sql

import (
	"database/sql"
	"time"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/selector"
	"github.com/hyperledger/fabric-protos-go-apiv2/ledger/queryresult"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var errNoMoreItems = errors.New("no more items")

// stateIterator reads ahead one row, so that rows rejected by the selector are skipped by HasNext
type stateIterator struct {
	rows     *sql.Rows
	selector *selector.Selector
	next     *queryresult.KV
	err      error
}

func (it *stateIterator) HasNext() bool {
	if it.next != nil || it.err != nil {
		return true
	}
	for it.rows.Next() {
		kv := &queryresult.KV{}
		if err := it.rows.Scan(&kv.Key, &kv.Value); err != nil {
			it.err = err
			return true
		}
		if it.selector.Matches(kv.Value) {
			it.next = kv
			return true
		}
	}
	if err := it.rows.Err(); err != nil {
		it.err = err
		return true
	}
	return false
}

func (it *stateIterator) Next() (*queryresult.KV, error) {
	if !it.HasNext() {
		return nil, errNoMoreItems
	}
	if it.err != nil {
		err := it.err
		it.err = nil
		return nil, errors.Wrap(err, "failed reading state")
	}
	kv := it.next
	it.next = nil
	return kv, nil
}

func (it *stateIterator) Close() error {
	return it.rows.Close()
}

type historyIterator struct {
	rows *sql.Rows
	next *queryresult.KeyModification
	err  error
}

func (it *historyIterator) HasNext() bool {
	if it.next != nil || it.err != nil {
		return true
	}
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			it.err = err
			return true
		}
		return false
	}
	m := &queryresult.KeyModification{}
	var storedAt int64
	if err := it.rows.Scan(&m.TxId, &m.Value, &m.IsDelete, &storedAt); err != nil {
		it.err = err
		return true
	}
	m.Timestamp = timestamppb.New(time.Unix(0, storedAt))
	it.next = m
	return true
}

func (it *historyIterator) Next() (*queryresult.KeyModification, error) {
	if !it.HasNext() {
		return nil, errNoMoreItems
	}
	if it.err != nil {
		err := it.err
		it.err = nil
		return nil, errors.Wrap(err, "failed reading history")
	}
	m := it.next
	it.next = nil
	return m, nil
}

func (it *historyIterator) Close() error {
	return it.rows.Close()
}
