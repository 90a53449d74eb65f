/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asset

import (
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
)

// MatchAll is the rich query selecting every entry of the key space
const MatchAll = `{"selector":{}}`

//go:generate counterfeiter -o mock/store.go -fake-name Store . Store

// Store is the subset of the chaincode stub the registry needs.
// Any shim.ChaincodeStubInterface is a Store.
type Store interface {
	// GetState returns the value stored under key. An empty value signals absence.
	GetState(key string) ([]byte, error)
	// PutState creates or overwrites the value stored under key.
	PutState(key string, value []byte) error
	// DelState removes key.
	DelState(key string) error
	// GetHistoryForKey opens a cursor over every committed version of key.
	GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error)
	// GetQueryResult opens a cursor over the entries matching the given rich query.
	GetQueryResult(query string) (shim.StateQueryIteratorInterface, error)
}

//go:generate counterfeiter -o mock/state_iterator.go -fake-name StateQueryIterator github.com/hyperledger/fabric-chaincode-go/v2/shim.StateQueryIteratorInterface
//go:generate counterfeiter -o mock/history_iterator.go -fake-name HistoryQueryIterator github.com/hyperledger/fabric-chaincode-go/v2/shim.HistoryQueryIteratorInterface
