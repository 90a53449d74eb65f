/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package acc_test

import (
	"fmt"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/memory"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
)

// stub serves the ledger calls of the registry from an in-memory store.
// Calling any other method of the stub interface panics.
type stub struct {
	shim.ChaincodeStubInterface
	store *memory.Store
	args  [][]byte
	n     int
}

func newStub(store *memory.Store) *stub {
	return &stub{store: store}
}

func (s *stub) call(function string, args ...string) *stub {
	s.n++
	s.args = [][]byte{[]byte(function)}
	for _, arg := range args {
		s.args = append(s.args, []byte(arg))
	}
	return s
}

func (s *stub) GetArgs() [][]byte { return s.args }
func (s *stub) GetTxID() string   { return fmt.Sprintf("tx%d", s.n) }

func (s *stub) GetState(key string) ([]byte, error) { return s.store.GetState(key) }
func (s *stub) PutState(key string, value []byte) error {
	return s.store.PutState(key, value)
}
func (s *stub) DelState(key string) error { return s.store.DelState(key) }
func (s *stub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return s.store.GetHistoryForKey(key)
}
func (s *stub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	return s.store.GetQueryResult(query)
}
