/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memory

import (
	"sync"

	"github.com/hashicorp/go-uuid"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/selector"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/hyperledger/fabric-protos-go-apiv2/ledger/queryresult"
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var logger = logging.MustGetLogger("storage", "memory")

type entry struct {
	key   string
	value []byte
}

func byKey(a, b interface{}) bool {
	return a.(*entry).key < b.(*entry).key
}

// Store is an ordered in-memory key-value store keeping the full history of every key.
// Each write is committed on its own, under a fresh transaction id.
type Store struct {
	mutex   sync.RWMutex
	state   *btree.BTree
	history map[string][]*queryresult.KeyModification
	open    int
}

func New() *Store {
	return &Store{
		state:   btree.NewNonConcurrent(byKey),
		history: map[string][]*queryresult.KeyModification{},
	}
}

func (s *Store) GetState(key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	found := s.state.Get(&entry{key: key})
	if found == nil {
		return nil, nil
	}
	return clone(found.(*entry).value), nil
}

func (s *Store) PutState(key string, value []byte) error {
	if len(key) == 0 {
		return errors.New("key must not be an empty string")
	}
	txID, err := uuid.GenerateUUID()
	if err != nil {
		return errors.Wrap(err, "failed generating transaction id")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	v := clone(value)
	s.state.Set(&entry{key: key, value: v})
	s.history[key] = append(s.history[key], &queryresult.KeyModification{
		TxId:      txID,
		Value:     v,
		Timestamp: timestamppb.Now(),
	})
	logger.Debugf("[%s] put [%s], size [%d]", txID, key, len(v))
	return nil
}

func (s *Store) DelState(key string) error {
	txID, err := uuid.GenerateUUID()
	if err != nil {
		return errors.Wrap(err, "failed generating transaction id")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state.Delete(&entry{key: key}) == nil {
		return nil
	}
	s.history[key] = append(s.history[key], &queryresult.KeyModification{
		TxId:      txID,
		Timestamp: timestamppb.Now(),
		IsDelete:  true,
	})
	logger.Debugf("[%s] delete [%s]", txID, key)
	return nil
}

// GetHistoryForKey returns the versions of key from the newest to the oldest, as Fabric does
func (s *Store) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	versions := s.history[key]
	items := make([]*queryresult.KeyModification, 0, len(versions))
	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		items = append(items, &queryresult.KeyModification{
			TxId:      v.TxId,
			Value:     clone(v.Value),
			Timestamp: v.Timestamp,
			IsDelete:  v.IsDelete,
		})
	}
	s.open++
	return &historyIterator{iterator: iterator[*queryresult.KeyModification]{store: s, items: items}}, nil
}

// GetQueryResult returns the entries matching the given rich query in key order
func (s *Store) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	sel, err := selector.Parse(query)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var items []*queryresult.KV
	s.state.Ascend(nil, func(i interface{}) bool {
		e := i.(*entry)
		if sel.Matches(e.value) {
			items = append(items, &queryresult.KV{Key: e.key, Value: clone(e.value)})
		}
		return true
	})
	s.open++
	return &stateIterator{iterator: iterator[*queryresult.KV]{store: s, items: items}}, nil
}

// Len returns the number of keys currently stored
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.state.Len()
}

// OpenIterators returns the number of iterators not yet closed
func (s *Store) OpenIterators() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.open
}

func (s *Store) release() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.open--
}

func clone(v []byte) []byte {
	if v == nil {
		return nil
	}
	c := make([]byte, len(v))
	copy(c, v)
	return c
}
