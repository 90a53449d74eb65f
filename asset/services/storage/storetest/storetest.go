/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package storetest

import (
	"context"
	"testing"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/hyperledger/fabric-protos-go-apiv2/ledger/queryresult"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store
type Factory func(t *testing.T) asset.Store

// StoreTest runs the conformance suite every asset.Store implementation of this module satisfies:
// Fabric semantics for state, history (newest first, deletes included) and rich queries.
func StoreTest(t *testing.T, newStore Factory) {
	for _, c := range storeCases {
		t.Run(c.Name, func(t *testing.T) {
			c.Fn(t, newStore(t))
		})
	}
}

// RegistryTest runs the asset registry scenarios on top of the given store implementation
func RegistryTest(t *testing.T, newStore Factory) {
	for _, c := range registryCases {
		t.Run(c.Name, func(t *testing.T) {
			c.Fn(t, newStore(t))
		})
	}
}

type testCase struct {
	Name string
	Fn   func(*testing.T, asset.Store)
}

var storeCases = []testCase{
	{"State", TState},
	{"Query", TQuery},
	{"History", THistory},
	{"Iterators", TIterators},
}

var registryCases = []testCase{
	{"Lifecycle", TLifecycle},
	{"ScanAll", TScanAll},
	{"HistoryOf", THistoryOf},
}

func TState(t *testing.T, s asset.Store) {
	v, err := s.GetState("k1")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.PutState("k1", []byte("v1")))
	v, err = s.GetState("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, s.PutState("k1", []byte("v2")))
	v, err = s.GetState("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, s.DelState("k1"))
	v, err = s.GetState("k1")
	require.NoError(t, err)
	assert.Empty(t, v)

	// deleting an absent key is not an error
	require.NoError(t, s.DelState("k1"))
}

func TQuery(t *testing.T, s asset.Store) {
	require.NoError(t, s.PutState("c", []byte(`{"animal":"cat","legs":4}`)))
	require.NoError(t, s.PutState("a", []byte(`{"animal":"ant","legs":6}`)))
	require.NoError(t, s.PutState("b", []byte(`{"animal":"bat","legs":2}`)))
	require.NoError(t, s.PutState("x", []byte(`not json`)))

	kvs := drainState(t, s, asset.MatchAll)
	assert.Equal(t, []string{"a", "b", "c", "x"}, keys(kvs))
	assert.Equal(t, []byte(`not json`), kvs[3].Value)

	kvs = drainState(t, s, `{"selector":{"legs":4}}`)
	assert.Equal(t, []string{"c"}, keys(kvs))

	kvs = drainState(t, s, `{"selector":{"animal":"dog"}}`)
	assert.Empty(t, kvs)

	_, err := s.GetQueryResult(`{"fields":["animal"]}`)
	assert.Error(t, err)
}

func THistory(t *testing.T, s asset.Store) {
	h := drainHistory(t, s, "k1")
	assert.Empty(t, h)

	require.NoError(t, s.PutState("k1", []byte("v1")))
	require.NoError(t, s.PutState("k1", []byte("v2")))
	require.NoError(t, s.PutState("k2", []byte("other")))
	require.NoError(t, s.PutState("k1", []byte("v3")))
	require.NoError(t, s.DelState("k1"))

	h = drainHistory(t, s, "k1")
	require.Len(t, h, 4)
	assert.True(t, h[0].IsDelete)
	assert.Empty(t, h[0].Value)
	assert.Equal(t, []byte("v3"), h[1].Value)
	assert.Equal(t, []byte("v2"), h[2].Value)
	assert.Equal(t, []byte("v1"), h[3].Value)
	txIDs := map[string]bool{}
	for _, m := range h {
		assert.NotEmpty(t, m.TxId)
		assert.NotNil(t, m.Timestamp)
		txIDs[m.TxId] = true
	}
	assert.Len(t, txIDs, 4)
}

func TIterators(t *testing.T, s asset.Store) {
	require.NoError(t, s.PutState("a", []byte("1")))
	require.NoError(t, s.PutState("b", []byte("2")))

	// closing before draining releases the iterator
	it, err := s.GetQueryResult(asset.MatchAll)
	require.NoError(t, err)
	assert.True(t, it.HasNext())
	require.NoError(t, it.Close())

	hit, err := s.GetHistoryForKey("a")
	require.NoError(t, err)
	require.NoError(t, hit.Close())

	// the store is still usable afterwards
	require.NoError(t, s.PutState("c", []byte("3")))
	assert.Len(t, drainState(t, s, asset.MatchAll), 3)
}

func TLifecycle(t *testing.T, s asset.Store) {
	ctx := context.Background()
	r := asset.NewRegistry()

	exists, err := r.Exists(ctx, s, "1001")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, r.Create(ctx, s, "1001", asset.Fields{"value": "animal 1001 value"}))
	exists, err = r.Exists(ctx, s, "1001")
	require.NoError(t, err)
	assert.True(t, exists)

	f, err := r.Read(ctx, s, "1001")
	require.NoError(t, err)
	assert.Equal(t, asset.Fields{"value": "animal 1001 value"}, f)

	err = r.Create(ctx, s, "1001", asset.Fields{"value": "other"})
	assert.ErrorIs(t, err, asset.ErrAlreadyExists)

	require.NoError(t, r.Update(ctx, s, "1001", asset.Fields{"value": "animal 1001 new value"}))
	f, err = r.Read(ctx, s, "1001")
	require.NoError(t, err)
	assert.Equal(t, asset.Fields{"value": "animal 1001 new value"}, f)

	require.NoError(t, r.Delete(ctx, s, "1001"))
	exists, err = r.Exists(ctx, s, "1001")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = r.Read(ctx, s, "1001")
	assert.ErrorIs(t, err, asset.ErrNotFound)
	assert.ErrorIs(t, r.Update(ctx, s, "1001", asset.Fields{}), asset.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, s, "1001"), asset.ErrNotFound)
}

func TScanAll(t *testing.T, s asset.Store) {
	ctx := context.Background()
	r := asset.NewRegistry()

	records, err := r.ScanAll(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, records)

	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, r.Create(ctx, s, k, asset.Fields{"name": k}))
	}
	require.NoError(t, s.PutState("broken", []byte("{broken")))

	records, err = r.ScanAll(ctx, s)
	require.NoError(t, err)
	require.Len(t, records, 4)
	byKey := map[string]asset.Value{}
	for _, rec := range records {
		byKey[rec.Key] = rec.Value
	}
	for _, k := range []string{"a", "b", "c"} {
		require.Contains(t, byKey, k)
		assert.True(t, byKey[k].Decoded())
		assert.Equal(t, k, byKey[k].Fields["name"])
	}
	require.Contains(t, byKey, "broken")
	assert.False(t, byKey["broken"].Decoded())
	assert.Equal(t, "{broken", byKey["broken"].Raw)
}

func THistoryOf(t *testing.T, s asset.Store) {
	ctx := context.Background()
	r := asset.NewRegistry()

	entries, err := r.HistoryOf(ctx, s, "never-written")
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, r.Create(ctx, s, "k", asset.Fields{"v": "1"}))
	require.NoError(t, r.Update(ctx, s, "k", asset.Fields{"v": "2"}))
	require.NoError(t, r.Update(ctx, s, "k", asset.Fields{"w": "3"}))

	entries, err = r.HistoryOf(ctx, s, "k")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.NotEmpty(t, e.TxID)
		assert.True(t, e.Value.Decoded())
	}

	// a deleted asset keeps its history
	require.NoError(t, r.Delete(ctx, s, "k"))
	entries, err = r.HistoryOf(ctx, s, "k")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func drainState(t *testing.T, s asset.Store, query string) []*queryresult.KV {
	it, err := s.GetQueryResult(query)
	require.NoError(t, err)
	defer closeIterator(t, it)
	var res []*queryresult.KV
	for it.HasNext() {
		kv, err := it.Next()
		require.NoError(t, err)
		res = append(res, kv)
	}
	return res
}

func drainHistory(t *testing.T, s asset.Store, key string) []*queryresult.KeyModification {
	it, err := s.GetHistoryForKey(key)
	require.NoError(t, err)
	defer closeIterator(t, it)
	var res []*queryresult.KeyModification
	for it.HasNext() {
		m, err := it.Next()
		require.NoError(t, err)
		res = append(res, m)
	}
	return res
}

func closeIterator(t *testing.T, it shim.CommonIteratorInterface) {
	assert.NoError(t, it.Close())
}

func keys(kvs []*queryresult.KV) []string {
	res := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		res = append(res, kv.Key)
	}
	return res
}
