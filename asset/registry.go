/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asset

import (
	"context"

	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/logging"
	"github.com/hyperledger/fabric-chaincode-go/v2/shim"
	"github.com/pkg/errors"
)

var logger = logging.MustGetLogger("asset")

//go:generate counterfeiter -o mock/service.go -fake-name Service . Service

// Service models the operations of the asset registry
type Service interface {
	Exists(ctx context.Context, store Store, key string) (bool, error)
	Create(ctx context.Context, store Store, key string, fields Fields) error
	Read(ctx context.Context, store Store, key string) (Fields, error)
	Update(ctx context.Context, store Store, key string, fields Fields) error
	Delete(ctx context.Context, store Store, key string) error
	ScanAll(ctx context.Context, store Store) ([]*Record, error)
	HistoryOf(ctx context.Context, store Store, key string) ([]*HistoryEntry, error)
}

// Registry implements Service against the store passed to each call.
// It holds no state: existence is re-evaluated on every call.
//
// Payloads round-trip at the JSON level: Read returns fields that encode to the same JSON
// as those created, with numbers decoded as json.Number rather than their original Go type.
//
// The existence check and the subsequent write are two distinct store calls.
// A concurrent writer may interleave between them; serializability is up to the store.
type Registry struct{}

func NewRegistry() *Registry {
	return &Registry{}
}

// Exists returns true if a non-empty value is stored under key
func (r *Registry) Exists(ctx context.Context, store Store, key string) (bool, error) {
	raw, err := store.GetState(key)
	if err != nil {
		return false, err
	}
	return len(raw) > 0, nil
}

// Create stores a new asset under key. It fails with ErrAlreadyExists if key is present.
func (r *Registry) Create(ctx context.Context, store Store, key string, fields Fields) error {
	exists, err := r.Exists(ctx, store, key)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists(key)
	}
	raw, err := fields.Bytes()
	if err != nil {
		return errors.WithMessagef(err, "failed creating asset [%s]", key)
	}
	logger.Debugf("create asset [%s], size [%d]", key, len(raw))
	return store.PutState(key, raw)
}

// Read returns the fields of the asset stored under key. It fails with ErrNotFound if key is absent.
func (r *Registry) Read(ctx context.Context, store Store, key string) (Fields, error) {
	exists, err := r.Exists(ctx, store, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound(key)
	}
	return r.fetch(store, key)
}

// Update merges fields into the asset stored under key: fields present in the update overwrite the
// stored ones, the others are preserved. It fails with ErrNotFound if key is absent.
func (r *Registry) Update(ctx context.Context, store Store, key string, fields Fields) error {
	exists, err := r.Exists(ctx, store, key)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(key)
	}
	current, err := r.fetch(store, key)
	if err != nil {
		return err
	}
	raw, err := current.Merge(fields).Bytes()
	if err != nil {
		return errors.WithMessagef(err, "failed updating asset [%s]", key)
	}
	logger.Debugf("update asset [%s], size [%d]", key, len(raw))
	return store.PutState(key, raw)
}

// Delete removes the asset stored under key. It fails with ErrNotFound if key is absent.
func (r *Registry) Delete(ctx context.Context, store Store, key string) error {
	exists, err := r.Exists(ctx, store, key)
	if err != nil {
		return err
	}
	if !exists {
		return notFound(key)
	}
	logger.Debugf("delete asset [%s]", key)
	return store.DelState(key)
}

// ScanAll returns every asset of the store, in the order the store yields them.
// Entries that cannot be decoded are returned with their raw text.
func (r *Registry) ScanAll(ctx context.Context, store Store) (records []*Record, err error) {
	it, err := store.GetQueryResult(MatchAll)
	if err != nil {
		return nil, err
	}
	defer func() { err = closeIterator(it, err) }()

	records = []*Record{}
	for it.HasNext() {
		kv, err := it.Next()
		if err != nil {
			return nil, err
		}
		if len(kv.Value) == 0 {
			continue
		}
		v, err := NewValue(kv.Value)
		if err != nil {
			logger.Warnf("failed decoding asset [%s], returning raw value: [%s]", kv.Key, err)
		}
		records = append(records, &Record{Key: kv.Key, Value: v})
	}
	logger.Debugf("scanned [%d] assets", len(records))
	return records, nil
}

// HistoryOf returns every committed version of key, in the order the store yields them.
// It does not require key to be present: a deleted asset still has a history.
func (r *Registry) HistoryOf(ctx context.Context, store Store, key string) (entries []*HistoryEntry, err error) {
	it, err := store.GetHistoryForKey(key)
	if err != nil {
		return nil, err
	}
	defer func() { err = closeIterator(it, err) }()

	entries = []*HistoryEntry{}
	for it.HasNext() {
		m, err := it.Next()
		if err != nil {
			return nil, err
		}
		if len(m.Value) == 0 {
			continue
		}
		v, err := NewValue(m.Value)
		if err != nil {
			logger.Warnf("failed decoding version [%s] of asset [%s], returning raw value: [%s]", m.TxId, key, err)
		}
		entry := &HistoryEntry{TxID: m.TxId, Value: v}
		if m.Timestamp != nil {
			entry.Timestamp = m.Timestamp.AsTime()
		}
		entries = append(entries, entry)
	}
	logger.Debugf("found [%d] versions of asset [%s]", len(entries), key)
	return entries, nil
}

func (r *Registry) fetch(store Store, key string) (Fields, error) {
	raw, err := store.GetState(key)
	if err != nil {
		return nil, err
	}
	f, err := FieldsFromBytes(raw)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed decoding asset [%s]", key)
	}
	return f, nil
}

// closeIterator releases it and merges the outcome with the traversal error
func closeIterator(it shim.CommonIteratorInterface, err error) error {
	cerr := it.Close()
	if cerr == nil {
		return err
	}
	if err != nil {
		logger.Errorf("failed closing iterator after [%s]: [%s]", err, cerr)
		return err
	}
	return cerr
}
