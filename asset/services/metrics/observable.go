/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"time"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
)

// ObservableRegistry records counts and durations of the operations of the wrapped service
type ObservableRegistry struct {
	Service asset.Service
	Metrics *Metrics
}

func NewObservableRegistry(service asset.Service, metrics *Metrics) *ObservableRegistry {
	return &ObservableRegistry{Service: service, Metrics: metrics}
}

func (o *ObservableRegistry) Exists(ctx context.Context, store asset.Store, key string) (bool, error) {
	defer o.observe(Exists, time.Now())
	exists, err := o.Service.Exists(ctx, store, key)
	o.Metrics.AddOperation(Exists, err == nil)
	return exists, err
}

func (o *ObservableRegistry) Create(ctx context.Context, store asset.Store, key string, fields asset.Fields) error {
	defer o.observe(Create, time.Now())
	err := o.Service.Create(ctx, store, key, fields)
	o.Metrics.AddOperation(Create, err == nil)
	return err
}

func (o *ObservableRegistry) Read(ctx context.Context, store asset.Store, key string) (asset.Fields, error) {
	defer o.observe(Read, time.Now())
	fields, err := o.Service.Read(ctx, store, key)
	o.Metrics.AddOperation(Read, err == nil)
	return fields, err
}

func (o *ObservableRegistry) Update(ctx context.Context, store asset.Store, key string, fields asset.Fields) error {
	defer o.observe(Update, time.Now())
	err := o.Service.Update(ctx, store, key, fields)
	o.Metrics.AddOperation(Update, err == nil)
	return err
}

func (o *ObservableRegistry) Delete(ctx context.Context, store asset.Store, key string) error {
	defer o.observe(Delete, time.Now())
	err := o.Service.Delete(ctx, store, key)
	o.Metrics.AddOperation(Delete, err == nil)
	return err
}

func (o *ObservableRegistry) ScanAll(ctx context.Context, store asset.Store) ([]*asset.Record, error) {
	defer o.observe(ScanAll, time.Now())
	records, err := o.Service.ScanAll(ctx, store)
	o.Metrics.AddOperation(ScanAll, err == nil)
	undecoded := 0
	for _, r := range records {
		if !r.Value.Decoded() {
			undecoded++
		}
	}
	o.Metrics.AddDecodeFailures(ScanAll, undecoded)
	return records, err
}

func (o *ObservableRegistry) HistoryOf(ctx context.Context, store asset.Store, key string) ([]*asset.HistoryEntry, error) {
	defer o.observe(HistoryOf, time.Now())
	entries, err := o.Service.HistoryOf(ctx, store, key)
	o.Metrics.AddOperation(HistoryOf, err == nil)
	undecoded := 0
	for _, e := range entries {
		if !e.Value.Decoded() {
			undecoded++
		}
	}
	o.Metrics.AddDecodeFailures(HistoryOf, undecoded)
	return entries, err
}

func (o *ObservableRegistry) observe(operation string, start time.Time) {
	o.Metrics.ObserveDuration(operation, time.Since(start))
}
