/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package asset_test

import (
	"context"
	"time"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/mock"
	"github.com/hyperledger/fabric-protos-go-apiv2/ledger/queryresult"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ = Describe("Registry", func() {
	var (
		ctx       context.Context
		registry  *asset.Registry
		fakeStore *mock.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		registry = asset.NewRegistry()
		fakeStore = &mock.Store{}
		fakeStore.GetStateStub = func(key string) ([]byte, error) {
			switch key {
			case "1001":
				return []byte(`{"value":"animal 1001 value"}`), nil
			case "1002":
				return []byte(`{"value":"animal 1002 value"}`), nil
			case "corrupted":
				return []byte(`animal`), nil
			}
			return nil, nil
		}
	})

	Describe("Exists", func() {
		It("returns true for an asset", func() {
			Expect(registry.Exists(ctx, fakeStore, "1001")).To(BeTrue())
		})

		It("returns false for an asset that does not exist", func() {
			Expect(registry.Exists(ctx, fakeStore, "1003")).To(BeFalse())
		})

		It("returns false for an empty value", func() {
			fakeStore.GetStateReturns([]byte{}, nil)
			Expect(registry.Exists(ctx, fakeStore, "1001")).To(BeFalse())
		})

		It("asks the store on every call", func() {
			Expect(registry.Exists(ctx, fakeStore, "1001")).To(BeTrue())
			Expect(registry.Exists(ctx, fakeStore, "1001")).To(BeTrue())
			Expect(fakeStore.GetStateCallCount()).To(Equal(2))
		})

		It("returns the store error unchanged", func() {
			storeErr := errors.New("peer unreachable")
			fakeStore.GetStateReturns(nil, storeErr)
			_, err := registry.Exists(ctx, fakeStore, "1001")
			Expect(err).To(BeIdenticalTo(storeErr))
		})
	})

	Describe("Create", func() {
		It("creates an asset", func() {
			Expect(registry.Create(ctx, fakeStore, "1003", asset.Fields{"value": "animal 1003 value"})).To(Succeed())
			Expect(fakeStore.PutStateCallCount()).To(Equal(1))
			key, value := fakeStore.PutStateArgsForCall(0)
			Expect(key).To(Equal("1003"))
			Expect(value).To(Equal([]byte(`{"value":"animal 1003 value"}`)))
		})

		It("does not hardcode the payload shape", func() {
			fields := asset.Fields{"animal": "wolf", "latitude": "45.1", "longitude": "7.6"}
			Expect(registry.Create(ctx, fakeStore, "1003", fields)).To(Succeed())
			_, value := fakeStore.PutStateArgsForCall(0)
			Expect(value).To(MatchJSON(`{"animal":"wolf","latitude":"45.1","longitude":"7.6"}`))
		})

		It("fails for an asset that already exists", func() {
			err := registry.Create(ctx, fakeStore, "1001", asset.Fields{"value": "myvalue"})
			Expect(err).To(MatchError(asset.ErrAlreadyExists))
			Expect(err.Error()).To(ContainSubstring("the asset 1001"))
			Expect(fakeStore.PutStateCallCount()).To(BeZero())
		})

		It("rejects text that is not valid UTF-8", func() {
			err := registry.Create(ctx, fakeStore, "1003", asset.Fields{"bad": "a\xffb"})
			Expect(err).To(MatchError(asset.ErrInvalidUTF8))
			Expect(err.Error()).To(ContainSubstring("failed creating asset [1003]"))
			Expect(fakeStore.PutStateCallCount()).To(BeZero())

			err = registry.Create(ctx, fakeStore, "1003", asset.Fields{"nested": map[string]interface{}{"list": []interface{}{"ok", "\xc3"}}})
			Expect(err).To(MatchError(ContainSubstring("field [nested.list[1]]")))
			Expect(fakeStore.PutStateCallCount()).To(BeZero())
		})

		It("returns the store error unchanged", func() {
			storeErr := errors.New("write conflict")
			fakeStore.PutStateReturns(storeErr)
			err := registry.Create(ctx, fakeStore, "1003", asset.Fields{"value": "v"})
			Expect(err).To(BeIdenticalTo(storeErr))
		})
	})

	Describe("Read", func() {
		It("returns an asset", func() {
			Expect(registry.Read(ctx, fakeStore, "1001")).To(Equal(asset.Fields{"value": "animal 1001 value"}))
		})

		It("fails for an asset that does not exist", func() {
			_, err := registry.Read(ctx, fakeStore, "1003")
			Expect(err).To(MatchError(asset.ErrNotFound))
			Expect(err.Error()).To(ContainSubstring("the asset 1003"))
		})

		It("fails for a value that is not an object", func() {
			_, err := registry.Read(ctx, fakeStore, "corrupted")
			Expect(err).To(MatchError(ContainSubstring("failed decoding asset [corrupted]")))
		})
	})

	Describe("Update", func() {
		It("updates an asset", func() {
			Expect(registry.Update(ctx, fakeStore, "1001", asset.Fields{"value": "animal 1001 new value"})).To(Succeed())
			Expect(fakeStore.PutStateCallCount()).To(Equal(1))
			key, value := fakeStore.PutStateArgsForCall(0)
			Expect(key).To(Equal("1001"))
			Expect(value).To(Equal([]byte(`{"value":"animal 1001 new value"}`)))
		})

		It("merges the fields", func() {
			fakeStore.GetStateReturns([]byte(`{"animal":"cat","latitude":"41.9","longitude":"12.5"}`), nil)
			Expect(registry.Update(ctx, fakeStore, "1001", asset.Fields{"latitude": "42.0", "name": "tom"})).To(Succeed())
			_, value := fakeStore.PutStateArgsForCall(0)
			Expect(value).To(MatchJSON(`{"animal":"cat","latitude":"42.0","longitude":"12.5","name":"tom"}`))
		})

		It("fails for an asset that does not exist", func() {
			err := registry.Update(ctx, fakeStore, "1003", asset.Fields{"value": "animal 1003 new value"})
			Expect(err).To(MatchError(asset.ErrNotFound))
			Expect(fakeStore.PutStateCallCount()).To(BeZero())
		})

		It("rejects text that is not valid UTF-8", func() {
			err := registry.Update(ctx, fakeStore, "1001", asset.Fields{"value": "\xffnew"})
			Expect(err).To(MatchError(asset.ErrInvalidUTF8))
			Expect(fakeStore.PutStateCallCount()).To(BeZero())
		})

		It("does not overwrite a value that cannot be decoded", func() {
			err := registry.Update(ctx, fakeStore, "corrupted", asset.Fields{"value": "v"})
			Expect(err).To(HaveOccurred())
			Expect(fakeStore.PutStateCallCount()).To(BeZero())
		})
	})

	Describe("Delete", func() {
		It("deletes an asset", func() {
			Expect(registry.Delete(ctx, fakeStore, "1001")).To(Succeed())
			Expect(fakeStore.DelStateCallCount()).To(Equal(1))
			Expect(fakeStore.DelStateArgsForCall(0)).To(Equal("1001"))
		})

		It("fails for an asset that does not exist", func() {
			err := registry.Delete(ctx, fakeStore, "1003")
			Expect(err).To(MatchError(asset.ErrNotFound))
			Expect(err.Error()).To(Equal("the asset 1003: does not exist"))
			Expect(fakeStore.DelStateCallCount()).To(BeZero())
		})
	})

	Describe("ScanAll", func() {
		var it *mock.StateQueryIterator

		BeforeEach(func() {
			it = stateIterator(
				&queryresult.KV{Key: "a", Value: []byte(`{"value":"a"}`)},
				&queryresult.KV{Key: "b", Value: []byte(`not json`)},
				&queryresult.KV{Key: "empty"},
				&queryresult.KV{Key: "c", Value: []byte(`{"value":"c"}`)},
			)
			fakeStore.GetQueryResultReturns(it, nil)
		})

		It("returns every asset with the undecodable ones as raw text", func() {
			records, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.GetQueryResultArgsForCall(0)).To(Equal(`{"selector":{}}`))
			Expect(records).To(HaveLen(3))
			Expect(records[0].Key).To(Equal("a"))
			Expect(records[0].Value.Fields).To(Equal(asset.Fields{"value": "a"}))
			Expect(records[1].Key).To(Equal("b"))
			Expect(records[1].Value.Decoded()).To(BeFalse())
			Expect(records[1].Value.Raw).To(Equal("not json"))
			Expect(records[2].Key).To(Equal("c"))
			Expect(it.CloseCallCount()).To(Equal(1))
		})

		It("returns an empty sequence for an empty store", func() {
			fakeStore.GetQueryResultReturns(stateIterator(), nil)
			records, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})

		It("closes the iterator when the traversal fails", func() {
			storeErr := errors.New("iterator broken")
			it.NextReturnsOnCall(1, nil, storeErr)
			records, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).To(BeIdenticalTo(storeErr))
			Expect(records).To(BeNil())
			Expect(it.CloseCallCount()).To(Equal(1))
		})

		It("returns the close error after a successful traversal", func() {
			closeErr := errors.New("close failed")
			it.CloseReturns(closeErr)
			_, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).To(BeIdenticalTo(closeErr))
			Expect(it.CloseCallCount()).To(Equal(1))
		})

		It("keeps the traversal error when close fails too", func() {
			storeErr := errors.New("iterator broken")
			it.NextReturnsOnCall(0, nil, storeErr)
			it.CloseReturns(errors.New("close failed"))
			_, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).To(BeIdenticalTo(storeErr))
			Expect(it.CloseCallCount()).To(Equal(1))
		})

		It("does not close an iterator it did not get", func() {
			storeErr := errors.New("rich queries not supported")
			fakeStore.GetQueryResultReturns(nil, storeErr)
			_, err := registry.ScanAll(ctx, fakeStore)
			Expect(err).To(BeIdenticalTo(storeErr))
			Expect(it.CloseCallCount()).To(BeZero())
		})
	})

	Describe("HistoryOf", func() {
		var (
			it  *mock.HistoryQueryIterator
			now time.Time
		)

		BeforeEach(func() {
			now = time.Now().UTC()
			it = historyIterator(
				&queryresult.KeyModification{TxId: "tx4", IsDelete: true, Timestamp: timestamppb.New(now)},
				&queryresult.KeyModification{TxId: "tx3", Value: []byte(`{"value":"3"}`), Timestamp: timestamppb.New(now.Add(-time.Second))},
				&queryresult.KeyModification{TxId: "tx2", Value: []byte(`garbage`)},
				&queryresult.KeyModification{TxId: "tx1", Value: []byte(`{"value":"1"}`)},
			)
			fakeStore.GetHistoryForKeyReturns(it, nil)
		})

		It("returns every version in the store order", func() {
			entries, err := registry.HistoryOf(ctx, fakeStore, "1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.GetHistoryForKeyArgsForCall(0)).To(Equal("1001"))
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].TxID).To(Equal("tx3"))
			Expect(entries[0].Timestamp).To(BeTemporally("==", now.Add(-time.Second)))
			Expect(entries[0].Value.Fields).To(Equal(asset.Fields{"value": "3"}))
			Expect(entries[1].TxID).To(Equal("tx2"))
			Expect(entries[1].Value.Raw).To(Equal("garbage"))
			Expect(entries[1].Timestamp.IsZero()).To(BeTrue())
			Expect(entries[2].TxID).To(Equal("tx1"))
			Expect(it.CloseCallCount()).To(Equal(1))
		})

		It("is not gated by existence", func() {
			_, err := registry.HistoryOf(ctx, fakeStore, "1003")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.GetStateCallCount()).To(BeZero())
		})

		It("returns an empty sequence for a key without history", func() {
			fakeStore.GetHistoryForKeyReturns(historyIterator(), nil)
			entries, err := registry.HistoryOf(ctx, fakeStore, "1003")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).NotTo(BeNil())
			Expect(entries).To(BeEmpty())
		})

		It("closes the iterator when the traversal fails", func() {
			storeErr := errors.New("iterator broken")
			it.NextReturnsOnCall(2, nil, storeErr)
			_, err := registry.HistoryOf(ctx, fakeStore, "1001")
			Expect(err).To(BeIdenticalTo(storeErr))
			Expect(it.CloseCallCount()).To(Equal(1))
		})
	})
})

// stateIterator returns a fake iterator yielding the given items
func stateIterator(items ...*queryresult.KV) *mock.StateQueryIterator {
	it := &mock.StateQueryIterator{}
	it.HasNextCalls(func() bool { return it.NextCallCount() < len(items) })
	for i, item := range items {
		it.NextReturnsOnCall(i, item, nil)
	}
	return it
}

func historyIterator(items ...*queryresult.KeyModification) *mock.HistoryQueryIterator {
	it := &mock.HistoryQueryIterator{}
	it.HasNextCalls(func() bool { return it.NextCallCount() < len(items) })
	for i, item := range items {
		it.NextReturnsOnCall(i, item, nil)
	}
	return it
}
