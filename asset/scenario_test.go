/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package asset_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/memory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sourcegraph/conc"
)

var _ = Describe("Registry over a store", func() {
	var (
		ctx      context.Context
		registry *asset.Registry
		store    *memory.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		registry = asset.NewRegistry()
		store = memory.New()
		Expect(store.PutState("1001", []byte(`{"value":"animal 1001 value"}`))).To(Succeed())
		Expect(store.PutState("1002", []byte(`{"value":"animal 1002 value"}`))).To(Succeed())
	})

	It("reads back the created payload at the JSON level", func() {
		fields := asset.Fields{"weight": 1.5, "nested": map[string]interface{}{"count": 2, "tags": []string{"a", "b"}}}
		Expect(registry.Create(ctx, store, "1003", fields)).To(Succeed())

		read, err := registry.Read(ctx, store, "1003")
		Expect(err).NotTo(HaveOccurred())
		Expect(read["weight"]).To(Equal(json.Number("1.5")))
		expected, err := json.Marshal(fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Marshal(read)).To(MatchJSON(expected))
	})

	It("runs an asset through its lifecycle", func() {
		Expect(registry.Create(ctx, store, "1003", asset.Fields{"value": "animal 1003 value"})).To(Succeed())
		Expect(registry.Read(ctx, store, "1003")).To(Equal(asset.Fields{"value": "animal 1003 value"}))

		Expect(registry.Update(ctx, store, "1001", asset.Fields{"value": "animal 1001 new value"})).To(Succeed())
		Expect(store.GetState("1001")).To(Equal([]byte(`{"value":"animal 1001 new value"}`)))

		Expect(registry.Delete(ctx, store, "1001")).To(Succeed())
		Expect(registry.Exists(ctx, store, "1001")).To(BeFalse())
		_, err := registry.Read(ctx, store, "1001")
		Expect(err).To(MatchError(asset.ErrNotFound))

		records, err := registry.ScanAll(ctx, store)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records[0].Key).To(Equal("1002"))
		Expect(records[1].Key).To(Equal("1003"))

		history, err := registry.HistoryOf(ctx, store, "1001")
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(HaveLen(2))
		Expect(history[0].Value.Fields).To(Equal(asset.Fields{"value": "animal 1001 new value"}))
		Expect(history[1].Value.Fields).To(Equal(asset.Fields{"value": "animal 1001 value"}))
		Expect(history[0].TxID).NotTo(Equal(history[1].TxID))

		Expect(store.OpenIterators()).To(BeZero())
	})

	It("lets a deleted key be created again", func() {
		Expect(registry.Delete(ctx, store, "1002")).To(Succeed())
		Expect(registry.Create(ctx, store, "1002", asset.Fields{"value": "reborn"})).To(Succeed())
		Expect(registry.Read(ctx, store, "1002")).To(Equal(asset.Fields{"value": "reborn"}))
	})

	It("never reports a conflict other than already exists on concurrent creates", func() {
		const writers = 16
		var (
			wg        conc.WaitGroup
			mutex     sync.Mutex
			succeeded int
			failures  []error
		)
		candidates := make([]string, writers)
		for i := 0; i < writers; i++ {
			candidates[i] = fmt.Sprintf(`{"value":"writer %d"}`, i)
			value := fmt.Sprintf("writer %d", i)
			wg.Go(func() {
				err := registry.Create(ctx, store, "2001", asset.Fields{"value": value})
				mutex.Lock()
				defer mutex.Unlock()
				if err != nil {
					failures = append(failures, err)
					return
				}
				succeeded++
			})
		}
		wg.Wait()

		Expect(succeeded).To(BeNumerically(">=", 1))
		Expect(succeeded + len(failures)).To(Equal(writers))
		for _, err := range failures {
			Expect(err).To(MatchError(asset.ErrAlreadyExists))
		}
		raw, err := store.GetState("2001")
		Expect(err).NotTo(HaveOccurred())
		Expect(candidates).To(ContainElement(string(raw)))
	})
})
