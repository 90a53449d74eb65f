/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package acc_test

import (
	"context"
	"encoding/json"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/mock"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/network/fabric/acc"
	"github.com/hyperledger-labs/fabric-asset-registry/asset/services/storage/memory"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("AssetChaincode", func() {
	var (
		chaincode *acc.AssetChaincode
		store     *memory.Store
		fakestub  *stub
	)

	BeforeEach(func() {
		chaincode = acc.NewAssetChaincode(asset.NewRegistry())
		store = memory.New()
		Expect(store.PutState("1001", []byte(`{"value":"animal 1001 value"}`))).To(Succeed())
		Expect(store.PutState("1002", []byte(`{"value":"animal 1002 value"}`))).To(Succeed())
		fakestub = newStub(store)
	})

	Describe("Init", func() {
		It("succeeds", func() {
			response := chaincode.Init(fakestub)
			Expect(response).NotTo(BeNil())
			Expect(response.Status).To(Equal(int32(200)))
		})
	})

	Describe("Invoke", func() {
		It("checks existence", func() {
			response := chaincode.Invoke(fakestub.call("assetExists", "1001"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(string(response.Payload)).To(Equal("true"))

			response = chaincode.Invoke(fakestub.call("animalExists", "1003"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(string(response.Payload)).To(Equal("false"))
		})

		It("creates and reads an asset", func() {
			response := chaincode.Invoke(fakestub.call("createAsset", "1003", `{"value":"animal 1003 value"}`))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(store.GetState("1003")).To(Equal([]byte(`{"value":"animal 1003 value"}`)))

			response = chaincode.Invoke(fakestub.call("readAsset", "1003"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(response.Payload).To(MatchJSON(`{"value":"animal 1003 value"}`))
		})

		It("creates, updates and reads an animal", func() {
			response := chaincode.Invoke(fakestub.call("createAnimal", "2001", "wolf", "45.07", "7.68"))
			Expect(response.Status).To(Equal(int32(200)))

			response = chaincode.Invoke(fakestub.call("updateAnimal", "2001", "wolf", "45.10", "7.70"))
			Expect(response.Status).To(Equal(int32(200)))

			response = chaincode.Invoke(fakestub.call("readAnimal", "2001"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(response.Payload).To(MatchJSON(`{"animal":"wolf","latitude":"45.10","longitude":"7.70"}`))
		})

		It("merges an update", func() {
			response := chaincode.Invoke(fakestub.call("updateAsset", "1001", `{"owner":"tom"}`))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(store.GetState("1001")).To(MatchJSON(`{"owner":"tom","value":"animal 1001 value"}`))
		})

		It("rejects a create on an existing key", func() {
			response := chaincode.Invoke(fakestub.call("createAsset", "1001", `{"value":"myvalue"}`))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("the asset 1001: already exists"))
		})

		It("rejects operations on a missing key", func() {
			for _, f := range []string{"readAsset", "deleteAsset"} {
				response := chaincode.Invoke(fakestub.call(f, "1003"))
				Expect(response.Status).To(Equal(int32(500)), f)
				Expect(response.Message).To(Equal("the asset 1003: does not exist"), f)
			}
			response := chaincode.Invoke(fakestub.call("updateAsset", "1003", `{"value":"v"}`))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(ContainSubstring("does not exist"))
		})

		It("deletes an asset", func() {
			response := chaincode.Invoke(fakestub.call("deleteAsset", "1001"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(store.GetState("1001")).To(BeNil())
		})

		It("reads all assets", func() {
			Expect(store.PutState("1000", []byte("not json"))).To(Succeed())
			response := chaincode.Invoke(fakestub.call("readAllAnimals"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(response.Payload).To(MatchJSON(`[
				{"key":"1000","value":"not json"},
				{"key":"1001","value":{"value":"animal 1001 value"}},
				{"key":"1002","value":{"value":"animal 1002 value"}}
			]`))
			Expect(store.OpenIterators()).To(BeZero())
		})

		It("returns the history of an asset", func() {
			Expect(chaincode.Invoke(fakestub.call("updateAsset", "1001", `{"value":"new"}`)).Status).To(Equal(int32(200)))
			Expect(chaincode.Invoke(fakestub.call("deleteAsset", "1001")).Status).To(Equal(int32(200)))

			response := chaincode.Invoke(fakestub.call("getHistoryForAsset", "1001"))
			Expect(response.Status).To(Equal(int32(200)))
			var entries []map[string]interface{}
			Expect(json.Unmarshal(response.Payload, &entries)).To(Succeed())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0]["value"]).To(Equal(map[string]interface{}{"value": "new"}))
			Expect(entries[1]["value"]).To(Equal(map[string]interface{}{"value": "animal 1001 value"}))
			Expect(entries[0]).To(HaveKey("txId"))
			Expect(entries[0]).To(HaveKey("timestamp"))

			response = chaincode.Invoke(fakestub.call("getHistoryOfAnimal", "9999"))
			Expect(response.Status).To(Equal(int32(200)))
			Expect(response.Payload).To(MatchJSON(`[]`))
		})

		It("words the errors of the animal functions as the animal contract does", func() {
			response := chaincode.Invoke(fakestub.call("createAnimal", "1001", "wolf", "45.07", "7.68"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("The animal 1001 already exists"))

			for _, f := range []string{"readAnimal", "deleteAnimal"} {
				response = chaincode.Invoke(fakestub.call(f, "1003"))
				Expect(response.Status).To(Equal(int32(500)), f)
				Expect(response.Message).To(Equal("The animal 1003 does not exist"), f)
			}
			response = chaincode.Invoke(fakestub.call("updateAnimal", "1003", "wolf", "45.07", "7.68"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("The animal 1003 does not exist"))
		})

		It("leaves the other animal errors untouched", func() {
			service := &mock.Service{}
			service.ReadReturns(nil, errors.New("peer unreachable"))
			chaincode = acc.NewAssetChaincode(service)
			response := chaincode.Invoke(fakestub.call("readAnimal", "1001"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("peer unreachable"))
		})

		It("does not store text that is not valid UTF-8", func() {
			response := chaincode.Invoke(fakestub.call("createAnimal", "2001", "wo\xfflf", "45.07", "7.68"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(ContainSubstring("invalid UTF-8"))
			Expect(store.GetState("2001")).To(BeNil())

			response = chaincode.Invoke(fakestub.call("updateAnimal", "1001", "wolf", "45.07\xff", "7.68"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(ContainSubstring("invalid UTF-8"))
			Expect(store.GetState("1001")).To(Equal([]byte(`{"value":"animal 1001 value"}`)))
		})

		DescribeTable("rejects malformed invocations",
			func(message string, function string, args []string) {
				response := chaincode.Invoke(fakestub.call(function, args...))
				Expect(response.Status).To(Equal(int32(500)))
				Expect(response.Message).To(ContainSubstring(message))
			},
			Entry("unknown function", "function [transfer] not recognized", "transfer", []string{}),
			Entry("missing key", "expects 1 arguments", "readAsset", []string{}),
			Entry("extra arguments", "expects 0 arguments", "readAllAssets", []string{"x"}),
			Entry("animal arity", "expects 4 arguments", "createAnimal", []string{"2001", "wolf"}),
			Entry("fields not json", "invalid fields for [2001]", "createAsset", []string{"2001", "wolf"}),
			Entry("fields not an object", "invalid fields for [1001]", "updateAsset", []string{"1001", `["a"]`}),
			Entry("fields not valid UTF-8", "invalid fields for [2001]", "createAsset", []string{"2001", "{\"value\":\"a\xffb\"}"}),
			Entry("field name not valid UTF-8", "invalid UTF-8", "updateAsset", []string{"1001", "{\"a\xff\":\"b\"}"}),
		)

		It("fails without a function name", func() {
			fakestub.args = nil
			response := chaincode.Invoke(fakestub)
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("missing parameters"))
		})

		It("turns a panic into an error response", func() {
			service := &mock.Service{}
			service.ReadStub = func(_ context.Context, _ asset.Store, key string) (asset.Fields, error) {
				panic("flying monkeys")
			}
			chaincode = acc.NewAssetChaincode(service)
			response := chaincode.Invoke(fakestub.call("readAsset", "1001"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(ContainSubstring("flying monkeys"))
		})

		It("returns registry errors as they are", func() {
			service := &mock.Service{}
			service.ScanAllReturns(nil, errors.New("rich queries are not supported"))
			chaincode = acc.NewAssetChaincode(service)
			response := chaincode.Invoke(fakestub.call("readAllAssets"))
			Expect(response.Status).To(Equal(int32(500)))
			Expect(response.Message).To(Equal("rich queries are not supported"))
		})
	})
})
