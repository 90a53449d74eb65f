/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package asset_test

import (
	"encoding/json"

	"github.com/hyperledger-labs/fabric-asset-registry/asset"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fields", func() {
	Describe("Merge", func() {
		It("overwrites the fields present in the update and keeps the others", func() {
			current := asset.Fields{"animal": "cat", "latitude": "41.9", "longitude": "12.5"}
			merged := current.Merge(asset.Fields{"animal": "lynx", "color": "grey"})
			Expect(merged).To(Equal(asset.Fields{
				"animal":    "lynx",
				"latitude":  "41.9",
				"longitude": "12.5",
				"color":     "grey",
			}))
			// the receiver is left untouched
			Expect(current["animal"]).To(Equal("cat"))
		})

		It("is shallow", func() {
			current := asset.Fields{"position": map[string]interface{}{"lat": "1", "lon": "2"}}
			merged := current.Merge(asset.Fields{"position": map[string]interface{}{"lat": "3"}})
			Expect(merged["position"]).To(Equal(map[string]interface{}{"lat": "3"}))
		})
	})

	Describe("Bytes", func() {
		It("is deterministic", func() {
			f := asset.Fields{"longitude": "12.5", "animal": "cat", "latitude": "41.9"}
			raw, err := f.Bytes()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(`{"animal":"cat","latitude":"41.9","longitude":"12.5"}`))
		})

		It("rejects keys and strings that are not valid UTF-8", func() {
			for _, f := range []asset.Fields{
				{"value": "a\xffb"},
				{"a\xff": "b"},
				{"nested": asset.Fields{"tags": []string{"ok", "\xfe"}}},
				{"nested": map[string]string{"k\xff": "v"}},
			} {
				_, err := f.Bytes()
				Expect(err).To(MatchError(asset.ErrInvalidUTF8))
			}
		})

		It("encodes nil as an empty object", func() {
			raw, err := asset.Fields(nil).Bytes()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(`{}`))
		})
	})

	Describe("FieldsFromBytes", func() {
		It("round-trips numbers and nested objects", func() {
			in := `{"count":12345678901234567890,"nested":{"a":[1,"b"]},"value":"x"}`
			f, err := asset.FieldsFromBytes([]byte(in))
			Expect(err).NotTo(HaveOccurred())
			Expect(f["count"]).To(Equal(json.Number("12345678901234567890")))
			raw, err := f.Bytes()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(in))
		})

		DescribeTable("rejects what is not a single JSON object",
			func(raw string) {
				_, err := asset.FieldsFromBytes([]byte(raw))
				Expect(err).To(HaveOccurred())
			},
			Entry("plain text", "animal 1001 value"),
			Entry("null", "null"),
			Entry("array", `[{"a":1}]`),
			Entry("string", `"text"`),
			Entry("trailing data", `{"a":1} {"b":2}`),
			Entry("truncated", `{"a":`),
			Entry("empty", ``),
			Entry("invalid UTF-8", "{\"value\":\"a\xffb\"}"),
		)
	})

	Describe("Value", func() {
		It("falls back to the raw text", func() {
			v, err := asset.NewValue([]byte("not json"))
			Expect(err).To(HaveOccurred())
			Expect(v.Decoded()).To(BeFalse())
			Expect(v.Raw).To(Equal("not json"))
			raw, err := json.Marshal(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(`"not json"`))
		})

		It("marshals decoded fields as an object", func() {
			v, err := asset.NewValue([]byte(`{"value":"1"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(v.Decoded()).To(BeTrue())
			raw, err := json.Marshal(&asset.Record{Key: "k", Value: v})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(Equal(`{"key":"k","value":{"value":"1"}}`))
		})
	})
})
