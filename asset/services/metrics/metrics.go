/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/hyperledger/fabric-lib-go/common/metrics"
)

type (
	CounterOpts = metrics.CounterOpts
	Counter     = metrics.Counter

	HistogramOpts = metrics.HistogramOpts
	Histogram     = metrics.Histogram

	Provider = metrics.Provider
)

const namespace = "asset_registry"

// Operation labels
const (
	Exists    = "exists"
	Create    = "create"
	Read      = "read"
	Update    = "update"
	Delete    = "delete"
	ScanAll   = "scan_all"
	HistoryOf = "history_of"
)

var (
	operationsOpts = metrics.CounterOpts{
		Namespace:    namespace,
		Name:         "operations",
		Help:         "The number of registry operations",
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
	}
	failedOperationsOpts = metrics.CounterOpts{
		Namespace:    namespace,
		Name:         "failed_operations",
		Help:         "The number of failed registry operations",
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
	}
	operationDurationOpts = metrics.HistogramOpts{
		Namespace:    namespace,
		Name:         "operation_duration",
		Help:         "Duration of a registry operation in seconds",
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
		Buckets:      []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}
	decodeFailuresOpts = metrics.CounterOpts{
		Namespace:    namespace,
		Name:         "decode_failures",
		Help:         "The number of stored values returned raw because they could not be decoded",
		LabelNames:   []string{"operation"},
		StatsdFormat: "%{#fqname}.%{operation}",
	}
)

type Metrics struct {
	Operations        Counter
	FailedOperations  Counter
	OperationDuration Histogram
	DecodeFailures    Counter
}

func New(p Provider) *Metrics {
	return &Metrics{
		Operations:        p.NewCounter(operationsOpts),
		FailedOperations:  p.NewCounter(failedOperationsOpts),
		OperationDuration: p.NewHistogram(operationDurationOpts),
		DecodeFailures:    p.NewCounter(decodeFailuresOpts),
	}
}

func (m *Metrics) AddOperation(operation string, noErr bool) {
	if noErr {
		m.Operations.With("operation", operation).Add(1)
		return
	}
	m.FailedOperations.With("operation", operation).Add(1)
}

func (m *Metrics) ObserveDuration(operation string, duration time.Duration) {
	m.OperationDuration.With("operation", operation).Observe(duration.Seconds())
}

func (m *Metrics) AddDecodeFailures(operation string, n int) {
	if n == 0 {
		return
	}
	m.DecodeFailures.With("operation", operation).Add(float64(n))
}
