/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"math"
	"strings"
	"sync"

	"github.com/hyperledger/fabric-lib-go/common/metrics"
)

// InMemoryProvider keeps every metric in memory, split by label values.
// Values are read back with the getters, keyed by the fully qualified metric name.
type InMemoryProvider struct {
	mutex      sync.Mutex
	counters   map[string]*counter
	gauges     map[string]*gauge
	histograms map[string]*histogram
}

func NewInMemoryProvider() *InMemoryProvider {
	return &InMemoryProvider{
		counters:   map[string]*counter{},
		gauges:     map[string]*gauge{},
		histograms: map[string]*histogram{},
	}
}

func (p *InMemoryProvider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	name := fqname(o.Namespace, o.Subsystem, o.Name)
	c, ok := p.counters[name]
	if !ok {
		c = &counter{values: &values{v: map[string]float64{}}}
		p.counters[name] = c
	}
	return c
}

func (p *InMemoryProvider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	name := fqname(o.Namespace, o.Subsystem, o.Name)
	g, ok := p.gauges[name]
	if !ok {
		g = &gauge{values: &values{v: map[string]float64{}}}
		p.gauges[name] = g
	}
	return g
}

func (p *InMemoryProvider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	name := fqname(o.Namespace, o.Subsystem, o.Name)
	h, ok := p.histograms[name]
	if !ok {
		h = &histogram{stats: &stats{s: map[string]*summary{}}}
		p.histograms[name] = h
	}
	return h
}

// Counter returns the value of the counter for the given label values
func (p *InMemoryProvider) Counter(name string, labelValues ...string) float64 {
	p.mutex.Lock()
	c, ok := p.counters[name]
	p.mutex.Unlock()
	if !ok {
		return 0
	}
	return c.get(labelValues)
}

// Gauge returns the value of the gauge for the given label values
func (p *InMemoryProvider) Gauge(name string, labelValues ...string) float64 {
	p.mutex.Lock()
	g, ok := p.gauges[name]
	p.mutex.Unlock()
	if !ok {
		return 0
	}
	return g.get(labelValues)
}

// Observations returns the number of observations of the histogram for the given label values
func (p *InMemoryProvider) Observations(name string, labelValues ...string) uint64 {
	p.mutex.Lock()
	h, ok := p.histograms[name]
	p.mutex.Unlock()
	if !ok {
		return 0
	}
	return h.summary(labelValues).n
}

// Max returns the largest observation of the histogram for the given label values
func (p *InMemoryProvider) Max(name string, labelValues ...string) float64 {
	p.mutex.Lock()
	h, ok := p.histograms[name]
	p.mutex.Unlock()
	if !ok {
		return 0
	}
	return h.summary(labelValues).max
}

type values struct {
	m sync.Mutex
	v map[string]float64
}

func (v *values) do(key string, f func(float64) float64) {
	v.m.Lock()
	defer v.m.Unlock()
	v.v[key] = f(v.v[key])
}

type counter struct {
	*values
	key string
}

func (c *counter) With(labelValues ...string) metrics.Counter {
	return &counter{values: c.values, key: labelKey(labelValues)}
}
func (c *counter) Add(delta float64) { c.do(c.key, func(v float64) float64 { return v + delta }) }
func (c *counter) get(labelValues []string) float64 {
	c.m.Lock()
	defer c.m.Unlock()
	return c.v[valuesKey(labelValues)]
}

type gauge struct {
	*values
	key string
}

func (g *gauge) With(labelValues ...string) metrics.Gauge {
	return &gauge{values: g.values, key: labelKey(labelValues)}
}
func (g *gauge) Add(delta float64) { g.do(g.key, func(v float64) float64 { return v + delta }) }
func (g *gauge) Set(value float64) { g.do(g.key, func(float64) float64 { return value }) }
func (g *gauge) get(labelValues []string) float64 {
	g.m.Lock()
	defer g.m.Unlock()
	return g.v[valuesKey(labelValues)]
}

type summary struct {
	min, max, sum float64
	n             uint64
}

type stats struct {
	m sync.Mutex
	s map[string]*summary
}

type histogram struct {
	*stats
	key string
}

func (h *histogram) With(labelValues ...string) metrics.Histogram {
	return &histogram{stats: h.stats, key: labelKey(labelValues)}
}

func (h *histogram) Observe(v float64) {
	h.m.Lock()
	defer h.m.Unlock()
	s, ok := h.s[h.key]
	if !ok {
		s = &summary{min: math.MaxFloat64, max: -math.MaxFloat64}
		h.s[h.key] = s
	}
	s.min = min(v, s.min)
	s.max = max(v, s.max)
	s.sum += v
	s.n++
}

func (h *histogram) summary(labelValues []string) summary {
	h.m.Lock()
	defer h.m.Unlock()
	s, ok := h.s[valuesKey(labelValues)]
	if !ok {
		return summary{}
	}
	return *s
}

// labelKey keeps the values of a label name/value list
func labelKey(labelValues []string) string {
	vs := make([]string, 0, len(labelValues)/2)
	for i := 1; i < len(labelValues); i += 2 {
		vs = append(vs, labelValues[i])
	}
	return valuesKey(vs)
}

func valuesKey(vs []string) string {
	return strings.Join(vs, "|")
}

func fqname(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) > 0 {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "_")
}
