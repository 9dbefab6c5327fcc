package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric sums the statistics of every decision a collector saw.
type SearchMetric struct {
	Decisions int64
	Visited   int64
	Duration  time.Duration
}

// Collector aggregates per-call counters. Implementations are safe for
// concurrent use.
type Collector interface {
	AddDecision(visited int64, elapsed time.Duration)
	Complete() SearchMetric
}

type collector struct {
	decisions atomic.Int64
	visited   atomic.Int64
	elapsed   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddDecision(visited int64, elapsed time.Duration) {
	c.decisions.Add(1)
	c.visited.Add(visited)
	c.elapsed.Add(int64(elapsed))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Decisions: c.decisions.Load(),
		Visited:   c.visited.Load(),
		Duration:  time.Duration(c.elapsed.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddDecision(visited int64, elapsed time.Duration) {}
func (c *dummyCollector) Complete() SearchMetric                           { return SearchMetric{} }
