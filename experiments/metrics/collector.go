package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one invocation of the search agent.
type SearchMetric struct {
	Depth     int // Ply budget
	Duration  time.Duration
	Nodes     int // Positions visited
	LeafEvals int // Heuristic evaluations at the depth cutoff
	Cutoffs   int // Alpha-beta prunes
}

type MoveMetric struct {
	Step   int
	Player string // Player name
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeafEval()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leafEvals atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes.Store(0)
	c.leafEvals.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeafEval() {
	c.leafEvals.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     c.depth,
		Duration:  time.Since(c.startTime),
		Nodes:     int(c.nodes.Load()),
		LeafEvals: int(c.leafEvals.Load()),
		Cutoffs:   int(c.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(depth int)        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeafEval()           {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
