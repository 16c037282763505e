package buffer

import (
	"fmt"
	"math"
)

// Stats is a set of statistical properties of a set of numbers.
type Stats struct {
	count          int
	min, max       float64
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Min returns the smallest element.
// NOTE : for an empty set this is +Inf
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest element.
// NOTE : for an empty set this is -Inf
func (s Stats) Max() float64 {
	return s.max
}

// Variance is the mathematical variance of the set.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// StatsCollector is a collection of Stats variables.
// This enables multi-dimensional tracking.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) error {
	if len(v) != sc.dim {
		return fmt.Errorf("inconsistent dimensions %d vs %d", len(v), sc.dim)
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
	return nil
}

// Stats returns the stats for each dimension.
func (sc StatsCollector) Stats() []*Stats {
	return sc.stats
}

// Size returns the number of elements pushed.
func (sc StatsCollector) Size() int {
	if sc.dim == 0 {
		return 0
	}
	// we expect all dimensions to have the same size
	return sc.stats[0].count
}
