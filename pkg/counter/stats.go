package counter

import (
	"sync/atomic"
	"time"
)

// CounterStats holds the atomic counters updated while a run is in flight.
// Progress reads them from another goroutine, so all access is atomic.
type CounterStats struct {
	filesFound   atomic.Int64
	filesCounted atomic.Int64
	filesSkipped atomic.Int64
	linesCounted atomic.Int64
}

// Progress is a point-in-time snapshot of a running count.
type Progress struct {
	FilesFound   int64
	FilesCounted int64
	FilesSkipped int64
	LinesCounted int64
	StartTime    time.Time
}

// NewCounterStats creates and initializes a new CounterStats instance
func NewCounterStats() *CounterStats {
	return &CounterStats{}
}

func (s *CounterStats) AddFilesFound(delta int64) int64 {
	return s.filesFound.Add(delta)
}

func (s *CounterStats) AddFilesCounted(delta int64) int64 {
	return s.filesCounted.Add(delta)
}

func (s *CounterStats) AddFilesSkipped(delta int64) int64 {
	return s.filesSkipped.Add(delta)
}

func (s *CounterStats) AddLinesCounted(delta int64) int64 {
	return s.linesCounted.Add(delta)
}

func (s *CounterStats) GetFilesFound() int64 {
	return s.filesFound.Load()
}

func (s *CounterStats) GetFilesCounted() int64 {
	return s.filesCounted.Load()
}

func (s *CounterStats) GetFilesSkipped() int64 {
	return s.filesSkipped.Load()
}

func (s *CounterStats) GetLinesCounted() int64 {
	return s.linesCounted.Load()
}
