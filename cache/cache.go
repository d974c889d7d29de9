package cache

import (
	"sync"
	"time"

	"distracto-server/extension"
)

// SyncSample is one normalized extension report waiting to be persisted.
type SyncSample struct {
	UserID     string
	Report     extension.Report
	ReceivedAt time.Time
}

// SampleCache buffers extension sync samples per user between flushes.
type SampleCache struct {
	mu      sync.RWMutex
	samples map[string][]SyncSample // map[userID][]samples
}

func NewSampleCache() *SampleCache {
	return &SampleCache{samples: make(map[string][]SyncSample)}
}

// Add appends a sample for the user.
func (sc *SampleCache) Add(userID string, report extension.Report) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.samples[userID] = append(sc.samples[userID], SyncSample{
		UserID:     userID,
		Report:     report,
		ReceivedAt: time.Now().UTC(),
	})
}

// Drain returns all buffered samples and clears the cache.
func (sc *SampleCache) Drain() map[string][]SyncSample {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	out := sc.samples
	sc.samples = make(map[string][]SyncSample)
	return out
}

// Stats returns counters about the current buffer.
func (sc *SampleCache) Stats() map[string]interface{} {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	total := 0
	for _, samples := range sc.samples {
		total += len(samples)
	}
	return map[string]interface{}{
		"buffered_users":   len(sc.samples),
		"buffered_samples": total,
	}
}
