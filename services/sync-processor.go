package services

import (
	"time"

	"distracto-server/cache"
	"distracto-server/extension"
	"distracto-server/logger"
	"distracto-server/repositories"
	"distracto-server/usecases"
)

// SyncProcessor buffers extension sync reports and writes them through to
// the screen-time store on a fixed interval, so a chatty extension doesn't
// turn every sample into a row write. Only the freshest sample per (user,
// day) survives a flush; the PUT path's upsert keeps one record per day.
type SyncProcessor struct {
	cache    *cache.SampleCache
	repo     repositories.ScreenTimeRepository
	log      *logger.Logger
	interval time.Duration
	stop     chan struct{}
}

func NewSyncProcessor(repo repositories.ScreenTimeRepository, log *logger.Logger, interval time.Duration) *SyncProcessor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SyncProcessor{
		cache:    cache.NewSampleCache(),
		repo:     repo,
		log:      log.With("service", "SyncProcessor"),
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start launches the flush loop.
func (sp *SyncProcessor) Start() {
	ticker := time.NewTicker(sp.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sp.Flush()
			case <-sp.stop:
				sp.Flush()
				return
			}
		}
	}()
}

// Stop ends the flush loop after a final flush.
func (sp *SyncProcessor) Stop() {
	close(sp.stop)
}

// Add buffers a report. Only extension-sourced reports are accepted; cached
// or synthetic data never reaches the store.
func (sp *SyncProcessor) Add(userID string, report extension.Report) {
	if report.Source != extension.SourceExtension {
		return
	}
	sp.cache.Add(userID, report)
}

// Flush writes the freshest buffered sample per (user, day) through the
// upsert path.
func (sp *SyncProcessor) Flush() {
	drained := sp.cache.Drain()
	if len(drained) == 0 {
		return
	}

	flushed := 0
	for userID, samples := range drained {
		latest := map[time.Time]cache.SyncSample{}
		for _, sample := range samples {
			day := usecases.Midnight(sample.ReceivedAt)
			if prev, ok := latest[day]; !ok || sample.ReceivedAt.After(prev.ReceivedAt) {
				latest[day] = sample
			}
		}
		for day, sample := range latest {
			record := sample.Report.ToScreenTime(userID, day)
			if _, err := sp.repo.Upsert(record); err != nil {
				sp.log.Error("failed to flush sync sample", "user_id", userID, "error", err)
				continue
			}
			flushed++
		}
	}
	if flushed > 0 {
		sp.log.Info("flushed sync samples", "records", flushed)
	}
}

// Stats reports buffer counters for the health endpoint.
func (sp *SyncProcessor) Stats() map[string]interface{} {
	return sp.cache.Stats()
}
