package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
)

var log = logger.GetLogger()

// Snapshot is the cached, unfiltered view the dashboard serves between
// warehouse round-trips.
type Snapshot struct {
	Sales       []models.SalesSummaryRow `json:"sales"`
	StoreSales  []models.StoreSalesRow   `json:"store_sales"`
	RefreshedAt time.Time                `json:"refreshed_at"`
}

// Refresher re-runs the overview aggregations on a fixed schedule instead of
// a blocking sleep loop. Each run is bounded by the refresh interval so a
// slow warehouse cannot stack up refreshes.
type Refresher struct {
	service   business.DashboardService
	scheduler *gocron.Scheduler
	interval  time.Duration

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewRefresher(service business.DashboardService, interval time.Duration) *Refresher {
	return &Refresher{
		service:   service,
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
	}
}

// Start schedules periodic refreshes and runs the first one immediately.
func (r *Refresher) Start() error {
	if err := r.Refresh(); err != nil {
		log.Warnf("Initial snapshot refresh failed: %v", err)
	}

	if _, err := r.scheduler.Every(r.interval).Do(func() {
		if err := r.Refresh(); err != nil {
			log.Errorf("Snapshot refresh failed: %v", err)
		}
	}); err != nil {
		return errors.Wrap(err, "failed to schedule snapshot refresh")
	}

	r.scheduler.StartAsync()
	return nil
}

// Refresh queries the warehouse once and swaps in a new snapshot. On failure
// the previous snapshot stays served.
func (r *Refresher) Refresh() error {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	sales, err := r.service.SalesSummary(ctx, business.SalesFilter{})
	if err != nil {
		return err
	}

	storeSales, err := r.service.StoreSales(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snapshot = Snapshot{
		Sales:       sales,
		StoreSales:  storeSales,
		RefreshedAt: time.Now().UTC(),
	}
	r.mu.Unlock()

	log.Debugf("Snapshot refreshed: %d summary rows, %d store sales rows", len(sales), len(storeSales))
	return nil
}

func (r *Refresher) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Stop halts the scheduled refreshes. Safe to call more than once.
func (r *Refresher) Stop() {
	r.scheduler.Stop()
}
