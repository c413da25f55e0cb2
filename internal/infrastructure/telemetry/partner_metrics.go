package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// MeterName is the instrumentation name of partner metrics
const MeterName = "partner-crm/partner"

const defaultActiveCountInterval = 30 * time.Second

// ActiveCounter reports how many records are currently active
type ActiveCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

// PartnerMetrics records partner mutations and the number of active customers.
// A nil *PartnerMetrics records nothing.
type PartnerMetrics struct {
	mutations       *Counter
	activeCustomers *Gauge

	logger   *zap.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPartnerMetrics creates the partner instruments on meter.
func NewPartnerMetrics(meter metric.Meter, logger *zap.Logger) (*PartnerMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	mutations, err := NewCounter(meter, "crm_partner_mutations_total",
		"Partner create, update, delete and toggle operations", "{operation}")
	if err != nil {
		return nil, err
	}
	activeCustomers, err := NewGauge(meter, "crm_active_customers",
		"Number of active customers", "{customer}")
	if err != nil {
		return nil, err
	}

	return &PartnerMetrics{
		mutations:       mutations,
		activeCustomers: activeCustomers,
		logger:          logger,
		stopCh:          make(chan struct{}),
	}, nil
}

// RecordMutation counts one mutation of entity labelled with its outcome
func (m *PartnerMetrics) RecordMutation(ctx context.Context, entity, operation string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.mutations.Inc(ctx, AttrEntity.String(entity), AttrOperation.String(operation), AttrOutcome.String(outcome))
}

// StartActiveCustomerCollection samples counter every interval until Stop is
// called or ctx is done. A failed sample is logged and skipped.
func (m *PartnerMetrics) StartActiveCustomerCollection(ctx context.Context, counter ActiveCounter, interval time.Duration) {
	if interval <= 0 {
		interval = defaultActiveCountInterval
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.collectActiveCustomers(ctx, counter)
		for {
			select {
			case <-ticker.C:
				m.collectActiveCustomers(ctx, counter)
			case <-m.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *PartnerMetrics) collectActiveCustomers(ctx context.Context, counter ActiveCounter) {
	count, err := counter.CountActive(ctx)
	if err != nil {
		m.logger.Warn("Failed to count active customers", zap.Error(err))
		return
	}
	m.activeCustomers.Record(ctx, count)
}

// Stop terminates periodic collection. Safe to call multiple times.
func (m *PartnerMetrics) Stop() {
	if m == nil {
		return
	}
	m.stopOnce.Do(func() {
		close(m.stopCh)
		m.wg.Wait()
	})
}
