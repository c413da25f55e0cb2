package telemetry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/erp/crm/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
)

type memoryExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *memoryExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error { return nil }
func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.records))
	for _, r := range e.records {
		out = append(out, r.Body().AsString())
	}
	return out
}

func TestNewLoggerProvider_Disabled(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, lp.IsEnabled())
	assert.Nil(t, lp.Core())
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestNewZapOTELCore_FiltersByLevel(t *testing.T) {
	exporter := &memoryExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	log := zap.New(telemetry.NewZapOTELCore(provider, "partner-crm", "warn"))
	log.Info("quiet")
	log.Warn("customer email taken", zap.String("email", "a@b.c"))
	log.Error("save failed")

	assert.Equal(t, []string{"customer email taken", "save failed"}, exporter.bodies())
}

func TestNewZapOTELCore_DebugPassesEverything(t *testing.T) {
	exporter := &memoryExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	log := zap.New(telemetry.NewZapOTELCore(provider, "partner-crm", "debug")).With(zap.String("request_id", "r-1"))
	log.Debug("trace me")

	assert.Equal(t, []string{"trace me"}, exporter.bodies())
}
