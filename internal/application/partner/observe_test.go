package partner

import (
	"context"
	"testing"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/erp/crm/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestCustomerService_ObservesMutations(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewPartnerMetrics(mp.Meter("test"), nil)
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo)
	svc.SetMetrics(metrics)
	ctx := context.Background()

	repo.On("ExistsActiveByEmail", mock.Anything, "ana@example.com").Return(false, nil).Once()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	_, err = svc.Create(ctx, CreateCustomerRequest{FirstName: "Ana", LastName: "Perez", Email: "ana@example.com"})
	require.NoError(t, err)

	repo.On("FindActiveByID", mock.Anything, uint(9)).Return(nil, shared.ErrNotFound).Once()
	err = svc.Delete(ctx, 9)
	require.ErrorIs(t, err, shared.ErrNotFound)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "customer.create", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "customer.delete", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	outcomes := map[string]int64{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "crm_partner_mutations_total" {
			continue
		}
		for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
			op, _ := dp.Attributes.Value(telemetry.AttrOperation)
			outcome, _ := dp.Attributes.Value(telemetry.AttrOutcome)
			outcomes[op.AsString()+"/"+outcome.AsString()] += dp.Value
		}
	}
	assert.Equal(t, map[string]int64{"create/success": 1, "delete/error": 1}, outcomes)
}

func TestSaveOperation(t *testing.T) {
	assert.Equal(t, "create", saveOperation(0))
	assert.Equal(t, "update", saveOperation(3))
}
