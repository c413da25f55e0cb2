package partner

import (
	"context"

	"github.com/erp/crm/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// startMutation opens a service span for a write operation. The returned
// function ends the span and counts the mutation with its outcome.
func startMutation(ctx context.Context, metrics *telemetry.PartnerMetrics, entity, operation string, id uint) (context.Context, func(error)) {
	attrs := []attribute.KeyValue{attribute.String(telemetry.SpanAttrEntity, entity)}
	if id != 0 {
		attrs = append(attrs, attribute.Int64(telemetry.SpanAttrEntityID, int64(id)))
	}
	ctx, span := telemetry.StartServiceSpan(ctx, entity, operation, attrs...)
	return ctx, func(err error) {
		metrics.RecordMutation(ctx, entity, operation, err)
		telemetry.EndSpan(span, err)
	}
}

// saveOperation names a save by whether it creates or replaces
func saveOperation(id uint) string {
	if id == 0 {
		return "create"
	}
	return "update"
}
