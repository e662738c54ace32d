package receiver

import (
	"context"

	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
	coltracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
)

func (s *server) Export(
	ctx context.Context, in *coltracepb.ExportTraceServiceRequest,
) (*coltracepb.ExportTraceServiceResponse, error) {
	for _, resourceSpan := range in.ResourceSpans {
		serviceName := extractServiceName(resourceSpan)
		if serviceName == "" {
			continue
		}

		for _, scopeSpan := range resourceSpan.ScopeSpans {
			for _, span := range scopeSpan.Spans {
				s.ch <- &Event{
					ServiceName: serviceName,
					Magnitude:   extractMagnitude(span),
				}
			}
		}

	}

	return &coltracepb.ExportTraceServiceResponse{
		PartialSuccess: &coltracepb.ExportTracePartialSuccess{
			RejectedSpans: 0,
		},
	}, nil
}

func extractServiceName(spans *tracepb.ResourceSpans) string {
	if spans.Resource == nil || spans.Resource.Attributes == nil {
		return ""
	}

	for _, attribute := range spans.Resource.Attributes {
		if attribute.Key == string(semconv.ServiceNameKey) {
			return attribute.Value.GetStringValue()
		}
	}

	return ""
}

// extractMagnitude reads the transferred byte count from the span attributes.
// Spans without a size attribute count as a single occurrence.
func extractMagnitude(span *tracepb.Span) float64 {
	size, ok := intAttribute(span.Attributes, string(semconv.HTTPRequestBodySizeKey))
	if !ok || size < 0 {
		return 1
	}

	return float64(size)
}

func intAttribute(attributes []*commonpb.KeyValue, key string) (int64, bool) {
	for _, attribute := range attributes {
		if attribute.Key != key {
			continue
		}

		if _, ok := attribute.Value.GetValue().(*commonpb.AnyValue_IntValue); !ok {
			return 0, false
		}

		return attribute.Value.GetIntValue(), true
	}

	return 0, false
}
