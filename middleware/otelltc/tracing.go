package otelltc

import (
	"context"
	"strings"
	"sync"

	"github.com/dogmatiq/litecoind"
	"github.com/dogmatiq/litecoind/internal/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName is the name of the OpenTelemetry instrumentation
// library.
const instrumentationName = "github.com/dogmatiq/litecoind/middleware/otelltc"

// Tracing is an implementation of litecoind.Exchanger that provides
// OpenTelemetry tracing for each JSON-RPC call.
//
// It adheres to the OpenTelemetry RPC semantic conventions as specified in
// https://github.com/open-telemetry/opentelemetry-specification/blob/main/specification/trace/semantic_conventions/rpc.md.
type Tracing struct {
	// Next is the next exchanger in the middleware stack.
	Next litecoind.Exchanger

	// TracerProvider is the OpenTelemetry TracerProvider to use for creating
	// spans.
	TracerProvider trace.TracerProvider

	// ServiceName is an application specific service name to use in the span
	// name and attributes.
	//
	// It may be empty, in which case it is omitted from the span.
	ServiceName string

	once           sync.Once
	tracer         trace.Tracer
	spanNamePrefix string
	attributes     []attribute.KeyValue
}

var _ litecoind.Exchanger = (*Tracing)(nil)

// WithTracing is a client option that adds tracing to the client's exchanger
// pipeline.
func WithTracing(tp trace.TracerProvider, serviceName string) litecoind.Option {
	return litecoind.WithMiddleware(
		func(next litecoind.Exchanger) litecoind.Exchanger {
			return &Tracing{
				Next:           next,
				TracerProvider: tp,
				ServiceName:    serviceName,
			}
		},
	)
}

// Call sends a call request within a new client span.
func (t *Tracing) Call(ctx context.Context, req litecoind.Request) (*litecoind.Response, error) {
	t.init()

	ctx, span := t.tracer.Start(
		ctx,
		t.spanNamePrefix+sanitizeMethodName(req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	span.SetAttributes(t.attributes...)
	span.SetAttributes(requestAttributes(req)...)
	span.SetAttributes(semconv.RPCJsonrpcRequestIDKey.String(req.ID))

	res, err := t.Next.Call(ctx, req)

	if err != nil {
		span.SetAttributes(errorAttributes(err)...)
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return res, err
}

// init initializes the tracer if it has not already been initialized.
func (t *Tracing) init() {
	t.once.Do(func() {
		t.tracer = t.TracerProvider.Tracer(
			instrumentationName,
			trace.WithInstrumentationVersion(version.Version),
		)

		t.attributes = commonAttributes(t.ServiceName)

		if t.ServiceName != "" {
			t.spanNamePrefix = t.ServiceName + "/"
		}
	})
}

// sanitizeMethodName returns an RPC method name suitable for use in part of
// span name.
func sanitizeMethodName(n string) string {
	return strings.ReplaceAll(n, "/", "-")
}
