package otelltc

import (
	"context"
	"sync"
	"time"

	"github.com/dogmatiq/litecoind"
	"github.com/dogmatiq/litecoind/internal/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics is an implementation of litecoind.Exchanger that provides
// OpenTelemetry metrics for each JSON-RPC call.
type Metrics struct {
	// Next is the next exchanger in the middleware stack.
	Next litecoind.Exchanger

	// MeterProvider is the OpenTelemetry MeterProvider used to create meters.
	MeterProvider metric.MeterProvider

	// ServiceName is an application specific service name to use in the
	// metric attributes.
	//
	// It may be empty, in which case it is omitted.
	ServiceName string

	once       sync.Once
	calls      metric.Int64Counter
	errors     metric.Int64Counter
	duration   metric.Int64Histogram
	attributes []attribute.KeyValue
}

var _ litecoind.Exchanger = (*Metrics)(nil)

// WithMetrics is a client option that adds metrics to the client's exchanger
// pipeline.
func WithMetrics(mp metric.MeterProvider, serviceName string) litecoind.Option {
	return litecoind.WithMiddleware(
		func(next litecoind.Exchanger) litecoind.Exchanger {
			return &Metrics{
				Next:          next,
				MeterProvider: mp,
				ServiceName:   serviceName,
			}
		},
	)
}

// Call sends a call request and records its metrics.
func (m *Metrics) Call(ctx context.Context, req litecoind.Request) (*litecoind.Response, error) {
	m.init()

	attrs := requestAttributes(req)
	attrs = append(attrs, m.attributes...)
	attrOption := metric.WithAttributes(attrs...)

	m.calls.Add(ctx, 1, attrOption)

	start := time.Now()
	res, err := m.Next.Call(ctx, req)
	elapsed := time.Since(start)

	m.duration.Record(ctx, durationToMillis(elapsed), attrOption)

	if err != nil {
		attrs = append(attrs, errorAttributes(err)...)
		m.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	return res, err
}

// init initializes the meters if they have not already been initialized.
func (m *Metrics) init() {
	m.once.Do(func() {
		meter := m.MeterProvider.Meter(
			instrumentationName,
			metric.WithInstrumentationVersion(version.Version),
		)

		var err error

		m.calls, err = meter.Int64Counter(
			"rpc.client.calls",
			metric.WithDescription("The number of JSON-RPC calls made to the daemon."),
			metric.WithUnit("1"),
		)
		if err != nil {
			panic(err)
		}

		m.errors, err = meter.Int64Counter(
			"rpc.client.errors",
			metric.WithDescription("The number of JSON-RPC calls that result in an error."),
			metric.WithUnit("1"),
		)
		if err != nil {
			panic(err)
		}

		m.duration, err = meter.Int64Histogram(
			"rpc.client.duration",
			metric.WithDescription("The amount of time it takes the daemon to respond to JSON-RPC calls."),
			metric.WithUnit("ms"),
		)
		if err != nil {
			panic(err)
		}

		m.attributes = commonAttributes(m.ServiceName)
	})
}

// durationToMillis converts a duration to milliseconds.
func durationToMillis(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}
