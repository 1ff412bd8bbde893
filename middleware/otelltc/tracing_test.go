package otelltc_test

import (
	"context"
	"encoding/json"

	"github.com/dogmatiq/litecoind"
	. "github.com/dogmatiq/litecoind/internal/fixtures"
	"github.com/dogmatiq/litecoind/litecoindtest"
	. "github.com/dogmatiq/litecoind/middleware/otelltc"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/instrumentation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"
)

var _ = Describe("type Tracing", func() {
	var (
		request   litecoind.Request
		response  *litecoind.Response
		exchanger *ExchangerStub
		recorder  *tracetest.SpanRecorder
		tracing   *Tracing
	)

	BeforeEach(func() {
		request = litecoind.Request{
			Version:    litecoind.JSONRPCVersion,
			ID:         "<id>",
			Method:     "<method/name>",
			Parameters: json.RawMessage(`[1, 2, 3]`),
		}

		var err error
		response, err = litecoind.NewResponse(request.ID, json.RawMessage(`"<result>"`))
		Expect(err).ShouldNot(HaveOccurred())

		exchanger = &ExchangerStub{
			CallFunc: func(
				context.Context,
				litecoind.Request,
			) (*litecoind.Response, error) {
				return response, nil
			},
		}

		recorder = tracetest.NewSpanRecorder()

		tracing = &Tracing{
			Next: exchanger,
			TracerProvider: tracesdk.NewTracerProvider(
				tracesdk.WithSpanProcessor(recorder),
			),
			ServiceName: "<service>",
		}
	})

	Describe("func Call()", func() {
		It("forwards to the next exchanger", func() {
			exchanger.CallFunc = func(
				_ context.Context,
				req litecoind.Request,
			) (*litecoind.Response, error) {
				Expect(req).To(Equal(request))
				return response, nil
			}

			res, err := tracing.Call(context.Background(), request)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res).To(BeIdenticalTo(response))
		})

		It("passes the span to the next exchanger", func() {
			exchanger.CallFunc = func(
				ctx context.Context,
				_ litecoind.Request,
			) (*litecoind.Response, error) {
				Expect(trace.SpanFromContext(ctx).IsRecording()).To(BeTrue())
				return response, nil
			}

			_, err := tracing.Call(context.Background(), request)
			Expect(err).ShouldNot(HaveOccurred())
		})

		When("the call succeeds", func() {
			It("records a span", func() {
				tracing.Call(context.Background(), request)

				spans := recorder.Ended()
				Expect(spans).To(HaveLen(1))

				span := spans[0]

				// Slashes in the method name are replaced with hyphens as the
				// span name uses a slash to separate the service name.
				Expect(span.Name()).To(Equal("<service>/<method-name>"))
				Expect(span.SpanKind()).To(Equal(trace.SpanKindClient))

				Expect(span.Attributes()).To(ConsistOf(
					semconv.RPCSystemKey.String("litecoind"),
					semconv.RPCServiceKey.String("<service>"),
					semconv.RPCMethodKey.String("<method/name>"),
					semconv.RPCJsonrpcVersionKey.String("1.0"),
					semconv.RPCJsonrpcRequestIDKey.String("<id>"),
				))

				Expect(span.Status()).To(Equal(
					tracesdk.Status{
						Code: codes.Ok,
					},
				))

				Expect(span.InstrumentationScope()).To(Equal(
					instrumentation.Scope{
						Name:    "github.com/dogmatiq/litecoind/middleware/otelltc",
						Version: "0.0.0-dev",
					},
				))
			})

			It("omits the service name if it is empty", func() {
				tracing.ServiceName = ""
				tracing.Call(context.Background(), request)

				spans := recorder.Ended()
				Expect(spans).To(HaveLen(1))

				span := spans[0]

				Expect(span.Name()).To(Equal("<method-name>"))
				Expect(span.Attributes()).NotTo(ContainElement(
					HaveField("Key", semconv.RPCServiceKey),
				))
			})

			It("includes the wallet name", func() {
				request.Wallet = "testwallet.dat"
				tracing.Call(context.Background(), request)

				spans := recorder.Ended()
				Expect(spans).To(HaveLen(1))
				Expect(spans[0].Attributes()).To(ContainElement(
					attributeKey("litecoind.wallet").String("testwallet.dat"),
				))
			})
		})

		When("the daemon reports an error", func() {
			var daemonErr *litecoind.LitecoindError

			BeforeEach(func() {
				daemonErr = litecoind.NewLitecoindError(
					litecoind.InvalidAddressOrKeyCode,
					"No information available about transaction",
				)

				exchanger.CallFunc = func(
					context.Context,
					litecoind.Request,
				) (*litecoind.Response, error) {
					return nil, daemonErr
				}
			})

			It("includes error information in the span", func() {
				_, err := tracing.Call(context.Background(), request)
				Expect(err).To(BeIdenticalTo(daemonErr))

				spans := recorder.Ended()
				Expect(spans).To(HaveLen(1))

				span := spans[0]

				Expect(span.Attributes()).To(ContainElements(
					attributeKey("litecoind.error_kind").String("daemon"),
					semconv.RPCJsonrpcErrorCodeKey.Int(-5),
					semconv.RPCJsonrpcErrorMessageKey.String("No information available about transaction"),
				))

				Expect(span.Status()).To(Equal(
					tracesdk.Status{
						Code:        codes.Error,
						Description: "[-5] invalid address or key: No information available about transaction",
					},
				))

				Expect(span.Events()).To(ConsistOf(
					gstruct.MatchFields(gstruct.IgnoreExtras, gstruct.Fields{
						"Name": Equal("exception"),
						"Attributes": ConsistOf(
							semconv.ExceptionTypeKey.String("*litecoind.LitecoindError"),
							semconv.ExceptionMessageKey.String("[-5] invalid address or key: No information available about transaction"),
						),
					}),
				))
			})
		})

		When("the call fails without a daemon error", func() {
			BeforeEach(func() {
				exchanger.CallFunc = func(
					context.Context,
					litecoind.Request,
				) (*litecoind.Response, error) {
					return nil, litecoind.NewClientError(503, "Work queue depth exceeded", nil)
				}
			})

			It("includes the HTTP status code in the span", func() {
				tracing.Call(context.Background(), request)

				spans := recorder.Ended()
				Expect(spans).To(HaveLen(1))

				span := spans[0]

				Expect(span.Attributes()).To(ContainElements(
					attributeKey("litecoind.error_kind").String("client"),
					semconv.HTTPStatusCodeKey.Int(503),
				))

				Expect(span.Status()).To(Equal(
					tracesdk.Status{
						Code:        codes.Error,
						Description: "[HTTP 503] Work queue depth exceeded",
					},
				))
			})
		})
	})
})

var _ = Describe("func WithTracing()", func() {
	It("propagates the trace context to the daemon", func() {
		server := litecoindtest.NewServer(
			litecoindtest.WithResult("getblockcount", 2500000),
		)
		defer server.Close()

		recorder := tracetest.NewSpanRecorder()
		provider := tracesdk.NewTracerProvider(
			tracesdk.WithSpanProcessor(recorder),
		)

		client, err := litecoind.New(
			server.URL(),
			WithTracing(provider, "<service>"),
		)
		Expect(err).ShouldNot(HaveOccurred())

		prev := propagatorForTest(propagation.TraceContext{})
		defer prev()

		_, err = client.Call(context.Background(), "getblockcount")
		Expect(err).ShouldNot(HaveOccurred())

		spans := recorder.Ended()
		Expect(spans).To(HaveLen(1))

		reqs := server.Requests()
		Expect(reqs).To(HaveLen(1))

		carrier := propagation.HeaderCarrier(reqs[0].Header)
		remote := trace.SpanContextFromContext(
			propagation.TraceContext{}.Extract(context.Background(), carrier),
		)

		Expect(remote.TraceID()).To(Equal(spans[0].SpanContext().TraceID()))
		Expect(remote.SpanID()).To(Equal(spans[0].SpanContext().SpanID()))
	})
})
