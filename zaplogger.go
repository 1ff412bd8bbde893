package litecoind

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ZapCallLogger is an implementation of CallLogger using zap.Logger.
type ZapCallLogger struct {
	// Target is the destination for log messages.
	Target *zap.Logger
}

var _ CallLogger = ZapCallLogger{}

// NewZapCallLogger returns a new CallLogger that writes to the given logger.
func NewZapCallLogger(target *zap.Logger) ZapCallLogger {
	return ZapCallLogger{Target: target}
}

// LogCall logs information about a call request and its outcome.
func (l ZapCallLogger) LogCall(ctx context.Context, req Request, res *Response, err error) {
	var w strings.Builder

	w.WriteString("call ")
	writeMethod(&w, req.Method)

	fields := []zap.Field{
		zap.Int("param_size", len(req.Parameters)),
	}

	if req.Wallet != "" {
		fields = append(fields, zap.String("wallet", req.Wallet))
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		fields = append(fields, zap.String("trace_id", span.SpanContext().TraceID().String()))
	}

	if err == nil {
		fields = append(fields, zap.Int("result_size", len(res.result)))
		l.Target.Info(
			w.String(),
			fields...,
		)
		return
	}

	var (
		clientErr *ClientError
		daemonErr *LitecoindError
	)

	switch {
	case errors.As(err, &daemonErr):
		fields = append(
			fields,
			zap.Int("error_code", int(daemonErr.Code())),
			zap.String("error", daemonErr.Code().String()),
		)

		if daemonErr.Message() != daemonErr.Code().String() {
			fields = append(fields, zap.String("responded_with", daemonErr.Message()))
		}
	case errors.As(err, &clientErr):
		if clientErr.Code() != 0 {
			fields = append(fields, zap.Int("status_code", clientErr.Code()))
		}

		fields = append(fields, zap.String("error", clientErr.Message()))
	default:
		fields = append(fields, zap.String("error", err.Error()))
	}

	l.Target.Error(
		w.String(),
		fields...,
	)
}
