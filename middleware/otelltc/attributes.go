package otelltc

import (
	"errors"

	"github.com/dogmatiq/litecoind"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
)

const (
	// walletKey is the attribute key that identifies the wallet a call was
	// sent to.
	walletKey = attribute.Key("litecoind.wallet")

	// errorKindKey is the attribute key that identifies the kind of error a
	// call produced, either "client" or "daemon".
	errorKindKey = attribute.Key("litecoind.error_kind")
)

// commonAttributes returns the OpenTelemetry attributes that are recorded on
// every span and meter.
func commonAttributes(serviceName string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.RPCSystemKey.String("litecoind"),
	}

	if serviceName != "" {
		attrs = append(
			attrs,
			semconv.RPCServiceKey.String(serviceName),
		)
	}

	return attrs
}

// requestAttributes returns the OpenTelemetry attributes that describe req.
func requestAttributes(req litecoind.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.RPCMethodKey.String(req.Method),
		semconv.RPCJsonrpcVersionKey.String(req.Version),
	}

	if req.Wallet != "" {
		attrs = append(attrs, walletKey.String(req.Wallet))
	}

	return attrs
}

// errorAttributes returns the OpenTelemetry attributes that describe err.
func errorAttributes(err error) []attribute.KeyValue {
	var daemonErr *litecoind.LitecoindError
	if errors.As(err, &daemonErr) {
		return []attribute.KeyValue{
			errorKindKey.String("daemon"),
			semconv.RPCJsonrpcErrorCodeKey.Int(int(daemonErr.Code())),
			semconv.RPCJsonrpcErrorMessageKey.String(daemonErr.Message()),
		}
	}

	attrs := []attribute.KeyValue{
		errorKindKey.String("client"),
	}

	var clientErr *litecoind.ClientError
	if errors.As(err, &clientErr) && clientErr.Code() != 0 {
		attrs = append(attrs, semconv.HTTPStatusCodeKey.Int(clientErr.Code()))
	}

	return attrs
}
