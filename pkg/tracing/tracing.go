package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Goden-Gun/mt4-retcode/pkg/codes"
)

const instrumentationName = "github.com/Goden-Gun/mt4-retcode"

// 返回码相关 span 属性
const (
	AttrRetCode     = attribute.Key("mt4.ret_code")
	AttrRetSymbol   = attribute.Key("mt4.ret_symbol")
	AttrRetMessage  = attribute.Key("mt4.ret_msg")
	AttrRetReserved = attribute.Key("mt4.ret_reserved")
)

// Tracer returns named tracer for MT4 components.
func Tracer(name string) trace.Tracer {
	if name == "" {
		name = instrumentationName
	}
	return otel.Tracer(name)
}

// Start opens a span for one MT4 manager operation.
func Start(ctx context.Context, operation string) (context.Context, trace.Span) {
	return Tracer(instrumentationName).Start(ctx, "mt4."+operation, trace.WithSpanKind(trace.SpanKindClient))
}

// RecordRetcode annotates span with the result of an MT4 call. Success and
// pending codes leave the span status unset; everything else marks it as error.
func RecordRetcode(span trace.Span, r *codes.Resolver, code int) {
	if span == nil || !span.IsRecording() {
		return
	}
	if r == nil {
		r = codes.Default()
	}
	msg := r.Resolve(code)
	span.SetAttributes(
		AttrRetCode.Int(code),
		AttrRetSymbol.String(codes.Code(code).String()),
		AttrRetMessage.String(msg),
		AttrRetReserved.Bool(codes.IsReserved(code)),
	)
	if codes.IsSuccess(code) || codes.IsPending(code) {
		return
	}
	span.RecordError(r.AsError(code))
	span.SetStatus(otelcodes.Error, msg)
}
