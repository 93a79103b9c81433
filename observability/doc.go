// Package observability provides OpenTelemetry tracing and metrics for
// pipeline stages.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("ipinfo"))
//	defer tp.Shutdown(ctx)
//
//	send := observability.Traced("send", httpsdk.Send(tr))
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("ipinfo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("ipinfo"), "ipinfo")
//	send = observability.Measured(metrics, "send", send)
package observability
